// Package args decodes raw calculation-request argument maps into the typed
// input structs each calculator defines.
package args

import "github.com/mitchellh/mapstructure"

// Decode weakly decodes raw into out, coercing compatible types along the way
// (JSON numbers, numeric strings, floats into ints). Fields absent from raw
// keep whatever default value out already carries.
func Decode(raw map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
		TagName:          "json",
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
