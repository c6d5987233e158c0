package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

func LoadRegistry(path string) (*ToolRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ToolRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Find returns the tool registered under name.
func (r *ToolRegistry) Find(name string) (*Tool, bool) {
	for i := range r.Tools {
		if r.Tools[i].Name == name {
			return &r.Tools[i], true
		}
	}
	return nil, false
}

// Names returns all registered tool names in document order.
func (r *ToolRegistry) Names() []string {
	names := make([]string, 0, len(r.Tools))
	for _, t := range r.Tools {
		names = append(names, t.Name)
	}
	return names
}

// Validate checks registry completeness: every tool needs a name, a
// description and an object-typed input schema.
func (r *ToolRegistry) Validate() error {
	seen := make(map[string]bool, len(r.Tools))
	for _, t := range r.Tools {
		if t.Name == "" {
			return fmt.Errorf("registry contains a tool without a name")
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate tool %q", t.Name)
		}
		seen[t.Name] = true
		if t.Description == "" {
			return fmt.Errorf("tool %q has no description", t.Name)
		}
		if st, _ := t.InputSchema["type"].(string); st != "object" {
			return fmt.Errorf("tool %q input schema must be an object schema", t.Name)
		}
	}
	return nil
}

// ValidateInput checks an argument map against the tool's input schema.
// Transports may use this for early feedback; the calculators remain the
// authority on required-field semantics.
func (t *Tool) ValidateInput(input map[string]interface{}) error {
	schemaLoader := gojsonschema.NewGoLoader(t.InputSchema)
	documentLoader := gojsonschema.NewGoLoader(input)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("input does not match schema for %s: %s", t.Name, strings.Join(msgs, "; "))
}
