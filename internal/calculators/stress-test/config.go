package stresstest

import "mortgage-prequal/internal/common/config"

// Config carries the B-20 qualifying parameters. OSFI reviews the minimum
// qualifying rate at least annually, so the floor is configurable rather than
// a hard-coded constant.
type Config struct {
	QualifyingFloor float64 // minimum qualifying rate, percent
	RateBuffer      float64 // added to the contract rate, percent
}

func LoadConfig() *Config {
	return &Config{
		QualifyingFloor: 5.25,
		RateBuffer:      2.0,
	}
}

// FromConfig overlays the configured "qualifying_floor" and "rate_buffer"
// limits onto the defaults. Absent or zero limits keep the current values.
func FromConfig(cc config.CalculatorConfig) *Config {
	cfg := LoadConfig()
	if v, ok := cc.Limits["qualifying_floor"]; ok && v > 0 {
		cfg.QualifyingFloor = v
	}
	if v, ok := cc.Limits["rate_buffer"]; ok && v > 0 {
		cfg.RateBuffer = v
	}
	return cfg
}
