package gdstds

import "mortgage-prequal/internal/common/config"

// Config carries the CMHC debt service ceilings. The defaults are the current
// guideline values; they are configurable because CMHC has revised them before
// (35/42 until July 2021).
type Config struct {
	GDSLimit float64
	TDSLimit float64
}

func LoadConfig() *Config {
	return &Config{
		GDSLimit: 39,
		TDSLimit: 44,
	}
}

// FromConfig overlays the configured "gds" and "tds" limits onto the
// defaults. Absent or zero limits keep the guideline values.
func FromConfig(cc config.CalculatorConfig) *Config {
	cfg := LoadConfig()
	if v, ok := cc.Limits["gds"]; ok && v > 0 {
		cfg.GDSLimit = v
	}
	if v, ok := cc.Limits["tds"]; ok && v > 0 {
		cfg.TDSLimit = v
	}
	return cfg
}
