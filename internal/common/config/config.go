package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App         AppConfig                   `mapstructure:"app"`
	Server      ServerConfig                `mapstructure:"server"`
	MCP         MCPConfig                   `mapstructure:"mcp"`
	Cache       CacheConfig                 `mapstructure:"cache"`
	Registry    RegistryConfig              `mapstructure:"registry"`
	Logging     LoggingConfig               `mapstructure:"logging"`
	Calculators map[string]CalculatorConfig `mapstructure:"calculators"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds the HTTP gateway settings.
type ServerConfig struct {
	Address        string `mapstructure:"address"`
	MetricsAddress string `mapstructure:"metrics_address"`
	ReadTimeout    int    `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout   int    `mapstructure:"write_timeout"` // milliseconds
}

// MCPConfig holds the MCP transport settings.
type MCPConfig struct {
	Transport string `mapstructure:"transport"` // "stdio" or "sse"
	Port      int    `mapstructure:"port"`      // only for SSE
}

// CacheConfig controls the idempotent result cache. Calculators are pure
// functions, so identical requests may be answered from Redis.
type CacheConfig struct {
	Enabled    bool        `mapstructure:"enabled"`
	TTLSeconds int         `mapstructure:"ttl_seconds"`
	Redis      RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RegistryConfig points at the tool registry document.
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CalculatorConfig holds the core settings applicable to every calculator.
// Limits carries the calculator's tunable service limits by name (GDS/TDS
// ceilings, the B-20 qualifying floor and buffer); each calculator reads the
// keys it knows and falls back to its defaults for the rest.
type CalculatorConfig struct {
	Enabled bool               `mapstructure:"enabled"`
	Timeout int                `mapstructure:"timeout"` // milliseconds
	Limits  map[string]float64 `mapstructure:"limits"`
}

// ExecutionTimeout returns the configured per-call timeout, or zero when the
// calculator should run unbounded.
func (c CalculatorConfig) ExecutionTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Millisecond
}
