package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvConfig    = "FIXTUREGEN_CONFIG"
	EnvInput     = "FIXTUREGEN_INPUT"
	EnvSchemas   = "FIXTUREGEN_SCHEMAS"
	EnvOptional  = "FIXTUREGEN_OPTIONAL"
	EnvSeed      = "FIXTUREGEN_SEED"
	EnvMinItems  = "FIXTUREGEN_MIN_ITEMS"
	EnvMaxItems  = "FIXTUREGEN_MAX_ITEMS"
	EnvFormat    = "FIXTUREGEN_FORMAT"
	EnvResolve   = "FIXTUREGEN_RESOLVE"
	EnvLogLevel  = "FIXTUREGEN_LOG_LEVEL"
	EnvLogFormat = "FIXTUREGEN_LOG_FORMAT"
)

// LoadEnv applies the FIXTUREGEN_* variables that are present. Values that
// fail to parse are ignored.
func LoadEnv(cfg *Config) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvInput); v != "" {
		cfg.Input = v
		cfg.Sources["input"] = SourceEnv
	}
	if v := os.Getenv(EnvSchemas); v != "" {
		var patterns []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		if len(patterns) > 0 {
			cfg.Schemas = patterns
			cfg.Sources["schemas"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvOptional); v != "" {
		cfg.Optional = parseBool(v)
		cfg.Sources["optional"] = SourceEnv
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = seed
			cfg.Sources["seed"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvMinItems); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MinItems = n
			cfg.Sources["minItems"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvMaxItems); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxItems = n
			cfg.Sources["maxItems"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
		cfg.Sources["format"] = SourceEnv
	}
	if v := os.Getenv(EnvResolve); v != "" {
		cfg.Resolve = parseBool(v)
		cfg.Sources["resolve"] = SourceEnv
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
