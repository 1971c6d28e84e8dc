package util

import (
	"os"

	"gopkg.in/yaml.v2"
)

// ServerConfig holds the HTTP server settings. Values come from an optional
// YAML file pointed at by CONFIG_PATH, with env vars taking precedence.
type ServerConfig struct {
	Port         string `yaml:"port"`
	BodyLimitMB  int    `yaml:"body_limit_mb"`
	AllowOrigins string `yaml:"allow_origins"`
}

// DefaultServerConfig returns the built-in defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:         "3000",
		BodyLimitMB:  50,
		AllowOrigins: "*",
	}
}

// LoadServerConfig reads the optional YAML config file and applies env overrides.
func LoadServerConfig() ServerConfig {
	cfg := DefaultServerConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			// Unknown keys are ignored; a broken file falls back to defaults
			var fileCfg ServerConfig
			if err := yaml.Unmarshal(data, &fileCfg); err == nil {
				if fileCfg.Port != "" {
					cfg.Port = fileCfg.Port
				}
				if fileCfg.BodyLimitMB > 0 {
					cfg.BodyLimitMB = fileCfg.BodyLimitMB
				}
				if fileCfg.AllowOrigins != "" {
					cfg.AllowOrigins = fileCfg.AllowOrigins
				}
			}
		}
	}

	if port := os.Getenv("MS_PORT"); port != "" {
		cfg.Port = port
	}

	return cfg
}
