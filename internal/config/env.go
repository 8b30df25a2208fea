package config

import (
	"os"
	"strconv"
)

// FromEnv loads configuration, starting from the yaml file named by
// SPICE_CONFIG when present (defaults otherwise) and applying individual
// environment overrides on top.
func FromEnv() (*Config, error) {
	cfg := Default()
	if path := os.Getenv("SPICE_CONFIG"); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if v := getEnvFloat("SPICE_MAX_HOURS"); v > 0 {
		cfg.Simulation.MaxHours = v
	}
	if v := os.Getenv("SPICE_STOP_AT_BREAKEVEN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Simulation.StopAtBreakeven = &b
		}
	}

	return cfg, nil
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}
