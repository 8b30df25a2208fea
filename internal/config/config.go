package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Default team labels, matching the shipped catalog compositions.
const (
	MetaTeamLabel     = "Meta Team"
	AlchemicTeamLabel = "Alchemic Team"
)

type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server"`
	Simulation SimulationConfig `yaml:"simulation" json:"simulation"`
	// Teams maps a team label to an ordered list of genetic names,
	// resolved against the catalog at request time.
	Teams map[string][]string `yaml:"teams" json:"teams"`
}

type ServerConfig struct {
	Port string `yaml:"port" json:"port"`
}

type SimulationConfig struct {
	MaxHours        float64 `yaml:"max_hours" json:"max_hours"`
	StopAtBreakeven *bool   `yaml:"stop_at_breakeven" json:"stop_at_breakeven"`
}

func (c *Config) ApplyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Simulation.MaxHours == 0 {
		c.Simulation.MaxHours = 48
	}
	if c.Simulation.StopAtBreakeven == nil {
		stop := true
		c.Simulation.StopAtBreakeven = &stop
	}
	if c.Teams == nil {
		c.Teams = map[string][]string{
			MetaTeamLabel:     {"Borger", "Miasma", "Forager", "Converter"},
			AlchemicTeamLabel: {"Alchemic", "Alchemic", "Alchemic", "Converter"},
		}
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	var c Config
	c.ApplyDefaults()
	return &c
}

// Load reads a yaml config file and fills in defaults for anything the
// file leaves unset.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
