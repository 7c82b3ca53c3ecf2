package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// envOverrides are the environment variables recognized on top of the
// YAML file. Empty values leave the file/default settings untouched.
type envOverrides struct {
	Addr       string `env:"NOMADSIM_ADDR"`
	DataDir    string `env:"NOMADSIM_DATA_DIR"`
	ConfigPath string `env:"NOMADSIM_CONFIG"`
	Difficulty string `env:"NOMADSIM_DIFFICULTY"`
}

// FromEnv loads the config file (path overridable via NOMADSIM_CONFIG)
// and applies environment overrides on top.
func FromEnv(defaultPath string) (*Config, error) {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	path := defaultPath
	if ov.ConfigPath != "" {
		path = ov.ConfigPath
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if ov.Addr != "" {
		cfg.Server.Addr = ov.Addr
	}
	if ov.DataDir != "" {
		cfg.Server.DataDir = ov.DataDir
	}
	if ov.Difficulty != "" {
		cfg.Difficulty = ov.Difficulty
		cfg.Balance = Preset(ov.Difficulty)
	}

	return cfg, nil
}
