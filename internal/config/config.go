package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration: HTTP surface, data
// locations, and the gameplay balance set.
type Config struct {
	Version    string       `yaml:"version" json:"version"`
	Server     ServerConfig `yaml:"server" json:"server"`
	Difficulty string       `yaml:"difficulty" json:"difficulty"`
	Balance    Balance      `yaml:"balance" json:"balance"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr" json:"addr"`
	DataDir        string   `yaml:"data_dir" json:"data_dir"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Server: ServerConfig{
			Addr:           ":8087",
			DataDir:        "data",
			AllowedOrigins: []string{"*"},
		},
		Difficulty: "default",
		Balance:    Default(),
	}
}

// Load reads the YAML config at path. A missing file is not an error;
// defaults apply. A named difficulty preset replaces the balance block
// before any explicit balance overrides from the file are honored.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var file struct {
		Version    string       `yaml:"version"`
		Server     ServerConfig `yaml:"server"`
		Difficulty string       `yaml:"difficulty"`
		Balance    *Balance     `yaml:"balance"`
	}
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.Version != "" {
		cfg.Version = file.Version
	}
	if file.Server.Addr != "" {
		cfg.Server.Addr = file.Server.Addr
	}
	if file.Server.DataDir != "" {
		cfg.Server.DataDir = file.Server.DataDir
	}
	if len(file.Server.AllowedOrigins) > 0 {
		cfg.Server.AllowedOrigins = file.Server.AllowedOrigins
	}
	if file.Difficulty != "" {
		cfg.Difficulty = file.Difficulty
		cfg.Balance = Preset(file.Difficulty)
	}
	if file.Balance != nil {
		cfg.Balance = *file.Balance
	}

	return cfg, nil
}
