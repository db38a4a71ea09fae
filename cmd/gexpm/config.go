package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config mirrors the chaos-utils pattern (pkg/config/config.go) of a
// YAML-tagged struct loaded once and layered under explicit flags: a
// flag set to a non-zero value wins over the file's value; a flag left at
// zero keeps the file's value.
type config struct {
	T        float64 `yaml:"t"`
	Eps      float64 `yaml:"eps"`
	Degree   int     `yaml:"degree"`
	Tol      float64 `yaml:"tol"`
	MaxSteps int     `yaml:"maxsteps"`
}

func defaultConfig() *config {
	return &config{T: 1.0, Eps: 1e-5, Degree: 10, Tol: 1e-3, MaxSteps: 0}
}

// loadConfig reads path if non-empty, overlaying its values onto the
// defaults; an empty path is not an error, since every field also has
// a flag-level default. A non-empty path that cannot be read is an error.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gexpm: reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("gexpm: parsing config %s: %w", path, err)
	}
	return cfg, nil
}
