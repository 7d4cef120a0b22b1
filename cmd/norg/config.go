package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/norg/org/parser"
	"gopkg.in/yaml.v3"
)

// loadConfig returns the default configuration overridden by the config
// file at path, or by ".norg.yaml" in the working directory when path is
// empty and that file exists.
func loadConfig(path string) (parser.Config, error) {
	cfg := parser.DefaultConfig()

	if path == "" {
		path = ".norg.yaml"
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
