package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigRelPath = "pairdiff/config.yaml"

// startupConfig mirrors the optional YAML config file. Fields are pointers so
// an absent key can be told apart from a zero value; flags set explicitly on
// the command line always win.
type startupConfig struct {
	SimilarityThreshold *float64 `yaml:"similarity-threshold"`
	MinLineLength       *int     `yaml:"min-line-length"`
	Context             *int     `yaml:"context"`
	Theme               *string  `yaml:"theme"`
}

type resolvedConfigPath struct {
	Path     string
	Required bool
	Enabled  bool
}

func resolveStartupConfigPath(configHome string, explicitPath string, noConfig bool) resolvedConfigPath {
	if noConfig {
		return resolvedConfigPath{Enabled: false}
	}
	if explicitPath != "" {
		return resolvedConfigPath{Path: explicitPath, Required: true, Enabled: true}
	}
	return resolvedConfigPath{
		Path:    filepath.Join(configHome, defaultConfigRelPath),
		Enabled: true,
	}
}

func loadStartupConfig(configHome string, explicitPath string, noConfig bool) (startupConfig, error) {
	path := resolveStartupConfigPath(configHome, explicitPath, noConfig)
	if !path.Enabled {
		return startupConfig{}, nil
	}
	return readStartupConfig(path.Path, path.Required)
}

func readStartupConfig(path string, required bool) (startupConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return startupConfig{}, nil
		}
		return startupConfig{}, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg startupConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return startupConfig{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := validateStartupConfig(cfg); err != nil {
		return startupConfig{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func validateStartupConfig(cfg startupConfig) error {
	if cfg.SimilarityThreshold != nil {
		if t := *cfg.SimilarityThreshold; t < 0 || t > 1 {
			return fmt.Errorf("similarity-threshold %v outside [0, 1]", t)
		}
	}
	if cfg.MinLineLength != nil && *cfg.MinLineLength < 0 {
		return fmt.Errorf("min-line-length %d is negative", *cfg.MinLineLength)
	}
	if cfg.Context != nil && *cfg.Context < 0 {
		return fmt.Errorf("context %d is negative", *cfg.Context)
	}
	return nil
}

// applyStartupConfig overlays config file values onto flag values, skipping
// any flag the user set explicitly.
func applyStartupConfig(cfg startupConfig, explicit map[string]bool, threshold *float64, minLineLength *int, contextLines *int, theme *string) {
	if cfg.SimilarityThreshold != nil && !explicit[flagNameThreshold] {
		*threshold = *cfg.SimilarityThreshold
	}
	if cfg.MinLineLength != nil && !explicit[flagNameMinLineLength] {
		*minLineLength = *cfg.MinLineLength
	}
	if cfg.Context != nil && !explicit[flagNameContext] {
		*contextLines = *cfg.Context
	}
	if cfg.Theme != nil && !explicit[flagNameTheme] {
		*theme = *cfg.Theme
	}
}
