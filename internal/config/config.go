// Package config resolves tool paths and defaults. Values come from,
// in order of precedence: environment variables, the optional YAML
// config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all provost settings.
type Config struct {
	// StorePath is the SQLite document store location
	// (default ~/.provost/provost.db).
	StorePath string `yaml:"store_path"`

	// StandardsPath points at an award-standards JSON file. Empty
	// means the bundled dataset.
	StandardsPath string `yaml:"standards_path"`

	// TemplateDir holds document templates for the export command
	// (default ~/.provost/templates).
	TemplateDir string `yaml:"template_dir"`

	// AutosaveDelayMs is the debounce applied to edits before the
	// document snapshot is written (default 1500).
	AutosaveDelayMs int `yaml:"autosave_delay_ms"`
}

// Default returns the built-in configuration rooted at ~/.provost.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	root := filepath.Join(home, ".provost")
	return Config{
		StorePath:       filepath.Join(root, "provost.db"),
		TemplateDir:     filepath.Join(root, "templates"),
		AutosaveDelayMs: 1500,
	}, nil
}

// Load resolves the effective configuration. The config file lives at
// ~/.provost/config.yaml unless PROVOST_CONFIG overrides it; a missing
// file is not an error.
func Load() (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	path := os.Getenv("PROVOST_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		path = filepath.Join(home, ".provost", "config.yaml")
	}
	if err := mergeFile(&cfg, path); err != nil {
		return Config{}, err
	}

	// Environment variables win over the file.
	if v := os.Getenv("PROVOST_DB"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("PROVOST_STANDARDS"); v != "" {
		cfg.StandardsPath = v
	}
	if v := os.Getenv("PROVOST_TEMPLATES"); v != "" {
		cfg.TemplateDir = v
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if fileCfg.StorePath != "" {
		cfg.StorePath = fileCfg.StorePath
	}
	if fileCfg.StandardsPath != "" {
		cfg.StandardsPath = fileCfg.StandardsPath
	}
	if fileCfg.TemplateDir != "" {
		cfg.TemplateDir = fileCfg.TemplateDir
	}
	if fileCfg.AutosaveDelayMs > 0 {
		cfg.AutosaveDelayMs = fileCfg.AutosaveDelayMs
	}
	return nil
}
