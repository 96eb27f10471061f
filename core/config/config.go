package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tristendillon/related/core/logger"
	"gopkg.in/yaml.v3"
)

const FileName = "related.yaml"

type Config struct {
	// AlwaysPrompt shows the picker even when only one related file exists.
	AlwaysPrompt bool     `yaml:"always_prompt"`
	Preview      bool     `yaml:"preview"`
	Accessible   bool     `yaml:"accessible"`
	Editor       Editor   `yaml:"editor"`
	Exclude      []string `yaml:"exclude"`
	Watch        Watch    `yaml:"watch"`
}

type Editor struct {
	Command     string   `yaml:"command"`
	Args        []string `yaml:"args,omitempty"`
	PreviewArgs []string `yaml:"preview_args,omitempty"`
}

type Watch struct {
	Debounce time.Duration `yaml:"debounce"`
}

func Default() *Config {
	return &Config{
		Exclude: []string{
			".git",
			"node_modules",
			"bower_components",
			"dist",
			"tmp",
			"**/node_modules",
		},
		Watch: Watch{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Load reads related.yaml from the project root. Values missing from the
// file keep their defaults; a missing file is not an error.
func Load(root string) (*Config, error) {
	filePath := filepath.Join(root, FileName)

	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", *cfg)

	return cfg, nil
}

// Write stores cfg as related.yaml in root, refusing to replace an existing
// file unless force is set.
func Write(root string, cfg *Config, force bool) (string, error) {
	filePath := filepath.Join(root, FileName)

	if _, err := os.Stat(filePath); err == nil && !force {
		return "", fmt.Errorf("%s already exists, use --force to overwrite", filePath)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file %s: %w", filePath, err)
	}
	return filePath, nil
}
