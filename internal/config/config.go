// Package config loads and persists the filetidy configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jdoss/filetidy/internal/classify"
	"github.com/jdoss/filetidy/internal/common"
	"github.com/jdoss/filetidy/internal/model"
)

// Config is the full application configuration. Rules are ordered; the
// order in the file is the order of evaluation.
type Config struct {
	UnsortedFolder string       `mapstructure:"unsorted_folder" yaml:"unsorted_folder"`
	DatabasePath   string       `mapstructure:"database_path"   yaml:"database_path"`
	Rules          []model.Rule `mapstructure:"rules"           yaml:"rules"`
	Recursive      bool         `mapstructure:"recursive"       yaml:"recursive"`
	DateFolders    bool         `mapstructure:"date_folders"    yaml:"date_folders"`
}

// Default returns the configuration written on first run: the stock rule
// set, top-level-only scanning and date folders off.
func Default() Config {
	return Config{
		UnsortedFolder: classify.DefaultUnsortedFolder,
		DatabasePath:   "~/.local/share/filetidy/filetidy.db",
		Rules:          classify.DefaultRules(),
	}
}

// Load unmarshals the configuration from the already-initialized viper
// instance and validates it.
func Load() (Config, error) {
	cfg := Default()
	cfg.Rules = nil

	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	if len(cfg.Rules) == 0 {
		cfg.Rules = classify.DefaultRules()
	}
	if cfg.UnsortedFolder == "" {
		cfg.UnsortedFolder = classify.DefaultUnsortedFolder
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations whose rules could route files outside
// the organizing root.
func Validate(cfg Config) error {
	seen := make(map[string]bool, len(cfg.Rules))
	for _, rule := range cfg.Rules {
		if rule.Name == "" {
			return fmt.Errorf("%w: rule with empty name", common.ErrInvalidConfig)
		}
		if seen[rule.Name] {
			return fmt.Errorf("%w: duplicate rule name %q", common.ErrInvalidConfig, rule.Name)
		}
		seen[rule.Name] = true
		if !rule.ValidDestination() {
			return fmt.Errorf("rule %q: %w", rule.Name, common.ErrRuleDestination)
		}
	}

	unsorted := model.Rule{Name: "unsorted", Destination: cfg.UnsortedFolder}
	if !unsorted.ValidDestination() {
		return fmt.Errorf("unsorted folder %q: %w", cfg.UnsortedFolder, common.ErrRuleDestination)
	}
	return nil
}

// RuleSet converts the configuration into the classifier's input.
func (c Config) RuleSet() classify.RuleSet {
	return classify.RuleSet{
		Rules:          c.Rules,
		DateFolders:    c.DateFolders,
		UnsortedFolder: c.UnsortedFolder,
	}
}

// Save writes the configuration as YAML, creating parent directories as
// needed.
func Save(cfg Config, path string) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "filetidy", "config.yaml"), nil
}
