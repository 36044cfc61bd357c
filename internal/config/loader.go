package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// configNames are the file names searched in each config directory, in order.
var configNames = []string{"hanoi.yaml", "hanoi.yml", "hanoi.toml"}

// LoadHanoi loads the Tower of Hanoi configuration.
// Search order: customPath -> ~/.hanoi/configs/hanoi.{yaml,yml,toml} ->
// ./configs/hanoi.{yaml,yml,toml} -> embedded default.
// Fields missing from a file keep their default values.
// The returned config is validated.
func LoadHanoi(customPath string) (HanoiConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, cfg.Validate()
	}

	// Try user config directory
	if dir := userConfigDir(); dir != "" {
		if cfg, ok := tryDir(dir); ok {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryDir("configs"); ok {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg := DefaultHanoiConfig()
	if err := yaml.Unmarshal(defaultHanoiYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultHanoiConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// tryDir returns the first valid config found in dir.
// Unreadable or invalid files are skipped, matching the fallback chain.
func tryDir(dir string) (HanoiConfig, bool) {
	for _, name := range configNames {
		cfg, err := loadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if cfg.Validate() == nil {
			return cfg, true
		}
	}
	return HanoiConfig{}, false
}

// loadFile reads a YAML or TOML file on top of the defaults.
func loadFile(path string) (HanoiConfig, error) {
	cfg := DefaultHanoiConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data into cfg, choosing TOML for .toml paths and YAML otherwise.
func Decode(path string, data []byte, cfg *HanoiConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// MarshalYAML renders cfg as YAML, used to print the effective config.
func MarshalYAML(cfg HanoiConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigDir returns ~/.hanoi/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hanoi", "configs")
}
