package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configFile     = "safezone.yaml"
	animationsFile = "animations.yaml"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.safezone/configs/safezone.yaml -> ./configs/safezone.yaml -> embedded default
func Load(customPath string) (Config, error) {
	return load(customPath, configFile, defaultConfigYAML, DefaultConfig)
}

// LoadAnimations loads the animation sheet with the same search order as Load.
func LoadAnimations(customPath string) (AnimationSheet, error) {
	return load(customPath, animationsFile, defaultAnimationsYAML, DefaultAnimationSheet)
}

// load walks the search path for one YAML document. Only an explicit custom
// path can fail; every other source falls through to the next one.
func load[T any](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	var cfg T

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			var user T
			if err := yaml.Unmarshal(data, &user); err == nil {
				return user, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		var local T
		if err := yaml.Unmarshal(data, &local); err == nil {
			return local, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".safezone", "configs", filename)
}
