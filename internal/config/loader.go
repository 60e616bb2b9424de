package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMathCatch loads Math Catcher configuration.
// Search order: customPath -> ~/.arcade/configs/mathcatch.yaml -> ./configs/mathcatch.yaml -> embedded default
func LoadMathCatch(customPath string) (MathCatchConfig, error) {
	cfg, err := load("mathcatch", customPath, DefaultMathCatchConfig())
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid mathcatch config: %w", err)
	}
	return cfg, nil
}

// load overlays the first YAML file found onto defaults.
// Keys missing from the file keep their default values.
func load[T any](gameID, customPath string, defaults T) (T, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := defaults
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults
	if embedded := GetDefaultYAML(gameID); embedded != nil {
		if err := yaml.Unmarshal(embedded, &cfg); err != nil {
			return defaults, nil // Fallback to hardcoded if embed fails
		}
	}
	return cfg, nil
}

// Marshal renders a config as YAML, for `arcade config`.
func Marshal(cfg any) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
