package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/galactix.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.galactix/config.yaml -> ./configs/galactix.yaml -> embedded default.
// The first file found is used; a file that exists but does not parse or
// validate is an error rather than being skipped.
func Load(customPath string) (Config, error) {
	path, err := Resolve(customPath)
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return loadDefault(), nil
	}
	return LoadFile(path)
}

// Resolve returns the path Load would read, or "" when the embedded default
// would be used.
func Resolve(customPath string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err != nil {
			return "", fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return customPath, nil
	}

	candidates := []string{userConfigPath("config.yaml"), localConfigPath}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config: cannot read %s: %w", p, err)
		}
	}
	return "", nil
}

// LoadFile reads, parses and validates a single configuration file.
// Sections missing from the file keep their default values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadDefault decodes the embedded default file.
func loadDefault() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".galactix", filename)
}
