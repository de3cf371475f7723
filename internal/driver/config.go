package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the manifest looked up from the working directory
// upward.
const ConfigFileName = "svlift.toml"

// Config carries the resolver run settings from svlift.toml.
type Config struct {
	Resolve ResolveConfig `toml:"resolve"`
	Cache   CacheConfig   `toml:"cache"`
}

type ResolveConfig struct {
	MaxDiagnostics int  `toml:"max_diagnostics"`
	Jobs           int  `toml:"jobs"`
	ShowTraces     bool `toml:"show_traces"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // "" means the standard cache location
}

// DefaultConfig returns the settings used when no manifest is present.
func DefaultConfig() Config {
	return Config{
		Resolve: ResolveConfig{MaxDiagnostics: 64},
		Cache:   CacheConfig{Enabled: false},
	}
}

// LoadConfig parses a manifest file. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Resolve.MaxDiagnostics <= 0 {
		cfg.Resolve.MaxDiagnostics = DefaultConfig().Resolve.MaxDiagnostics
	}
	return cfg, nil
}

// FindConfig walks from startDir upward looking for svlift.toml.
func FindConfig(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// LoadConfigFrom finds and loads the nearest manifest, falling back to
// defaults when none exists.
func LoadConfigFrom(startDir string) (Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
