package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a config was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// localConfigPath is relative to the working directory.
const localConfigPath = "configs/tetris.yaml"

// Skipped records a config file on the search path that could not be used.
type Skipped struct {
	Path string
	Err  error
}

// Loaded is the result of LoadTetris.
type Loaded struct {
	Config  TetrisConfig
	Source  Source
	Skipped []Skipped // Broken files passed over on the search path
}

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tui-tetris/config.yaml -> ./configs/tetris.yaml -> embedded default
//
// Files are decoded over DefaultTetrisConfig, so a file only needs the keys
// it changes. A custom path that cannot be read, parsed or validated is an
// error. A search-path file that exists but cannot be used is recorded in
// Skipped and the search continues.
func LoadTetris(customPath string) (Loaded, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		return Loaded{Config: cfg, Source: SourceCustom}, err
	}

	var res Loaded
	candidates := []struct {
		path   string
		source Source
	}{
		{userConfigPath(), SourceUser},
		{localConfigPath, SourceLocal},
	}
	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		cfg, err := loadFile(c.path)
		if err == nil {
			res.Config, res.Source = cfg, c.source
			return res, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			res.Skipped = append(res.Skipped, Skipped{Path: c.path, Err: err})
		}
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultTetrisYAML); err == nil {
		res.Config, res.Source = cfg, SourceEmbedded
		return res, nil
	}
	res.Config, res.Source = DefaultTetrisConfig(), SourceBuiltin // Fallback to hardcoded if embed fails
	return res, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func loadFile(path string) (TetrisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TetrisConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-tetris", "config.yaml")
}
