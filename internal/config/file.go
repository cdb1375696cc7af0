package config

// This file implements the optional TOML config file overlay.
// Precedence: DefaultConfig < config file < CLI flags. The file is looked up
// at --config PATH (must exist when given) or $XDG_CONFIG_HOME/pics/config.toml
// (silently skipped when absent).

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the subset of Config that may be set from the file.
// Paths and per-run flags (prefix, dry-run, filters) stay CLI-only.
type fileConfig struct {
	Epoch            string   `toml:"epoch"`             // YYYY-MM-DD.
	ImportExtensions []string `toml:"import_extensions"` // Replaces the default set when non-empty.
	Color            string   `toml:"color"`             // auto | always | never.
	LogFile          string   `toml:"log_file"`
}

// DefaultFilePath returns the conventional config file location, or "" when
// the user config directory cannot be determined.
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pics", "config.toml")
}

// LoadFile overlays cfg with values from the TOML file at path. The file must
// exist and parse; use [LoadDefaultFile] for the optional conventional path.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	return applyFile(cfg, path, data)
}

// LoadDefaultFile overlays cfg from the conventional config path when that
// file exists. A missing file is not an error; a malformed one is.
func LoadDefaultFile(cfg *Config) error {
	path := DefaultFilePath()
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config file: %w", err)
	}
	return applyFile(cfg, path, data)
}

func applyFile(cfg *Config, path string, data []byte) error {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if fc.Epoch != "" {
		epoch, err := ParseDate(fc.Epoch)
		if err != nil {
			return fmt.Errorf("config file %s: epoch: %w", path, err)
		}
		cfg.Epoch = epoch
	}
	if len(fc.ImportExtensions) > 0 {
		cfg.ImportExtensions = append([]string(nil), fc.ImportExtensions...)
	}
	if fc.Color != "" {
		cfg.ColorMode = ColorMode(fc.Color)
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	return nil
}
