// Package config provides the configuration loader for evalrs.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/evalrs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader reading the default configuration file.
func NewLoader() *Loader {
	return &Loader{Filename: domain.ConfigFileName}
}

// Load reads the configuration file from the given working directory.
// A missing file is not an error: the defaults apply.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if file.Cache.Dir != "" {
		settings.CacheDir = file.Cache.Dir
	}
	if file.Cache.MaxEntries != nil {
		if *file.Cache.MaxEntries <= 0 {
			return domain.Settings{}, zerr.With(zerr.New("cache.max_entries must be positive"), "max_entries", *file.Cache.MaxEntries)
		}
		settings.MaxCacheEntries = *file.Cache.MaxEntries
	}
	if file.Cargo.Bin != "" {
		settings.CargoBin = file.Cargo.Bin
	}

	return settings, nil
}
