// Package config provides the configuration loader for swiftwrap.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"swiftwrap/internal/core/domain"
)

// DefaultFilename is the configuration file swiftwrap looks for in the
// working directory.
const DefaultFilename = "swiftwrap.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewFileConfigLoader creates a loader for the default configuration file.
func NewFileConfigLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

// Load reads the configuration from the given working directory. A missing
// file is not an error; defaults apply.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	path := filepath.Join(cwd, l.Filename)
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// wrapfile represents the structure of the swiftwrap.yaml configuration
// file.
type wrapfile struct {
	Version     string         `yaml:"version"`
	StorageRoot string         `yaml:"storage_root"`
	Incremental incrementalDTO `yaml:"incremental"`
	Compiler    []string       `yaml:"compiler"`
}

type incrementalDTO struct {
	Kinds []string `yaml:"kinds"`
}

// Load reads a configuration file from the given path and returns a
// domain.Config with defaults applied to unset fields.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var wf wrapfile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	cfg := domain.DefaultConfig()
	if wf.StorageRoot != "" {
		cfg.StorageRoot = wf.StorageRoot
	}
	if len(wf.Compiler) > 0 {
		cfg.Compiler = wf.Compiler
	}
	if len(wf.Incremental.Kinds) > 0 {
		seen := make(map[string]bool, len(wf.Incremental.Kinds))
		for _, kind := range wf.Incremental.Kinds {
			if kind == "" {
				return nil, zerr.New("incremental kind must not be empty")
			}
			if seen[kind] {
				return nil, zerr.With(zerr.New("duplicate incremental kind"), "kind", kind)
			}
			seen[kind] = true
		}
		cfg.IncrementalKinds = wf.Incremental.Kinds
	}

	return cfg, nil
}
