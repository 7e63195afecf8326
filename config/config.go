// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: TOML configuration store for texelcon on an afero filesystem.
// Usage: store, err := config.Open(afero.NewOsFs(), "") loads (or creates)
// texelcon.toml under the user config directory.

// Package config loads texelcon.toml into section maps with typed getters,
// filling in defaults and writing the file back when it is missing or empty.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/framegrace/texelcon/internal/syncutil"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const systemConfigName = "texelcon.toml"

// ErrDecode wraps TOML syntax errors.
var ErrDecode = errors.New("config: decode")

// Config stores configuration sections as TOML-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

// Store owns one configuration file.
type Store struct {
	fs   afero.Fs
	path string

	mu      syncutil.RWMutex
	system  Config
	loadErr error
}

// Open loads the config at path, or at DefaultPath when path is empty. The
// store is usable even when an error is returned; defaults fill the gaps.
func Open(fsys afero.Fs, path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	s := &Store{fs: fsys, path: path}
	err := s.Reload()
	return s, err
}

// Path returns the file backing the store.
func (s *Store) Path() string { return s.path }

// Err returns the most recent load error.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// System returns a copy of the loaded configuration.
func (s *Store) System() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Clone(s.system)
}

// Reload re-reads the file.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = s.loadSystemLocked()
	return s.loadErr
}

// Set replaces the in-memory configuration. Defaults are re-applied.
func (s *Store) Set(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg == nil {
		cfg = make(Config)
	}
	s.system = Clone(cfg)
	applySystemDefaults(s.system)
}

// Save persists the current configuration.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeConfig(s.system)
}

func (s *Store) readConfig() (Config, bool, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, true, fmt.Errorf("%w: %s: %v", ErrDecode, s.path, err)
	}
	return cfg, true, nil
}

func (s *Store) writeConfig(cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(map[string]interface{}(cfg))
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path, data, 0o644)
}
