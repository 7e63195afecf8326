// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelcon configuration and data files.

package config

import (
	"os"
	"path/filepath"
)

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelcon"), nil
}

// DefaultPath is texelcon.toml under the user config directory.
func DefaultPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

// DataPath joins name under the texelcon config directory. Absolute names
// are returned unchanged.
func DataPath(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}
