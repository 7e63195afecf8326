// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/settings.go
// Summary: Typed view of the texelcon.toml sections used by cmd/texelcon.

package config

// Settings is the flattened configuration the command line consumes.
type Settings struct {
	Title      string
	Cols       int
	Rows       int
	FPSCap     float64
	FontPath   string
	TileWidth  int
	TileHeight int
	Scanlines  bool
	Screenburn bool
	LogLevel   string
	LogFile    string
	Snapshots  string
}

// Settings reads the current configuration into a Settings value.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SettingsFrom(s.system)
}

// SettingsFrom reads cfg, falling back to defaults for missing or mistyped keys.
func SettingsFrom(cfg Config) Settings {
	return Settings{
		Title:      cfg.GetString("window", "title", "texelcon"),
		Cols:       cfg.GetInt("window", "cols", defaultCols),
		Rows:       cfg.GetInt("window", "rows", defaultRows),
		FPSCap:     cfg.GetFloat("window", "fps_cap", defaultFPSCap),
		FontPath:   cfg.GetString("font", "path", "terminal8x8.png"),
		TileWidth:  cfg.GetInt("font", "tile_width", defaultTileWidth),
		TileHeight: cfg.GetInt("font", "tile_height", defaultTileHeight),
		Scanlines:  cfg.GetBool("post", "scanlines", false),
		Screenburn: cfg.GetBool("post", "screenburn", false),
		LogLevel:   cfg.GetString("logging", "level", "info"),
		LogFile:    cfg.GetString("logging", "file", "texelcon.log"),
		Snapshots:  cfg.GetString("snapshots", "path", "snapshots.db"),
	}
}
