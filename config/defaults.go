// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for texelcon.toml.

package config

const (
	defaultCols       = 80
	defaultRows       = 50
	defaultTileWidth  = 8
	defaultTileHeight = 8
	defaultFPSCap     = 0
)

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("window", Section{
		"title":   "texelcon",
		"cols":    defaultCols,
		"rows":    defaultRows,
		"fps_cap": float64(defaultFPSCap),
	})
	cfg.RegisterDefaults("font", Section{
		"path":        "terminal8x8.png",
		"tile_width":  defaultTileWidth,
		"tile_height": defaultTileHeight,
	})
	cfg.RegisterDefaults("post", Section{
		"scanlines":  false,
		"screenburn": false,
	})
	cfg.RegisterDefaults("logging", Section{
		"level": "info",
		"file":  "texelcon.log",
	})
	cfg.RegisterDefaults("snapshots", Section{
		"path": "snapshots.db",
	})
}

func defaultSystemConfig() Config {
	cfg := make(Config)
	applySystemDefaults(cfg)
	return cfg
}
