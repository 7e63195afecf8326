// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelcon/root.go
// Summary: Root cobra command wiring config, logging and the tcell backend.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/framegrace/texelcon/config"
	"github.com/framegrace/texelcon/hal"
	"github.com/framegrace/texelcon/internal/logging"
	"github.com/framegrace/texelcon/snapshot"
	"github.com/framegrace/texelcon/texel"
)

var errNotTerminal = errors.New("stdout is not a terminal")

type app struct {
	fs         afero.Fs
	configPath string
	logLevel   string
	fpsCap     float64

	store    *config.Store
	settings config.Settings
	logs     io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{fs: afero.NewOsFs()}
	root := &cobra.Command{
		Use:           "texelcon",
		Short:         "Multi-console terminal rendering context",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logs != nil {
				a.logs.Close()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to texelcon.toml (default: user config dir)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")
	root.PersistentFlags().Float64Var(&a.fpsCap, "fps", -1, "frame cap override, 0 for uncapped")

	root.AddCommand(newDemoCmd(a), newRunCmd(a), newSnapshotsCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	store, err := config.Open(a.fs, a.configPath)
	if store == nil {
		return fmt.Errorf("config: %w", err)
	}
	a.store = store
	a.settings = store.Settings()
	if a.logLevel != "" {
		a.settings.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("fps") {
		a.settings.FPSCap = a.fpsCap
	}

	logFile, pathErr := config.DataPath(a.settings.LogFile)
	if pathErr != nil {
		return pathErr
	}
	closer, logErr := logging.Setup(logging.Options{Level: a.settings.LogLevel, File: logFile})
	if logErr != nil {
		return fmt.Errorf("logging: %w", logErr)
	}
	a.logs = closer
	if err != nil {
		log.Warn().Err(err).Str("path", store.Path()).Msg("config: using defaults")
	}
	return nil
}

func (a *app) openSnapshots() (*snapshot.Store, error) {
	path, err := config.DataPath(a.settings.Snapshots)
	if err != nil {
		return nil, err
	}
	return snapshot.Open(path)
}

// newContext builds a text layer and a sparse overlay on the configured font,
// presented through a tcell screen on the controlling terminal.
func (a *app) newContext() (*texel.Context, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, errNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell: %w", err)
	}
	s := a.settings
	b := texel.NewBuilder().
		WithTitle(s.Title).
		WithDimensions(s.Cols, s.Rows).
		WithTileDimensions(s.TileWidth, s.TileHeight).
		WithFont(s.FontPath, s.TileWidth, s.TileHeight).
		WithSimpleConsole(s.Cols, s.Rows, s.FontPath).
		WithSparseConsole(s.Cols, s.Rows, s.FontPath).
		WithFPSCap(float32(s.FPSCap)).
		WithBackend(hal.NewTcellBackend(screen))
	if s.Scanlines {
		b = b.WithPostScanlines(s.Screenburn)
	}
	return b.Build()
}
