// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelcon/run.go
// Summary: Runs a Lua script as the game state.

package main

import (
	"github.com/spf13/cobra"

	"github.com/framegrace/texelcon/script"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.lua>",
		Short: "Run a Lua script defining tick()",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			game, err := script.Load(a.fs, args[0])
			if err != nil {
				return err
			}
			defer game.Close()
			if err := a.play(game); err != nil {
				return err
			}
			return game.Err()
		},
	}
}
