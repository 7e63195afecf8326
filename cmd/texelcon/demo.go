// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelcon/demo.go
// Summary: Built-in demo exercising both consoles, input and the printer.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/input"
	"github.com/framegrace/texelcon/palette"
	"github.com/framegrace/texelcon/texel"
)

const (
	baseConsole    texel.ConsoleID = 0
	overlayConsole texel.ConsoleID = 1
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demo (F12 saves a snapshot, Escape quits)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.play(&demo{})
		},
	}
}

// play runs gs on a terminal context with the snapshot hotkey installed.
func (a *app) play(gs texel.GameState) error {
	store, err := a.openSnapshots()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, err := a.newContext()
	if err != nil {
		return err
	}
	h := &hotkeys{next: gs, store: store}
	if err := texel.MainLoop(ctx, h); err != nil {
		return err
	}
	if h.saved > 0 {
		fmt.Printf("saved %d snapshot(s)\n", h.saved)
	}
	return nil
}

type demo struct {
	frame  int
	clicks int
	last   input.Key
}

func (d *demo) Tick(ctx *texel.Context) {
	d.frame++
	if ctx.Key == input.KeyEscape {
		ctx.Quit()
		return
	}
	if ctx.Key != input.KeyNone {
		d.last = ctx.Key
	}
	if ctx.LeftClick {
		d.clicks++
	}

	ctx.SetActiveConsole(baseConsole)
	ctx.Cls()
	w, h := ctx.CharSize()
	ctx.DrawBoxDouble(0, 0, w-1, h-1, palette.White, palette.Black)
	ctx.PrintColorCentered(1, palette.Yellow, palette.Black, ctx.Title)
	ctx.Printer(2, 3, "#[cyan]Escape#[] quits, #[cyan]F12#[] saves a snapshot", console.AlignLeft, nil)
	ctx.Print(2, 5, fmt.Sprintf("FPS %.0f  frame %.1fms", ctx.FPS, ctx.FrameTimeMs))
	ctx.Print(2, 6, fmt.Sprintf("last key %-10s clicks %d", d.last, d.clicks))

	col, row := ctx.MouseTilePosition()
	ctx.Print(2, 7, fmt.Sprintf("mouse %3d,%3d", col, row))

	n := d.frame % 101
	barFg := palette.Lerp(palette.Red, palette.Green, float64(n)/100)
	ctx.DrawBarHorizontal(2, 9, w-4, n, 100, barFg, palette.Black)
	if option := input.LetterToOption(d.last); option >= 0 {
		ctx.PrintRight(w-2, h-2, fmt.Sprintf("option %d", option))
	}

	ctx.SetActiveConsole(overlayConsole)
	ctx.Cls()
	ctx.Set(col, row, palette.Magenta, palette.Black, '@')
	ctx.PrintColorCenteredAt(col, row+1, palette.White, palette.Black, "you")
	ctx.SetActiveConsole(baseConsole)
}
