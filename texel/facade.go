// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/facade.go
// Summary: console.Console implementation forwarding to the active console.
// Notes: Each method locks the registry once, delegates, and unlocks. None of
// them call another facade method while locked.

package texel

import (
	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/palette"
	"github.com/framegrace/texelcon/rex"
)

func (c *Context) active(fn func(con console.Console)) {
	c.registry.WithConsole(c.ActiveConsole, func(d *DisplayConsole) {
		fn(d.Console)
	})
}

func (c *Context) Kind() console.Kind {
	var k console.Kind
	c.active(func(con console.Console) { k = con.Kind() })
	return k
}

// CharSize returns the active console's grid size.
func (c *Context) CharSize() (int, int) {
	var w, h int
	c.active(func(con console.Console) { w, h = con.CharSize() })
	return w, h
}

func (c *Context) At(x, y int) int {
	var idx int
	c.active(func(con console.Console) { idx = con.At(x, y) })
	return idx
}

func (c *Context) Cls() {
	c.active(func(con console.Console) { con.Cls() })
}

func (c *Context) ClsBg(bg palette.RGB) {
	c.active(func(con console.Console) { con.ClsBg(bg) })
}

func (c *Context) Set(x, y int, fg, bg palette.RGB, glyph rune) {
	c.active(func(con console.Console) { con.Set(x, y, fg, bg, glyph) })
}

func (c *Context) SetGlyph(x, y int, glyph rune) {
	c.active(func(con console.Console) { con.SetGlyph(x, y, glyph) })
}

func (c *Context) SetBg(x, y int, bg palette.RGB) {
	c.active(func(con console.Console) { con.SetBg(x, y, bg) })
}

func (c *Context) Get(x, y int) (console.Cell, bool) {
	var (
		cell console.Cell
		ok   bool
	)
	c.active(func(con console.Console) { cell, ok = con.Get(x, y) })
	return cell, ok
}

func (c *Context) Print(x, y int, text string) {
	c.active(func(con console.Console) { con.Print(x, y, text) })
}

func (c *Context) PrintColor(x, y int, fg, bg palette.RGB, text string) {
	c.active(func(con console.Console) { con.PrintColor(x, y, fg, bg, text) })
}

func (c *Context) PrintCentered(y int, text string) {
	c.active(func(con console.Console) { con.PrintCentered(y, text) })
}

func (c *Context) PrintColorCentered(y int, fg, bg palette.RGB, text string) {
	c.active(func(con console.Console) { con.PrintColorCentered(y, fg, bg, text) })
}

func (c *Context) PrintCenteredAt(x, y int, text string) {
	c.active(func(con console.Console) { con.PrintCenteredAt(x, y, text) })
}

func (c *Context) PrintColorCenteredAt(x, y int, fg, bg palette.RGB, text string) {
	c.active(func(con console.Console) { con.PrintColorCenteredAt(x, y, fg, bg, text) })
}

func (c *Context) PrintRight(x, y int, text string) {
	c.active(func(con console.Console) { con.PrintRight(x, y, text) })
}

func (c *Context) PrintColorRight(x, y int, fg, bg palette.RGB, text string) {
	c.active(func(con console.Console) { con.PrintColorRight(x, y, fg, bg, text) })
}

func (c *Context) Printer(x, y int, markup string, align console.TextAlign, bg *palette.RGB) {
	c.active(func(con console.Console) { con.Printer(x, y, markup, align, bg) })
}

func (c *Context) DrawBox(x, y, width, height int, fg, bg palette.RGB) {
	c.active(func(con console.Console) { con.DrawBox(x, y, width, height, fg, bg) })
}

func (c *Context) DrawBoxDouble(x, y, width, height int, fg, bg palette.RGB) {
	c.active(func(con console.Console) { con.DrawBoxDouble(x, y, width, height, fg, bg) })
}

func (c *Context) DrawHollowBox(x, y, width, height int, fg, bg palette.RGB) {
	c.active(func(con console.Console) { con.DrawHollowBox(x, y, width, height, fg, bg) })
}

func (c *Context) DrawHollowBoxDouble(x, y, width, height int, fg, bg palette.RGB) {
	c.active(func(con console.Console) { con.DrawHollowBoxDouble(x, y, width, height, fg, bg) })
}

func (c *Context) DrawBarHorizontal(x, y, width, n, max int, fg, bg palette.RGB) {
	c.active(func(con console.Console) { con.DrawBarHorizontal(x, y, width, n, max, fg, bg) })
}

func (c *Context) DrawBarVertical(x, y, height, n, max int, fg, bg palette.RGB) {
	c.active(func(con console.Console) { con.DrawBarVertical(x, y, height, n, max, fg, bg) })
}

func (c *Context) FillRegion(target console.Rect, glyph rune, fg, bg palette.RGB) {
	c.active(func(con console.Console) { con.FillRegion(target, glyph, fg, bg) })
}

func (c *Context) SetOffset(x, y float32) {
	c.active(func(con console.Console) { con.SetOffset(x, y) })
}

func (c *Context) Offset() (float32, float32) {
	var x, y float32
	c.active(func(con console.Console) { x, y = con.Offset() })
	return x, y
}

func (c *Context) SetScale(scale float32, centerX, centerY int) {
	c.active(func(con console.Console) { con.SetScale(scale, centerX, centerY) })
}

func (c *Context) Scale() (float32, int, int) {
	var (
		s      float32
		cx, cy int
	)
	c.active(func(con console.Console) { s, cx, cy = con.Scale() })
	return s, cx, cy
}

func (c *Context) ToXPLayer() *rex.Layer {
	var l *rex.Layer
	c.active(func(con console.Console) { l = con.ToXPLayer() })
	return l
}

// Snapshot returns the active console's grid.
func (c *Context) Snapshot() [][]console.Cell {
	var rows [][]console.Cell
	c.active(func(con console.Console) { rows = con.Snapshot() })
	return rows
}

// ToXPFile exports the console stack: the active console first, then every
// other console in registration order. Layers are cropped or padded to
// width x height when both are positive.
func (c *Context) ToXPFile(width, height int) *rex.File {
	f := rex.NewFile()
	fit := func(l *rex.Layer) *rex.Layer {
		if width > 0 && height > 0 {
			return l.Fit(width, height)
		}
		return l
	}
	var rest []*rex.Layer
	c.registry.EachConsole(func(id ConsoleID, d *DisplayConsole) {
		l := fit(d.Console.ToXPLayer())
		if id == c.ActiveConsole {
			f.AddLayer(l)
			return
		}
		rest = append(rest, l)
	})
	if len(f.Layers) == 0 {
		panic("texel: active console index out of range")
	}
	for _, l := range rest {
		f.AddLayer(l)
	}
	return f
}

// RenderXPSprite draws every layer of f onto the active console with its
// top-left corner at (x, y). Transparent cells are skipped.
func (c *Context) RenderXPSprite(f *rex.File, x, y int) {
	c.active(func(con console.Console) { rex.ApplyFile(f, con, x, y) })
}

var _ console.Console = (*Context)(nil)
