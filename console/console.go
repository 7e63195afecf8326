// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/console.go
// Summary: Console capability interfaces and the cell/rect value types.
// Usage: Implemented by SimpleConsole, SparseConsole and texel.Context; the
// registry and the compositor only talk to consoles through these interfaces.

// Package console defines the drawing capability every registered console
// provides, plus two implementations: a dense grid and a sparse grid.
package console

import (
	"github.com/framegrace/texelcon/palette"
	"github.com/framegrace/texelcon/rex"
)

// Cell is one character cell. A zero Glyph means nothing has been drawn, which
// overlay consoles treat as transparent.
type Cell struct {
	Glyph rune
	Fg    palette.RGB
	Bg    palette.RGB
}

// Empty reports whether nothing has been drawn into the cell.
func (c Cell) Empty() bool { return c.Glyph == 0 }

// Rect is a region in tile coordinates covering [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the tile (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// TextAlign positions markup printed with Printer relative to its x coordinate.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Kind identifies a console implementation for capability probing.
type Kind string

const (
	KindSimple Kind = "simple"
	KindSparse Kind = "sparse"
)

// Surface is the minimal cell-level capability. Writes outside the grid are
// ignored.
type Surface interface {
	CharSize() (width, height int)
	At(x, y int) int
	Cls()
	ClsBg(bg palette.RGB)
	Set(x, y int, fg, bg palette.RGB, glyph rune)
	SetGlyph(x, y int, glyph rune)
	SetBg(x, y int, bg palette.RGB)
	Get(x, y int) (Cell, bool)
}

// Printer writes text.
type Printer interface {
	Print(x, y int, text string)
	PrintColor(x, y int, fg, bg palette.RGB, text string)
	PrintCentered(y int, text string)
	PrintColorCentered(y int, fg, bg palette.RGB, text string)
	PrintCenteredAt(x, y int, text string)
	PrintColorCenteredAt(x, y int, fg, bg palette.RGB, text string)
	PrintRight(x, y int, text string)
	PrintColorRight(x, y int, fg, bg palette.RGB, text string)
	// Printer prints inline markup such as "#[blue]blue #[red]red#[] blue".
	// A nil bg keeps each cell's existing background.
	Printer(x, y int, markup string, align TextAlign, bg *palette.RGB)
}

// Drawer draws boxes, bars and filled regions.
type Drawer interface {
	DrawBox(x, y, width, height int, fg, bg palette.RGB)
	DrawBoxDouble(x, y, width, height int, fg, bg palette.RGB)
	DrawHollowBox(x, y, width, height int, fg, bg palette.RGB)
	DrawHollowBoxDouble(x, y, width, height int, fg, bg palette.RGB)
	DrawBarHorizontal(x, y, width, n, max int, fg, bg palette.RGB)
	DrawBarVertical(x, y, height, n, max int, fg, bg palette.RGB)
	FillRegion(target Rect, glyph rune, fg, bg palette.RGB)
}

// Viewport is the window-facing state of a console: the pixel size it has
// been told about, its pan offset (in tiles) and zoom.
type Viewport interface {
	ResizePixels(width, height int)
	PixelSize() (width, height int)
	SetOffset(x, y float32)
	Offset() (x, y float32)
	SetScale(scale float32, centerX, centerY int)
	Scale() (scale float32, centerX, centerY int)
}

// Layered converts a console to serialisable or composable snapshots.
type Layered interface {
	ToXPLayer() *rex.Layer
	// Snapshot returns a row-major copy of the grid.
	Snapshot() [][]Cell
}

// Console is the full capability a registered console provides.
type Console interface {
	Surface
	Printer
	Drawer
	Viewport
	Layered
	Kind() Kind
}

// Default cell colors.
var (
	DefaultFg = palette.White
	DefaultBg = palette.Black
)

// Point is a tile coordinate.
type Point struct {
	X, Y int
}
