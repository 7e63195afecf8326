// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/sparse.go
// Summary: Overlay console that only stores cells that have been written.

package console

import (
	"github.com/framegrace/texelcon/palette"
	"github.com/framegrace/texelcon/rex"
)

// SparseConsole keeps written cells keyed by their row-major index. Cells
// never written read as empty and are transparent when composited.
type SparseConsole struct {
	viewport
	width, height int
	tiles         map[int]Cell
}

// NewSparseConsole returns an empty overlay of the given size.
func NewSparseConsole(width, height int) *SparseConsole {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &SparseConsole{width: width, height: height, tiles: make(map[int]Cell)}
}

func (c *SparseConsole) Kind() Kind { return KindSparse }

func (c *SparseConsole) CharSize() (int, int) { return c.width, c.height }

func (c *SparseConsole) At(x, y int) int { return y*c.width + x }

// Len returns the number of written cells.
func (c *SparseConsole) Len() int { return len(c.tiles) }

func (c *SparseConsole) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *SparseConsole) Cls() { clear(c.tiles) }

// ClsBg empties the overlay; there is no background to paint.
func (c *SparseConsole) ClsBg(palette.RGB) { c.Cls() }

func (c *SparseConsole) Set(x, y int, fg, bg palette.RGB, glyph rune) {
	if !c.inBounds(x, y) {
		return
	}
	c.tiles[c.At(x, y)] = Cell{Glyph: glyph, Fg: fg, Bg: bg}
}

func (c *SparseConsole) SetGlyph(x, y int, glyph rune) {
	if !c.inBounds(x, y) {
		return
	}
	idx := c.At(x, y)
	cell, ok := c.tiles[idx]
	if !ok {
		cell = Cell{Fg: DefaultFg, Bg: DefaultBg}
	}
	cell.Glyph = glyph
	c.tiles[idx] = cell
}

// SetBg only touches cells that already exist.
func (c *SparseConsole) SetBg(x, y int, bg palette.RGB) {
	if !c.inBounds(x, y) {
		return
	}
	idx := c.At(x, y)
	if cell, ok := c.tiles[idx]; ok {
		cell.Bg = bg
		c.tiles[idx] = cell
	}
}

func (c *SparseConsole) Get(x, y int) (Cell, bool) {
	if !c.inBounds(x, y) {
		return Cell{}, false
	}
	return c.tiles[c.At(x, y)], true
}

func (c *SparseConsole) Print(x, y int, text string) { Print(c, x, y, text) }
func (c *SparseConsole) PrintColor(x, y int, fg, bg palette.RGB, text string) {
	PrintColor(c, x, y, fg, bg, text)
}
func (c *SparseConsole) PrintCentered(y int, text string) { PrintCentered(c, y, text) }
func (c *SparseConsole) PrintColorCentered(y int, fg, bg palette.RGB, text string) {
	PrintColorCentered(c, y, fg, bg, text)
}
func (c *SparseConsole) PrintCenteredAt(x, y int, text string) { PrintCenteredAt(c, x, y, text) }
func (c *SparseConsole) PrintColorCenteredAt(x, y int, fg, bg palette.RGB, text string) {
	PrintColorCenteredAt(c, x, y, fg, bg, text)
}
func (c *SparseConsole) PrintRight(x, y int, text string) { PrintRight(c, x, y, text) }
func (c *SparseConsole) PrintColorRight(x, y int, fg, bg palette.RGB, text string) {
	PrintColorRight(c, x, y, fg, bg, text)
}
func (c *SparseConsole) Printer(x, y int, markup string, align TextAlign, bg *palette.RGB) {
	PrintMarkup(c, x, y, markup, align, bg)
}

func (c *SparseConsole) DrawBox(x, y, w, h int, fg, bg palette.RGB) { DrawBox(c, x, y, w, h, fg, bg) }
func (c *SparseConsole) DrawBoxDouble(x, y, w, h int, fg, bg palette.RGB) {
	DrawBoxDouble(c, x, y, w, h, fg, bg)
}
func (c *SparseConsole) DrawHollowBox(x, y, w, h int, fg, bg palette.RGB) {
	DrawHollowBox(c, x, y, w, h, fg, bg)
}
func (c *SparseConsole) DrawHollowBoxDouble(x, y, w, h int, fg, bg palette.RGB) {
	DrawHollowBoxDouble(c, x, y, w, h, fg, bg)
}
func (c *SparseConsole) DrawBarHorizontal(x, y, w, n, max int, fg, bg palette.RGB) {
	DrawBarHorizontal(c, x, y, w, n, max, fg, bg)
}
func (c *SparseConsole) DrawBarVertical(x, y, h, n, max int, fg, bg palette.RGB) {
	DrawBarVertical(c, x, y, h, n, max, fg, bg)
}
func (c *SparseConsole) FillRegion(r Rect, glyph rune, fg, bg palette.RGB) {
	FillRegion(c, r, glyph, fg, bg)
}

// ToXPLayer exports written cells; the rest stay transparent.
func (c *SparseConsole) ToXPLayer() *rex.Layer {
	l := rex.NewLayer(c.width, c.height)
	for idx, cell := range c.tiles {
		if cell.Empty() {
			continue
		}
		l.Set(idx%c.width, idx/c.width, rex.Cell{Glyph: rex.ToCP437(cell.Glyph), Fg: cell.Fg, Bg: cell.Bg})
	}
	return l
}

func (c *SparseConsole) Snapshot() [][]Cell {
	rows := make([][]Cell, c.height)
	for y := range rows {
		rows[y] = make([]Cell, c.width)
	}
	for idx, cell := range c.tiles {
		rows[idx/c.width][idx%c.width] = cell
	}
	return rows
}

var _ Console = (*SparseConsole)(nil)
