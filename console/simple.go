// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/simple.go
// Summary: Dense console storing every cell of its grid.

package console

import (
	"github.com/framegrace/texelcon/palette"
	"github.com/framegrace/texelcon/rex"
)

// SimpleConsole holds width*height cells in row-major order.
type SimpleConsole struct {
	viewport
	width, height int
	cells         []Cell
}

// NewSimpleConsole returns a cleared console of the given size.
func NewSimpleConsole(width, height int) *SimpleConsole {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &SimpleConsole{width: width, height: height, cells: make([]Cell, width*height)}
	c.Cls()
	return c
}

func (c *SimpleConsole) Kind() Kind { return KindSimple }

func (c *SimpleConsole) CharSize() (int, int) { return c.width, c.height }

func (c *SimpleConsole) At(x, y int) int { return y*c.width + x }

func (c *SimpleConsole) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *SimpleConsole) Cls() { c.ClsBg(DefaultBg) }

func (c *SimpleConsole) ClsBg(bg palette.RGB) {
	for i := range c.cells {
		c.cells[i] = Cell{Glyph: ' ', Fg: DefaultFg, Bg: bg}
	}
}

func (c *SimpleConsole) Set(x, y int, fg, bg palette.RGB, glyph rune) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[c.At(x, y)] = Cell{Glyph: glyph, Fg: fg, Bg: bg}
}

func (c *SimpleConsole) SetGlyph(x, y int, glyph rune) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[c.At(x, y)].Glyph = glyph
}

func (c *SimpleConsole) SetBg(x, y int, bg palette.RGB) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[c.At(x, y)].Bg = bg
}

func (c *SimpleConsole) Get(x, y int) (Cell, bool) {
	if !c.inBounds(x, y) {
		return Cell{}, false
	}
	return c.cells[c.At(x, y)], true
}

func (c *SimpleConsole) Print(x, y int, text string) { Print(c, x, y, text) }
func (c *SimpleConsole) PrintColor(x, y int, fg, bg palette.RGB, text string) {
	PrintColor(c, x, y, fg, bg, text)
}
func (c *SimpleConsole) PrintCentered(y int, text string) { PrintCentered(c, y, text) }
func (c *SimpleConsole) PrintColorCentered(y int, fg, bg palette.RGB, text string) {
	PrintColorCentered(c, y, fg, bg, text)
}
func (c *SimpleConsole) PrintCenteredAt(x, y int, text string) { PrintCenteredAt(c, x, y, text) }
func (c *SimpleConsole) PrintColorCenteredAt(x, y int, fg, bg palette.RGB, text string) {
	PrintColorCenteredAt(c, x, y, fg, bg, text)
}
func (c *SimpleConsole) PrintRight(x, y int, text string) { PrintRight(c, x, y, text) }
func (c *SimpleConsole) PrintColorRight(x, y int, fg, bg palette.RGB, text string) {
	PrintColorRight(c, x, y, fg, bg, text)
}
func (c *SimpleConsole) Printer(x, y int, markup string, align TextAlign, bg *palette.RGB) {
	PrintMarkup(c, x, y, markup, align, bg)
}

func (c *SimpleConsole) DrawBox(x, y, w, h int, fg, bg palette.RGB) { DrawBox(c, x, y, w, h, fg, bg) }
func (c *SimpleConsole) DrawBoxDouble(x, y, w, h int, fg, bg palette.RGB) {
	DrawBoxDouble(c, x, y, w, h, fg, bg)
}
func (c *SimpleConsole) DrawHollowBox(x, y, w, h int, fg, bg palette.RGB) {
	DrawHollowBox(c, x, y, w, h, fg, bg)
}
func (c *SimpleConsole) DrawHollowBoxDouble(x, y, w, h int, fg, bg palette.RGB) {
	DrawHollowBoxDouble(c, x, y, w, h, fg, bg)
}
func (c *SimpleConsole) DrawBarHorizontal(x, y, w, n, max int, fg, bg palette.RGB) {
	DrawBarHorizontal(c, x, y, w, n, max, fg, bg)
}
func (c *SimpleConsole) DrawBarVertical(x, y, h, n, max int, fg, bg palette.RGB) {
	DrawBarVertical(c, x, y, h, n, max, fg, bg)
}
func (c *SimpleConsole) FillRegion(r Rect, glyph rune, fg, bg palette.RGB) {
	FillRegion(c, r, glyph, fg, bg)
}

// ToXPLayer exports every cell. Cells holding glyph 0 export as transparent.
func (c *SimpleConsole) ToXPLayer() *rex.Layer {
	l := rex.NewLayer(c.width, c.height)
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.cells[c.At(x, y)]
			if cell.Empty() {
				continue
			}
			l.Set(x, y, rex.Cell{Glyph: rex.ToCP437(cell.Glyph), Fg: cell.Fg, Bg: cell.Bg})
		}
	}
	return l
}

func (c *SimpleConsole) Snapshot() [][]Cell {
	rows := make([][]Cell, c.height)
	for y := range rows {
		row := make([]Cell, c.width)
		copy(row, c.cells[y*c.width:(y+1)*c.width])
		rows[y] = row
	}
	return rows
}

var _ Console = (*SimpleConsole)(nil)
