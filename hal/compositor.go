// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hal/compositor.go
// Summary: Flattens every registered console onto one terminal-sized frame.
// Notes: Consoles are drawn in registration order, each stretched over the
// whole window: the screen cell whose pixel center is (px, py) samples tile
// (px*cols/W, py*rows/H) before pan offset and zoom, the same mapping the
// input translator uses for mouse tiles.

package hal

import (
	"math"

	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/palette"
	"github.com/framegrace/texelcon/texel"
)

const (
	scanlineFactor   = 0.7
	screenburnFactor = 0.85
)

// Compositor renders a Context's registry into a cell frame.
type Compositor struct {
	// TileWidth and TileHeight are the pixel size of one terminal cell.
	TileWidth, TileHeight int
}

func blankFrame(cols, rows int) [][]console.Cell {
	frame := make([][]console.Cell, rows)
	for y := range frame {
		row := make([]console.Cell, cols)
		for x := range row {
			row[x] = console.Cell{Glyph: ' ', Fg: console.DefaultFg, Bg: console.DefaultBg}
		}
		frame[y] = row
	}
	return frame
}

// Compose returns a rows x cols frame.
func (c *Compositor) Compose(ctx *texel.Context, cols, rows int) [][]console.Cell {
	frame := blankFrame(cols, rows)
	reg := ctx.Registry()
	tw, th := max(1, c.TileWidth), max(1, c.TileHeight)

	win := window{width: ctx.WidthPixels, height: ctx.HeightPixels, tileW: tw, tileH: th}
	if win.width <= 0 {
		win.width = cols * tw
	}
	if win.height <= 0 {
		win.height = rows * th
	}

	// Shaders are read before EachConsole; the registry lock is not reentrant.
	shaders := reg.Shaders()
	reg.EachConsole(func(_ texel.ConsoleID, d *texel.DisplayConsole) {
		background := true
		if int(d.ShaderIndex) >= 0 && int(d.ShaderIndex) < len(shaders) {
			background = shaders[d.ShaderIndex].Background
		}
		c.drawConsole(frame, d.Console, background, win)
	})

	if ctx.PostScanlines {
		factor := scanlineFactor
		if ctx.PostScreenburn {
			factor = screenburnFactor
		}
		for y := 1; y < rows; y += 2 {
			for x := range frame[y] {
				frame[y][x].Fg = palette.Scale(frame[y][x].Fg, factor)
				frame[y][x].Bg = palette.Scale(frame[y][x].Bg, factor)
			}
		}
	}
	return frame
}

type window struct {
	width, height int
	tileW, tileH  int
}

// tileCoord maps the pixel center of screen cell s to a fractional console
// coordinate, zoomed by scale about the center of tile center and panned by
// offset.
func tileCoord(s, tile, cells, pixels, center int, scale, offset float32) float64 {
	p := s*tile + tile/2
	v := float64(p) * float64(cells) / float64(max(1, pixels))
	mid := float64(center) + 0.5
	v = (v-mid)/float64(scale) + mid
	return v - float64(offset)
}

func (c *Compositor) drawConsole(frame [][]console.Cell, con console.Console, background bool, win window) {
	cols, rows := con.CharSize()
	ox, oy := con.Offset()
	scale, scx, scy := con.Scale()
	if scale <= 0 {
		scale = 1
	}

	for sy, row := range frame {
		ty := int(math.Floor(tileCoord(sy, win.tileH, rows, win.height, scy, scale, oy)))
		for sx := range row {
			tx := int(math.Floor(tileCoord(sx, win.tileW, cols, win.width, scx, scale, ox)))

			cell, ok := con.Get(tx, ty)
			if !ok {
				continue
			}
			dst := &row[sx]
			if !background {
				if cell.Empty() || cell.Glyph == ' ' {
					continue
				}
				dst.Glyph, dst.Fg = cell.Glyph, cell.Fg
				continue
			}
			glyph := cell.Glyph
			if glyph == 0 {
				glyph = ' '
			}
			*dst = console.Cell{Glyph: glyph, Fg: cell.Fg, Bg: cell.Bg}
		}
	}
}
