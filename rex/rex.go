// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: rex/rex.go
// Summary: REX Paint layered sprite files: in-memory model and layer helpers.
// Usage: Consoles export themselves as layers; files are rendered back onto
// any cell setter with transparent cells skipped.

// Package rex reads and writes REX Paint (.xp) files, a gzip-compressed
// sequence of width x height glyph/fg/bg layers.
package rex

import "github.com/framegrace/texelcon/palette"

// Transparent is the background color REX Paint uses to mark empty cells.
var Transparent = palette.Magenta

// Version is written into the header of every saved file.
const Version int32 = -1

// Cell is one glyph of a layer. Glyph holds a CP437 code (see ToCP437).
type Cell struct {
	Glyph uint32
	Fg    palette.RGB
	Bg    palette.RGB
}

// IsTransparent reports whether the cell is skipped when rendered.
func (c Cell) IsTransparent() bool {
	return c.Bg == Transparent
}

// Layer is a width x height grid stored column-major, matching the on-disk order.
type Layer struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewLayer creates a layer filled with transparent spaces.
func NewLayer(width, height int) *Layer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	l := &Layer{Width: width, Height: height, Cells: make([]Cell, width*height)}
	for i := range l.Cells {
		l.Cells[i] = Cell{Glyph: ' ', Fg: palette.Black, Bg: Transparent}
	}
	return l
}

func (l *Layer) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0, false
	}
	return x*l.Height + y, true
}

// Get returns the cell at x, y; ok is false outside the layer.
func (l *Layer) Get(x, y int) (Cell, bool) {
	idx, ok := l.index(x, y)
	if !ok {
		return Cell{}, false
	}
	return l.Cells[idx], true
}

// Set writes a cell; writes outside the layer are ignored.
func (l *Layer) Set(x, y int, c Cell) {
	if idx, ok := l.index(x, y); ok {
		l.Cells[idx] = c
	}
}

// Fit returns a width x height copy of the layer, cropping or padding with
// transparent cells. Non-positive dimensions return the layer unchanged.
func (l *Layer) Fit(width, height int) *Layer {
	if width <= 0 || height <= 0 || (width == l.Width && height == l.Height) {
		return l
	}
	out := NewLayer(width, height)
	for x := 0; x < width && x < l.Width; x++ {
		for y := 0; y < height && y < l.Height; y++ {
			c, _ := l.Get(x, y)
			out.Set(x, y, c)
		}
	}
	return out
}

// File is an ordered stack of layers; layer 0 is the bottom of the stack in
// REX Paint.
type File struct {
	Version int32
	Layers  []*Layer
}

// NewFile returns an empty file.
func NewFile() *File {
	return &File{Version: Version}
}

// AddLayer appends a layer and returns it.
func (f *File) AddLayer(l *Layer) *Layer {
	f.Layers = append(f.Layers, l)
	return l
}

// CellSetter is the write surface a layer is rendered onto.
type CellSetter interface {
	Set(x, y int, fg, bg palette.RGB, glyph rune)
}

// ApplyLayer renders a layer onto dst with its top-left corner at (x, y),
// skipping transparent cells so whatever dst already holds shows through.
func ApplyLayer(l *Layer, dst CellSetter, x, y int) {
	for cx := 0; cx < l.Width; cx++ {
		for cy := 0; cy < l.Height; cy++ {
			c := l.Cells[cx*l.Height+cy]
			if c.IsTransparent() {
				continue
			}
			dst.Set(x+cx, y+cy, c.Fg, c.Bg, FromCP437(c.Glyph))
		}
	}
}

// ApplyFile renders every layer of f bottom-up onto dst.
func ApplyFile(f *File, dst CellSetter, x, y int) {
	for _, l := range f.Layers {
		ApplyLayer(l, dst, x, y)
	}
}
