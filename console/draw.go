// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/draw.go
// Summary: Box, bar, fill and text algorithms shared by every Surface.
// Notes: Both console implementations forward their Printer/Drawer methods
// here so the glyph choices and clipping rules stay identical.

package console

import (
	"github.com/framegrace/texelcon/palette"
	"github.com/mattn/go-runewidth"
)

type boxGlyphs struct {
	tl, tr, bl, br, h, v rune
}

var (
	singleBox = boxGlyphs{'┌', '┐', '└', '┘', '─', '│'}
	doubleBox = boxGlyphs{'╔', '╗', '╚', '╝', '═', '║'}
)

const (
	barFull  = '▓'
	barEmpty = '░'
)

// TextWidth returns the number of cells text occupies.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

func drawBox(s Surface, x, y, width, height int, fg, bg palette.RGB, g boxGlyphs, fill bool) {
	if fill {
		for py := y; py <= y+height; py++ {
			for px := x; px <= x+width; px++ {
				s.Set(px, py, fg, bg, ' ')
			}
		}
	}
	s.Set(x, y, fg, bg, g.tl)
	s.Set(x+width, y, fg, bg, g.tr)
	s.Set(x, y+height, fg, bg, g.bl)
	s.Set(x+width, y+height, fg, bg, g.br)
	for px := x + 1; px < x+width; px++ {
		s.Set(px, y, fg, bg, g.h)
		s.Set(px, y+height, fg, bg, g.h)
	}
	for py := y + 1; py < y+height; py++ {
		s.Set(x, py, fg, bg, g.v)
		s.Set(x+width, py, fg, bg, g.v)
	}
}

// DrawBox draws a single-line box whose corners are (x, y) and
// (x+width, y+height), clearing the interior.
func DrawBox(s Surface, x, y, width, height int, fg, bg palette.RGB) {
	drawBox(s, x, y, width, height, fg, bg, singleBox, true)
}

// DrawBoxDouble is DrawBox with double-line glyphs.
func DrawBoxDouble(s Surface, x, y, width, height int, fg, bg palette.RGB) {
	drawBox(s, x, y, width, height, fg, bg, doubleBox, true)
}

// DrawHollowBox draws only the outline of a single-line box.
func DrawHollowBox(s Surface, x, y, width, height int, fg, bg palette.RGB) {
	drawBox(s, x, y, width, height, fg, bg, singleBox, false)
}

// DrawHollowBoxDouble draws only the outline of a double-line box.
func DrawHollowBoxDouble(s Surface, x, y, width, height int, fg, bg palette.RGB) {
	drawBox(s, x, y, width, height, fg, bg, doubleBox, false)
}

func barFill(length, n, max int) int {
	if max <= 0 || n <= 0 {
		return 0
	}
	if n >= max {
		return length
	}
	return length * n / max
}

// DrawBarHorizontal draws a width-cell progress bar filled left to right in
// proportion n/max.
func DrawBarHorizontal(s Surface, x, y, width, n, max int, fg, bg palette.RGB) {
	filled := barFill(width, n, max)
	for i := 0; i < width; i++ {
		glyph := rune(barEmpty)
		if i < filled {
			glyph = barFull
		}
		s.Set(x+i, y, fg, bg, glyph)
	}
}

// DrawBarVertical draws a height-cell progress bar filled bottom to top.
func DrawBarVertical(s Surface, x, y, height, n, max int, fg, bg palette.RGB) {
	filled := barFill(height, n, max)
	for i := 0; i < height; i++ {
		glyph := rune(barEmpty)
		if i >= height-filled {
			glyph = barFull
		}
		s.Set(x, y+i, fg, bg, glyph)
	}
}

// FillRegion sets every cell in target.
func FillRegion(s Surface, target Rect, glyph rune, fg, bg palette.RGB) {
	for py := target.Y; py < target.Y+target.H; py++ {
		for px := target.X; px < target.X+target.W; px++ {
			s.Set(px, py, fg, bg, glyph)
		}
	}
}

// each walks text cell by cell, skipping zero-width runes.
func each(x int, text string, fn func(x int, r rune)) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		fn(x, r)
		x += w
	}
}

// Print writes glyphs only, keeping the colors already in each cell.
func Print(s Surface, x, y int, text string) {
	each(x, text, func(px int, r rune) { s.SetGlyph(px, y, r) })
}

// PrintColor writes glyphs with explicit colors.
func PrintColor(s Surface, x, y int, fg, bg palette.RGB, text string) {
	each(x, text, func(px int, r rune) { s.Set(px, y, fg, bg, r) })
}

func centeredX(s Surface, text string) int {
	w, _ := s.CharSize()
	return w/2 - TextWidth(text)/2
}

// PrintCentered centers text horizontally on row y.
func PrintCentered(s Surface, y int, text string) {
	Print(s, centeredX(s, text), y, text)
}

// PrintColorCentered centers colored text horizontally on row y.
func PrintColorCentered(s Surface, y int, fg, bg palette.RGB, text string) {
	PrintColor(s, centeredX(s, text), y, fg, bg, text)
}

// PrintCenteredAt centers text on column x.
func PrintCenteredAt(s Surface, x, y int, text string) {
	Print(s, x-TextWidth(text)/2, y, text)
}

// PrintColorCenteredAt centers colored text on column x.
func PrintColorCenteredAt(s Surface, x, y int, fg, bg palette.RGB, text string) {
	PrintColor(s, x-TextWidth(text)/2, y, fg, bg, text)
}

// PrintRight ends text just before column x.
func PrintRight(s Surface, x, y int, text string) {
	Print(s, x-TextWidth(text), y, text)
}

// PrintColorRight ends colored text just before column x.
func PrintColorRight(s Surface, x, y int, fg, bg palette.RGB, text string) {
	PrintColor(s, x-TextWidth(text), y, fg, bg, text)
}

// PrintMarkup renders inline color markup aligned on x.
func PrintMarkup(s Surface, x, y int, markup string, align TextAlign, bg *palette.RGB) {
	spans := ParseMarkup(markup)
	length := 0
	for _, sp := range spans {
		length += TextWidth(sp.Text)
	}
	switch align {
	case AlignCenter:
		x -= length / 2
	case AlignRight:
		x -= length
	}
	for _, sp := range spans {
		each(x, sp.Text, func(px int, r rune) {
			back := DefaultBg
			if bg != nil {
				back = *bg
			} else if cur, ok := s.Get(px, y); ok && !cur.Empty() {
				back = cur.Bg
			}
			s.Set(px, y, sp.Fg, back, r)
		})
		x += TextWidth(sp.Text)
	}
}
