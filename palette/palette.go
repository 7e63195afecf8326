// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: palette/palette.go
// Summary: RGB colors shared by consoles, the REX codec and the tcell backend.

// Package palette defines the 24-bit colors stored in console cells together
// with a registry of named colors used by inline `#[name]` markup.
package palette

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelcon/internal/syncutil"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Grey    = RGB{128, 128, 128}
	Red     = RGB{255, 0, 0}
	Green   = RGB{0, 255, 0}
	Blue    = RGB{0, 0, 255}
	Yellow  = RGB{255, 255, 0}
	Cyan    = RGB{0, 255, 255}
	Magenta = RGB{255, 0, 255}
)

// New builds a color from its channels.
func New(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Tcell converts the color to a true-color tcell.Color.
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FromTcell converts any tcell color (named, palette or RGB) to RGB. Colors
// tcell cannot resolve (ColorDefault, ColorReset) become black.
func FromTcell(c tcell.Color) RGB {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return Black
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Lerp interpolates between a and b; t is clamped to [0, 1].
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return RGB{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

// Scale multiplies every channel by f, saturating at 0 and 255.
func Scale(c RGB, f float64) RGB {
	ch := func(v uint8) uint8 {
		s := float64(v) * f
		switch {
		case s <= 0:
			return 0
		case s >= 255:
			return 255
		}
		return uint8(s)
	}
	return RGB{R: ch(c.R), G: ch(c.G), B: ch(c.B)}
}

var (
	namedMu syncutil.RWMutex
	named   = map[string]RGB{}
)

// Register adds or replaces a named color. Names are case-insensitive.
func Register(name string, c RGB) {
	namedMu.Lock()
	defer namedMu.Unlock()
	named[strings.ToLower(name)] = c
}

// Named resolves a color name: registered names first, then tcell's W3C
// color names and "#rrggbb" literals.
func Named(name string) (RGB, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return RGB{}, false
	}
	namedMu.RLock()
	c, ok := named[key]
	namedMu.RUnlock()
	if ok {
		return c, true
	}
	tc := tcell.GetColor(key)
	if tc == tcell.ColorDefault {
		return RGB{}, false
	}
	return FromTcell(tc), true
}
