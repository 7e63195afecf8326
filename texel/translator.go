// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/translator.go
// Summary: Turns backend key, button and cursor callbacks into context and input-state updates.
// Notes: Locks are always taken registry first, then input.

package texel

import (
	"math"

	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/input"
)

// OnKey records a key edge. Key keeps only the most recent key.
func (c *Context) OnKey(key input.Key, scanCode uint32, pressed bool) {
	c.Key = key
	c.input.Update(func(tx input.Tx) {
		if pressed {
			tx.KeyDown(key, scanCode)
		} else {
			tx.KeyUp(key, scanCode)
		}
		tx.Push(input.KeyboardInput(key, scanCode, pressed))
	})
}

// ReleaseKey records a key-up without touching Key, for backends that
// synthesize releases the platform never reports.
func (c *Context) ReleaseKey(key input.Key, scanCode uint32) {
	c.input.Update(func(tx input.Tx) {
		tx.KeyUp(key, scanCode)
		tx.Push(input.KeyboardInput(key, scanCode, false))
	})
}

// OnMouseButton records a button edge. Any event on button 0 sets LeftClick.
func (c *Context) OnMouseButton(button int, pressed bool) {
	if button == 0 {
		c.LeftClick = true
	}
	c.input.Update(func(tx input.Tx) {
		if pressed {
			tx.ButtonDown(button)
		} else {
			tx.ButtonUp(button)
		}
		tx.Push(input.MouseClick(button, pressed))
	})
}

// OnMousePosition records the pixel position and the matching tile position
// under every registered console, active or not.
func (c *Context) OnMousePosition(x, y float64) {
	c.registry.mu.Lock()
	defer c.registry.mu.Unlock()

	c.MousePos = console.Point{X: saturate(x), Y: saturate(y)}
	c.input.Update(func(tx input.Tx) {
		tx.PixelPosition(x, y)
		for i := range c.registry.consoles {
			cols, rows := c.registry.consoles[i].Console.CharSize()
			tx.TilePosition(i, tileFor(c.MousePos.X, c.MousePos.Y, cols, rows, c.WidthPixels, c.HeightPixels))
		}
		tx.Push(input.CursorMoved(x, y))
	})
}

// saturate converts to the int32 range; NaN becomes 0.
func saturate(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Max(math.MinInt32, math.Min(v, math.MaxInt32)))
}

// OnEvent records any other backend event unchanged.
func (c *Context) OnEvent(ev input.Event) {
	c.input.PushEvent(ev)
}

// SetModifiers updates the modifier snapshot.
func (c *Context) SetModifiers(shift, control, alt bool) {
	c.Shift, c.Control, c.Alt = shift, control, alt
}
