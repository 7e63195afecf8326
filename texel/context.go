// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/context.go
// Summary: Render context: window metrics, per-frame input snapshot and the active console index.
// Usage: Created by InitRaw or Builder.Build and handed to GameState.Tick every frame.
// Notes: The Context stores no cells. Drawing calls are forwarded to the
// registry console at ActiveConsole (see facade.go).

package texel

import (
	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/input"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Context is the facade an application draws through. Exactly one Context
// drives a loop; Clone makes detached copies for inspection.
type Context struct {
	Title string

	WidthPixels  int
	HeightPixels int
	FPS          float32
	FrameTimeMs  float32
	// FPSCap limits the frame rate when positive.
	FPSCap float32

	ActiveConsole ConsoleID

	// Per-frame input snapshot. Key is overwritten by every key event;
	// LeftClick is set by button 0 and cleared by the application.
	Key       input.Key
	MousePos  console.Point
	LeftClick bool
	Shift     bool
	Control   bool
	Alt       bool

	Quitting       bool
	PostScanlines  bool
	PostScreenburn bool

	registry *BackendState
	input    *input.State
	events   *EventDispatcher
	backend  Backend
	clock    clockwork.Clock
}

// Registry returns the console registry the context forwards to.
func (c *Context) Registry() *BackendState { return c.registry }

// Input returns the process input state fed by the translator.
func (c *Context) Input() *input.State { return c.input }

// Events returns the attached dispatcher, or nil.
func (c *Context) Events() *EventDispatcher { return c.events }

// Backend returns the presentation backend driving the loop, or nil.
func (c *Context) Backend() Backend { return c.backend }

// Clock returns the clock used for frame timing.
func (c *Context) Clock() clockwork.Clock { return c.clock }

// Clone returns a value copy sharing the same registry and input state.
func (c *Context) Clone() Context { return *c }

func (c *Context) broadcast(t EventType, payload interface{}) {
	if c.events != nil {
		c.events.Broadcast(Event{Type: t, Payload: payload})
	}
}

// RegisterFont registers a font on the context's registry.
func (c *Context) RegisterFont(f Font) FontID {
	id := c.registry.RegisterFont(f)
	c.broadcast(EventFontRegistered, FontPayload{ID: id, Font: f})
	return id
}

// RegisterConsole registers a console drawn with backgrounds.
func (c *Context) RegisterConsole(con console.Console, font FontID) ConsoleID {
	id := c.registry.RegisterConsole(con, font)
	c.broadcast(EventConsoleRegistered, ConsolePayload{ID: id, Kind: con.Kind()})
	return id
}

// RegisterConsoleNoBg registers an overlay console drawn without backgrounds.
func (c *Context) RegisterConsoleNoBg(con console.Console, font FontID) ConsoleID {
	id := c.registry.RegisterConsoleNoBg(con, font)
	c.broadcast(EventConsoleRegistered, ConsolePayload{ID: id, Kind: con.Kind(), Transparent: true})
	return id
}

// RegisterShader registers a presentation shader on the context's registry.
func (c *Context) RegisterShader(s Shader) ShaderID {
	return c.registry.RegisterShader(s)
}

// RegisterConsoleWithShader registers a console presented with shader.
func (c *Context) RegisterConsoleWithShader(con console.Console, font FontID, shader ShaderID) ConsoleID {
	id := c.registry.RegisterConsoleWithShader(con, font, shader)
	transparent := !c.registry.Shader(shader).Background
	c.broadcast(EventConsoleRegistered, ConsolePayload{ID: id, Kind: con.Kind(), Transparent: transparent})
	return id
}

// SetActiveConsole retargets drawing. The index is not validated here; an
// invalid one panics on the next forwarded call.
func (c *Context) SetActiveConsole(id ConsoleID) {
	c.ActiveConsole = id
	c.broadcast(EventActiveConsoleChanged, ConsolePayload{ID: id})
}

// Quit asks the loop to stop after the current frame.
func (c *Context) Quit() {
	if c.Quitting {
		return
	}
	c.Quitting = true
	log.Debug().Msg("quit requested")
	c.broadcast(EventQuit, nil)
}

// WithPostScanlines enables the scanline post effect, optionally with screen burn.
func (c *Context) WithPostScanlines(burn bool) {
	c.PostScanlines = true
	c.PostScreenburn = burn
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// tileFor maps a pixel position to a tile of a cols x rows console filling a
// widthPx x heightPx window.
func tileFor(px, py, cols, rows, widthPx, heightPx int) console.Point {
	return console.Point{X: tileAxis(px, cols, widthPx), Y: tileAxis(py, rows, heightPx)}
}

// tileAxis computes clamp(p*cells/max(1, pixels), 0, cells-1) in int64 so
// saturated pixel positions cannot overflow the product.
func tileAxis(p, cells, pixels int) int {
	v := int64(p) * int64(cells) / int64(max(1, pixels))
	v = max(0, min(v, int64(cells)-1))
	return int(v)
}

// MouseTilePosition returns the mouse position in the active console's tiles.
func (c *Context) MouseTilePosition() (int, int) {
	p := c.MousePoint()
	return p.X, p.Y
}

// MousePoint is MouseTilePosition as a Point.
func (c *Context) MousePoint() console.Point {
	var p console.Point
	c.registry.WithConsole(c.ActiveConsole, func(d *DisplayConsole) {
		cols, rows := d.Console.CharSize()
		p = tileFor(c.MousePos.X, c.MousePos.Y, cols, rows, c.WidthPixels, c.HeightPixels)
	})
	return p
}

// ResizePixels records new window dimensions and passes them to every
// console under one registry lock. All consoles have observed the size when
// it returns.
func (c *Context) ResizePixels(width, height int) {
	c.WidthPixels, c.HeightPixels = width, height
	n := 0
	c.registry.EachConsole(func(_ ConsoleID, d *DisplayConsole) {
		d.Console.ResizePixels(width, height)
		n++
	})
	log.Debug().Int("width", width).Int("height", height).Int("consoles", n).Msg("resized")
	c.broadcast(EventResized, ResizePayload{WidthPixels: width, HeightPixels: height})
}

// PixelSize returns the window size in pixels.
func (c *Context) PixelSize() (int, int) {
	return c.WidthPixels, c.HeightPixels
}
