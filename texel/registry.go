// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/registry.go
// Summary: Append-only table of fonts, shaders and display consoles.
// Usage: Shared by the Context facade, the input translator and backends.
// Notes: One non-reentrant mutex guards the whole table. Callbacks passed to
// WithConsole/EachConsole run under it and must not call back into the
// registry.

package texel

import (
	"fmt"

	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/internal/syncutil"
	"github.com/rs/zerolog/log"
)

// DisplayConsole is one registered console with the font and shader used to
// present it.
type DisplayConsole struct {
	Console     console.Console
	FontIndex   FontID
	ShaderIndex ShaderID
}

// Transparent reports whether the console uses the built-in no-background
// shader. Backends compositing custom shaders read Shader(ShaderIndex).
func (d *DisplayConsole) Transparent() bool {
	return d.ShaderIndex == ShaderNoBackground
}

// BackendState is the registry of fonts, shaders and consoles. Indices handed
// out are stable for its lifetime; nothing is ever removed.
type BackendState struct {
	mu       syncutil.Mutex
	fonts    []Font
	shaders  []Shader
	consoles []DisplayConsole
}

// NewBackendState returns a registry holding the two default shaders.
func NewBackendState() *BackendState {
	return &BackendState{shaders: defaultShaders()}
}

// RegisterFont appends a font and returns its index.
func (b *BackendState) RegisterFont(f Font) FontID {
	b.mu.Lock()
	b.fonts = append(b.fonts, f)
	id := FontID(len(b.fonts) - 1)
	b.mu.Unlock()
	log.Debug().Int("font", int(id)).Str("path", f.Path).Msg("font registered")
	return id
}

// RegisterShader appends a shader and returns its index.
func (b *BackendState) RegisterShader(s Shader) ShaderID {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shaders = append(b.shaders, s)
	return ShaderID(len(b.shaders) - 1)
}

// RegisterConsole adds a console drawn with backgrounds.
func (b *BackendState) RegisterConsole(c console.Console, font FontID) ConsoleID {
	return b.register(c, font, ShaderBackground)
}

// RegisterConsoleNoBg adds an overlay console drawn without backgrounds.
func (b *BackendState) RegisterConsoleNoBg(c console.Console, font FontID) ConsoleID {
	return b.register(c, font, ShaderNoBackground)
}

// RegisterConsoleWithShader adds a console presented with any registered
// shader. An unknown shader index panics.
func (b *BackendState) RegisterConsoleWithShader(c console.Console, font FontID, shader ShaderID) ConsoleID {
	return b.register(c, font, shader)
}

func (b *BackendState) register(c console.Console, font FontID, shader ShaderID) ConsoleID {
	b.mu.Lock()
	if int(font) < 0 || int(font) >= len(b.fonts) {
		n := len(b.fonts)
		b.mu.Unlock()
		panic(fmt.Sprintf("texel: font index %d out of range (%d registered)", font, n))
	}
	if int(shader) < 0 || int(shader) >= len(b.shaders) {
		n := len(b.shaders)
		b.mu.Unlock()
		panic(fmt.Sprintf("texel: shader index %d out of range (%d registered)", shader, n))
	}
	b.consoles = append(b.consoles, DisplayConsole{Console: c, FontIndex: font, ShaderIndex: shader})
	id := ConsoleID(len(b.consoles) - 1)
	b.mu.Unlock()

	w, h := c.CharSize()
	log.Debug().Int("console", int(id)).Str("kind", string(c.Kind())).
		Int("cols", w).Int("rows", h).Int("shader", int(shader)).Msg("console registered")
	return id
}

// WithConsole runs fn on console id under the registry lock. An unknown id
// panics.
func (b *BackendState) WithConsole(id ConsoleID, fn func(d *DisplayConsole)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if int(id) < 0 || int(id) >= len(b.consoles) {
		panic(fmt.Sprintf("texel: console index %d out of range (%d registered)", id, len(b.consoles)))
	}
	fn(&b.consoles[id])
}

// EachConsole runs fn on every console in registration order under a single
// lock acquisition.
func (b *BackendState) EachConsole(fn func(id ConsoleID, d *DisplayConsole)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.consoles {
		fn(ConsoleID(i), &b.consoles[i])
	}
}

func (b *BackendState) ConsoleCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.consoles)
}

func (b *BackendState) FontCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.fonts)
}

// Shaders returns a copy of the shader table, indexed by ShaderID.
func (b *BackendState) Shaders() []Shader {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Shader(nil), b.shaders...)
}

// Font returns font id. An unknown id panics.
func (b *BackendState) Font(id FontID) Font {
	b.mu.Lock()
	defer b.mu.Unlock()
	if int(id) < 0 || int(id) >= len(b.fonts) {
		panic(fmt.Sprintf("texel: font index %d out of range (%d registered)", id, len(b.fonts)))
	}
	return b.fonts[id]
}

// Shader returns shader id. An unknown id panics.
func (b *BackendState) Shader(id ShaderID) Shader {
	b.mu.Lock()
	defer b.mu.Unlock()
	if int(id) < 0 || int(id) >= len(b.shaders) {
		panic(fmt.Sprintf("texel: shader index %d out of range (%d registered)", id, len(b.shaders)))
	}
	return b.shaders[id]
}

// ConsoleAs returns console id as T when the stored console has that
// concrete type. The value escapes the registry lock; draw through the
// Context while backend callbacks may run.
func ConsoleAs[T console.Console](b *BackendState, id ConsoleID) (T, bool) {
	var (
		out T
		ok  bool
	)
	b.WithConsole(id, func(d *DisplayConsole) {
		out, ok = d.Console.(T)
	})
	return out, ok
}
