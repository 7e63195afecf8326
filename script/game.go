// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: script/game.go
// Summary: Lua-scripted GameState driving a texel.Context.
// Usage: cmd/texelcon run <script.lua> loads a script and hands it to
// texel.MainLoop.
// Notes: gopher-lua states are single threaded; LuaGame is only ever called
// from the loop goroutine.

// Package script runs Lua scripts as texel game states. A script defines a
// global tick() called once per frame, and optionally init() called before
// the first frame. Drawing and input helpers are installed as globals.
package script

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"

	"github.com/framegrace/texelcon/texel"
)

var (
	ErrNoTick = errors.New("script: tick() not defined")
	ErrClosed = errors.New("script: game closed")
)

// LuaGame implements texel.GameState.
type LuaGame struct {
	L    *lua.LState
	name string

	ctx     *texel.Context
	started bool
	closed  bool
	err     error
}

// Load reads path from fsys and compiles it.
func Load(fsys afero.Fs, path string) (*LuaGame, error) {
	src, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	return New(path, string(src))
}

// New runs src once to define its globals. name labels errors and logs.
func New(name, src string) (*LuaGame, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	g := &LuaGame{L: L, name: name}
	g.install()

	if err := g.protect(func() error { return L.DoString(src) }); err != nil {
		L.Close()
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	if L.GetGlobal("tick").Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("%w: %s", ErrNoTick, name)
	}
	log.Debug().Str("script", name).Msg("script: loaded")
	return g, nil
}

func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func (g *LuaGame) protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

func (g *LuaGame) call(fn string) error {
	v := g.L.GetGlobal(fn)
	if v.Type() != lua.LTFunction {
		return nil
	}
	return g.protect(func() error {
		return g.L.CallByParam(lua.P{Fn: v, NRet: 0, Protect: true})
	})
}

// Tick runs init() on the first frame and tick() on every frame. A script
// error is logged, recorded in Err and stops the loop.
func (g *LuaGame) Tick(ctx *texel.Context) {
	if g.closed || g.err != nil {
		ctx.Quit()
		return
	}
	g.ctx = ctx
	defer func() { g.ctx = nil }()

	if !g.started {
		g.started = true
		if err := g.call("init"); err != nil {
			g.fail(ctx, "init", err)
			return
		}
	}
	if err := g.call("tick"); err != nil {
		g.fail(ctx, "tick", err)
	}
}

func (g *LuaGame) fail(ctx *texel.Context, fn string, err error) {
	g.err = fmt.Errorf("script: %s %s: %w", g.name, fn, err)
	log.Error().Err(err).Str("script", g.name).Str("func", fn).Msg("script: error")
	ctx.Quit()
}

// Err returns the error that stopped the script, if any.
func (g *LuaGame) Err() error {
	if g.err == nil && g.closed {
		return ErrClosed
	}
	return g.err
}

// Close releases the Lua state.
func (g *LuaGame) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.L.Close()
}

var _ texel.GameState = (*LuaGame)(nil)
