// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: script/bindings.go
// Summary: Lua globals forwarding to the active console of the running context.

package script

import (
	"strings"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/input"
	"github.com/framegrace/texelcon/palette"
	"github.com/framegrace/texelcon/texel"
)

func (g *LuaGame) install() {
	fns := map[string]func(*texel.Context, *lua.LState) int{
		"cls":         luaCls,
		"print":       luaPrint,
		"print_color": luaPrintColor,
		"set":         luaSet,
		"set_active":  luaSetActive,
		"draw_box":    luaDrawBox,
		"bar":         luaBar,
		"printer":     luaPrinter,
		"size":        luaSize,
		"mouse_tile":  luaMouseTile,
		"key":         luaKey,
		"key_down":    luaKeyDown,
		"left_click":  luaLeftClick,
		"fps":         luaFPS,
		"quit":        luaQuit,
	}
	for name, fn := range fns {
		g.L.SetGlobal(name, g.L.NewFunction(func(L *lua.LState) int {
			if g.ctx == nil {
				L.RaiseError("%s called outside tick", name)
				return 0
			}
			return fn(g.ctx, L)
		}))
	}
}

// color accepts a palette name or "#rrggbb". Unknown names fall back to def.
func color(L *lua.LState, n int, def palette.RGB) palette.RGB {
	name := L.OptString(n, "")
	if name == "" {
		return def
	}
	if c, ok := palette.Named(name); ok {
		return c
	}
	return def
}

// glyph accepts a one character string or a code point.
func glyph(L *lua.LState, n int) rune {
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		return rune(v)
	case lua.LString:
		r, _ := utf8.DecodeRuneInString(string(v))
		if r == utf8.RuneError {
			return ' '
		}
		return r
	}
	return ' '
}

func luaCls(ctx *texel.Context, L *lua.LState) int {
	if L.GetTop() > 0 {
		ctx.ClsBg(color(L, 1, console.DefaultBg))
		return 0
	}
	ctx.Cls()
	return 0
}

func luaPrint(ctx *texel.Context, L *lua.LState) int {
	ctx.Print(L.CheckInt(1), L.CheckInt(2), L.CheckString(3))
	return 0
}

func luaPrintColor(ctx *texel.Context, L *lua.LState) int {
	fg := color(L, 3, console.DefaultFg)
	bg := color(L, 4, console.DefaultBg)
	ctx.PrintColor(L.CheckInt(1), L.CheckInt(2), fg, bg, L.CheckString(5))
	return 0
}

func luaSet(ctx *texel.Context, L *lua.LState) int {
	fg := color(L, 3, console.DefaultFg)
	bg := color(L, 4, console.DefaultBg)
	ctx.Set(L.CheckInt(1), L.CheckInt(2), fg, bg, glyph(L, 5))
	return 0
}

func luaSetActive(ctx *texel.Context, L *lua.LState) int {
	id := L.CheckInt(1)
	if id < 0 || id >= ctx.Registry().ConsoleCount() {
		L.ArgError(1, "console index out of range")
		return 0
	}
	ctx.SetActiveConsole(texel.ConsoleID(id))
	return 0
}

// draw_box(x, y, w, h, fg, bg, style) where style is "single" (default),
// "double", "hollow" or "hollow_double".
func luaDrawBox(ctx *texel.Context, L *lua.LState) int {
	x, y, w, h := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4)
	fg := color(L, 5, console.DefaultFg)
	bg := color(L, 6, console.DefaultBg)
	switch L.OptString(7, "single") {
	case "double":
		ctx.DrawBoxDouble(x, y, w, h, fg, bg)
	case "hollow":
		ctx.DrawHollowBox(x, y, w, h, fg, bg)
	case "hollow_double":
		ctx.DrawHollowBoxDouble(x, y, w, h, fg, bg)
	default:
		ctx.DrawBox(x, y, w, h, fg, bg)
	}
	return 0
}

// bar(x, y, length, n, max, fg, bg, vertical)
func luaBar(ctx *texel.Context, L *lua.LState) int {
	x, y, length := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)
	n, limit := L.CheckInt(4), L.CheckInt(5)
	fg := color(L, 6, console.DefaultFg)
	bg := color(L, 7, console.DefaultBg)
	if L.OptBool(8, false) {
		ctx.DrawBarVertical(x, y, length, n, limit, fg, bg)
	} else {
		ctx.DrawBarHorizontal(x, y, length, n, limit, fg, bg)
	}
	return 0
}

// printer(x, y, markup, align, bg) with align "left", "center" or "right".
func luaPrinter(ctx *texel.Context, L *lua.LState) int {
	align := console.AlignLeft
	switch strings.ToLower(L.OptString(4, "left")) {
	case "center", "centre":
		align = console.AlignCenter
	case "right":
		align = console.AlignRight
	}
	var bg *palette.RGB
	if L.GetTop() >= 5 {
		c := color(L, 5, console.DefaultBg)
		bg = &c
	}
	ctx.Printer(L.CheckInt(1), L.CheckInt(2), L.CheckString(3), align, bg)
	return 0
}

func luaSize(ctx *texel.Context, L *lua.LState) int {
	w, h := ctx.CharSize()
	L.Push(lua.LNumber(w))
	L.Push(lua.LNumber(h))
	return 2
}

// mouse_tile() returns the mouse tile on the active console, or on console
// n when given.
func luaMouseTile(ctx *texel.Context, L *lua.LState) int {
	var p console.Point
	if L.GetTop() > 0 {
		var ok bool
		p, ok = ctx.Input().MouseTilePos(L.CheckInt(1))
		if !ok {
			L.Push(lua.LNil)
			L.Push(lua.LNil)
			return 2
		}
	} else {
		p = ctx.MousePoint()
	}
	L.Push(lua.LNumber(p.X))
	L.Push(lua.LNumber(p.Y))
	return 2
}

// key() returns the name of this frame's key, or nil.
func luaKey(ctx *texel.Context, L *lua.LState) int {
	if ctx.Key == input.KeyNone {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(ctx.Key.String()))
	return 1
}

func luaKeyDown(ctx *texel.Context, L *lua.LState) int {
	k, ok := input.ParseKey(L.CheckString(1))
	L.Push(lua.LBool(ok && ctx.Input().IsKeyPressed(k)))
	return 1
}

func luaLeftClick(ctx *texel.Context, L *lua.LState) int {
	L.Push(lua.LBool(ctx.LeftClick))
	return 1
}

func luaFPS(ctx *texel.Context, L *lua.LState) int {
	L.Push(lua.LNumber(ctx.FPS))
	return 1
}

func luaQuit(ctx *texel.Context, L *lua.LState) int {
	ctx.Quit()
	return 0
}
