// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/input"
	"github.com/framegrace/texelcon/palette"
	"github.com/framegrace/texelcon/rex"
	"github.com/framegrace/texelcon/snapshot"
	"github.com/framegrace/texelcon/texel"
)

func TestWriteLayers(t *testing.T) {
	f := rex.NewFile()
	l := f.AddLayer(rex.NewLayer(3, 2))
	l.Set(0, 0, rex.Cell{Glyph: 'a', Fg: palette.White, Bg: palette.Black})
	l.Set(2, 1, rex.Cell{Glyph: rex.ToCP437('┌'), Fg: palette.White, Bg: palette.Black})

	var out bytes.Buffer
	require.NoError(t, writeLayers(&out, f))
	assert.Equal(t, "-- layer 0 (3x2)\na\n  ┌\n", out.String())
}

func TestWriteList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeList(&out, []snapshot.Record{{ID: "abc", Title: "demo", Layers: 2, Width: 80, Height: 50}}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "TITLE")
	assert.Contains(t, lines[1], "80x50")
}

func newDemoContext(t *testing.T) *texel.Context {
	t.Helper()
	ctx, err := texel.InitRaw(320, 160, "demo", texel.InitHints{})
	require.NoError(t, err)
	font := ctx.RegisterFont(texel.NewFont("f.png", 8, 8))
	ctx.RegisterConsole(console.NewSimpleConsole(40, 20), font)
	ctx.RegisterConsoleNoBg(console.NewSparseConsole(40, 20), font)
	return ctx
}

func TestHotkeySavesSnapshot(t *testing.T) {
	store, err := snapshot.Open(filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := newDemoContext(t)
	h := &hotkeys{next: &demo{}, store: store}
	h.Tick(ctx)
	assert.Equal(t, 0, h.saved)

	ctx.OnKey(input.KeyF12, 0, true)
	h.Tick(ctx)
	assert.Equal(t, 1, h.saved)

	rec, f, err := store.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "demo", rec.Title)
	assert.Len(t, f.Layers, 2)
}

func TestDemoTick(t *testing.T) {
	ctx := newDemoContext(t)
	d := &demo{}
	ctx.OnMousePosition(80, 40)
	ctx.OnKey(input.KeyC, 'c', true)
	d.Tick(ctx)

	assert.Equal(t, input.KeyC, d.last)
	assert.Equal(t, texel.ConsoleID(0), ctx.ActiveConsole)

	overlay, ok := texel.ConsoleAs[*console.SparseConsole](ctx.Registry(), 1)
	require.True(t, ok)
	cell, ok := overlay.Get(10, 5)
	require.True(t, ok)
	assert.Equal(t, '@', cell.Glyph)

	ctx.OnKey(input.KeyEscape, 0, true)
	d.Tick(ctx)
	assert.True(t, ctx.Quitting)
}
