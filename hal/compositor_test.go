// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hal/compositor_test.go
// Summary: Exercises console stacking, transparency, pan, zoom and scanlines.
// Usage: Executed during `go test` to guard against regressions.

package hal

import (
	"testing"

	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/palette"
	"github.com/framegrace/texelcon/texel"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glyphRow(frame [][]console.Cell, y int) string {
	out := make([]rune, len(frame[y]))
	for x, c := range frame[y] {
		out[x] = c.Glyph
	}
	return string(out)
}

func TestComposeStacksConsolesInOrder(t *testing.T) {
	ctx, font := newTestContext(t, nil)
	base := console.NewSimpleConsole(6, 2)
	base.ClsBg(palette.Blue)
	base.Print(0, 0, "abcdef")
	overlay := console.NewSparseConsole(6, 2)
	overlay.PrintColor(2, 0, palette.Red, palette.Green, "X Y")
	ctx.RegisterConsole(base, font)
	ctx.RegisterConsoleNoBg(overlay, font)

	c := Compositor{TileWidth: 8, TileHeight: 8}
	frame := c.Compose(ctx, 6, 2)
	require.Len(t, frame, 2)
	assert.Equal(t, "abXdYf", glyphRow(frame, 0), "overlay spaces let the base through")
	assert.Equal(t, palette.Red, frame[0][2].Fg)
	assert.Equal(t, palette.Blue, frame[0][2].Bg, "no-bg shader keeps the underlying background")
	assert.Equal(t, "      ", glyphRow(frame, 1))
}

func TestComposeOpaqueConsoleHidesBelow(t *testing.T) {
	ctx, font := newTestContext(t, nil)
	bottom := console.NewSimpleConsole(3, 1)
	bottom.Print(0, 0, "abc")
	top := console.NewSparseConsole(3, 1)
	top.Set(1, 0, palette.White, palette.Red, 'Z')
	ctx.RegisterConsole(bottom, font)
	ctx.RegisterConsole(top, font)

	frame := (&Compositor{TileWidth: 8, TileHeight: 8}).Compose(ctx, 3, 1)
	assert.Equal(t, " Z ", glyphRow(frame, 0), "glyph 0 on the bg shader paints a space")
	assert.Equal(t, palette.Red, frame[0][1].Bg)
	assert.Equal(t, palette.Black, frame[0][0].Bg)
}

func TestComposeStretchesConsoleOverWindow(t *testing.T) {
	ctx, _ := newTestContext(t, nil)
	big := ctx.RegisterFont(texel.NewFont("big.png", 16, 16))
	c := console.NewSimpleConsole(2, 1)
	c.Print(0, 0, "ab")
	ctx.RegisterConsole(c, big)

	frame := (&Compositor{TileWidth: 8, TileHeight: 8}).Compose(ctx, 5, 3)
	for y := 0; y < 3; y++ {
		assert.Equal(t, "aabbb", glyphRow(frame, y), "row %d", y)
	}
}

func TestComposeDrawsMouseTileUnderCursor(t *testing.T) {
	drv := newStubDriver(40, 20)
	b := NewBackend(drv, WithTileSize(8, 8))
	ctx, font := newTestContext(t, b)
	ctx.RegisterConsole(console.NewSimpleConsole(20, 10), font)
	ctx.RegisterConsoleNoBg(console.NewSparseConsole(13, 7), font)
	ctx.ResizePixels(320, 160)

	comp := &Compositor{TileWidth: 8, TileHeight: 8}
	for _, id := range []texel.ConsoleID{0, 1} {
		ctx.SetActiveConsole(id)
		for row := 0; row < 20; row++ {
			for col := 0; col < 40; col++ {
				for _, other := range []texel.ConsoleID{0, 1} {
					ctx.SetActiveConsole(other)
					ctx.Cls()
				}
				ctx.SetActiveConsole(id)
				b.handle(ctx, tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone))
				p := ctx.MousePoint()
				ctx.Set(p.X, p.Y, palette.White, palette.Black, '@')

				frame := comp.Compose(ctx, 40, 20)
				if frame[row][col].Glyph != '@' {
					t.Fatalf("console %d: mouse at screen (%d,%d) maps to tile %v, but it is not drawn there", id, col, row, p)
				}
			}
		}
	}
}

func TestComposeHonoursCustomShader(t *testing.T) {
	ctx, font := newTestContext(t, nil)
	base := console.NewSimpleConsole(3, 1)
	base.ClsBg(palette.Blue)
	ctx.RegisterConsole(base, font)

	overlayShader := ctx.RegisterShader(texel.Shader{Name: "glyphs_only", Background: false})
	top := console.NewSimpleConsole(3, 1)
	top.Print(0, 0, "a c")
	ctx.RegisterConsoleWithShader(top, font, overlayShader)

	frame := (&Compositor{TileWidth: 8, TileHeight: 8}).Compose(ctx, 3, 1)
	assert.Equal(t, "a c", glyphRow(frame, 0))
	assert.Equal(t, palette.Blue, frame[0][1].Bg, "a shader without background keeps what is below")
	assert.Equal(t, palette.Blue, frame[0][0].Bg)
}

func TestComposeOffsetAndScale(t *testing.T) {
	ctx, font := newTestContext(t, nil)
	c := console.NewSimpleConsole(4, 1)
	c.Print(0, 0, "abcd")
	ctx.RegisterConsole(c, font)

	c.SetOffset(1, 0)
	frame := (&Compositor{TileWidth: 8, TileHeight: 8}).Compose(ctx, 4, 1)
	assert.Equal(t, " abc", glyphRow(frame, 0))

	c.SetOffset(0, 0)
	c.SetScale(2, 0, 0)
	frame = (&Compositor{TileWidth: 8, TileHeight: 8}).Compose(ctx, 4, 1)
	assert.Equal(t, "abbc", glyphRow(frame, 0), "zoom is about the center of tile 0")
}

func TestComposeScanlines(t *testing.T) {
	ctx, font := newTestContext(t, nil)
	c := console.NewSimpleConsole(1, 2)
	c.ClsBg(palette.New(200, 100, 0))
	ctx.RegisterConsole(c, font)

	comp := &Compositor{TileWidth: 8, TileHeight: 8}
	ctx.WithPostScanlines(false)
	frame := comp.Compose(ctx, 1, 2)
	assert.Equal(t, palette.New(200, 100, 0), frame[0][0].Bg)
	assert.Equal(t, palette.New(140, 70, 0), frame[1][0].Bg)

	ctx.WithPostScanlines(true)
	frame = comp.Compose(ctx, 1, 2)
	assert.Equal(t, palette.New(170, 85, 0), frame[1][0].Bg)
}

func TestInMemoryFrameStore(t *testing.T) {
	store := NewInMemoryFrameStore()
	if store.Snapshot() != nil {
		t.Fatalf("expected empty snapshot")
	}

	store.Save([][]console.Cell{{{Glyph: 'a'}}})
	if store.Snapshot() == nil {
		t.Fatalf("expected snapshot after save")
	}

	store.Clear()
	if store.Snapshot() != nil {
		t.Fatalf("expected snapshot to clear")
	}
	if store.Frames() != 1 {
		t.Fatalf("expected one saved frame, got %d", store.Frames())
	}
}
