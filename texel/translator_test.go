// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/translator_test.go
// Summary: Exercises key, button and cursor translation into context and input state.
// Usage: Executed during `go test` to guard against regressions.

package texel

import (
	"math"
	"sync"
	"testing"

	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnKeyUpdatesSnapshotTableAndLog(t *testing.T) {
	ctx, _ := newTestContext(t, 80, 40)
	ctx.OnKey(input.KeyA, 30, true)
	ctx.OnKey(input.KeyA, 30, true)
	ctx.OnKey(input.KeyB, 48, true)

	assert.Equal(t, input.KeyB, ctx.Key, "only the latest key is kept")
	assert.True(t, ctx.Input().IsKeyPressed(input.KeyA))
	assert.True(t, ctx.Input().IsScanCodePressed(48))

	ctx.OnKey(input.KeyA, 30, false)
	assert.False(t, ctx.Input().IsKeyPressed(input.KeyA))

	evs := ctx.Input().Events()
	require.Len(t, evs, 4, "repeated downs are still logged")
	assert.Equal(t, input.KeyboardInput(input.KeyA, 30, true), evs[0])
	assert.Equal(t, input.KeyboardInput(input.KeyA, 30, false), evs[3])
}

func TestOnMouseButtonLeftClickIsOneShot(t *testing.T) {
	ctx, _ := newTestContext(t, 80, 40)
	ctx.OnMouseButton(1, true)
	assert.False(t, ctx.LeftClick)
	assert.True(t, ctx.Input().IsMouseButtonPressed(1))

	ctx.OnMouseButton(0, true)
	assert.True(t, ctx.LeftClick)
	ctx.LeftClick = false
	ctx.OnMouseButton(0, false)
	assert.True(t, ctx.LeftClick)
	assert.False(t, ctx.Input().IsMouseButtonPressed(0))

	evs := ctx.Input().Events()
	require.Len(t, evs, 3)
	assert.Equal(t, input.MouseClick(0, false), evs[2])
}

func TestOnMousePositionFansOutToEveryConsole(t *testing.T) {
	ctx, font := newTestContext(t, 800, 400)
	ctx.RegisterConsole(console.NewSimpleConsole(80, 50), font)
	ctx.RegisterConsoleNoBg(console.NewSparseConsole(40, 20), font)
	ctx.RegisterConsoleNoBg(console.NewSparseConsole(0, 0), font)

	ctx.OnMousePosition(400.7, 200.2)
	assert.Equal(t, console.Point{X: 400, Y: 200}, ctx.MousePos)

	want := map[int]console.Point{0: {X: 40, Y: 25}, 1: {X: 20, Y: 10}, 2: {X: 0, Y: 0}}
	for idx, p := range want {
		got, ok := ctx.Input().MouseTilePos(idx)
		require.True(t, ok, "console %d", idx)
		assert.Equal(t, p, got, "console %d", idx)
	}
	px, py := ctx.Input().MousePixelPos()
	assert.Equal(t, [2]float64{400.7, 200.2}, [2]float64{px, py})

	evs := ctx.Input().Drain()
	require.Len(t, evs, 1)
	assert.Equal(t, input.EventCursorMoved, evs[0].Kind)

	// Identical input twice yields identical tiles.
	ctx.OnMousePosition(400.7, 200.2)
	again, _ := ctx.Input().MouseTilePos(1)
	assert.Equal(t, console.Point{X: 20, Y: 10}, again)
}

func TestOnEventRecordsVerbatim(t *testing.T) {
	ctx, _ := newTestContext(t, 80, 40)
	ctx.OnEvent(input.Focused(false))
	ctx.OnEvent(input.Resized(3, 4))
	assert.Equal(t, []input.Event{input.Focused(false), input.Resized(3, 4)}, ctx.Input().Events())
}

func TestTranslatorAndDrawingUnderContention(t *testing.T) {
	ctx, font := newTestContext(t, 800, 400)
	ctx.RegisterConsole(console.NewSimpleConsole(80, 50), font)
	other := console.NewSparseConsole(10, 10)
	ctx.RegisterConsoleNoBg(other, font)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			ctx.Input().PushEvent(input.Character('x'))
			ctx.Registry().EachConsole(func(_ ConsoleID, d *DisplayConsole) { d.Console.CharSize() })
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			ctx.Print(0, 0, "busy")
		}
	}()
	wg.Wait()
	ctx.OnMousePosition(10, 10)
	assert.Equal(t, 201, ctx.Input().Len())
}

func TestOnMousePositionSaturatesOutOfRangeFloats(t *testing.T) {
	ctx, font := newTestContext(t, 80, 40)
	ctx.RegisterConsole(console.NewSimpleConsole(10, 5), font)

	cases := []struct {
		x, y float64
		pos  console.Point
		tile console.Point
	}{
		{math.NaN(), math.NaN(), console.Point{X: 0, Y: 0}, console.Point{X: 0, Y: 0}},
		{1e300, 1e300, console.Point{X: math.MaxInt32, Y: math.MaxInt32}, console.Point{X: 9, Y: 4}},
		{math.Inf(-1), -1e12, console.Point{X: math.MinInt32, Y: math.MinInt32}, console.Point{X: 0, Y: 0}},
	}
	for _, tc := range cases {
		ctx.OnMousePosition(tc.x, tc.y)
		assert.Equal(t, tc.pos, ctx.MousePos, "input (%v,%v)", tc.x, tc.y)
		assert.Equal(t, tc.tile, ctx.MousePoint(), "input (%v,%v)", tc.x, tc.y)
		tile, ok := ctx.Input().MouseTilePos(0)
		require.True(t, ok)
		assert.Equal(t, tc.tile, tile)
	}
}

func TestReleaseKeyLeavesFrameKey(t *testing.T) {
	ctx, _ := newTestContext(t, 80, 40)
	ctx.OnKey(input.KeyF12, 0, true)
	ctx.Key = input.KeyNone

	ctx.ReleaseKey(input.KeyF12, 0)
	assert.Equal(t, input.KeyNone, ctx.Key)
	assert.False(t, ctx.Input().IsKeyPressed(input.KeyF12))
	evs := ctx.Input().Events()
	require.Len(t, evs, 2)
	assert.Equal(t, input.KeyboardInput(input.KeyF12, 0, false), evs[1])
}
