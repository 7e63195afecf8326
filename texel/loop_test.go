// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/loop_test.go
// Summary: Exercises the frame loop contract with a scripted backend and a fake clock.
// Usage: Executed during `go test` to guard against regressions.

package texel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/input"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type scriptedBackend struct {
	clock      *clockwork.FakeClock
	frameCost  time.Duration
	initErr    error
	pumpErrAt  int
	pumps      int
	presents   int
	initCalled bool
	finiCalled bool
	onPump     func(ctx *Context, frame int)
}

func (b *scriptedBackend) Init(*Context) error {
	b.initCalled = true
	return b.initErr
}

func (b *scriptedBackend) PumpEvents(ctx *Context) error {
	b.pumps++
	if b.pumpErrAt > 0 && b.pumps == b.pumpErrAt {
		return errors.New("pump failed")
	}
	if b.onPump != nil {
		b.onPump(ctx, b.pumps)
	}
	return nil
}

func (b *scriptedBackend) Present(*Context) error {
	b.presents++
	if b.clock != nil {
		b.clock.Advance(b.frameCost)
	}
	return nil
}

func (b *scriptedBackend) Fini() { b.finiCalled = true }

func newLoopContext(t *testing.T, b *scriptedBackend, fpsCap float32) *Context {
	t.Helper()
	var clock clockwork.Clock = clockwork.NewFakeClock()
	if b.clock != nil {
		clock = b.clock
	}
	ctx, err := InitRaw(80, 40, "loop", InitHints{Backend: b, Clock: clock, FPSCap: fpsCap})
	require.NoError(t, err)
	font := ctx.RegisterFont(NewFont("f.png", 8, 8))
	ctx.RegisterConsole(console.NewSimpleConsole(10, 5), font)
	return ctx
}

func TestMainLoopTicksUntilQuit(t *testing.T) {
	b := &scriptedBackend{clock: clockwork.NewFakeClock(), frameCost: 10 * time.Millisecond}
	ctx := newLoopContext(t, b, 0)

	ticks := 0
	err := MainLoop(ctx, GameStateFunc(func(c *Context) {
		ticks++
		c.Print(0, 0, "tick")
		if ticks == 150 {
			c.Quit()
		}
	}))
	require.NoError(t, err)
	assert.Equal(t, 150, ticks)
	assert.Equal(t, 150, b.presents)
	assert.True(t, b.initCalled)
	assert.True(t, b.finiCalled)
	assert.InDelta(t, 10, ctx.FrameTimeMs, 0.001)
	assert.InDelta(t, 100, ctx.FPS, 0.001)
}

func TestMainLoopClearsPerFrameSnapshot(t *testing.T) {
	b := &scriptedBackend{}
	b.onPump = func(ctx *Context, frame int) {
		if frame == 1 {
			ctx.OnKey(input.KeyQ, 16, true)
			ctx.OnMouseButton(0, true)
		}
	}
	ctx := newLoopContext(t, b, 0)

	var seen []input.Key
	var clicks []bool
	err := MainLoop(ctx, GameStateFunc(func(c *Context) {
		seen = append(seen, c.Key)
		clicks = append(clicks, c.LeftClick)
		if len(seen) == 2 {
			c.Quit()
		}
	}))
	require.NoError(t, err)
	assert.Equal(t, []input.Key{input.KeyQ, input.KeyNone}, seen)
	assert.Equal(t, []bool{true, false}, clicks)
	assert.True(t, ctx.Input().IsKeyPressed(input.KeyQ), "level state survives frames")
}

func TestMainLoopQuitDuringPumpSkipsTick(t *testing.T) {
	b := &scriptedBackend{}
	b.onPump = func(ctx *Context, frame int) {
		ctx.OnEvent(input.CloseRequested())
		ctx.Quit()
	}
	ctx := newLoopContext(t, b, 0)
	ticks := 0
	require.NoError(t, MainLoop(ctx, GameStateFunc(func(*Context) { ticks++ })))
	assert.Zero(t, ticks)
	assert.True(t, b.finiCalled)
}

func TestMainLoopHonoursFPSCap(t *testing.T) {
	clock := clockwork.NewFakeClock()
	b := &scriptedBackend{clock: clock, frameCost: 5 * time.Millisecond}
	ctx := newLoopContext(t, b, 100)

	ticks := 0
	done := make(chan error, 1)
	go func() {
		done <- MainLoop(ctx, GameStateFunc(func(c *Context) {
			ticks++
			if ticks == 3 {
				c.Quit()
			}
		}))
	}()

	waitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := 0; i < 3; i++ {
		require.NoError(t, clock.BlockUntilContext(waitCtx, 1))
		clock.Advance(5 * time.Millisecond)
	}
	require.NoError(t, <-done)
	assert.Equal(t, 3, ticks)
	assert.InDelta(t, 10, ctx.FrameTimeMs, 0.001, "frame includes the cap sleep")
}

func TestMainLoopReturnsBackendErrors(t *testing.T) {
	b := &scriptedBackend{initErr: errors.New("no tty")}
	ctx := newLoopContext(t, b, 0)
	err := MainLoop(ctx, GameStateFunc(func(*Context) {}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend init")
	assert.False(t, b.finiCalled)

	b = &scriptedBackend{pumpErrAt: 3}
	ctx = newLoopContext(t, b, 0)
	err = MainLoop(ctx, GameStateFunc(func(*Context) {}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pump failed")
	assert.Equal(t, 2, b.presents)
	assert.True(t, b.finiCalled)
}

func TestMainLoopWithoutBackend(t *testing.T) {
	ctx, err := InitRaw(10, 10, "none", InitHints{})
	require.NoError(t, err)
	assert.ErrorIs(t, MainLoop(ctx, GameStateFunc(func(*Context) {})), ErrNoBackend)
}
