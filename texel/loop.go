// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/loop.go
// Summary: Frame loop driving a GameState against a presentation backend.

package texel

import (
	"fmt"
	"time"

	"github.com/framegrace/texelcon/input"
	"github.com/rs/zerolog/log"
)

// GameState is the application callback invoked once per frame.
type GameState interface {
	Tick(ctx *Context)
}

// GameStateFunc adapts a function to GameState.
type GameStateFunc func(ctx *Context)

func (f GameStateFunc) Tick(ctx *Context) { f(ctx) }

// Backend presents the registry and feeds input into the context. PumpEvents
// must not block; it delivers pending events through the Context's On*
// methods.
type Backend interface {
	Init(ctx *Context) error
	PumpEvents(ctx *Context) error
	Present(ctx *Context) error
	Fini()
}

const fpsWindow = time.Second

// MainLoop runs gs until ctx.Quitting is set. Each frame pumps events, ticks,
// presents, clears Key and LeftClick, updates FrameTimeMs and FPS, then
// sleeps to honour FPSCap.
func MainLoop(ctx *Context, gs GameState) error {
	if ctx.backend == nil {
		return ErrNoBackend
	}
	if err := ctx.backend.Init(ctx); err != nil {
		return fmt.Errorf("texel: backend init: %w", err)
	}
	defer ctx.backend.Fini()
	log.Debug().Str("title", ctx.Title).Float32("fps_cap", ctx.FPSCap).Msg("main loop started")

	clock := ctx.clock
	prev := clock.Now()
	windowStart := prev
	frames := 0

	for !ctx.Quitting {
		start := clock.Now()
		if err := ctx.backend.PumpEvents(ctx); err != nil {
			return fmt.Errorf("texel: pump events: %w", err)
		}
		if ctx.Quitting {
			break
		}
		gs.Tick(ctx)
		if err := ctx.backend.Present(ctx); err != nil {
			return fmt.Errorf("texel: present: %w", err)
		}
		// The per-frame snapshot lives for one tick.
		ctx.Key = input.KeyNone
		ctx.LeftClick = false

		now := clock.Now()
		ctx.FrameTimeMs = float32(now.Sub(prev).Seconds() * 1000)
		prev = now
		frames++
		if elapsed := now.Sub(windowStart); elapsed >= fpsWindow {
			ctx.FPS = float32(float64(frames) / elapsed.Seconds())
			frames = 0
			windowStart = now
		}

		if ctx.FPSCap > 0 {
			budget := time.Duration(float64(time.Second) / float64(ctx.FPSCap))
			if spent := now.Sub(start); spent < budget {
				clock.Sleep(budget - spent)
			}
		}
	}
	log.Debug().Float32("fps", ctx.FPS).Msg("main loop finished")
	return nil
}
