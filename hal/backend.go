// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hal/backend.go
// Summary: Terminal presentation backend for texel.MainLoop built on tcell.
// Usage: texel.NewBuilder().WithBackend(hal.NewTcellBackend(screen)), then
// texel.MainLoop.
// Notes: Pixel space is synthesised from the tile size: terminal cell (c, r)
// is pixel (c*tw + tw/2, r*th + th/2). Terminals report no key release, so a
// key pressed during one pump is released at the start of the next.

// Package hal is the terminal backend: it pumps tcell events into a
// texel.Context and presents the composited console stack.
package hal

import (
	"fmt"

	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/input"
	"github.com/framegrace/texelcon/texel"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

const (
	defaultTile        = 8
	defaultEventBuffer = 64
)

type heldKey struct {
	key  input.Key
	scan uint32
}

// TcellBackend implements texel.Backend on a ScreenDriver.
type TcellBackend struct {
	drv        ScreenDriver
	store      FrameStore
	compositor Compositor
	tileW      int
	tileH      int
	bufSize    int

	events chan tcell.Event
	quit   chan struct{}
	done   chan struct{}

	held    []heldKey
	buttons tcell.ButtonMask
}

// Option configures a TcellBackend.
type Option func(*TcellBackend)

// WithTileSize fixes the pixel size of one terminal cell. By default it is
// taken from font 0 at Init.
func WithTileSize(width, height int) Option {
	return func(b *TcellBackend) { b.tileW, b.tileH = width, height }
}

// WithFrameStore replaces the in-memory frame store.
func WithFrameStore(store FrameStore) Option {
	return func(b *TcellBackend) { b.store = store }
}

// WithEventBuffer sets the capacity of the poll channel.
func WithEventBuffer(n int) Option {
	return func(b *TcellBackend) { b.bufSize = n }
}

// NewTcellBackend wraps any tcell screen, real or simulated.
func NewTcellBackend(screen tcell.Screen, opts ...Option) *TcellBackend {
	return NewBackend(NewTcellScreenDriver(screen), opts...)
}

// NewBackend builds a backend over an arbitrary driver.
func NewBackend(drv ScreenDriver, opts ...Option) *TcellBackend {
	b := &TcellBackend{drv: drv, bufSize: defaultEventBuffer}
	for _, opt := range opts {
		opt(b)
	}
	if b.store == nil {
		b.store = NewInMemoryFrameStore()
	}
	return b
}

// FrameStore returns the store holding the last presented frame.
func (b *TcellBackend) FrameStore() FrameStore { return b.store }

// TileSize returns the pixel size of one terminal cell.
func (b *TcellBackend) TileSize() (int, int) { return b.tileW, b.tileH }

// Init starts the screen and the poll goroutine and sizes the context to
// the terminal.
func (b *TcellBackend) Init(ctx *texel.Context) error {
	if err := b.drv.Init(); err != nil {
		return fmt.Errorf("hal: init screen: %w", err)
	}
	b.drv.SetStyle(tcell.StyleDefault.Foreground(console.DefaultFg.Tcell()).Background(console.DefaultBg.Tcell()))
	b.drv.HideCursor()
	b.drv.EnableMouse()
	b.drv.Clear()

	if b.tileW <= 0 || b.tileH <= 0 {
		b.tileW, b.tileH = defaultTile, defaultTile
		if ctx.Registry().FontCount() > 0 {
			f := ctx.Registry().Font(0)
			b.tileW, b.tileH = f.TileWidth, f.TileHeight
		}
	}
	b.compositor = Compositor{TileWidth: b.tileW, TileHeight: b.tileH}

	cols, rows := b.drv.Size()
	ctx.ResizePixels(cols*b.tileW, rows*b.tileH)
	log.Debug().Int("cols", cols).Int("rows", rows).
		Int("tile_w", b.tileW).Int("tile_h", b.tileH).Msg("terminal backend started")

	b.events = make(chan tcell.Event, max(1, b.bufSize))
	b.quit = make(chan struct{})
	b.done = make(chan struct{})
	go b.poll()
	return nil
}

func (b *TcellBackend) poll() {
	defer close(b.done)
	for {
		ev := b.drv.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.quit:
			return
		}
	}
}

// PumpEvents releases keys held since the previous pump, then delivers every
// queued event without blocking. Releases leave ctx.Key alone, so a press is
// seen by exactly one tick.
func (b *TcellBackend) PumpEvents(ctx *texel.Context) error {
	for _, h := range b.held {
		ctx.ReleaseKey(h.key, h.scan)
	}
	b.held = b.held[:0]
	for {
		select {
		case ev := <-b.events:
			b.handle(ctx, ev)
		default:
			return nil
		}
	}
}

func (b *TcellBackend) toPixels(col, row int) (float64, float64) {
	return float64(col*b.tileW + b.tileW/2), float64(row*b.tileH + b.tileH/2)
}

func (b *TcellBackend) handle(ctx *texel.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		ctx.SetModifiers(modifiers(ev.Modifiers()))
		if ev.Key() == tcell.KeyCtrlC {
			ctx.OnEvent(input.CloseRequested())
			ctx.Quit()
			return
		}
		if ev.Key() == tcell.KeyRune {
			ctx.OnEvent(input.Character(ev.Rune()))
		}
		k, scan, ok := translateKey(ev)
		if !ok {
			log.Trace().Int("key", int(ev.Key())).Msg("untranslated key")
			return
		}
		ctx.OnKey(k, scan, true)
		b.held = append(b.held, heldKey{key: k, scan: scan})

	case *tcell.EventMouse:
		ctx.SetModifiers(modifiers(ev.Modifiers()))
		col, row := ev.Position()
		ctx.OnMousePosition(b.toPixels(col, row))
		now := ev.Buttons()
		for i, mask := range mouseButtons {
			was, is := b.buttons&mask != 0, now&mask != 0
			if was != is {
				ctx.OnMouseButton(i, is)
			}
		}
		b.buttons = now

	case *tcell.EventResize:
		cols, rows := ev.Size()
		w, h := cols*b.tileW, rows*b.tileH
		b.store.Clear()
		b.drv.Clear()
		ctx.ResizePixels(w, h)
		ctx.OnEvent(input.Resized(w, h))

	case *tcell.EventFocus:
		ctx.OnEvent(input.Focused(ev.Focused))

	case *tcell.EventError:
		log.Warn().Err(ev).Msg("terminal error event")
	}
}

// Present composites the registry and writes the cells that changed since
// the previous frame.
func (b *TcellBackend) Present(ctx *texel.Context) error {
	cols, rows := b.drv.Size()
	frame := b.compositor.Compose(ctx, cols, rows)
	prev := b.store.Snapshot()
	full := len(prev) != rows || (rows > 0 && len(prev[0]) != cols)

	for y, row := range frame {
		for x, cell := range row {
			if !full && prev[y][x] == cell {
				continue
			}
			style := tcell.StyleDefault.Foreground(cell.Fg.Tcell()).Background(cell.Bg.Tcell())
			b.drv.SetContent(x, y, cell.Glyph, nil, style)
		}
	}
	b.drv.Show()
	b.store.Save(frame)
	return nil
}

// Fini stops the poll goroutine and restores the terminal.
func (b *TcellBackend) Fini() {
	if b.quit == nil {
		b.drv.Fini()
		return
	}
	close(b.quit)
	b.drv.Fini()
	<-b.done
	b.quit = nil
	log.Debug().Msg("terminal backend stopped")
}

var _ texel.Backend = (*TcellBackend)(nil)
