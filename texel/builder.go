// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/builder.go
// Summary: Context construction: InitRaw and a fluent Builder for fonts and consoles.

package texel

import (
	"errors"
	"fmt"
	"math"

	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/input"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

var (
	// ErrDimensions is returned for negative window sizes or sizes that do
	// not fit in 32 bits.
	ErrDimensions = errors.New("texel: invalid window dimensions")
	// ErrNoBackend is returned when no presentation backend was supplied.
	ErrNoBackend = errors.New("texel: no backend")
	// ErrNoFont is returned when a console references no registered font.
	ErrNoFont = errors.New("texel: no font")
)

// InitHints carries the collaborators of a new Context. Nil fields get
// defaults: a real clock, a fresh registry and a fresh input state.
type InitHints struct {
	Backend    Backend
	Clock      clockwork.Clock
	FPSCap     float32
	Dispatcher *EventDispatcher
	Registry   *BackendState
	Input      *input.State
}

func validDimension(v int) bool {
	return v >= 0 && int64(v) <= math.MaxUint32
}

// InitRaw creates a Context for a width x height pixel window. It registers
// nothing; callers add fonts and consoles afterwards.
func InitRaw(width, height int, title string, hints InitHints) (*Context, error) {
	if !validDimension(width) || !validDimension(height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	ctx := &Context{
		Title:        title,
		WidthPixels:  width,
		HeightPixels: height,
		FPSCap:       hints.FPSCap,
		registry:     hints.Registry,
		input:        hints.Input,
		events:       hints.Dispatcher,
		backend:      hints.Backend,
		clock:        hints.Clock,
	}
	if ctx.registry == nil {
		ctx.registry = NewBackendState()
	}
	if ctx.input == nil {
		ctx.input = input.NewState()
	}
	if ctx.clock == nil {
		ctx.clock = clockwork.NewRealClock()
	}
	log.Debug().Str("title", title).Int("width", width).Int("height", height).Msg("context initialised")
	return ctx, nil
}

type consoleSpec struct {
	cols, rows int
	font       string
	sparse     bool
}

type fontSpec struct {
	path       string
	tileWidth  int
	tileHeight int
}

// Builder assembles a Context with its fonts and consoles.
type Builder struct {
	title        string
	cols, rows   int
	tileW, tileH int
	fonts        []fontSpec
	consoles     []consoleSpec
	fpsCap       float32
	backend      Backend
	clock        clockwork.Clock
	dispatcher   *EventDispatcher
	scanlines    bool
	screenburn   bool
}

// NewBuilder starts an 80x50 window of 8x8 tiles titled "texelcon".
func NewBuilder() *Builder {
	return &Builder{title: "texelcon", cols: 80, rows: 50, tileW: 8, tileH: 8}
}

func (b *Builder) WithTitle(title string) *Builder {
	b.title = title
	return b
}

// WithDimensions sets the window size in tiles.
func (b *Builder) WithDimensions(cols, rows int) *Builder {
	b.cols, b.rows = cols, rows
	return b
}

// WithTileDimensions sets the pixel size of one window tile.
func (b *Builder) WithTileDimensions(width, height int) *Builder {
	b.tileW, b.tileH = width, height
	return b
}

// WithFont adds a font, referenced by path from the console options.
func (b *Builder) WithFont(path string, tileWidth, tileHeight int) *Builder {
	b.fonts = append(b.fonts, fontSpec{path: path, tileWidth: tileWidth, tileHeight: tileHeight})
	return b
}

// WithSimpleConsole adds a dense console drawn with backgrounds.
func (b *Builder) WithSimpleConsole(cols, rows int, font string) *Builder {
	b.consoles = append(b.consoles, consoleSpec{cols: cols, rows: rows, font: font})
	return b
}

// WithSparseConsole adds an overlay console drawn without backgrounds.
func (b *Builder) WithSparseConsole(cols, rows int, font string) *Builder {
	b.consoles = append(b.consoles, consoleSpec{cols: cols, rows: rows, font: font, sparse: true})
	return b
}

func (b *Builder) WithFPSCap(fps float32) *Builder {
	b.fpsCap = fps
	return b
}

func (b *Builder) WithBackend(backend Backend) *Builder {
	b.backend = backend
	return b
}

func (b *Builder) WithClock(clock clockwork.Clock) *Builder {
	b.clock = clock
	return b
}

func (b *Builder) WithDispatcher(d *EventDispatcher) *Builder {
	b.dispatcher = d
	return b
}

func (b *Builder) WithPostScanlines(burn bool) *Builder {
	b.scanlines, b.screenburn = true, burn
	return b
}

// Build validates the options and returns a Context with every font and
// console registered in the order they were added. Without consoles a
// simple console covering the window is added on the first font.
func (b *Builder) Build() (*Context, error) {
	if b.backend == nil {
		return nil, ErrNoBackend
	}
	if len(b.fonts) == 0 {
		return nil, ErrNoFont
	}
	if b.cols < 0 || b.rows < 0 || b.tileW < 0 || b.tileH < 0 {
		return nil, fmt.Errorf("%w: %dx%d tiles of %dx%d", ErrDimensions, b.cols, b.rows, b.tileW, b.tileH)
	}
	if int64(b.cols)*int64(b.tileW) > math.MaxUint32 || int64(b.rows)*int64(b.tileH) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %dx%d tiles of %dx%d", ErrDimensions, b.cols, b.rows, b.tileW, b.tileH)
	}

	ctx, err := InitRaw(b.cols*b.tileW, b.rows*b.tileH, b.title, InitHints{
		Backend:    b.backend,
		Clock:      b.clock,
		FPSCap:     b.fpsCap,
		Dispatcher: b.dispatcher,
	})
	if err != nil {
		return nil, err
	}

	fontIDs := make(map[string]FontID, len(b.fonts))
	for _, f := range b.fonts {
		if _, dup := fontIDs[f.path]; dup {
			continue
		}
		fontIDs[f.path] = ctx.RegisterFont(NewFont(f.path, f.tileWidth, f.tileHeight))
	}

	specs := b.consoles
	if len(specs) == 0 {
		specs = []consoleSpec{{cols: b.cols, rows: b.rows, font: b.fonts[0].path}}
	}
	for _, s := range specs {
		id, ok := fontIDs[s.font]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoFont, s.font)
		}
		if s.sparse {
			ctx.RegisterConsoleNoBg(console.NewSparseConsole(s.cols, s.rows), id)
		} else {
			ctx.RegisterConsole(console.NewSimpleConsole(s.cols, s.rows), id)
		}
	}
	if b.scanlines {
		ctx.WithPostScanlines(b.screenburn)
	}
	ctx.ResizePixels(ctx.WidthPixels, ctx.HeightPixels)
	return ctx, nil
}

// DefaultFont is the glyph sheet name used by the convenience constructors.
const DefaultFont = "terminal8x8.png"

// Simple80x50 builds the classic 80x50 single-console layout.
func Simple80x50(backend Backend) (*Context, error) {
	return NewBuilder().
		WithBackend(backend).
		WithFont(DefaultFont, 8, 8).
		WithSimpleConsole(80, 50, DefaultFont).
		Build()
}
