// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/state.go
// Summary: Mutex-guarded input log plus key, scan-code and mouse level-state tables.
// Notes: The translator in package texel is the sole producer; applications
// consume with Drain or ClearEvents between frames.

// Package input holds the process input state: an ordered event log and the
// "is it held" tables that complement the per-frame snapshot on texel.Context.
package input

import (
	"sort"

	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/internal/syncutil"
)

// State is safe for concurrent use. The zero value is not usable; call NewState.
type State struct {
	mu syncutil.Mutex

	events  []Event
	keys    map[Key]struct{}
	scans   map[uint32]struct{}
	buttons map[int]struct{}

	pixelX, pixelY float64
	tiles          map[int]console.Point
}

func NewState() *State {
	return &State{
		keys:    make(map[Key]struct{}),
		scans:   make(map[uint32]struct{}),
		buttons: make(map[int]struct{}),
		tiles:   make(map[int]console.Point),
	}
}

// Tx mutates a locked State. It is only valid inside Update.
type Tx struct {
	s *State
}

// Update runs fn with the state locked so several mutations land atomically.
// fn must not call other State methods.
func (s *State) Update(fn func(tx Tx)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(Tx{s: s})
}

func (tx Tx) KeyDown(k Key, scanCode uint32) {
	tx.s.keys[k] = struct{}{}
	tx.s.scans[scanCode] = struct{}{}
}

func (tx Tx) KeyUp(k Key, scanCode uint32) {
	delete(tx.s.keys, k)
	delete(tx.s.scans, scanCode)
}

func (tx Tx) ButtonDown(button int) { tx.s.buttons[button] = struct{}{} }

func (tx Tx) ButtonUp(button int) { delete(tx.s.buttons, button) }

func (tx Tx) PixelPosition(x, y float64) {
	tx.s.pixelX, tx.s.pixelY = x, y
}

// TilePosition records the mouse tile coordinate under console index idx.
func (tx Tx) TilePosition(idx int, p console.Point) {
	tx.s.tiles[idx] = p
}

func (tx Tx) Push(ev Event) {
	tx.s.events = append(tx.s.events, ev)
}

// PushEvent appends ev to the log.
func (s *State) PushEvent(ev Event) {
	s.Update(func(tx Tx) { tx.Push(ev) })
}

func (s *State) IsKeyPressed(k Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[k]
	return ok
}

func (s *State) IsScanCodePressed(code uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.scans[code]
	return ok
}

func (s *State) IsMouseButtonPressed(button int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.buttons[button]
	return ok
}

// PressedKeys returns the held keys in key-code order.
func (s *State) PressedKeys() []Key {
	s.mu.Lock()
	keys := make([]Key, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	s.mu.Unlock()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// PressedButtons returns the held mouse buttons in ascending order.
func (s *State) PressedButtons() []int {
	s.mu.Lock()
	buttons := make([]int, 0, len(s.buttons))
	for b := range s.buttons {
		buttons = append(buttons, b)
	}
	s.mu.Unlock()
	sort.Ints(buttons)
	return buttons
}

func (s *State) MousePixelPos() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pixelX, s.pixelY
}

// MouseTilePos returns the last tile position recorded for console idx.
func (s *State) MouseTilePos(idx int) (console.Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.tiles[idx]
	return p, ok
}

// Events returns a copy of the log without consuming it.
func (s *State) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Drain returns the log and empties it.
func (s *State) Drain() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.events
	s.events = nil
	return out
}

func (s *State) ClearEvents() {
	s.mu.Lock()
	s.events = nil
	s.mu.Unlock()
}

func (s *State) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
