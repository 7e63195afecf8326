// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hal/frame_store.go
// Summary: Keeps the last composited frame so Present only rewrites changed cells.

package hal

import (
	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/internal/syncutil"
)

// FrameStore tracks the last presented frame for diffing and inspection.
type FrameStore interface {
	Snapshot() [][]console.Cell
	Save(frame [][]console.Cell)
	Clear()
}

// InMemoryFrameStore is a FrameStore backed by a [][]console.Cell slice.
type InMemoryFrameStore struct {
	mu     syncutil.Mutex
	frame  [][]console.Cell
	frames uint64
}

// NewInMemoryFrameStore constructs an empty frame store.
func NewInMemoryFrameStore() *InMemoryFrameStore {
	return &InMemoryFrameStore{}
}

// Snapshot returns the last saved frame. Callers should treat the returned
// value as read-only.
func (s *InMemoryFrameStore) Snapshot() [][]console.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Save stores the frame reference and counts it.
func (s *InMemoryFrameStore) Save(frame [][]console.Cell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = frame
	s.frames++
}

// Clear drops the stored frame so the next Present redraws everything.
func (s *InMemoryFrameStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = nil
}

// Frames returns how many frames have been saved.
func (s *InMemoryFrameStore) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}
