// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/input_test.go
// Summary: Key naming, option mapping and level-state transition tests.

package input

import (
	"sync"
	"testing"

	"github.com/framegrace/texelcon/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLetterToOption(t *testing.T) {
	assert.Equal(t, 0, LetterToOption(KeyA))
	assert.Equal(t, 25, LetterToOption(KeyZ))
	assert.Equal(t, -1, LetterToOption(Key1))
	assert.Equal(t, -1, LetterToOption(KeyNone))
	assert.Equal(t, -1, LetterToOption(KeyEscape))
}

func TestLetterToOptionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := Key(rapid.IntRange(-10, int(keyCount)+10).Draw(t, "key"))
		got := LetterToOption(k)
		if k >= KeyA && k <= KeyZ {
			if got != int(k-KeyA) {
				t.Fatalf("LetterToOption(%v)=%d", k, got)
			}
			return
		}
		if got != -1 {
			t.Fatalf("LetterToOption(%v)=%d, want -1", k, got)
		}
	})
}

func TestKeyNamesRoundTrip(t *testing.T) {
	for k := KeyNone; k < keyCount; k++ {
		name := k.String()
		require.NotEqual(t, "Unknown", name, "key %d has no name", int(k))
		got, ok := ParseKey(name)
		require.True(t, ok, name)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "F10", KeyF10.String())
	assert.Equal(t, "Unknown", Key(-3).String())
	_, ok := ParseKey("hyper")
	assert.False(t, ok)
}

func TestKeyFromRune(t *testing.T) {
	k, ok := KeyFromRune('q')
	require.True(t, ok)
	assert.Equal(t, KeyQ, k)
	k, _ = KeyFromRune('7')
	assert.Equal(t, Key7, k)
	k, _ = KeyFromRune(' ')
	assert.Equal(t, KeySpace, k)
	_, ok = KeyFromRune('!')
	assert.False(t, ok)
}

func TestKeyStateTransitions(t *testing.T) {
	s := NewState()
	s.Update(func(tx Tx) { tx.KeyDown(KeyA, 30) })
	s.Update(func(tx Tx) { tx.KeyDown(KeyA, 30) })
	assert.True(t, s.IsKeyPressed(KeyA))
	assert.True(t, s.IsScanCodePressed(30))
	assert.Equal(t, []Key{KeyA}, s.PressedKeys())

	s.Update(func(tx Tx) { tx.KeyUp(KeyA, 30) })
	assert.False(t, s.IsKeyPressed(KeyA))
	assert.False(t, s.IsScanCodePressed(30))
	assert.Empty(t, s.PressedKeys())
}

func TestKeyStateMatchesLastEdge(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewState()
		edges := rapid.SliceOf(rapid.Bool()).Draw(t, "edges")
		for _, down := range edges {
			s.Update(func(tx Tx) {
				if down {
					tx.KeyDown(KeyB, 48)
					tx.ButtonDown(2)
				} else {
					tx.KeyUp(KeyB, 48)
					tx.ButtonUp(2)
				}
			})
		}
		want := len(edges) > 0 && edges[len(edges)-1]
		if s.IsKeyPressed(KeyB) != want || s.IsMouseButtonPressed(2) != want {
			t.Fatalf("edges %v: key=%v button=%v want %v",
				edges, s.IsKeyPressed(KeyB), s.IsMouseButtonPressed(2), want)
		}
	})
}

func TestEventLogOrderAndDrain(t *testing.T) {
	s := NewState()
	s.PushEvent(KeyboardInput(KeyA, 1, true))
	s.PushEvent(MouseClick(0, true))
	s.PushEvent(CursorMoved(3, 4))
	s.PushEvent(CloseRequested())

	evs := s.Events()
	require.Len(t, evs, 4)
	assert.Equal(t, EventKeyboardInput, evs[0].Kind)
	assert.Equal(t, EventMouseClick, evs[1].Kind)
	assert.Equal(t, EventCursorMoved, evs[2].Kind)
	assert.Equal(t, EventCloseRequested, evs[3].Kind)
	assert.Equal(t, 4, s.Len(), "Events must not consume")

	drained := s.Drain()
	assert.Equal(t, evs, drained)
	assert.Zero(t, s.Len())

	s.PushEvent(Focused(true))
	s.ClearEvents()
	assert.Empty(t, s.Events())
}

func TestMouseTables(t *testing.T) {
	s := NewState()
	_, ok := s.MouseTilePos(0)
	assert.False(t, ok)
	s.Update(func(tx Tx) {
		tx.PixelPosition(12.5, 7)
		tx.TilePosition(0, console.Point{X: 1, Y: 2})
		tx.TilePosition(3, console.Point{X: 9, Y: 9})
		tx.ButtonDown(1)
		tx.ButtonDown(0)
	})
	x, y := s.MousePixelPos()
	assert.Equal(t, 12.5, x)
	assert.Equal(t, 7.0, y)
	p, ok := s.MouseTilePos(3)
	require.True(t, ok)
	assert.Equal(t, console.Point{X: 9, Y: 9}, p)
	assert.Equal(t, []int{0, 1}, s.PressedButtons())
}

func TestConcurrentPushKeepsEveryEvent(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.PushEvent(Character('x'))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, s.Len())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "CursorMoved", EventCursorMoved.String())
	assert.Equal(t, "EventKind(99)", EventKind(99).String())
}
