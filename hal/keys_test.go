// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hal/keys_test.go
// Summary: Exercises tcell key translation.
// Usage: Executed during `go test` to guard against regressions.

package hal

import (
	"testing"

	"github.com/framegrace/texelcon/input"
	"github.com/gdamore/tcell/v2"
)

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want input.Key
		scan uint32
		ok   bool
	}{
		{"lower rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), input.KeyA, 'a', true},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), input.KeyA, 'A', true},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), input.Key5, '5', true},
		{"punctuation", tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone), input.KeyNone, '?', false},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.KeyEscape, uint32(tcell.KeyEscape), true},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), input.KeyPageDown, uint32(tcell.KeyPgDn), true},
		{"f12", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), input.KeyF12, uint32(tcell.KeyF12), true},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), input.KeyW, uint32(tcell.KeyCtrlW), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, scan, ok := translateKey(tc.ev)
			if got != tc.want || scan != tc.scan || ok != tc.ok {
				t.Fatalf("translateKey = (%v, %d, %v), want (%v, %d, %v)", got, scan, ok, tc.want, tc.scan, tc.ok)
			}
		})
	}
}

func TestModifiers(t *testing.T) {
	shift, ctrl, alt := modifiers(tcell.ModCtrl | tcell.ModAlt)
	if shift || !ctrl || !alt {
		t.Fatalf("modifiers = %v %v %v", shift, ctrl, alt)
	}
}
