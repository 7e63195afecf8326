// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hal/keys.go
// Summary: tcell key events to input.Key translation.

package hal

import (
	"github.com/framegrace/texelcon/input"
	"github.com/gdamore/tcell/v2"
)

var tcellKeys = map[tcell.Key]input.Key{
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBacktab:    input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyF10:        input.KeyF10,
	tcell.KeyF11:        input.KeyF11,
	tcell.KeyF12:        input.KeyF12,
}

// translateKey maps a tcell key event to a key and a synthetic scan code.
// Terminals report no scan codes, so the tcell key (or rune) stands in.
func translateKey(ev *tcell.EventKey) (input.Key, uint32, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := input.KeyFromRune(ev.Rune())
		return k, uint32(ev.Rune()), ok
	}
	scan := uint32(ev.Key())
	if k, ok := tcellKeys[ev.Key()]; ok {
		return k, scan, true
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return input.KeyA + input.Key(ev.Key()-tcell.KeyCtrlA), scan, true
	}
	return input.KeyNone, scan, false
}

func modifiers(m tcell.ModMask) (shift, control, alt bool) {
	return m&tcell.ModShift != 0, m&tcell.ModCtrl != 0, m&tcell.ModAlt != 0
}

// mouseButtons lists the tcell buttons reported as button indices 0, 1, 2.
var mouseButtons = [...]tcell.ButtonMask{tcell.Button1, tcell.Button2, tcell.Button3}
