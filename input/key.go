// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/key.go
// Summary: Backend-neutral key codes and the A-Z menu option mapping.

package input

import (
	"strconv"
	"strings"
	"unicode"
)

// Key is a virtual key code. KeyNone means no key.
type Key int

const (
	KeyNone Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	keyCount
)

var namedKeys = map[Key]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeySpace:     "Space",
	KeyInsert:    "Insert",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, keyCount)
	for k := KeyNone; k < keyCount; k++ {
		m[strings.ToLower(k.String())] = k
	}
	return m
}()

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := namedKeys[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKey looks a key up by its String name, case-insensitively.
func ParseKey(name string) (Key, bool) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// KeyFromRune maps printable letters, digits and space to a key.
func KeyFromRune(r rune) (Key, bool) {
	r = unicode.ToUpper(r)
	switch {
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0'), true
	case r == ' ':
		return KeySpace, true
	}
	return KeyNone, false
}

// LetterToOption maps A..Z to 0..25 for lettered menus; any other key is -1.
func LetterToOption(k Key) int {
	if k >= KeyA && k <= KeyZ {
		return int(k - KeyA)
	}
	return -1
}
