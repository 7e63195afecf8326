// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/event.go
// Summary: Normalised backend events recorded in the input log.

package input

import "fmt"

// EventKind discriminates Event.
type EventKind int

const (
	EventKeyboardInput EventKind = iota
	EventCharacter
	EventMouseClick
	EventCursorMoved
	EventResized
	EventFocused
	EventCloseRequested
)

func (k EventKind) String() string {
	switch k {
	case EventKeyboardInput:
		return "KeyboardInput"
	case EventCharacter:
		return "Character"
	case EventMouseClick:
		return "MouseClick"
	case EventCursorMoved:
		return "CursorMoved"
	case EventResized:
		return "Resized"
	case EventFocused:
		return "Focused"
	case EventCloseRequested:
		return "CloseRequested"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one entry of the input log. Only the fields relevant to Kind are
// set.
type Event struct {
	Kind EventKind

	// EventKeyboardInput
	Key      Key
	ScanCode uint32
	// EventKeyboardInput, EventMouseClick, EventFocused
	Pressed bool

	// EventCharacter
	Char rune

	// EventMouseClick
	Button int

	// EventCursorMoved
	X, Y float64

	// EventResized
	Width, Height int
}

func KeyboardInput(k Key, scanCode uint32, pressed bool) Event {
	return Event{Kind: EventKeyboardInput, Key: k, ScanCode: scanCode, Pressed: pressed}
}

func Character(r rune) Event {
	return Event{Kind: EventCharacter, Char: r}
}

func MouseClick(button int, pressed bool) Event {
	return Event{Kind: EventMouseClick, Button: button, Pressed: pressed}
}

func CursorMoved(x, y float64) Event {
	return Event{Kind: EventCursorMoved, X: x, Y: y}
}

func Resized(width, height int) Event {
	return Event{Kind: EventResized, Width: width, Height: height}
}

// Focused reports a focus change; Pressed carries the focus state.
func Focused(focused bool) Event {
	return Event{Kind: EventFocused, Pressed: focused}
}

func CloseRequested() Event {
	return Event{Kind: EventCloseRequested}
}
