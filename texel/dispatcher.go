// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/dispatcher.go
// Summary: Broadcasts registry and context lifecycle events to listeners.
// Usage: Attach with InitHints.Dispatcher or Builder.WithDispatcher.
// Notes: The Context broadcasts only after releasing the registry lock, so
// listeners may call back into the Context.

package texel

import (
	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/internal/syncutil"
)

// EventType defines the type of an event.
type EventType int

const (
	// Registry events
	EventConsoleRegistered EventType = iota
	EventFontRegistered
	// Context events
	EventActiveConsoleChanged
	EventResized
	EventQuit
)

// Event represents a message passed through the system.
// It has a type and can carry an arbitrary data payload.
type Event struct {
	Type    EventType
	Payload interface{}
}

// ConsolePayload accompanies EventConsoleRegistered and EventActiveConsoleChanged.
type ConsolePayload struct {
	ID          ConsoleID
	Kind        console.Kind
	Transparent bool
}

// FontPayload accompanies EventFontRegistered.
type FontPayload struct {
	ID   FontID
	Font Font
}

// ResizePayload accompanies EventResized.
type ResizePayload struct {
	WidthPixels, HeightPixels int
}

// Listener is an interface that any component can implement to receive events.
type Listener interface {
	// OnEvent is the callback method for receiving events.
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// EventRouter exposes the subset of dispatcher behaviour the rest of the system
// relies on.
type EventRouter interface {
	Subscribe(listener Listener)
	Unsubscribe(listener Listener)
	Broadcast(event Event)
}

// EventDispatcher manages a list of listeners and broadcasts events to them.
type EventDispatcher struct {
	mu        syncutil.RWMutex
	listeners []Listener
}

// NewEventDispatcher creates a new dispatcher.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		listeners: make([]Listener, 0),
	}
}

// Subscribe adds a new listener to receive events.
func (d *EventDispatcher) Subscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Unsubscribe removes a listener. ListenerFunc values cannot be compared and
// are never removed.
func (d *EventDispatcher) Unsubscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, isFunc := listener.(ListenerFunc); isFunc {
		return
	}
	for i, l := range d.listeners {
		if _, isFunc := l.(ListenerFunc); isFunc {
			continue
		}
		if l == listener {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
}

// Broadcast sends an event to all subscribed listeners. Listeners run without
// the dispatcher lock held and may subscribe or unsubscribe.
func (d *EventDispatcher) Broadcast(event Event) {
	d.mu.RLock()
	listeners := make([]Listener, len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.RUnlock()
	for _, l := range listeners {
		l.OnEvent(event)
	}
}

var _ EventRouter = (*EventDispatcher)(nil)
