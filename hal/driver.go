// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hal/driver.go
// Summary: Screen driver abstraction over tcell used by the terminal backend.
// Usage: NewTcellBackend wraps a tcell.Screen in TcellScreenDriver; tests
// substitute stub drivers.

package hal

import "github.com/gdamore/tcell/v2"

// ScreenDriver abstracts the rendering surface used by the backend. It mirrors
// the subset of tcell.Screen functionality the backend needs.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	SetStyle(style tcell.Style)
	HideCursor()
	EnableMouse()
	Clear()
	Show()
	PollEvent() tcell.Event
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	GetContent(x, y int) (rune, []rune, tcell.Style, int)
}

// TcellScreenDriver adapts a tcell.Screen to the ScreenDriver interface.
type TcellScreenDriver struct {
	screen tcell.Screen
}

// NewTcellScreenDriver wraps the provided screen.
func NewTcellScreenDriver(screen tcell.Screen) *TcellScreenDriver {
	return &TcellScreenDriver{screen: screen}
}

func (d *TcellScreenDriver) Init() error {
	return d.screen.Init()
}

func (d *TcellScreenDriver) Fini() {
	d.screen.Fini()
}

func (d *TcellScreenDriver) Size() (int, int) {
	return d.screen.Size()
}

func (d *TcellScreenDriver) SetStyle(style tcell.Style) {
	d.screen.SetStyle(style)
}

func (d *TcellScreenDriver) HideCursor() {
	d.screen.HideCursor()
}

func (d *TcellScreenDriver) EnableMouse() {
	d.screen.EnableMouse(tcell.MouseMotionEvents)
}

func (d *TcellScreenDriver) Clear() {
	d.screen.Clear()
}

func (d *TcellScreenDriver) Show() {
	d.screen.Show()
}

func (d *TcellScreenDriver) PollEvent() tcell.Event {
	return d.screen.PollEvent()
}

func (d *TcellScreenDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.screen.SetContent(x, y, mainc, combc, style)
}

func (d *TcellScreenDriver) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	return d.screen.GetContent(x, y)
}
