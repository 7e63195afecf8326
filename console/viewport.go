// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/viewport.go
// Summary: Pixel size, pan offset and zoom state shared by console implementations.

package console

type viewport struct {
	pixelW, pixelH   int
	offsetX, offsetY float32
	scale            float32
	scaleX, scaleY   int
}

func (v *viewport) ResizePixels(width, height int) {
	v.pixelW, v.pixelH = width, height
}

func (v *viewport) PixelSize() (int, int) {
	return v.pixelW, v.pixelH
}

func (v *viewport) SetOffset(x, y float32) {
	v.offsetX, v.offsetY = x, y
}

func (v *viewport) Offset() (float32, float32) {
	return v.offsetX, v.offsetY
}

func (v *viewport) SetScale(scale float32, centerX, centerY int) {
	v.scale = scale
	v.scaleX, v.scaleY = centerX, centerY
}

// Scale returns 1 until a scale has been set.
func (v *viewport) Scale() (float32, int, int) {
	if v.scale == 0 {
		return 1, v.scaleX, v.scaleY
	}
	return v.scale, v.scaleX, v.scaleY
}
