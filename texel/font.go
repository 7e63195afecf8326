// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/font.go
// Summary: Opaque font and shader handles stored by the registry.

package texel

// FontID indexes BackendState fonts.
type FontID int

// ShaderID indexes BackendState shaders.
type ShaderID int

// ConsoleID indexes BackendState consoles.
type ConsoleID int

// Font describes a glyph sheet. The registry never loads it; backends decide
// what Path means. TileWidth and TileHeight are the pixel size of one cell.
type Font struct {
	Path       string
	TileWidth  int
	TileHeight int
}

// NewFont returns a font handle. Non-positive tile sizes become 1.
func NewFont(path string, tileWidth, tileHeight int) Font {
	return Font{Path: path, TileWidth: max(1, tileWidth), TileHeight: max(1, tileHeight)}
}

// Shader is a presentation program handle. Background reports whether the
// program paints cell backgrounds.
type Shader struct {
	Name       string
	Background bool
}

// Shaders registered by NewBackendState.
const (
	ShaderBackground   ShaderID = 0
	ShaderNoBackground ShaderID = 1
)

func defaultShaders() []Shader {
	return []Shader{
		{Name: "console_with_bg", Background: true},
		{Name: "console_no_bg", Background: false},
	}
}
