// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/markup.go
// Summary: Parser for "#[color]" inline markup.

package console

import (
	"strings"

	"github.com/framegrace/texelcon/palette"
)

// Span is a run of text drawn in one foreground color.
type Span struct {
	Fg   palette.RGB
	Text string
}

// ParseMarkup splits markup into colored spans. "#[name]" pushes a named
// color, "#[]" pops back to the previous one. The stack starts at DefaultFg
// and never pops below it. Unknown names push the current color so pops stay
// balanced; an unterminated "#[" is kept as literal text.
func ParseMarkup(markup string) []Span {
	stack := []palette.RGB{DefaultFg}
	var spans []Span
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		spans = append(spans, Span{Fg: stack[len(stack)-1], Text: buf.String()})
		buf.Reset()
	}

	for len(markup) > 0 {
		start := strings.Index(markup, "#[")
		if start < 0 {
			buf.WriteString(markup)
			break
		}
		end := strings.IndexByte(markup[start+2:], ']')
		if end < 0 {
			buf.WriteString(markup)
			break
		}
		buf.WriteString(markup[:start])
		name := markup[start+2 : start+2+end]
		markup = markup[start+2+end+1:]

		flush()
		if name == "" {
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			continue
		}
		c, ok := palette.Named(name)
		if !ok {
			c = stack[len(stack)-1]
		}
		stack = append(stack, c)
	}
	flush()
	return spans
}
