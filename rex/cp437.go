// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: rex/cp437.go
// Summary: Code page 437 mapping between REX glyph codes and runes.

package rex

var cp437Rows = [...]string{
	"\x00☺☻♥♦♣♠•◘○◙♂♀♪♫☼",
	"►◄↕‼¶§▬↨↑↓→←∟↔▲▼",
	" !\"#$%&'()*+,-./",
	"0123456789:;<=>?",
	"@ABCDEFGHIJKLMNO",
	"PQRSTUVWXYZ[\\]^_",
	"`abcdefghijklmno",
	"pqrstuvwxyz{|}~⌂",
	"ÇüéâäàåçêëèïîìÄÅ",
	"ÉæÆôöòûùÿÖÜ¢£¥₧ƒ",
	"áíóúñÑªº¿⌐¬½¼¡«»",
	"░▒▓│┤╡╢╖╕╣║╗╝╜╛┐",
	"└┴┬├─┼╞╟╚╔╩╦╠═╬╧",
	"╨╤╥╙╘╒╓╫╪┘┌█▄▌▐▀",
	"αßΓπΣσµτΦΘΩδ∞φε∩",
	"≡±≥≤⌠⌡÷≈°∙·√ⁿ²■\u00a0",
}

var (
	cp437ToRune [256]rune
	runeToCP437 = make(map[rune]uint32, 256)
)

func init() {
	i := 0
	for _, row := range cp437Rows {
		for _, r := range row {
			cp437ToRune[i] = r
			runeToCP437[r] = uint32(i)
			i++
		}
	}
	if i != 256 {
		panic("rex: cp437 table must have 256 entries")
	}
}

// ToCP437 converts a rune to the glyph code stored in .xp files. Runes above
// the Latin-1 range that have no CP437 equivalent are stored as their code
// point so they survive a round trip, although REX Paint cannot display them.
// Unmappable Latin-1 runes become '?'.
func ToCP437(r rune) uint32 {
	if code, ok := runeToCP437[r]; ok {
		return code
	}
	if r > 0xff {
		return uint32(r)
	}
	return '?'
}

// FromCP437 converts a stored glyph code back to a rune.
func FromCP437(code uint32) rune {
	if code < 256 {
		return cp437ToRune[code]
	}
	return rune(code)
}
