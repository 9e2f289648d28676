package textutil

import (
	"strings"
	"unicode"
)

var cjkTables = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Hangul,
	unicode.Bopomofo,
	unicode.Yi,
}

func isCJK(r rune) bool {
	if r >= 0xFF00 && r <= 0xFFEF { // halfwidth and fullwidth forms
		return true
	}
	if r >= 0x3000 && r <= 0x303F { // CJK symbols and punctuation
		return true
	}
	return unicode.In(r, cjkTables...)
}

// CollapseCJKSpaces removes a space only when both of its neighbouring
// runes belong to CJK/fullwidth scripts. Streaming transcription tends
// to insert word boundaries into languages that do not use them; text
// in space-delimited scripts is left untouched.
func CollapseCJKSpaces(s string) string {
	if !strings.ContainsRune(s, ' ') {
		return s
	}

	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for i, r := range runes {
		if r == ' ' && i > 0 && i < len(runes)-1 &&
			isCJK(runes[i-1]) && isCJK(runes[i+1]) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
