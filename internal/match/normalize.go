package match

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and removes separator runes.
//
// Separators are '_', '-', '.', '/', ':' and whitespace, which covers
// crate-style names ("bevy_ecs"), module paths ("example.com/ecs") and
// qualified paths ("ecs::Component").
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', '/', ':':
		return true
	}

	return unicode.IsSpace(r)
}
