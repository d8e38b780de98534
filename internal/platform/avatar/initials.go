package avatar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Initials builds the avatar fallback from the first letter of each word.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
