package shared

import (
	"unicode"
	"unicode/utf8"
)

// ToTitle upper-cases the first rune of s.
func ToTitle(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
