// Package azcase provides Azerbaijani (Turkic) case conversion.
//
// Azerbaijani distinguishes dotted and dotless I, which standard Unicode
// case mapping gets wrong:
//   - I (U+0049) lowercases to ı (U+0131), not i
//   - İ (U+0130) lowercases to i (U+0069)
//   - i (U+0069) uppercases to İ (U+0130), not I
//   - ı (U+0131) uppercases to I (U+0049)
//
// Every other rune falls through to the standard Unicode mapping.
// All functions are safe for concurrent use.
package azcase

import (
	"strings"
	"unicode"
)

// Lower returns the Azerbaijani-aware lowercase form of r.
func Lower(r rune) rune {
	switch r {
	case 'I':
		return 'ı'
	case 'İ':
		return 'i'
	}
	return unicode.ToLower(r)
}

// Upper returns the Azerbaijani-aware uppercase form of r.
func Upper(r rune) rune {
	switch r {
	case 'i':
		return 'İ'
	case 'ı':
		return 'I'
	}
	return unicode.ToUpper(r)
}

// ToLower lowercases every rune of s with Azerbaijani rules.
func ToLower(s string) string {
	return strings.Map(Lower, s)
}

// ToUpper uppercases every rune of s with Azerbaijani rules.
func ToUpper(s string) string {
	return strings.Map(Upper, s)
}
