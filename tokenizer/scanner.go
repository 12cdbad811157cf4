package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// scan splits s into tokens with a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - Number grouping (dot as thousand separator, comma as decimal)
//   - Hyphen joining (single U+002D between letters/digits)
//   - Apostrophe joining (U+0027, U+2019, U+02BC between letters)
//   - Default unicode classification
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		switch {
		case unicode.IsSpace(r):
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})

		case unicode.IsDigit(r):
			tok := scanNumber(s, i)
			tokens = append(tokens, tok)
			i = tok.End

		case unicode.IsLetter(r):
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End

		case unicode.IsPunct(r):
			start := i
			i += size
			// Runs of hyphens ("--", "---") collapse into one token so a
			// dash between spaces never glues onto a word.
			if r == '-' {
				for i < len(s) && s[i] == '-' {
					i++
				}
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})

		default:
			tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
			i += size
		}
	}

	return tokens
}

// scanNumber reads a number starting at pos. Thousand-separator dots must
// group exactly three digits; a decimal comma must be followed by a digit.
func scanNumber(s string, pos int) Token {
	i := pos
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}

	// \d{1,3}(\.\d{3})+ style separators.
	for i+3 < len(s) && s[i] == '.' && isDigitByte(s[i+1]) && isDigitByte(s[i+2]) && isDigitByte(s[i+3]) {
		if i+4 < len(s) && isDigitByte(s[i+4]) {
			break // four digits after the dot: not a thousands group
		}
		i += 4
	}

	if i+1 < len(s) && s[i] == ',' && isDigitByte(s[i+1]) {
		i++
		for i < len(s) && isDigitByte(s[i]) {
			i++
		}
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Number}
}

// scanWord reads a word starting at pos. A word is a run of letters that may
// continue across a single internal hyphen (letters/digits on both sides) or
// an internal apostrophe (letters on both sides).
func scanWord(s string, pos int) Token {
	i := consumeLetters(s, pos)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if r == '-' {
			next := i + size
			if next >= len(s) || s[next] == '-' {
				break
			}
			nr, _ := utf8.DecodeRuneInString(s[next:])
			if !unicode.IsLetter(nr) && !unicode.IsDigit(nr) {
				break
			}
			i = consumeAlnum(s, next)
			continue
		}

		if isApostrophe(r) {
			next := i + size
			if next >= len(s) {
				break
			}
			nr, _ := utf8.DecodeRuneInString(s[next:])
			if !unicode.IsLetter(nr) {
				break
			}
			i = consumeLetters(s, next)
			continue
		}

		break
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

func consumeLetters(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) {
			break
		}
		pos += size
	}
	return pos
}

func consumeAlnum(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		pos += size
	}
	return pos
}

// isApostrophe reports whether r is an apostrophe character
// (ASCII apostrophe, right single quote, or modifier letter apostrophe).
func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == 'ʼ'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
