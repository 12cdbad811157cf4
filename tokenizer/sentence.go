package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/Kamal578/CSCI-6515-Project1/internal/azcase"
)

// abbreviations holds lowercase abbreviated words (without the trailing dot)
// after which a period does not end a sentence.
var abbreviations = map[string]bool{
	"dr": true, "prof": true, "dos": true, "ak": true,
	"cən": true, "xan": true,
	"m": true, "s": true, "ş": true, "q": true, "b": true,
	"km": true, "kq": true, "sm": true, "mln": true, "mlrd": true,
	"e": true, "ə": true, // e.ə. (eramızdan əvvəl) initials
	"vb": true, "t": true, "k": true,
}

// sentenceTokens splits s into sentence tokens. Adjacent tokens cover the
// whole input without gaps: concatenating Token.Text values reconstructs s.
//
// A terminal cluster (".", "?", "!", "...", "?!") ends a sentence unless the
// word before it is a known abbreviation, a single-letter initial, or part
// of a decimal number, or unless what follows is not whitespace plus an
// uppercase letter or end of input.
func sentenceTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/40+1)
	sentStart := 0

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// A blank line always breaks, punctuation or not.
		if r == '\n' && i+1 < len(s) && s[i+1] == '\n' {
			j := i
			for j < len(s) && s[j] == '\n' {
				j++
			}
			tokens = append(tokens, Token{Text: s[sentStart:j], Start: sentStart, End: j, Type: Sentence})
			sentStart = j
			i = j
			continue
		}

		if r != '.' && r != '?' && r != '!' && r != '…' {
			i += size
			continue
		}

		// Consume the whole terminal cluster ("...", "?!", "!!!").
		j := i + size
		for j < len(s) {
			nr, ns := utf8.DecodeRuneInString(s[j:])
			if nr != '.' && nr != '?' && nr != '!' && nr != '…' {
				break
			}
			j += ns
		}

		if r == '.' && j == i+1 && suppressBreak(s, i) {
			i = j
			continue
		}

		if j >= len(s) || followedByBreakContext(s, j) {
			tokens = append(tokens, Token{Text: s[sentStart:j], Start: sentStart, End: j, Type: Sentence})
			sentStart = j
		}
		i = j
	}

	if sentStart < len(s) {
		tokens = append(tokens, Token{Text: s[sentStart:], Start: sentStart, End: len(s), Type: Sentence})
	}

	return tokens
}

// followedByBreakContext reports whether pos is followed by whitespace and
// then an uppercase letter, which is the signature of a real sentence start.
func followedByBreakContext(s string, pos int) bool {
	foundSpace := false
	i := pos
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			foundSpace = true
			i += size
			continue
		}
		return foundSpace && unicode.IsUpper(r)
	}
	return foundSpace // trailing whitespace: let the remainder logic finish it
}

// suppressBreak reports whether the single dot at dotPos belongs to an
// abbreviation, a run of initials (e.g. "H.Ə."), or a decimal number, in
// which case it does not end the sentence.
func suppressBreak(s string, dotPos int) bool {
	word, start := wordBefore(s, dotPos)
	if word == "" {
		return false
	}

	// Decimal like "3.14": digit on both sides of the dot.
	if isDigitByte(word[len(word)-1]) && dotPos+1 < len(s) && isDigitByte(s[dotPos+1]) {
		return true
	}

	lower := azcase.ToLower(word)
	if abbreviations[lower] {
		return true
	}

	// Initials: a single letter preceded by another "X." group.
	if utf8.RuneCountInString(word) == 1 && start > 0 && s[start-1] == '.' {
		return true
	}

	return false
}

// wordBefore extracts the letter-or-digit run immediately before pos.
// Returns the run and its starting byte offset, or ("", pos) if none.
func wordBefore(s string, pos int) (string, int) {
	i := pos
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		i -= size
	}
	if i == pos {
		return "", pos
	}
	return s[i:pos], i
}
