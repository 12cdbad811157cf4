// Package tokenizer splits Azerbaijani Wikipedia text into normalized word
// tokens and sentences.
//
// The package provides two API layers:
//
//   - Structured: Tokens returns []Token with byte offsets and type
//     metadata. The invariant s[t.Start:t.End] == t.Text holds for every
//     token, and concatenating all token texts reconstructs the input.
//
//   - Convenience: Words and Sentences return []string. Words runs the full
//     corpus normalization pass (NFC composition, punctuation folding, wiki
//     residue stripping) before scanning, so its output is what the
//     frequency table, BPE trainer, and spell-check vocabulary consume.
//
// Case folding is controlled by a single flag on Words and must be set the
// same way at corpus-build time and at query time; mixed-case tables and
// lowercase queries do not line up.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Sentence splitting does not track quote or parenthesis nesting.
//   - Hyphen-joined words keep the hyphen; callers that want the parts
//     separately should post-process.
package tokenizer

import (
	"fmt"

	"github.com/Kamal578/CSCI-6515-Project1/internal/azcase"
)

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // alphabetic run, may contain internal hyphens/apostrophes
	Number                       // digits with thousand-separator dots or a decimal comma
	Punctuation                  // punctuation marks
	Space                        // contiguous whitespace
	Symbol                       // anything else (emoji, math symbols, stray bytes)
	Sentence                     // produced only by SentenceTokens
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	case Sentence:
		return "Sentence"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a unit of text with its position and classification.
type Token struct {
	Text  string
	Start int // byte offset, inclusive
	End   int // byte offset, exclusive
	Type  TokenType
}

// String returns a debug representation, e.g. Word("salam")[0:5].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Tokens splits s into tokens with byte offsets. The input is scanned as-is:
// no normalization is applied, so offsets refer to the original string.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Words normalizes s (NFC, punctuation folding, wiki residue stripping) and
// returns its Word and Number token texts in order. When lowercase is true
// every word is folded with Azerbaijani casing rules before being returned.
// Numbers keep their surface form either way.
func Words(s string, lowercase bool) []string {
	s = StripWikiResidue(Normalize(s))
	if s == "" {
		return nil
	}
	toks := scan(s)
	words := make([]string, 0, len(toks)/2+1)
	for _, t := range toks {
		switch t.Type {
		case Word:
			if lowercase {
				words = append(words, azcase.ToLower(t.Text))
			} else {
				words = append(words, t.Text)
			}
		case Number:
			words = append(words, t.Text)
		}
	}
	return words
}

// SentenceTokens splits s into sentence-level tokens with byte offsets.
// Concatenating the token texts reconstructs s exactly.
func SentenceTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return sentenceTokens(s)
}

// Sentences returns trimmed sentence strings from s, after normalization and
// wiki residue stripping. Empty sentences are dropped.
func Sentences(s string) []string {
	s = StripWikiResidue(Normalize(s))
	if s == "" {
		return nil
	}
	toks := sentenceTokens(s)
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		if trimmed := trimSpace(t.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
