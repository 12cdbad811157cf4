package spell

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Kamal578/CSCI-6515-Project1/confusion"
	"github.com/Kamal578/CSCI-6515-Project1/internal/azcase"
	"github.com/Kamal578/CSCI-6515-Project1/tokenizer"
	"github.com/Kamal578/CSCI-6515-Project1/vocab"
)

// maxWordBytes caps the input length for word-level checks; anything longer
// is not a natural-language misspelling.
const maxWordBytes = 256

// maxInputBytes caps text-level correction input at 1 MiB.
const maxInputBytes = 1 << 20

// CheckerOptions tunes a Checker beyond the engine defaults.
type CheckerOptions struct {
	// Engine is passed through to CorrectWith.
	Engine Options

	// MaxCost rejects corrections costlier than this during CorrectWord
	// and CorrectText. Zero disables the cap.
	MaxCost float64
}

// Checker bundles a corpus vocabulary and a learned confusion matrix into a
// word- and text-level correction API. A Checker is immutable after
// construction and safe for concurrent use.
type Checker struct {
	table  vocab.Table
	words  []string
	matrix *confusion.Matrix
	opts   CheckerOptions
}

// NewChecker builds a Checker over the given frequency table and matrix.
// The table is not copied; callers must not mutate it afterwards.
func NewChecker(table vocab.Table, m *confusion.Matrix, opts CheckerOptions) *Checker {
	words := make([]string, 0, len(table))
	for w := range table {
		words = append(words, w)
	}
	sort.Strings(words)
	return &Checker{table: table, words: words, matrix: m, opts: opts}
}

// Vocabulary returns the sorted candidate list the checker corrects against.
func (c *Checker) Vocabulary() []string { return c.words }

// IsCorrect reports whether word is a known vocabulary entry after
// Azerbaijani lowercasing. Empty words, words containing digits, and
// oversized words are treated as correct. Hyphenated words are correct when
// every non-empty part is.
func (c *Checker) IsCorrect(word string) bool {
	if word == "" || len(word) > maxWordBytes {
		return true
	}

	lower := azcase.ToLower(word)

	if idx := strings.IndexByte(lower, '-'); idx > 0 && idx < len(lower)-1 {
		for _, part := range strings.Split(lower, "-") {
			if part != "" && !c.IsCorrect(part) {
				return false
			}
		}
		return true
	}

	for _, r := range lower {
		if unicode.IsDigit(r) {
			return true
		}
	}

	_, ok := c.table[lower]
	return ok
}

// Suggest returns the k cheapest corrections for word. The input is
// lowercased before ranking; the original case pattern is restored on every
// suggestion. A correct word suggests itself with cost zero.
func (c *Checker) Suggest(word string, k int) ([]Candidate, error) {
	lower := azcase.ToLower(word)
	out, err := CorrectWith(lower, c.words, c.matrix, k, c.opts.Engine)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Word = applyCase(word, out[i].Word)
	}
	return out, nil
}

// CorrectWord returns the cheapest correction for word, or word itself when
// it is already correct, nothing qualifies, or the best candidate exceeds
// MaxCost. The case pattern of the input is preserved.
func (c *Checker) CorrectWord(word string) string {
	if word == "" || len(word) > maxWordBytes || c.IsCorrect(word) {
		return word
	}
	out, err := c.Suggest(word, 1)
	if err != nil || len(out) == 0 {
		return word
	}
	if c.opts.MaxCost > 0 && out[0].Cost > c.opts.MaxCost {
		return word
	}
	return out[0].Word
}

// CorrectText returns text with every misspelled word replaced by its top
// correction. Spacing, punctuation, and numbers pass through untouched, as
// do title-case unknown words, which are usually proper nouns.
func (c *Checker) CorrectText(text string) string {
	if text == "" || len(text) > maxInputBytes {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))

	for _, tok := range tokenizer.Tokens(text) {
		if tok.Type != tokenizer.Word {
			sb.WriteString(tok.Text)
			continue
		}
		if isTitleCase(tok.Text) && !c.IsCorrect(tok.Text) {
			sb.WriteString(tok.Text)
			continue
		}
		sb.WriteString(c.CorrectWord(tok.Text))
	}

	return sb.String()
}

// isTitleCase reports whether s starts with an uppercase rune followed by at
// least one lowercase letter. All-uppercase words are acronyms, not
// title-case.
func isTitleCase(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return false
	}
	for _, c := range s[size:] {
		if unicode.IsLetter(c) && !unicode.IsUpper(c) {
			return true
		}
	}
	return false
}

// applyCase transfers the case pattern of original onto corrected:
// all-upper, first-rune-upper, or unchanged.
func applyCase(original, corrected string) string {
	if original == "" || corrected == "" {
		return corrected
	}
	if isAllUpper(original) {
		return azcase.ToUpper(corrected)
	}
	if r, _ := utf8.DecodeRuneInString(original); unicode.IsUpper(r) {
		return upperFirst(corrected)
	}
	return corrected
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size == 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	sb.WriteRune(azcase.Upper(r))
	sb.WriteString(s[size:])
	return sb.String()
}
