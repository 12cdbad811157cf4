package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/Kamal578/CSCI-6515-Project1/internal/azcase"
)

// punctFolder maps Wikipedia-ish punctuation variants onto their plain forms.
// Applied after NFC so decomposed diacritics are already recomposed.
var punctFolder = strings.NewReplacer(
	" ", " ", // no-break space
	"’", "'", // right single quote
	"‘", "'", // left single quote
	"–", "-", // en dash
	"—", "-", // em dash
)

// Normalize brings raw article text into the canonical form the rest of the
// pipeline expects: Unicode NFC, folded punctuation variants, and runs of
// whitespace collapsed to single spaces (newlines are kept so that line-based
// residue stripping still works).
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	s = punctFolder.Replace(s)

	var sb strings.Builder
	sb.Grow(len(s))
	space := false
	for _, r := range s {
		if r == '\n' {
			sb.WriteRune('\n')
			space = false
			continue
		}
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		space = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// residueHeadings are section headings that mark the non-prose tail of an
// Azerbaijani Wikipedia article: category links, references, notes, and
// further-reading lists. Lines starting with one of these (optionally after
// whitespace) are dropped entirely; inline "heading:" occurrences are cut too.
var residueHeadings = []string{
	"kateqoriya",
	"istinadlar",
	"qeydlər",
	"əlavə ədəbiyyat",
	"xarici keçidlər",
	"həmçinin bax",
}

// StripWikiResidue removes category/reference/navigation residue left over
// after wikitext cleaning. The heading match is case-insensitive.
func StripWikiResidue(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if isResidueLine(line) {
			continue
		}
		kept = append(kept, stripInlineResidue(line))
	}
	return strings.Join(kept, "\n")
}

func isResidueLine(line string) bool {
	trimmed := azcase.ToLower(strings.TrimSpace(line))
	for _, h := range residueHeadings {
		if !strings.HasPrefix(trimmed, h) {
			continue
		}
		rest := trimmed[len(h):]
		// The heading must stand alone or be followed by a separator,
		// so that e.g. "kateqoriyalı" (a real word) survives.
		if rest == "" || rest[0] == ' ' || rest[0] == ':' {
			return true
		}
	}
	return false
}

func stripInlineResidue(line string) string {
	lower := azcase.ToLower(line)
	for _, h := range residueHeadings {
		for {
			i := strings.Index(lower, h+":")
			if i < 0 {
				break
			}
			end := i + len(h) + 1
			line = line[:i] + " " + line[end:]
			lower = lower[:i] + " " + lower[end:]
		}
	}
	return line
}

// trimSpace is strings.TrimSpace; aliased so sentence assembly reads clearly.
func trimSpace(s string) string { return strings.TrimSpace(s) }
