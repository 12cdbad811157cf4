package corpus

import (
	"regexp"
	"strings"
)

var (
	commentRE  = regexp.MustCompile(`(?s)<!--.*?-->`)
	refRE      = regexp.MustCompile(`(?si)<ref[^>/]*/>|<ref[^>]*>.*?</ref>`)
	tagRE      = regexp.MustCompile(`(?s)<[^>]+>`)
	fileLinkRE = regexp.MustCompile(`(?i)\[\[(?:Fayl|File|Şəkil|Image|Kateqoriya|Category):[^\[\]]*(?:\[\[[^\[\]]*\]\][^\[\]]*)*\]\]`)
	linkRE     = regexp.MustCompile(`\[\[([^\[\]|]*)(?:\|([^\[\]]*))?\]\]`)
	extLinkRE  = regexp.MustCompile(`\[https?://[^\s\]]+(?:\s+([^\]]*))?\]`)
	headingRE  = regexp.MustCompile(`(?m)^=+\s*(.*?)\s*=+\s*$`)
	quotesRE   = regexp.MustCompile(`'{2,}`)
	listRE     = regexp.MustCompile(`(?m)^[*#:;]+\s*`)
	spaceRE    = regexp.MustCompile(`[ \t]+`)
	blanksRE   = regexp.MustCompile(`\n{3,}`)
)

// CleanWikitext strips MediaWiki markup down to plain text: templates,
// comments, refs and HTML tags, tables, file/category links, link syntax,
// headings, list markers, and bold/italic quoting. Paragraph breaks survive
// as newlines; runs of blank lines collapse to one.
func CleanWikitext(src string) string {
	s := commentRE.ReplaceAllString(src, " ")
	s = refRE.ReplaceAllString(s, " ")
	s = stripTemplates(s)
	s = stripTables(s)
	s = tagRE.ReplaceAllString(s, " ")
	s = fileLinkRE.ReplaceAllString(s, " ")
	// Piped links keep their label, bare links keep their target.
	s = linkRE.ReplaceAllStringFunc(s, func(m string) string {
		sub := linkRE.FindStringSubmatch(m)
		if sub[2] != "" {
			return sub[2]
		}
		return sub[1]
	})
	s = extLinkRE.ReplaceAllString(s, "$1")
	s = headingRE.ReplaceAllString(s, "$1")
	s = quotesRE.ReplaceAllString(s, "")
	s = listRE.ReplaceAllString(s, "")

	s = spaceRE.ReplaceAllString(s, " ")
	s = blanksRE.ReplaceAllString(s, "\n\n")

	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, strings.TrimSpace(line))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// stripTemplates removes {{...}} blocks, tracking nesting depth so
// templates inside templates disappear with their parent.
func stripTemplates(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	depth := 0
	for i := 0; i < len(s); i++ {
		if i+1 < len(s) {
			switch {
			case s[i] == '{' && s[i+1] == '{':
				depth++
				i++
				continue
			case s[i] == '}' && s[i+1] == '}' && depth > 0:
				depth--
				i++
				continue
			}
		}
		if depth == 0 {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// stripTables removes {| ... |} table blocks, including nested ones.
func stripTables(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	depth := 0
	for i := 0; i < len(s); i++ {
		if i+1 < len(s) {
			switch {
			case s[i] == '{' && s[i+1] == '|':
				depth++
				i++
				continue
			case s[i] == '|' && s[i+1] == '}' && depth > 0:
				depth--
				i++
				continue
			}
		}
		if depth == 0 {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
