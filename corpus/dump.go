package corpus

import (
	"context"
	"io"

	"github.com/dustin/go-wikiparse"
)

// ReadDump streams pages out of a MediaWiki XML dump. Non-article
// namespaces and redirects are skipped; surviving pages are cleaned the same
// way API-fetched ones are and filtered by minChars (0 selects
// DefaultMinChars). maxPages caps the result, 0 means unlimited.
func ReadDump(ctx context.Context, r io.Reader, minChars, maxPages int) ([]Page, error) {
	if minChars <= 0 {
		minChars = DefaultMinChars
	}

	parser, err := wikiparse.NewParser(r)
	if err != nil {
		return nil, err
	}

	var pages []Page
	for maxPages == 0 || len(pages) < maxPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := parser.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if p.Ns != 0 || p.Redir.Title != "" || len(p.Revisions) == 0 {
			continue
		}
		rev := p.Revisions[0]
		text := CleanWikitext(rev.Text)
		if len(text) < minChars {
			continue
		}
		pages = append(pages, Page{
			PageID:     int64(p.ID),
			Title:      p.Title,
			RevisionID: int64(rev.ID),
			Timestamp:  rev.Timestamp,
			URL:        PageURL(p.Title),
			Text:       text,
		})
	}
	return pages, nil
}
