// Package corpus collects and persists the Azerbaijani Wikipedia corpus.
//
// Articles arrive through two paths: the live MediaWiki API (Client) for
// random or per-category samples, and offline XML dumps (ReadDump) for
// full-corpus runs. Both paths produce the same Page records: cleaned plain
// text plus enough revision metadata to reproduce the exact snapshot later.
// Pages are persisted as a flat CSV with one row per document.
package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// DefaultMinChars drops documents whose cleaned text is shorter than this;
// stub articles carry almost no usable language data.
const DefaultMinChars = 200

// ErrCorruptCorpus reports a corpus CSV that cannot be parsed back.
var ErrCorruptCorpus = errors.New("corpus: corrupt corpus file")

// Page is one collected article.
type Page struct {
	PageID     int64
	Title      string
	RevisionID int64
	Timestamp  string
	URL        string
	Text       string
}

// PageURL builds the canonical article URL for a title.
func PageURL(title string) string {
	return "https://az.wikipedia.org/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

var csvHeader = []string{"doc_id", "page_id", "title", "revision_id", "timestamp", "source", "url", "text"}

// WriteCSV serializes pages with one row per document.
func WriteCSV(w io.Writer, pages []Page) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, p := range pages {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatInt(p.PageID, 10),
			p.Title,
			strconv.FormatInt(p.RevisionID, 10),
			p.Timestamp,
			"az.wikipedia.org",
			p.URL,
			p.Text,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes pages to path, replacing any previous file.
func SaveCSV(path string, pages []Page) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, pages); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadCSV parses a corpus written by WriteCSV.
func ReadCSV(r io.Reader) ([]Page, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCorpus, err)
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return nil, fmt.Errorf("%w: unexpected header %v", ErrCorruptCorpus, header)
		}
	}

	var pages []Page
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptCorpus, err)
		}
		pageID, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: page_id %q", ErrCorruptCorpus, line, row[1])
		}
		revID, err := strconv.ParseInt(row[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: revision_id %q", ErrCorruptCorpus, line, row[3])
		}
		pages = append(pages, Page{
			PageID:     pageID,
			Title:      row[2],
			RevisionID: revID,
			Timestamp:  row[4],
			URL:        row[6],
			Text:       row[7],
		})
	}
	return pages, nil
}

// LoadCSV reads a corpus file from disk.
func LoadCSV(path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// Texts extracts the document texts in corpus order.
func Texts(pages []Page) []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.Text
	}
	return out
}
