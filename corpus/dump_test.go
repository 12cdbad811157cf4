package corpus

import (
	"context"
	"strings"
	"testing"
)

const testDump = `<mediawiki xmlns="http://www.mediawiki.org/xml/export-0.10/" xml:lang="az">
  <siteinfo>
    <sitename>Vikipediya</sitename>
    <dbname>azwiki</dbname>
    <base>https://az.wikipedia.org/wiki/Ana_S%C9%99hif%C9%99</base>
    <generator>MediaWiki 1.42</generator>
    <case>first-letter</case>
    <namespaces>
      <namespace key="0" case="first-letter" />
    </namespaces>
  </siteinfo>
  <page>
    <title>Bakı</title>
    <ns>0</ns>
    <id>1</id>
    <revision>
      <id>100</id>
      <timestamp>2024-01-01T00:00:00Z</timestamp>
      <text>'''Bakı''' Azərbaycanın paytaxtı və ən böyük şəhəridir. Şəhər Xəzər dənizinin qərb sahilində yerləşir.</text>
    </revision>
  </page>
  <page>
    <title>Müzakirə:Bakı</title>
    <ns>1</ns>
    <id>2</id>
    <revision>
      <id>101</id>
      <timestamp>2024-01-01T00:00:00Z</timestamp>
      <text>müzakirə səhifəsi müzakirə səhifəsi müzakirə səhifəsi müzakirə səhifəsi</text>
    </revision>
  </page>
  <page>
    <title>Badkube</title>
    <ns>0</ns>
    <id>3</id>
    <redirect title="Bakı" />
    <revision>
      <id>102</id>
      <timestamp>2024-01-01T00:00:00Z</timestamp>
      <text>#REDIRECT [[Bakı]]</text>
    </revision>
  </page>
  <page>
    <title>Qaralama</title>
    <ns>0</ns>
    <id>4</id>
    <revision>
      <id>103</id>
      <timestamp>2024-01-01T00:00:00Z</timestamp>
      <text>qısa</text>
    </revision>
  </page>
</mediawiki>`

func TestReadDump(t *testing.T) {
	t.Parallel()

	pages, err := ReadDump(context.Background(), strings.NewReader(testDump), 50, 0)
	if err != nil {
		t.Fatalf("ReadDump: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("ReadDump kept %d pages, want 1: %+v", len(pages), pages)
	}
	p := pages[0]
	if p.Title != "Bakı" || p.PageID != 1 || p.RevisionID != 100 {
		t.Errorf("page = %+v", p)
	}
	if strings.Contains(p.Text, "'''") {
		t.Errorf("wikitext not cleaned: %q", p.Text)
	}
}

func TestReadDumpMaxPages(t *testing.T) {
	t.Parallel()

	// With the threshold lowered, both article-namespace non-redirects
	// qualify; maxPages keeps only the first.
	pages, err := ReadDump(context.Background(), strings.NewReader(testDump), 1, 1)
	if err != nil {
		t.Fatalf("ReadDump: %v", err)
	}
	if len(pages) != 1 || pages[0].Title != "Bakı" {
		t.Errorf("ReadDump = %+v, want only Bakı", pages)
	}
}
