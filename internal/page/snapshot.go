// A Snapshot is a read-only view of the page a navigator is currently on:
// its URL plus a parsed document tree. Adapters only ever see snapshots, so
// the same extraction code runs against a live browser page, fetched HTML,
// or a test fixture.

package page

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type Snapshot struct {
	URL string
	Doc *goquery.Document

	base *url.URL
}

func New(pageURL, html string) (*Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	base, _ := url.Parse(pageURL)
	return &Snapshot{URL: pageURL, Doc: doc, base: base}, nil
}

// Resolve makes a possibly-relative href absolute against the snapshot URL.
func (s *Snapshot) Resolve(href string) string {
	href = strings.TrimSpace(href)
	if s.base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return s.base.ResolveReference(ref).String()
}

// BodyText returns the full visible text of the page body.
func (s *Snapshot) BodyText() string {
	return s.Doc.Find("body").Text()
}
