// Package goquery implements link extraction for documentation index pages
// using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docquiz"
)

var _ docquiz.LinkSelector = (*LinkSelector)(nil)

// internalReferenceSelector matches anchors whose class attribute is exactly
// the internal reference marker. Anchors carrying extra classes do not match.
var internalReferenceSelector = `a[class="` + docquiz.InternalReferenceClass + `"]`

// LinkSelector extracts internal reference links from Sphinx-style
// documentation index pages.
type LinkSelector struct{}

// NewLinkSelector creates a new LinkSelector.
func NewLinkSelector() *LinkSelector {
	return &LinkSelector{}
}

// ExtractLinks returns baseURL+href for every internal reference anchor,
// in document order. Duplicates are kept. Malformed markup yields fewer
// links rather than an error.
func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docquiz.Errorf(docquiz.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []string
	doc.Find(internalReferenceSelector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		links = append(links, baseURL+href)
	})

	return links, nil
}
