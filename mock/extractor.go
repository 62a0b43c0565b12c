package mock

import "github.com/fwojciec/docquiz"

var _ docquiz.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of docquiz.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]string, error) {
	return s.ExtractLinksFn(html, baseURL)
}

var _ docquiz.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of docquiz.ContentExtractor.
type ContentExtractor struct {
	ExtractBlocksFn func(html string) ([]string, error)
}

func (e *ContentExtractor) ExtractBlocks(html string) ([]string, error) {
	return e.ExtractBlocksFn(html)
}
