// Package html implements docquiz.ContentExtractor with a streaming
// golang.org/x/net/html tokenizer.
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/docquiz"
	"golang.org/x/net/html"
)

var _ docquiz.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor splits a page into heading-delimited text blocks.
//
// A block is emitted each time a heading (h1-h6) opens, holding the text seen
// since the previous heading opened. The text of a heading therefore belongs
// to the block emitted at the next heading. While a heading is open, nested
// heading tags are ignored and their text merges into the open block.
type ContentExtractor struct {
	flushTrailing bool
}

// Option configures a ContentExtractor.
type Option func(*ContentExtractor)

// WithoutTrailingFlush discards text that follows the last heading instead
// of emitting it as a final block.
func WithoutTrailingFlush() Option {
	return func(e *ContentExtractor) {
		e.flushTrailing = false
	}
}

// NewContentExtractor creates a new ContentExtractor. By default the text
// after the last heading is emitted as a final block.
func NewContentExtractor(opts ...Option) *ContentExtractor {
	e := &ContentExtractor{flushTrailing: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractBlocks scans html and returns cleaned blocks in document order.
// Whitespace is normalized and boilerplate blocks are dropped.
func (e *ContentExtractor) ExtractBlocks(s string) ([]string, error) {
	p := &scanner{}
	z := html.NewTokenizer(strings.NewReader(s))

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, docquiz.Errorf(docquiz.EINVALID, "failed to tokenize HTML: %v", err)
			}
			if e.flushTrailing {
				p.flush()
			}
			return docquiz.CleanBlocks(p.blocks), nil
		case html.TextToken:
			p.text(z.Text())
		case html.StartTagToken:
			name, _ := z.TagName()
			p.start(string(name))
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			p.start(string(name))
			p.end(string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			p.end(string(name))
		}
	}
}

// scanner holds the state of a single extraction.
type scanner struct {
	blocks  []string
	current strings.Builder
	open    string // heading tag currently open, "" if none
}

func (p *scanner) text(b []byte) {
	p.current.Write(b)
}

func (p *scanner) start(tag string) {
	if !isHeading(tag) || p.open != "" {
		return
	}
	p.open = tag
	p.flush()
}

func (p *scanner) end(tag string) {
	if tag == p.open {
		p.open = ""
	}
}

func (p *scanner) flush() {
	p.blocks = append(p.blocks, p.current.String())
	p.current.Reset()
}

func isHeading(tag string) bool {
	return len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6'
}
