// Package quiz turns documentation pages into quiz rounds and runs the
// interactive game over them.
package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/fwojciec/docquiz"
)

// DefaultMaxPageAttempts is how many pages Generate samples before giving up
// on finding one with usable content.
const DefaultMaxPageAttempts = 5

var _ docquiz.QuizGenerator = (*Generator)(nil)

// Generator builds quiz rounds from random documentation blocks.
type Generator struct {
	Fetcher   docquiz.Fetcher
	Extractor docquiz.ContentExtractor
	Completer docquiz.Completer

	// TokenCounter and MaxBlockTokens optionally exclude blocks that are
	// too long to send. Both must be set for the limit to apply.
	TokenCounter   docquiz.TokenCounter
	MaxBlockTokens int

	// MaxPageAttempts defaults to DefaultMaxPageAttempts when zero.
	MaxPageAttempts int

	// Rand is the source of page and block choices. Nil uses the
	// package-level generator.
	Rand *rand.Rand
}

// Generate picks a page uniformly from links, picks one of its non-blank
// blocks uniformly, and asks the completer for a quiz about it.
//
// Pages without a usable block are re-sampled. Fetch, completion and
// decode errors are returned as they are; nothing is retried.
func (g *Generator) Generate(ctx context.Context, links []string) (*docquiz.Round, error) {
	if len(links) == 0 {
		return nil, docquiz.Errorf(docquiz.EINVALID, "no documentation links to choose from")
	}

	attempts := g.MaxPageAttempts
	if attempts <= 0 {
		attempts = DefaultMaxPageAttempts
	}

	for range attempts {
		link := links[g.intN(len(links))]

		html, err := g.Fetcher.Fetch(ctx, link)
		if err != nil {
			return nil, err
		}

		blocks, err := g.Extractor.ExtractBlocks(html)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", link, err)
		}

		candidates, err := g.candidates(ctx, blocks)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			continue
		}
		block := candidates[g.intN(len(candidates))]

		reply, err := g.Completer.Complete(ctx, BuildMessages(block))
		if err != nil {
			return nil, err
		}

		q, err := docquiz.ParseQuiz(reply)
		if err != nil {
			return nil, err
		}

		return &docquiz.Round{Quiz: q, SourceURL: link}, nil
	}

	return nil, docquiz.Errorf(docquiz.ENOTFOUND, "no quiz content found in %d sampled pages", attempts)
}

// candidates returns the blocks worth asking about.
func (g *Generator) candidates(ctx context.Context, blocks []string) ([]string, error) {
	var out []string
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		if g.TokenCounter != nil && g.MaxBlockTokens > 0 {
			n, err := g.TokenCounter.CountTokens(ctx, block)
			if err != nil {
				return nil, fmt.Errorf("counting tokens: %w", err)
			}
			if n > g.MaxBlockTokens {
				continue
			}
		}
		out = append(out, block)
	}
	return out, nil
}

func (g *Generator) intN(n int) int {
	if g.Rand != nil {
		return g.Rand.IntN(n)
	}
	return rand.IntN(n)
}
