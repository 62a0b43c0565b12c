package docquiz

import (
	"regexp"
	"strings"
)

// BoilerplatePhrases marks blocks that hold page chrome rather than
// documentation. A block containing any of them is dropped.
var BoilerplatePhrases = []string{
	"Table of Contents",
	"Report a Bug",
	"index",
	"Show Source",
	"Previous topic",
	"Next topic",
	"This Page",
	"Navigation",
	"Python 3.11.3 documentation",
}

// ContentExtractor splits a documentation page into text blocks.
type ContentExtractor interface {
	// ExtractBlocks returns one block per heading boundary, normalized
	// and with boilerplate removed. The result may be empty.
	ExtractBlocks(html string) ([]string, error)
}

// RE2's \s only matches [\t\n\f\r ]. The class adds \v, the ASCII
// separators, NEL and every Unicode space separator such as &nbsp;.
var whitespaceRe = regexp.MustCompile(`[\s\p{Z}\x{0B}\x{1C}-\x{1F}\x{85}]+`)

// NormalizeWhitespace collapses every whitespace run, newlines included,
// into a single space.
func NormalizeWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(s, " ")
}

// IsBoilerplate reports whether s contains one of BoilerplatePhrases.
func IsBoilerplate(s string) bool {
	for _, phrase := range BoilerplatePhrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}

// CleanBlocks normalizes whitespace in each block and drops boilerplate
// blocks. Order is preserved and empty blocks are kept.
func CleanBlocks(blocks []string) []string {
	cleaned := make([]string, 0, len(blocks))
	for _, block := range blocks {
		block = NormalizeWhitespace(block)
		if IsBoilerplate(block) {
			continue
		}
		cleaned = append(cleaned, block)
	}
	return cleaned
}
