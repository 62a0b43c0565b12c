// Package docquiz provides a terminal quiz game built from online
// documentation. It fetches documentation pages, extracts heading-delimited
// text blocks, asks a language model to turn one block into a multiple-choice
// question, and scores the player's answers.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, rod/).
package docquiz

// Default documentation tree quizzed when no other is configured.
const (
	DefaultIndexURL = "https://docs.python.org/3/library/index.html"
	DefaultBaseURL  = "https://docs.python.org/3/library/"
)
