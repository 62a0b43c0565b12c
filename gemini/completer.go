// Package gemini implements docquiz.Completer and docquiz.TokenCounter
// using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docquiz"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements docquiz.Completer at compile time.
var _ docquiz.Completer = (*Completer)(nil)

// Completer implements docquiz.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer for model.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Model returns the model identifier requests are sent to.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends messages to Gemini and returns the reply text.
// A response without text is an EINTERNAL error.
func (c *Completer) Complete(ctx context.Context, messages []docquiz.Message) (string, error) {
	contents, config, err := BuildRequest(messages)
	if err != nil {
		return "", err
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", c.model, err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", docquiz.Errorf(docquiz.EINTERNAL, "gemini returned no candidates")
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", docquiz.Errorf(docquiz.EINTERNAL, "gemini returned an empty reply")
	}
	return text, nil
}

// BuildRequest maps role-tagged messages onto a Gemini request. System
// messages become parts of the system instruction, in order; user messages
// become user contents. At least one user message is required.
func BuildRequest(messages []docquiz.Message) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	var system []*genai.Part
	var contents []*genai.Content

	for _, msg := range messages {
		switch msg.Role {
		case docquiz.RoleSystem:
			system = append(system, &genai.Part{Text: msg.Content})
		case docquiz.RoleUser:
			contents = append(contents, &genai.Content{
				Role:  "user",
				Parts: []*genai.Part{{Text: msg.Content}},
			})
		default:
			return nil, nil, docquiz.Errorf(docquiz.EINVALID, "unsupported message role %q", msg.Role)
		}
	}
	if len(contents) == 0 {
		return nil, nil, docquiz.Errorf(docquiz.EINVALID, "at least one user message required")
	}

	return contents, BuildConfig(system), nil
}

// BuildConfig returns the GenerateContentConfig for quiz requests.
func BuildConfig(system []*genai.Part) *genai.GenerateContentConfig {
	temp := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
	if len(system) > 0 {
		config.SystemInstruction = &genai.Content{Parts: system}
	}
	return config
}
