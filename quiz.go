package docquiz

import (
	"context"
	"encoding/json"
	"strings"
)

// OptionCount is the number of answers every quiz offers.
const OptionCount = 4

// Quiz is a multiple-choice question generated from a documentation block.
type Quiz struct {
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Option is one possible answer to a Quiz.
type Option struct {
	Answer  string `json:"answer"`
	Correct bool   `json:"correct"`
}

// Validate returns an error if the quiz does not have the expected shape.
// The number of correct options is not checked; the prompt asks for exactly
// one and the reply is trusted on that point.
func (q *Quiz) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return Errorf(EMALFORMED, "malformed quiz reply: question required")
	}
	if len(q.Options) != OptionCount {
		return Errorf(EMALFORMED, "malformed quiz reply: expected %d options, got %d", OptionCount, len(q.Options))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt.Answer) == "" {
			return Errorf(EMALFORMED, "malformed quiz reply: option %d has no answer", i+1)
		}
	}
	return nil
}

// CorrectOptions returns the zero-based indexes of the options marked correct.
func (q *Quiz) CorrectOptions() []int {
	var idx []int
	for i, opt := range q.Options {
		if opt.Correct {
			idx = append(idx, i)
		}
	}
	return idx
}

// ParseQuiz decodes a completion reply into a Quiz.
// Newlines are stripped and a surrounding Markdown code fence is tolerated.
// Any decode or shape failure is reported as EMALFORMED.
func ParseQuiz(reply string) (*Quiz, error) {
	s := strings.ReplaceAll(reply, "\n", "")
	s = strings.TrimSpace(s)
	s = trimCodeFence(s)
	if s == "" {
		return nil, Errorf(EMALFORMED, "malformed quiz reply: empty reply")
	}

	var q Quiz
	if err := json.Unmarshal([]byte(s), &q); err != nil {
		return nil, Errorf(EMALFORMED, "malformed quiz reply: %v", err)
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return &q, nil
}

// trimCodeFence removes a ```json ... ``` wrapper once newlines are gone.
func trimCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(s)
}

// Round is a generated quiz together with the page it was built from.
type Round struct {
	Quiz      *Quiz
	SourceURL string
}

// QuizGenerator builds a quiz from a random page of a documentation tree.
type QuizGenerator interface {
	// Generate picks a page from links, picks a block from that page and
	// asks the completion service for a quiz about it.
	// Returns EINVALID if links is empty and EMALFORMED if the reply
	// cannot be decoded into a quiz.
	Generate(ctx context.Context, links []string) (*Round, error)
}
