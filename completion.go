package docquiz

import "context"

// Role tags who a Message speaks for.
type Role string

// Message roles understood by completion services.
const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged entry of a completion prompt.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Completer submits a prompt to a text-generation service.
type Completer interface {
	// Complete sends messages in order and returns the text of the reply.
	// An empty or missing reply is an error, never an empty string.
	Complete(ctx context.Context, messages []Message) (string, error)

	// Model returns the identifier of the model replies come from.
	Model() string
}
