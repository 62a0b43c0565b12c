package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docquiz"
)

// Ensure LoggingCompleter implements docquiz.Completer.
var _ docquiz.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with debug logging.
type LoggingCompleter struct {
	next   docquiz.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next docquiz.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete logs the model, prompt and reply sizes and delegates to the
// wrapped completer.
func (c *LoggingCompleter) Complete(ctx context.Context, messages []docquiz.Message) (reply string, err error) {
	defer func(begin time.Time) {
		c.logger.DebugContext(ctx, "complete",
			"model", c.next.Model(),
			"messages", len(messages),
			"prompt_bytes", promptBytes(messages),
			"reply_bytes", len(reply),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, messages)
}

// Model delegates to the wrapped completer.
func (c *LoggingCompleter) Model() string {
	return c.next.Model()
}

func promptBytes(messages []docquiz.Message) int {
	n := 0
	for _, msg := range messages {
		n += len(msg.Content)
	}
	return n
}
