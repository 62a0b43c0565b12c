package mock

import (
	"context"

	"github.com/fwojciec/docquiz"
)

var _ docquiz.Completer = (*Completer)(nil)

// Completer is a mock implementation of docquiz.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, messages []docquiz.Message) (string, error)
	ModelFn    func() string
}

func (c *Completer) Complete(ctx context.Context, messages []docquiz.Message) (string, error) {
	return c.CompleteFn(ctx, messages)
}

func (c *Completer) Model() string {
	if c.ModelFn == nil {
		return ""
	}
	return c.ModelFn()
}
