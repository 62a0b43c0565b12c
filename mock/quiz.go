package mock

import (
	"context"

	"github.com/fwojciec/docquiz"
)

var _ docquiz.QuizGenerator = (*QuizGenerator)(nil)

// QuizGenerator is a mock implementation of docquiz.QuizGenerator.
type QuizGenerator struct {
	GenerateFn func(ctx context.Context, links []string) (*docquiz.Round, error)
}

func (g *QuizGenerator) Generate(ctx context.Context, links []string) (*docquiz.Round, error) {
	return g.GenerateFn(ctx, links)
}
