package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docquiz"
)

// Ensure LoggingGenerator implements docquiz.QuizGenerator.
var _ docquiz.QuizGenerator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a QuizGenerator with logging of each round.
type LoggingGenerator struct {
	next   docquiz.QuizGenerator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next docquiz.QuizGenerator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate logs the source page and question of the round. Failures are
// returned to the game, so they only show up at debug level.
func (g *LoggingGenerator) Generate(ctx context.Context, links []string) (round *docquiz.Round, err error) {
	defer func(begin time.Time) {
		if err != nil {
			g.logger.DebugContext(ctx, "generate",
				"links", len(links),
				"code", docquiz.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		g.logger.InfoContext(ctx, "generate",
			"url", round.SourceURL,
			"question", round.Quiz.Question,
			"correct", len(round.Quiz.CorrectOptions()),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return g.next.Generate(ctx, links)
}
