// Package slog provides logging decorators for the catalog services.
package slog

import (
	"context"
	"log/slog"
	"time"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

// Ensure LoggingAsker implements posgrados.Asker.
var _ posgrados.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging for each served question.
type LoggingAsker struct {
	next   posgrados.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next posgrados.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the operation.
func (a *LoggingAsker) Ask(ctx context.Context, question string) (answer *posgrados.Answer, err error) {
	defer func(begin time.Time) {
		matched := ""
		tokens := 0
		if answer != nil {
			matched = answer.MatchedProgram
			tokens = answer.Tokens
		}
		a.logger.Info("ask",
			"question_len", len(question),
			"matched", matched,
			"tokens", tokens,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, question)
}
