package rag

import (
	"context"
	"time"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

var _ posgrados.Asker = (*RawAsker)(nil)

// RawAsker answers questions grounded on the raw page-text cache
// instead of the structured records. It trades precision for coverage:
// everything the catalog pages say is in scope, but nothing is matched
// to a specific program.
type RawAsker struct {
	Cache     posgrados.ContextCache
	Generator posgrados.Generator
	Logs      posgrados.QueryLogService

	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// Ask serves one question against the cached catalog text.
func (a *RawAsker) Ask(ctx context.Context, question string) (*posgrados.Answer, error) {
	if err := validateQuestion(question); err != nil {
		return nil, err
	}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	begin := now()

	text, err := a.Cache.Context(ctx)
	if err != nil {
		return nil, err
	}

	prompt := posgrados.BuildRawPrompt(question, text)

	answer := &posgrados.Answer{}
	gen, err := a.Generator.Generate(ctx, prompt)
	if err != nil {
		answer.Text = degradedAnswer
	} else {
		answer.Text = gen.Text
		answer.Tokens = gen.Tokens
	}
	answer.LatencyMS = int(now().Sub(begin) / time.Millisecond)

	if a.Logs != nil {
		_ = a.Logs.LogQuery(ctx, &posgrados.QueryLog{
			Question:  question,
			Answer:    answer.Text,
			LatencyMS: answer.LatencyMS,
			Tokens:    answer.Tokens,
		})
	}

	return answer, nil
}
