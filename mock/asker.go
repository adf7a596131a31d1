package mock

import (
	"context"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

var _ posgrados.Asker = (*Asker)(nil)

// Asker is a mock implementation of posgrados.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (*posgrados.Answer, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (*posgrados.Answer, error) {
	return a.AskFn(ctx, question)
}

var _ posgrados.Generator = (*Generator)(nil)

// Generator is a mock implementation of posgrados.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) (*posgrados.Generation, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string) (*posgrados.Generation, error) {
	return g.GenerateFn(ctx, prompt)
}
