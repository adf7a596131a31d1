package mock

import (
	"context"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

var _ posgrados.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of posgrados.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, question string) (*posgrados.ProgramContext, error)
}

func (r *Retriever) Retrieve(ctx context.Context, question string) (*posgrados.ProgramContext, error) {
	return r.RetrieveFn(ctx, question)
}
