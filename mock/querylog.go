package mock

import (
	"context"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

var _ posgrados.QueryLogService = (*QueryLogService)(nil)

// QueryLogService is a mock implementation of posgrados.QueryLogService.
type QueryLogService struct {
	LogQueryFn    func(ctx context.Context, entry *posgrados.QueryLog) error
	StatsFn       func(ctx context.Context) (*posgrados.Stats, error)
	TopProgramsFn func(ctx context.Context, limit int) ([]posgrados.ProgramCount, error)
}

func (s *QueryLogService) LogQuery(ctx context.Context, entry *posgrados.QueryLog) error {
	return s.LogQueryFn(ctx, entry)
}

func (s *QueryLogService) Stats(ctx context.Context) (*posgrados.Stats, error) {
	return s.StatsFn(ctx)
}

func (s *QueryLogService) TopPrograms(ctx context.Context, limit int) ([]posgrados.ProgramCount, error) {
	return s.TopProgramsFn(ctx, limit)
}
