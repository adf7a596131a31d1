package mock

import (
	"context"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

var _ posgrados.ProgramService = (*ProgramService)(nil)

// ProgramService is a mock implementation of posgrados.ProgramService.
type ProgramService struct {
	ReplaceProgramFn   func(ctx context.Context, program *posgrados.Program) error
	FindProgramByKeyFn func(ctx context.Context, key string) (*posgrados.Program, error)
	FindProgramsFn     func(ctx context.Context, filter posgrados.ProgramFilter) ([]*posgrados.Program, int, error)
	DeleteProgramFn    func(ctx context.Context, key string) error
}

func (s *ProgramService) ReplaceProgram(ctx context.Context, program *posgrados.Program) error {
	return s.ReplaceProgramFn(ctx, program)
}

func (s *ProgramService) FindProgramByKey(ctx context.Context, key string) (*posgrados.Program, error) {
	return s.FindProgramByKeyFn(ctx, key)
}

func (s *ProgramService) FindPrograms(ctx context.Context, filter posgrados.ProgramFilter) ([]*posgrados.Program, int, error) {
	return s.FindProgramsFn(ctx, filter)
}

func (s *ProgramService) DeleteProgram(ctx context.Context, key string) error {
	return s.DeleteProgramFn(ctx, key)
}
