package mock

import (
	"context"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

var _ posgrados.SubjectService = (*SubjectService)(nil)

// SubjectService is a mock implementation of posgrados.SubjectService.
type SubjectService struct {
	ReplaceSubjectsFn       func(ctx context.Context, programKey string, subjects []*posgrados.Subject) error
	FindSubjectsByProgramFn func(ctx context.Context, programKey string) ([]*posgrados.Subject, error)
	FindSubjectsFn          func(ctx context.Context, filter posgrados.SubjectFilter) ([]*posgrados.Subject, int, error)
}

func (s *SubjectService) ReplaceSubjects(ctx context.Context, programKey string, subjects []*posgrados.Subject) error {
	return s.ReplaceSubjectsFn(ctx, programKey, subjects)
}

func (s *SubjectService) FindSubjectsByProgram(ctx context.Context, programKey string) ([]*posgrados.Subject, error) {
	return s.FindSubjectsByProgramFn(ctx, programKey)
}

func (s *SubjectService) FindSubjects(ctx context.Context, filter posgrados.SubjectFilter) ([]*posgrados.Subject, int, error) {
	return s.FindSubjectsFn(ctx, filter)
}
