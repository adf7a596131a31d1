package posgrados

import "context"

// SubjectKind identifies how a subject counts toward a program.
type SubjectKind string

// Subject kinds. KindTroncal is the default when a curriculum page
// carries no elective marker.
const (
	KindTroncal   SubjectKind = "troncal"
	KindOptativa  SubjectKind = "optativa"
	KindSeminario SubjectKind = "seminario"
)

// Subject represents one curriculum subject belonging to exactly one
// program. Deleting the program deletes its subjects. Duplicate names
// within a program are permitted (source pages repeat entries) and
// source order is preserved through Position.
type Subject struct {
	ID          string      `json:"id"`
	ProgramKey  string      `json:"programKey"`
	Name        string      `json:"name"`
	Kind        SubjectKind `json:"kind"`
	Area        string      `json:"area"`
	Hours       int         `json:"hours"`
	Cycle       string      `json:"cycle"`
	Description string      `json:"description"`

	// Position is the zero-based source order on the curriculum page.
	Position int `json:"position"`
}

// Validate returns an error if the subject contains invalid fields.
func (s *Subject) Validate() error {
	if s.ProgramKey == "" {
		return Errorf(EINVALID, "subject program key required")
	}
	if s.Name == "" {
		return Errorf(EINVALID, "subject name required")
	}
	return nil
}

// SubjectFilter represents a filter for FindSubjects.
type SubjectFilter struct {
	ProgramKey *string `json:"programKey"`

	// Query matches case-insensitively as a substring of the subject
	// name.
	Query *string `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SubjectService represents a service for managing a program's subjects.
type SubjectService interface {
	// ReplaceSubjects replaces all subjects owned by the program in one
	// operation, preserving the order of the given slice.
	ReplaceSubjects(ctx context.Context, programKey string, subjects []*Subject) error

	// FindSubjectsByProgram retrieves all subjects owned by the
	// program, in source order.
	FindSubjectsByProgram(ctx context.Context, programKey string) ([]*Subject, error)

	// FindSubjects retrieves subjects matching the filter across all
	// programs, in store-insertion order. Also returns the total count
	// of matching records before limit and offset.
	FindSubjects(ctx context.Context, filter SubjectFilter) ([]*Subject, int, error)
}
