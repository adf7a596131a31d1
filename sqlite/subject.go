package sqlite

import (
	"context"
	"strings"

	"github.com/google/uuid"
	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

// Compile-time interface verification.
var _ posgrados.SubjectService = (*SubjectService)(nil)

// SubjectService implements posgrados.SubjectService using SQLite.
type SubjectService struct {
	db *DB
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(db *DB) *SubjectService {
	return &SubjectService{db: db}
}

// ReplaceSubjects replaces all subjects owned by the program in one
// transaction, preserving the order of the given slice.
func (s *SubjectService) ReplaceSubjects(ctx context.Context, programKey string, subjects []*posgrados.Subject) error {
	if programKey == "" {
		return posgrados.Errorf(posgrados.EINVALID, "program key required")
	}
	for _, subject := range subjects {
		subject.ProgramKey = programKey
		if err := subject.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM subjects WHERE program_key = ?", programKey); err != nil {
		return err
	}

	for i, subject := range subjects {
		if subject.ID == "" {
			subject.ID = uuid.New().String()
		}
		subject.Position = i

		kind := subject.Kind
		if kind == "" {
			kind = posgrados.KindTroncal
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO subjects (id, program_key, name, kind, area, hours, cycle, description, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, subject.ID, subject.ProgramKey, subject.Name, string(kind), subject.Area,
			subject.Hours, subject.Cycle, subject.Description, subject.Position); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindSubjectsByProgram retrieves all subjects owned by the program, in
// source order.
func (s *SubjectService) FindSubjectsByProgram(ctx context.Context, programKey string) ([]*posgrados.Subject, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, program_key, name, kind, area, hours, cycle, description, position
		FROM subjects
		WHERE program_key = ?
		ORDER BY position
	`, programKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*posgrados.Subject
	for rows.Next() {
		var subject posgrados.Subject
		var kind string
		if err := rows.Scan(&subject.ID, &subject.ProgramKey, &subject.Name, &kind,
			&subject.Area, &subject.Hours, &subject.Cycle, &subject.Description,
			&subject.Position); err != nil {
			return nil, err
		}
		subject.Kind = posgrados.SubjectKind(kind)
		subjects = append(subjects, &subject)
	}

	return subjects, rows.Err()
}

// FindSubjects retrieves subjects matching the filter across all
// programs, in store-insertion order, plus the total matching count
// before pagination.
func (s *SubjectService) FindSubjects(ctx context.Context, filter posgrados.SubjectFilter) ([]*posgrados.Subject, int, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, program_key, name, kind, area, hours, cycle, description, position,
		COUNT(*) OVER() FROM subjects WHERE 1=1`)

	if filter.ProgramKey != nil {
		query.WriteString(" AND program_key = ?")
		args = append(args, *filter.ProgramKey)
	}
	if filter.Query != nil {
		query.WriteString(" AND name LIKE ?")
		args = append(args, "%"+*filter.Query+"%")
	}

	query.WriteString(" ORDER BY rowid")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var subjects []*posgrados.Subject
	n := 0
	for rows.Next() {
		var subject posgrados.Subject
		var kind string
		if err := rows.Scan(&subject.ID, &subject.ProgramKey, &subject.Name, &kind,
			&subject.Area, &subject.Hours, &subject.Cycle, &subject.Description,
			&subject.Position, &n); err != nil {
			return nil, 0, err
		}
		subject.Kind = posgrados.SubjectKind(kind)
		subjects = append(subjects, &subject)
	}

	return subjects, n, rows.Err()
}
