package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

// Compile-time interface verification.
var _ posgrados.ProgramService = (*ProgramService)(nil)

// ProgramService implements posgrados.ProgramService using SQLite.
type ProgramService struct {
	db *DB
}

// NewProgramService creates a new ProgramService.
func NewProgramService(db *DB) *ProgramService {
	return &ProgramService{db: db}
}

const programColumns = `key, category, name, source_url, director, deputy_director, coordinator,
	email, phone, duration_years, total_hours, modality, schedule, requirements, objectives,
	cycles, updated_at, active`

// ReplaceProgram creates the program or replaces an existing one with
// the same key. The upsert keeps the original rowid, so catalog order
// survives re-scrapes.
func (s *ProgramService) ReplaceProgram(ctx context.Context, program *posgrados.Program) error {
	if err := program.Validate(); err != nil {
		return err
	}

	if program.UpdatedAt.IsZero() {
		program.UpdatedAt = time.Now().UTC()
	}

	requirements, err := json.Marshal(program.Requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}
	cycles, err := json.Marshal(program.Cycles)
	if err != nil {
		return fmt.Errorf("failed to marshal cycles: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO programs (`+programColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			category = excluded.category,
			name = excluded.name,
			source_url = excluded.source_url,
			director = excluded.director,
			deputy_director = excluded.deputy_director,
			coordinator = excluded.coordinator,
			email = excluded.email,
			phone = excluded.phone,
			duration_years = excluded.duration_years,
			total_hours = excluded.total_hours,
			modality = excluded.modality,
			schedule = excluded.schedule,
			requirements = excluded.requirements,
			objectives = excluded.objectives,
			cycles = excluded.cycles,
			updated_at = excluded.updated_at,
			active = excluded.active
	`, program.Key, string(program.Category), program.Name, program.SourceURL,
		program.Director, program.DeputyDirector, program.Coordinator,
		program.Email, program.Phone, program.DurationYears, program.TotalHours,
		string(program.Modality), program.Schedule, string(requirements),
		program.Objectives, string(cycles),
		program.UpdatedAt.Format(time.RFC3339), boolToInt(program.Active))

	return err
}

// FindProgramByKey retrieves a program by its catalog key.
func (s *ProgramService) FindProgramByKey(ctx context.Context, key string) (*posgrados.Program, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+programColumns+`
		FROM programs
		WHERE key = ?
	`, key)

	program, err := scanProgram(row.Scan)
	if err == sql.ErrNoRows {
		return nil, posgrados.Errorf(posgrados.ENOTFOUND, "program not found")
	}
	if err != nil {
		return nil, err
	}
	return program, nil
}

// FindPrograms retrieves programs matching the filter in catalog order,
// plus the total matching count before pagination.
func (s *ProgramService) FindPrograms(ctx context.Context, filter posgrados.ProgramFilter) ([]*posgrados.Program, int, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + programColumns + `, COUNT(*) OVER() FROM programs WHERE 1=1`)

	if filter.Key != nil {
		query.WriteString(" AND key = ?")
		args = append(args, *filter.Key)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.Modality != nil {
		query.WriteString(" AND modality = ?")
		args = append(args, string(*filter.Modality))
	}
	if filter.Query != nil {
		query.WriteString(" AND (name LIKE ? OR director LIKE ? OR coordinator LIKE ?)")
		pattern := "%" + *filter.Query + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if filter.Area != nil {
		query.WriteString(" AND name LIKE ?")
		args = append(args, "%"+*filter.Area+"%")
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

	var programs []*posgrados.Program
	n := 0
	for rows.Next() {
		program, err := scanProgram(func(dest ...any) error {
			return rows.Scan(append(dest, &n)...)
		})
		if err != nil {
			return nil, 0, err
		}
		programs = append(programs, program)
	}

	return programs, n, rows.Err()
}

// DeleteProgram permanently removes a program and, via the cascade, its
// subjects.
func (s *ProgramService) DeleteProgram(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM programs WHERE key = ?", key)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return posgrados.Errorf(posgrados.ENOTFOUND, "program not found")
	}

	return nil
}

// scanProgram reads one program row. The scan callback receives the
// destination pointers in programColumns order.
func scanProgram(scan func(dest ...any) error) (*posgrados.Program, error) {
	var (
		program              posgrados.Program
		category, modality   string
		requirements, cycles string
		updatedAt            string
		active               int
	)

	err := scan(&program.Key, &category, &program.Name, &program.SourceURL,
		&program.Director, &program.DeputyDirector, &program.Coordinator,
		&program.Email, &program.Phone, &program.DurationYears, &program.TotalHours,
		&modality, &program.Schedule, &requirements, &program.Objectives,
		&cycles, &updatedAt, &active)
	if err != nil {
		return nil, err
	}

	program.Category = posgrados.Category(category)
	program.Modality = posgrados.Modality(modality)
	program.Active = active != 0

	if err := json.Unmarshal([]byte(requirements), &program.Requirements); err != nil {
		return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
	}
	if err := json.Unmarshal([]byte(cycles), &program.Cycles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cycles: %w", err)
	}

	program.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at")
	if err != nil {
		return nil, err
	}

	return &program, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
