package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

// Compile-time interface verification.
var _ posgrados.QueryLogService = (*QueryLogService)(nil)

// QueryLogService implements posgrados.QueryLogService using SQLite.
// The log is append-only.
type QueryLogService struct {
	db *DB
}

// NewQueryLogService creates a new QueryLogService.
func NewQueryLogService(db *DB) *QueryLogService {
	return &QueryLogService{db: db}
}

// LogQuery appends one analytics record.
func (s *QueryLogService) LogQuery(ctx context.Context, entry *posgrados.QueryLog) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO queries (id, question, answer, matched_program, latency_ms, tokens, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Question, entry.Answer, entry.MatchedProgram,
		entry.LatencyMS, entry.Tokens, entry.CreatedAt.Format(time.RFC3339))

	return err
}

// Stats returns aggregate record counts.
func (s *QueryLogService) Stats(ctx context.Context) (*posgrados.Stats, error) {
	var stats posgrados.Stats

	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM programs),
			(SELECT COUNT(*) FROM programs WHERE category = 'maestria'),
			(SELECT COUNT(*) FROM programs WHERE category = 'especializacion'),
			(SELECT COUNT(*) FROM subjects),
			(SELECT COUNT(*) FROM queries)
	`).Scan(&stats.Programs, &stats.Maestrias, &stats.Especializaciones,
		&stats.Subjects, &stats.Queries)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// TopPrograms returns the most consulted programs, descending.
func (s *QueryLogService) TopPrograms(ctx context.Context, limit int) ([]posgrados.ProgramCount, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT matched_program, COUNT(*) AS n
		FROM queries
		WHERE matched_program != ''
		GROUP BY matched_program
		ORDER BY n DESC, matched_program
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []posgrados.ProgramCount
	for rows.Next() {
		var pc posgrados.ProgramCount
		if err := rows.Scan(&pc.Program, &pc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, pc)
	}

	return counts, rows.Err()
}
