package posgrados

import (
	"context"
	"time"
)

// QueryLog is one append-only analytics record, written once per served
// question and never updated or deleted.
type QueryLog struct {
	ID             string    `json:"id"`
	Question       string    `json:"question"`
	Answer         string    `json:"answer"`
	MatchedProgram string    `json:"matchedProgram"`
	LatencyMS      int       `json:"latencyMs"`
	Tokens         int       `json:"tokens"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Validate returns an error if the log entry contains invalid fields.
func (q *QueryLog) Validate() error {
	if q.Question == "" {
		return Errorf(EINVALID, "query log question required")
	}
	return nil
}

// Stats holds aggregate counts for the health and stats surfaces.
type Stats struct {
	Programs          int `json:"programs"`
	Maestrias         int `json:"maestrias"`
	Especializaciones int `json:"especializaciones"`
	Subjects          int `json:"subjects"`
	Queries           int `json:"queries"`
}

// ProgramCount pairs a program name with how often it was consulted.
type ProgramCount struct {
	Program string `json:"program"`
	Count   int    `json:"count"`
}

// QueryLogService records served questions and reports usage analytics.
type QueryLogService interface {
	// LogQuery appends one analytics record.
	LogQuery(ctx context.Context, entry *QueryLog) error

	// Stats returns aggregate record counts.
	Stats(ctx context.Context) (*Stats, error)

	// TopPrograms returns the most consulted programs, descending.
	TopPrograms(ctx context.Context, limit int) ([]ProgramCount, error)
}
