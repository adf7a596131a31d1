// Package retrieve implements the program-matching engine that grounds
// answers: direct field matching against the stored records first, then
// a keyword fallback over legal areas.
package retrieve

import (
	"context"
	"strings"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

var _ posgrados.Retriever = (*Engine)(nil)

// Engine selects the most relevant program for a question by scanning
// the stored records in catalog order. Matching is plain substring
// work over lowercased text; there is no scoring, the first match
// wins.
type Engine struct {
	Programs posgrados.ProgramService
	Subjects posgrados.SubjectService
}

// NewEngine creates an Engine over the given services.
func NewEngine(programs posgrados.ProgramService, subjects posgrados.SubjectService) *Engine {
	return &Engine{Programs: programs, Subjects: subjects}
}

// Retrieve returns the context bundle for the best-matching program, or
// nil when nothing matches. A direct match on program name, director,
// or coordinator beats the area-keyword fallback.
func (e *Engine) Retrieve(ctx context.Context, question string) (*posgrados.ProgramContext, error) {
	programs, _, err := e.Programs.FindPrograms(ctx, posgrados.ProgramFilter{})
	if err != nil {
		return nil, err
	}

	program := matchDirect(programs, question)
	if program == nil {
		program = matchArea(programs, question)
	}
	if program == nil {
		return nil, nil
	}

	subjects, err := e.Subjects.FindSubjectsByProgram(ctx, program.Key)
	if err != nil {
		return nil, err
	}

	total := len(subjects)
	if total > posgrados.MaxContextSubjects {
		subjects = subjects[:posgrados.MaxContextSubjects]
	}

	return &posgrados.ProgramContext{
		Program:       program,
		Subjects:      subjects,
		TotalSubjects: total,
	}, nil
}

// matchDirect returns the first program one of whose identifying fields
// appears in the question, or whose name contains the whole question.
// Empty fields never match.
func matchDirect(programs []*posgrados.Program, question string) *posgrados.Program {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return nil
	}

	for _, p := range programs {
		fields := []string{p.Name, p.Director, p.Coordinator}
		for _, field := range fields {
			f := strings.ToLower(strings.TrimSpace(field))
			if f == "" {
				continue
			}
			if strings.Contains(q, f) {
				return p
			}
		}
		if name := strings.ToLower(p.Name); name != "" && strings.Contains(name, q) {
			return p
		}
	}
	return nil
}

// matchArea maps the question to a legal area and returns the first
// program whose name mentions that area.
func matchArea(programs []*posgrados.Program, question string) *posgrados.Program {
	tag := posgrados.DetectArea(question)
	if tag == "" {
		return nil
	}

	for _, p := range programs {
		if strings.Contains(strings.ToLower(p.Name), tag) {
			return p
		}
	}
	return nil
}
