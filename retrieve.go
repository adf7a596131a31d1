package posgrados

import (
	"context"
	"strings"
)

// MaxContextSubjects caps how many subjects a context bundle carries.
// The true owned-subject count is still reported alongside the capped
// list.
const MaxContextSubjects = 30

// ProgramContext bundles a matched program with its subjects for prompt
// grounding.
type ProgramContext struct {
	Program *Program

	// Subjects holds at most MaxContextSubjects entries, in source order.
	Subjects []*Subject

	// TotalSubjects is the true owned count, not the capped length.
	TotalSubjects int
}

// Retriever selects the most relevant program record for a question.
type Retriever interface {
	// Retrieve returns the context bundle for the best-matching program,
	// or nil when nothing matches; callers then fall back to an
	// unscoped, generic prompt.
	Retrieve(ctx context.Context, question string) (*ProgramContext, error)
}

// Area groups the keywords that map a question to a legal domain tag.
type Area struct {
	Tag      string
	Keywords []string
}

// AreaTable returns the keyword table used by the area-fallback match.
// The slice order is the tie-break: when a question contains keywords
// from several areas, the first listed area wins. The table carries no
// scoring; the order itself encodes priority among overlapping keyword
// sets, and reordering it changes retrieval results.
func AreaTable() []Area {
	return []Area{
		{Tag: "penal", Keywords: []string{"penal", "criminal", "delito", "pena"}},
		{Tag: "civil", Keywords: []string{"civil", "contratos", "obligaciones"}},
		{Tag: "laboral", Keywords: []string{"trabajo", "laboral", "empleado", "sindicato"}},
		{Tag: "familia", Keywords: []string{"familia", "divorcio", "adopción", "alimentos"}},
		{Tag: "tributario", Keywords: []string{"tributario", "impuesto", "fiscal", "afip"}},
		{Tag: "internacional", Keywords: []string{"internacional", "tratados", "extranjero"}},
		{Tag: "administrativo", Keywords: []string{"administrativo", "estado", "público"}},
		{Tag: "procesal", Keywords: []string{"procesal", "proceso", "juicio"}},
		{Tag: "ambiental", Keywords: []string{"ambiental", "ambiente", "ecología"}},
	}
}

// DetectArea scans the question against the area table and returns the
// first matching domain tag, or "" when no keyword appears.
func DetectArea(question string) string {
	q := strings.ToLower(question)
	for _, area := range AreaTable() {
		for _, kw := range area.Keywords {
			if strings.Contains(q, kw) {
				return area.Tag
			}
		}
	}
	return ""
}
