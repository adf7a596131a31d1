package posgrados

import "context"

// Answer is the outcome of one served question.
type Answer struct {
	// Text is the generated answer shown to the user.
	Text string `json:"text"`

	// MatchedProgram is the name of the grounding program, or empty
	// when no record matched and the unscoped template was used.
	MatchedProgram string `json:"matchedProgram"`

	// Tokens is the generation service's reported usage. Zero when the
	// generation call failed and a degraded answer was served.
	Tokens int `json:"tokens"`

	// LatencyMS is the total time to serve the question.
	LatencyMS int `json:"latencyMs"`
}

// Asker answers natural language questions about the catalog.
type Asker interface {
	// Ask retrieves grounding context, assembles the prompt, calls the
	// generation service, and records the query.
	// Returns EINVALID if the trimmed question is under 3 characters.
	Ask(ctx context.Context, question string) (*Answer, error)
}

// Generation holds the output of one text-generation call.
type Generation struct {
	Text   string
	Tokens int
}

// Generator calls the external text-generation service. The service is
// opaque to this core: prompt in, text and token usage out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Generation, error)
}
