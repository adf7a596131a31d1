// Package rag implements the question-answering pipeline: retrieve a
// grounding program, assemble the prompt, call the generation service,
// and record the query.
package rag

import (
	"context"
	"strings"
	"time"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

// minQuestionLen is the minimum trimmed question length, in runes.
const minQuestionLen = 3

// degradedAnswer is served when the generation service fails; the user
// gets a pointer to a human channel instead of an error page.
const degradedAnswer = "En este momento no puedo generar una respuesta. " +
	"Por consultas sobre posgrados escribí a " + posgrados.GeneralContactEmail + "."

var _ posgrados.Asker = (*Asker)(nil)

// Asker answers questions grounded on the structured catalog records.
type Asker struct {
	Retriever posgrados.Retriever
	Generator posgrados.Generator
	Logs      posgrados.QueryLogService

	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// Ask serves one question end to end. A generation failure degrades to
// a fixed answer rather than an error; only invalid input and retrieval
// failures surface as errors.
func (a *Asker) Ask(ctx context.Context, question string) (*posgrados.Answer, error) {
	if err := validateQuestion(question); err != nil {
		return nil, err
	}

	now := a.now()
	begin := now()

	pc, err := a.Retriever.Retrieve(ctx, question)
	if err != nil {
		return nil, err
	}

	prompt := posgrados.BuildPrompt(question, pc)

	answer := &posgrados.Answer{}
	if pc != nil {
		answer.MatchedProgram = pc.Program.Name
	}

	gen, err := a.Generator.Generate(ctx, prompt)
	if err != nil {
		answer.Text = degradedAnswer
	} else {
		answer.Text = gen.Text
		answer.Tokens = gen.Tokens
	}
	answer.LatencyMS = int(now().Sub(begin) / time.Millisecond)

	a.log(ctx, question, answer)

	return answer, nil
}

func (a *Asker) now() func() time.Time {
	if a.Now != nil {
		return a.Now
	}
	return time.Now
}

// log appends the analytics record. Logging is best-effort: a failed
// write never fails the answer.
func (a *Asker) log(ctx context.Context, question string, answer *posgrados.Answer) {
	if a.Logs == nil {
		return
	}
	_ = a.Logs.LogQuery(ctx, &posgrados.QueryLog{
		Question:       question,
		Answer:         answer.Text,
		MatchedProgram: answer.MatchedProgram,
		LatencyMS:      answer.LatencyMS,
		Tokens:         answer.Tokens,
	})
}

func validateQuestion(question string) error {
	if len([]rune(strings.TrimSpace(question))) < minQuestionLen {
		return posgrados.Errorf(posgrados.EINVALID, "La pregunta debe tener al menos 3 caracteres.")
	}
	return nil
}
