package rag_test

import (
	"context"
	"errors"
	"testing"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
	"github.com/marianomartinho/uba-posgrados-chatbot/mock"
	"github.com/marianomartinho/uba-posgrados-chatbot/rag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func penalContext() *posgrados.ProgramContext {
	return &posgrados.ProgramContext{
		Program: &posgrados.Program{
			Key:      "mae_der_penal",
			Category: posgrados.CategoryMaestria,
			Name:     "Maestría en Derecho Penal",
			Director: "Dr. Juan Pérez",
		},
		Subjects: []*posgrados.Subject{
			{ProgramKey: "mae_der_penal", Name: "Teoría del delito", Hours: 36},
		},
		TotalSubjects: 1,
	}
}

func TestAsker_Ask(t *testing.T) {
	t.Parallel()

	t.Run("answers a grounded question", func(t *testing.T) {
		t.Parallel()

		var gotPrompt string
		a := &rag.Asker{
			Retriever: &mock.Retriever{
				RetrieveFn: func(ctx context.Context, question string) (*posgrados.ProgramContext, error) {
					return penalContext(), nil
				},
			},
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt string) (*posgrados.Generation, error) {
					gotPrompt = prompt
					return &posgrados.Generation{Text: "La maestría dura dos años.", Tokens: 120}, nil
				},
			},
		}

		answer, err := a.Ask(context.Background(), "¿Cuánto dura la maestría en derecho penal?")
		require.NoError(t, err)

		assert.Equal(t, "La maestría dura dos años.", answer.Text)
		assert.Equal(t, "Maestría en Derecho Penal", answer.MatchedProgram)
		assert.Equal(t, 120, answer.Tokens)
		assert.Contains(t, gotPrompt, "Maestría en Derecho Penal")
		assert.Contains(t, gotPrompt, "Teoría del delito")
	})

	t.Run("unmatched question uses the generic prompt", func(t *testing.T) {
		t.Parallel()

		var gotPrompt string
		a := &rag.Asker{
			Retriever: &mock.Retriever{
				RetrieveFn: func(ctx context.Context, question string) (*posgrados.ProgramContext, error) {
					return nil, nil
				},
			},
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt string) (*posgrados.Generation, error) {
					gotPrompt = prompt
					return &posgrados.Generation{Text: "Hay 45 posgrados."}, nil
				},
			},
		}

		answer, err := a.Ask(context.Background(), "¿Qué posgrados ofrece la facultad?")
		require.NoError(t, err)
		assert.Empty(t, answer.MatchedProgram)
		assert.Contains(t, gotPrompt, posgrados.GeneralContactEmail)
	})

	t.Run("rejects questions under 3 characters", func(t *testing.T) {
		t.Parallel()

		a := &rag.Asker{}

		_, err := a.Ask(context.Background(), "  ab  ")
		require.Error(t, err)
		assert.Equal(t, posgrados.EINVALID, posgrados.ErrorCode(err))
	})

	t.Run("generation failure degrades instead of erroring", func(t *testing.T) {
		t.Parallel()

		a := &rag.Asker{
			Retriever: &mock.Retriever{
				RetrieveFn: func(ctx context.Context, question string) (*posgrados.ProgramContext, error) {
					return penalContext(), nil
				},
			},
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt string) (*posgrados.Generation, error) {
					return nil, errors.New("quota exceeded")
				},
			},
		}

		answer, err := a.Ask(context.Background(), "¿Cuánto dura la maestría en derecho penal?")
		require.NoError(t, err)
		assert.Contains(t, answer.Text, posgrados.GeneralContactEmail)
		assert.Zero(t, answer.Tokens)
	})

	t.Run("records the query", func(t *testing.T) {
		t.Parallel()

		var logged *posgrados.QueryLog
		a := &rag.Asker{
			Retriever: &mock.Retriever{
				RetrieveFn: func(ctx context.Context, question string) (*posgrados.ProgramContext, error) {
					return penalContext(), nil
				},
			},
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt string) (*posgrados.Generation, error) {
					return &posgrados.Generation{Text: "Respuesta.", Tokens: 50}, nil
				},
			},
			Logs: &mock.QueryLogService{
				LogQueryFn: func(ctx context.Context, entry *posgrados.QueryLog) error {
					logged = entry
					return nil
				},
			},
		}

		_, err := a.Ask(context.Background(), "¿Quién dirige la maestría?")
		require.NoError(t, err)
		require.NotNil(t, logged)
		assert.Equal(t, "¿Quién dirige la maestría?", logged.Question)
		assert.Equal(t, "Respuesta.", logged.Answer)
		assert.Equal(t, "Maestría en Derecho Penal", logged.MatchedProgram)
		assert.Equal(t, 50, logged.Tokens)
	})

	t.Run("log failure never fails the answer", func(t *testing.T) {
		t.Parallel()

		a := &rag.Asker{
			Retriever: &mock.Retriever{
				RetrieveFn: func(ctx context.Context, question string) (*posgrados.ProgramContext, error) {
					return nil, nil
				},
			},
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt string) (*posgrados.Generation, error) {
					return &posgrados.Generation{Text: "Respuesta."}, nil
				},
			},
			Logs: &mock.QueryLogService{
				LogQueryFn: func(ctx context.Context, entry *posgrados.QueryLog) error {
					return errors.New("disk full")
				},
			},
		}

		answer, err := a.Ask(context.Background(), "¿Qué maestrías hay?")
		require.NoError(t, err)
		assert.Equal(t, "Respuesta.", answer.Text)
	})

	t.Run("retrieval failure surfaces as an error", func(t *testing.T) {
		t.Parallel()

		a := &rag.Asker{
			Retriever: &mock.Retriever{
				RetrieveFn: func(ctx context.Context, question string) (*posgrados.ProgramContext, error) {
					return nil, posgrados.Errorf(posgrados.EINTERNAL, "db locked")
				},
			},
		}

		_, err := a.Ask(context.Background(), "¿Qué maestrías hay?")
		require.Error(t, err)
		assert.Equal(t, posgrados.EINTERNAL, posgrados.ErrorCode(err))
	})
}

func TestRawAsker_Ask(t *testing.T) {
	t.Parallel()

	t.Run("answers against the cached text", func(t *testing.T) {
		t.Parallel()

		var gotPrompt string
		a := &rag.RawAsker{
			Cache: &mock.ContextCache{
				ContextFn: func(ctx context.Context) (string, error) {
					return "=== url ===\nMaestría en Derecho Penal, 704 horas", nil
				},
			},
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt string) (*posgrados.Generation, error) {
					gotPrompt = prompt
					return &posgrados.Generation{Text: "Son 704 horas.", Tokens: 90}, nil
				},
			},
		}

		answer, err := a.Ask(context.Background(), "¿Cuántas horas tiene la maestría en penal?")
		require.NoError(t, err)
		assert.Equal(t, "Son 704 horas.", answer.Text)
		assert.Empty(t, answer.MatchedProgram)
		assert.Contains(t, gotPrompt, "704 horas")
	})

	t.Run("cache failure surfaces as an error", func(t *testing.T) {
		t.Parallel()

		a := &rag.RawAsker{
			Cache: &mock.ContextCache{
				ContextFn: func(ctx context.Context) (string, error) {
					return "", posgrados.Errorf(posgrados.EUNAVAILABLE, "no catalog page could be fetched")
				},
			},
		}

		_, err := a.Ask(context.Background(), "¿Cuántas horas tiene la maestría?")
		require.Error(t, err)
		assert.Equal(t, posgrados.EUNAVAILABLE, posgrados.ErrorCode(err))
	})

	t.Run("rejects questions under 3 characters", func(t *testing.T) {
		t.Parallel()

		a := &rag.RawAsker{}

		_, err := a.Ask(context.Background(), "ab")
		require.Error(t, err)
		assert.Equal(t, posgrados.EINVALID, posgrados.ErrorCode(err))
	})
}
