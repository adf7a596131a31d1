package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
	"github.com/marianomartinho/uba-posgrados-chatbot/mock"
	posslog "github.com/marianomartinho/uba-posgrados-chatbot/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAsker_Ask(t *testing.T) {
	t.Parallel()

	t.Run("logs the matched program and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Asker{
			AskFn: func(ctx context.Context, question string) (*posgrados.Answer, error) {
				return &posgrados.Answer{Text: "Dos años.", MatchedProgram: "Maestría en Derecho Penal", Tokens: 80}, nil
			},
		}

		asker := posslog.NewLoggingAsker(inner, logger)
		answer, err := asker.Ask(context.Background(), "¿Cuánto dura?")

		require.NoError(t, err)
		assert.Equal(t, "Dos años.", answer.Text)
		output := buf.String()
		assert.Contains(t, output, "ask")
		assert.Contains(t, output, "matched=\"Maestría en Derecho Penal\"")
		assert.Contains(t, output, "tokens=80")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Asker{
			AskFn: func(ctx context.Context, question string) (*posgrados.Answer, error) {
				return nil, posgrados.Errorf(posgrados.EINVALID, "La pregunta debe tener al menos 3 caracteres.")
			},
		}

		asker := posslog.NewLoggingAsker(inner, logger)
		_, err := asker.Ask(context.Background(), "ab")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=")
	})
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	inner := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, int, error) {
			return "<html>contenido</html>", 200, nil
		},
	}

	fetcher := posslog.NewLoggingFetcher(inner, logger)
	html, status, err := fetcher.Fetch(context.Background(), "https://www.derecho.uba.ar/academica/posgrados/mae_der_penal.php")

	require.NoError(t, err)
	assert.Equal(t, 200, status)
	assert.Equal(t, "<html>contenido</html>", html)
	output := buf.String()
	assert.Contains(t, output, "fetch")
	assert.Contains(t, output, "status=200")
	assert.Contains(t, output, "bytes=22")
}
