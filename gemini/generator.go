// Package gemini implements the text-generation boundary using Google
// Gemini.
package gemini

import (
	"context"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for answers.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements posgrados.Generator at compile time.
var _ posgrados.Generator = (*Generator)(nil)

// Generator implements posgrados.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects
// DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate sends the prompt and returns the answer text with the
// reported token usage.
func (g *Generator) Generate(ctx context.Context, prompt string) (*posgrados.Generation, error) {
	if prompt == "" {
		return nil, posgrados.Errorf(posgrados.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, posgrados.Errorf(posgrados.EINTERNAL, "gemini returned nil result")
	}

	gen := &posgrados.Generation{Text: result.Text()}
	if result.UsageMetadata != nil {
		gen.Tokens = int(result.UsageMetadata.TotalTokenCount)
	}
	return gen, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The low temperature keeps answers anchored to the supplied catalog
// data instead of inventing program details.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "Sos un asistente experto en los posgrados de la Facultad de Derecho de la UBA. Respondés en español, de forma clara, precisa y estructurada, usando únicamente la información provista. Si la información no alcanza, decilo.",
			}},
		},
		Temperature:     &temp,
		MaxOutputTokens: 800,
	}
}
