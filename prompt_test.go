package posgrados_test

import (
	"strings"
	"testing"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_Unscoped(t *testing.T) {
	t.Parallel()

	prompt := posgrados.BuildPrompt("¿Qué maestrías ofrecen?", nil)

	assert.Contains(t, prompt, "asistente especializado en los posgrados")
	assert.Contains(t, prompt, "Pregunta del usuario: ¿Qué maestrías ofrecen?")
	assert.Contains(t, prompt, posgrados.GeneralContactEmail)
	assert.NotContains(t, prompt, "INFORMACIÓN DEL PROGRAMA")
}

func TestBuildPrompt_Scoped(t *testing.T) {
	t.Parallel()

	pc := &posgrados.ProgramContext{
		Program: &posgrados.Program{
			Key:           "mae_der_penal",
			Category:      posgrados.CategoryMaestria,
			Name:          "Maestría en Derecho Penal",
			Director:      "Dr. Edgardo Donna",
			Email:         "posgradopenal@derecho.uba.ar",
			DurationYears: 2,
			TotalHours:    704,
			Modality:      posgrados.ModalityPresencial,
			Objectives:    "Formar especialistas en derecho penal.",
			Requirements:  []string{"Título de abogado"},
		},
		Subjects: []*posgrados.Subject{
			{Name: "Teoría del Delito", Hours: 36, Kind: posgrados.KindTroncal},
			{Name: "Derecho Penal Económico", Kind: posgrados.KindTroncal},
		},
		TotalSubjects: 2,
	}

	prompt := posgrados.BuildPrompt("¿Quién la dirige?", pc)

	assert.Contains(t, prompt, "**Maestría en Derecho Penal** (MAESTRIA)")
	assert.Contains(t, prompt, "- Director: Dr. Edgardo Donna")
	assert.Contains(t, prompt, "- Duración: 2 años")
	assert.Contains(t, prompt, "- Carga horaria total: 704 horas")
	assert.Contains(t, prompt, "PLAN DE ESTUDIOS (2 materias en total):")
	assert.Contains(t, prompt, "- Teoría del Delito (36hs) [troncal]")
	assert.Contains(t, prompt, "- Derecho Penal Económico [troncal]")
	assert.Contains(t, prompt, "PREGUNTA DEL USUARIO: ¿Quién la dirige?")
	assert.Contains(t, prompt, "Respondé usando SOLO la información")
}

func TestBuildPrompt_AbsentFieldsRenderUnspecified(t *testing.T) {
	t.Parallel()

	pc := &posgrados.ProgramContext{
		Program: &posgrados.Program{
			Key:      "carr_esp_der_ambiental",
			Category: posgrados.CategoryEspecializacion,
			Name:     "Especialización en Derecho Ambiental",
		},
	}

	prompt := posgrados.BuildPrompt("duración?", pc)

	assert.Contains(t, prompt, "- Director: No especificado")
	assert.Contains(t, prompt, "- Duración: No especificada")
	assert.Contains(t, prompt, "- Carga horaria total: No especificada")
	assert.Contains(t, prompt, "- Modalidad: No especificada")
	assert.Contains(t, prompt, "OBJETIVOS:\nNo especificados")
	assert.Contains(t, prompt, "REQUISITOS DE ADMISIÓN:\nNo especificados")

	// A program without its own email falls back to the general contact.
	assert.Contains(t, prompt, "- Email de contacto: "+posgrados.GeneralContactEmail)
}

func TestBuildPrompt_TruncatesLongFields(t *testing.T) {
	t.Parallel()

	pc := &posgrados.ProgramContext{
		Program: &posgrados.Program{
			Key:        "mae_der_penal",
			Category:   posgrados.CategoryMaestria,
			Name:       "Maestría en Derecho Penal",
			Objectives: strings.Repeat("o", 1200),
			Requirements: []string{
				strings.Repeat("r", 400),
				strings.Repeat("r", 400),
			},
		},
	}

	prompt := posgrados.BuildPrompt("objetivos?", pc)

	assert.Contains(t, prompt, strings.Repeat("o", 500))
	assert.NotContains(t, prompt, strings.Repeat("o", 501))
	assert.NotContains(t, prompt, strings.Repeat("r", 501))
}

func TestBuildPrompt_SubjectListCapped(t *testing.T) {
	t.Parallel()

	subjects := make([]*posgrados.Subject, 30)
	for i := range subjects {
		subjects[i] = &posgrados.Subject{Name: "Materia", Position: i}
	}
	pc := &posgrados.ProgramContext{
		Program:       &posgrados.Program{Key: "k", Category: posgrados.CategoryMaestria, Name: "M"},
		Subjects:      subjects,
		TotalSubjects: 45,
	}

	prompt := posgrados.BuildPrompt("materias?", pc)

	// The rendered list is bounded, but the heading reports the true
	// owned-subject count.
	assert.Contains(t, prompt, "PLAN DE ESTUDIOS (45 materias en total):")
	assert.Equal(t, 20, strings.Count(prompt, "   - Materia"))
}

func TestBuildRawPrompt(t *testing.T) {
	t.Parallel()

	prompt := posgrados.BuildRawPrompt("¿Hay doctorado?", "=== https://example.com ===\ntexto del sitio")

	assert.Contains(t, prompt, "texto del sitio")
	assert.Contains(t, prompt, "PREGUNTA DEL USUARIO: ¿Hay doctorado?")
	assert.Contains(t, prompt, posgrados.GeneralContactEmail)
}
