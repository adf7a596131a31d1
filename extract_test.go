package posgrados_test

import (
	"testing"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mainPageText = `Maestría en Derecho Penal
Autoridades
Director: Dr. Edgardo Donna
Subdirectora: Dra. María López
Coordinador: Ab. Juan Pérez
Informes: posgradopenal@derecho.uba.ar
Duración: 2 años
Carga horaria: 704 horas
Modalidad presencial
Cursada: lunes y miércoles de 18:00 a 21:00 hs`

func TestExtractProgram(t *testing.T) {
	t.Parallel()

	page := &posgrados.PageText{Title: "Maestría en Derecho Penal", Text: mainPageText}
	p := posgrados.ExtractProgram(page, "mae_der_penal", posgrados.CategoryMaestria, "https://example.com/mae_der_penal.php")

	assert.Equal(t, "mae_der_penal", p.Key)
	assert.Equal(t, posgrados.CategoryMaestria, p.Category)
	assert.Equal(t, "Maestría en Derecho Penal", p.Name)
	assert.Equal(t, "Dr. Edgardo Donna", p.Director)
	assert.Equal(t, "Dra. María López", p.DeputyDirector)
	assert.Equal(t, "Ab. Juan Pérez", p.Coordinator)
	assert.Equal(t, "posgradopenal@derecho.uba.ar", p.Email)
	assert.Equal(t, 2.0, p.DurationYears)
	assert.Equal(t, 704, p.TotalHours)
	assert.Equal(t, posgrados.ModalityPresencial, p.Modality)
	assert.Equal(t, "lunes y miércoles de 18:00 a 21:00", p.Schedule)
}

func TestExtractProgram_Deterministic(t *testing.T) {
	t.Parallel()

	page := &posgrados.PageText{Title: "Maestría en Derecho Penal", Text: mainPageText}
	first := posgrados.ExtractProgram(page, "mae_der_penal", posgrados.CategoryMaestria, "u")
	second := posgrados.ExtractProgram(page, "mae_der_penal", posgrados.CategoryMaestria, "u")

	require.Equal(t, first, second)
}

func TestExtractLeadership(t *testing.T) {
	t.Parallel()

	t.Run("tolerates gendered suffix", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Dra. Ana García", posgrados.ExtractDirector("Directora: Dra. Ana García\n"))
	})

	t.Run("director does not match inside subdirector", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, posgrados.ExtractDirector("Subdirector: Dr. Pedro Gómez\n"))
	})

	t.Run("first match wins", func(t *testing.T) {
		t.Parallel()
		text := "Coordinador: Ab. Primero Apellido\nCoordinadora: Dra. Segunda Apellido\n"
		assert.Equal(t, "Ab. Primero Apellido", posgrados.ExtractCoordinator(text))
	})

	t.Run("absent without label", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, posgrados.ExtractDirector("La carrera no informa autoridades."))
	})
}

func TestExtractEmail(t *testing.T) {
	t.Parallel()

	t.Run("first token wins", func(t *testing.T) {
		t.Parallel()
		text := "Consultas: uno@derecho.uba.ar o dos@derecho.uba.ar"
		assert.Equal(t, "uno@derecho.uba.ar", posgrados.ExtractEmail(text))
	})

	t.Run("partial matches are not completed", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, posgrados.ExtractEmail("escribir a posgrado@ o consultar en mesa de entradas"))
	})
}

func TestExtractDurationYears(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.5, posgrados.ExtractDurationYears("La cursada dura 1.5 años."))
	assert.Equal(t, 1.0, posgrados.ExtractDurationYears("Un recorrido de 1 año."))
	assert.Zero(t, posgrados.ExtractDurationYears("Sin datos de duración."))
}

func TestExtractTotalHours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 368, posgrados.ExtractTotalHours("Carga horaria total: 368 horas."))
	assert.Equal(t, 24, posgrados.ExtractTotalHours("Incluye 24 horas de taller."))
	assert.Zero(t, posgrados.ExtractTotalHours("Carga horaria a confirmar."))
}

func TestExtractModality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, posgrados.ModalityPresencial, posgrados.ExtractModality("Cursada presencial en la sede."))
	assert.Equal(t, posgrados.ModalityVirtual, posgrados.ExtractModality("Se dicta a distancia."))
	assert.Equal(t, posgrados.ModalityVirtual, posgrados.ExtractModality("Modalidad virtual sincrónica."))
	assert.Equal(t, posgrados.ModalityUnspecified, posgrados.ExtractModality("Consultar modalidad."))

	// In-person takes precedence when a page mentions both.
	assert.Equal(t, posgrados.ModalityPresencial, posgrados.ExtractModality("Clases presenciales con apoyo virtual."))
}

func TestExtractSchedule(t *testing.T) {
	t.Parallel()

	t.Run("weekday followed by time", func(t *testing.T) {
		t.Parallel()
		got := posgrados.ExtractSchedule("Horario: martes y jueves de 19:00 a 22:00 en la sede.")
		assert.Equal(t, "martes y jueves de 19:00 a 22:00", got)
	})

	t.Run("hs style time", func(t *testing.T) {
		t.Parallel()
		got := posgrados.ExtractSchedule("Se cursa viernes a las 18hs en el salón verde.")
		assert.Equal(t, "viernes a las 18hs", got)
	})

	t.Run("absent without time token", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, posgrados.ExtractSchedule("Se cursa los lunes por la tarde."))
	})
}

func TestExtractCycles(t *testing.T) {
	t.Parallel()

	text := "Primer Ciclo: 352 horas\nSegundo ciclo: 352 horas\n"
	cycles := posgrados.ExtractCycles(text)

	require.Len(t, cycles, 2)
	assert.Equal(t, posgrados.Cycle{Name: "Primer", Hours: 352}, cycles[0])
	assert.Equal(t, posgrados.Cycle{Name: "Segundo", Hours: 352}, cycles[1])

	assert.Nil(t, posgrados.ExtractCycles("Plan de estudios sin ciclos."))
}

func TestExtractRequirementLines(t *testing.T) {
	t.Parallel()

	text := `Requisitos de admisión
1. Título de abogado expedido por universidad argentina o extranjera
2. Presentar currículum vitae actualizado con antecedentes académicos
3. Corto
`
	reqs := posgrados.ExtractRequirementLines(text)

	require.Len(t, reqs, 2)
	assert.Equal(t, "Título de abogado expedido por universidad argentina o extranjera", reqs[0])
	assert.Equal(t, "Presentar currículum vitae actualizado con antecedentes académicos", reqs[1])
}

func TestExtractObjectives(t *testing.T) {
	t.Parallel()

	long := "Formar especialistas con una visión integral del derecho penal contemporáneo, capaces de intervenir en procesos complejos y de producir investigación académica original en la disciplina."

	t.Run("labeled block", func(t *testing.T) {
		t.Parallel()
		got := posgrados.ExtractObjectives("Objetivos: " + long)
		assert.Contains(t, got, "Formar especialistas")
	})

	t.Run("falls back to first long paragraph", func(t *testing.T) {
		t.Parallel()
		got := posgrados.ExtractObjectives("Presentación\n" + long + "\n")
		assert.Contains(t, got, "Formar especialistas")
	})

	t.Run("absent on short pages", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, posgrados.ExtractObjectives("Página en construcción."))
	})
}

func TestExtractSubjects(t *testing.T) {
	t.Parallel()

	planText := `Plan de estudios
Primer Ciclo: 352 horas
1. Teoría del Delito y de la Pena (36 horas)
2. Garantías Constitucionales en el Proceso Penal
3. Derecho Penal Económico
`

	t.Run("collects subjects in source order", func(t *testing.T) {
		t.Parallel()

		subjects := posgrados.ExtractSubjects(planText)

		require.Len(t, subjects, 3)
		assert.Equal(t, "Teoría del Delito y de la Pena", subjects[0].Name)
		assert.Equal(t, 36, subjects[0].Hours)
		assert.Equal(t, "Garantías Constitucionales en el Proceso Penal", subjects[1].Name)
		assert.Zero(t, subjects[1].Hours)
		assert.Equal(t, "Derecho Penal Económico", subjects[2].Name)
		for i, s := range subjects {
			assert.Equal(t, i, s.Position)
			assert.Equal(t, posgrados.KindTroncal, s.Kind)
		}
	})

	t.Run("page-level elective signal marks every subject", func(t *testing.T) {
		t.Parallel()

		subjects := posgrados.ExtractSubjects(planText + "Seminario de materias optativas\n")

		require.Len(t, subjects, 3)
		for _, s := range subjects {
			assert.Equal(t, posgrados.KindOptativa, s.Kind)
		}
	})

	t.Run("filters noise by length", func(t *testing.T) {
		t.Parallel()

		subjects := posgrados.ExtractSubjects("1. Ver\n2. Derecho Procesal Profundizado\n")

		require.Len(t, subjects, 1)
		assert.Equal(t, "Derecho Procesal Profundizado", subjects[0].Name)
	})

	t.Run("nil without numbered entries", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, posgrados.ExtractSubjects("El plan se publicará próximamente."))
	})
}
