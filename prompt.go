package posgrados

import (
	"fmt"
	"strings"
)

// Prompt assembly. Two templates: a scoped one rendering the retrieved
// context bundle and an unscoped fallback. The truncation limits below
// are what keeps the assembled prompt inside the generation service's
// input budget; they are not cosmetic.

// GeneralContactEmail is the fallback contact rendered when no program
// matched or a program has no email of its own.
const GeneralContactEmail = "inscripcionesposgrado@derecho.uba.ar"

const (
	// promptFieldLimit bounds the objectives and requirements renderings.
	promptFieldLimit = 500

	// promptSubjectLimit bounds how many subjects the prompt enumerates.
	promptSubjectLimit = 20
)

const roleFraming = "Sos un asistente especializado en los posgrados de la Facultad de Derecho de la UBA."

// BuildPrompt assembles the generation prompt for a question. A nil
// context selects the unscoped template.
func BuildPrompt(question string, pc *ProgramContext) string {
	if pc == nil {
		return buildUnscopedPrompt(question)
	}
	return buildScopedPrompt(question, pc)
}

func buildUnscopedPrompt(question string) string {
	var sb strings.Builder
	sb.WriteString(roleFraming)
	sb.WriteString("\n\nPregunta del usuario: ")
	sb.WriteString(question)
	sb.WriteString("\n\nRespondé de forma clara y precisa. Si no tenés información específica sobre lo que pregunta, indicalo claramente y sugerí contactar a la Dirección de Posgrado.\n\nEmail general de Posgrado: ")
	sb.WriteString(GeneralContactEmail)
	sb.WriteString("\n")
	return sb.String()
}

func buildScopedPrompt(question string, pc *ProgramContext) string {
	p := pc.Program

	var sb strings.Builder
	sb.WriteString(roleFraming)
	sb.WriteString("\n\nINFORMACIÓN DEL PROGRAMA CONSULTADO:\n\n")
	fmt.Fprintf(&sb, "**%s** (%s)\n\n", p.Name, strings.ToUpper(string(p.Category)))

	sb.WriteString("DATOS GENERALES:\n")
	fmt.Fprintf(&sb, "- Director: %s\n", orUnspecified(p.Director, "No especificado"))
	fmt.Fprintf(&sb, "- Subdirector: %s\n", orUnspecified(p.DeputyDirector, "No especificado"))
	fmt.Fprintf(&sb, "- Coordinador: %s\n", orUnspecified(p.Coordinator, "No especificado"))
	fmt.Fprintf(&sb, "- Email de contacto: %s\n", orUnspecified(p.Email, GeneralContactEmail))
	fmt.Fprintf(&sb, "- Duración: %s\n", formatDuration(p.DurationYears))
	fmt.Fprintf(&sb, "- Carga horaria total: %s\n", formatHours(p.TotalHours))
	fmt.Fprintf(&sb, "- Modalidad: %s\n", orUnspecified(string(p.Modality), "No especificada"))
	fmt.Fprintf(&sb, "- Horario de cursada: %s\n", orUnspecified(p.Schedule, "No especificado"))

	fmt.Fprintf(&sb, "\nPLAN DE ESTUDIOS (%d materias en total):\n", pc.TotalSubjects)
	subjects := pc.Subjects
	if len(subjects) > promptSubjectLimit {
		subjects = subjects[:promptSubjectLimit]
	}
	for _, s := range subjects {
		fmt.Fprintf(&sb, "   - %s", s.Name)
		if s.Hours > 0 {
			fmt.Fprintf(&sb, " (%dhs)", s.Hours)
		}
		if s.Kind != "" {
			fmt.Fprintf(&sb, " [%s]", s.Kind)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nOBJETIVOS:\n")
	sb.WriteString(truncate(orUnspecified(p.Objectives, "No especificados"), promptFieldLimit))
	sb.WriteString("\n\nREQUISITOS DE ADMISIÓN:\n")
	sb.WriteString(truncate(orUnspecified(strings.Join(p.Requirements, "; "), "No especificados"), promptFieldLimit))

	sb.WriteString("\n\n---\n\nPREGUNTA DEL USUARIO: ")
	sb.WriteString(question)

	sb.WriteString("\n\nINSTRUCCIONES:\n")
	sb.WriteString("1. Respondé usando SOLO la información que te proporcioné arriba\n")
	sb.WriteString("2. Sé específico: citá carga horaria, nombres de materias, contactos\n")
	sb.WriteString("3. Si el usuario pregunta algo que NO está en los datos, decilo claramente\n")
	sb.WriteString("4. Formato: claro, estructurado, con viñetas cuando corresponda\n")
	sb.WriteString("5. Incluí siempre el email de contacto relevante al final\n")
	sb.WriteString("\nRespondé ahora de forma directa y útil:")

	return sb.String()
}

// BuildRawPrompt assembles the raw-cache mode prompt: the concatenated
// page text stands in for a structured context bundle.
func BuildRawPrompt(question, contextText string) string {
	var sb strings.Builder
	sb.WriteString(roleFraming)
	sb.WriteString("\n\nINFORMACIÓN DISPONIBLE (texto extraído del sitio oficial):\n\n")
	sb.WriteString(contextText)
	sb.WriteString("\n\n---\n\nPREGUNTA DEL USUARIO: ")
	sb.WriteString(question)
	sb.WriteString("\n\nRespondé usando solo la información de arriba. Si algo no está en los datos, decilo claramente e incluí el email de contacto ")
	sb.WriteString(GeneralContactEmail)
	sb.WriteString(" al final.")
	return sb.String()
}

func orUnspecified(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func formatDuration(years float64) string {
	if years <= 0 {
		return "No especificada"
	}
	return fmt.Sprintf("%g años", years)
}

func formatHours(hours int) string {
	if hours <= 0 {
		return "No especificada"
	}
	return fmt.Sprintf("%d horas", hours)
}

// truncate bounds s to n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
