package posgrados

import (
	"regexp"
	"strconv"
	"strings"
)

// Extraction is a pure function of the flattened page text: identical
// input always yields identical output, and a pattern that does not
// match leaves the field at its zero value. Label tokens are Spanish
// because the source site is; each rule is independently testable.

const (
	// scheduleMaxLen bounds the captured schedule span.
	scheduleMaxLen = 100

	// requirementMinLen / requirementMaxLen bound accepted requirement
	// lines, excluding navigation noise and run-on paragraphs.
	requirementMinLen = 20
	requirementMaxLen = 200

	// subjectMinLen / subjectMaxLen bound accepted subject names.
	subjectMinLen = 5
	subjectMaxLen = 200

	// objectivesMinLen is the shortest block accepted as objectives text.
	objectivesMinLen = 100
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Leadership labels tolerate the gendered -a suffix. The capture
	// starts at a capital letter and runs to the line break, like the
	// catalog renders names. Word boundaries keep "Director" from
	// matching inside "Subdirector".
	directorRe       = regexp.MustCompile(`(?i:\bdirectora?\b)[:\s]+([A-ZÁÉÍÓÚÑ][^\n\r]+)`)
	deputyDirectorRe = regexp.MustCompile(`(?i:\bsubdirectora?\b)[:\s]+([A-ZÁÉÍÓÚÑ][^\n\r]+)`)
	coordinatorRe    = regexp.MustCompile(`(?i:\bcoordinadora?\b)[:\s]+([A-ZÁÉÍÓÚÑ][^\n\r]+)`)

	extractEmailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	durationRe     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*años?`)
	hoursRe        = regexp.MustCompile(`(?i)(\d+)\s*horas?`)
	scheduleRe     = regexp.MustCompile(`(?i)(lunes|martes|miércoles|jueves|viernes)[^\n]*(\d{1,2}:\d{2}|\d{1,2}hs)`)
	cycleRe        = regexp.MustCompile(`(Primer|Segundo|Tercer)\s+[Cc]iclo[:\s]+(\d+)\s*horas?`)
	requirementRe  = regexp.MustCompile(`[•\-\d]+\.\s+([^\n]{20,200})`)
	objectivesRe   = regexp.MustCompile(`(?is)objetivos?[:\s]+(.{100,1000})`)
	subjectRe      = regexp.MustCompile(`\d+\.\s+([A-ZÁÉÍÓÚÑ][^\n\r.]+?)(?:\.|\n|\()`)
)

// CleanText collapses all whitespace runs to single spaces and trims
// the result.
func CleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// ExtractProgram builds a program record from a flattened main page.
// Requirements, objectives and subjects live on separate pages and are
// extracted by their own functions.
func ExtractProgram(page *PageText, key string, category Category, sourceURL string) *Program {
	text := page.Text
	return &Program{
		Key:            key,
		Category:       category,
		Name:           CleanText(page.Title),
		SourceURL:      sourceURL,
		Director:       ExtractDirector(text),
		DeputyDirector: ExtractDeputyDirector(text),
		Coordinator:    ExtractCoordinator(text),
		Email:          ExtractEmail(text),
		DurationYears:  ExtractDurationYears(text),
		TotalHours:     ExtractTotalHours(text),
		Modality:       ExtractModality(text),
		Schedule:       ExtractSchedule(text),
	}
}

// ExtractDirector returns the director's name, or "" if no label matches.
func ExtractDirector(text string) string {
	return extractLabeled(directorRe, text)
}

// ExtractDeputyDirector returns the deputy director's name, or "".
func ExtractDeputyDirector(text string) string {
	return extractLabeled(deputyDirectorRe, text)
}

// ExtractCoordinator returns the coordinator's name, or "".
func ExtractCoordinator(text string) string {
	return extractLabeled(coordinatorRe, text)
}

// extractLabeled captures the text after a label up to the line break.
// First match wins.
func extractLabeled(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return CleanText(m[1])
}

// ExtractEmail returns the first well-formed address in the text, or "".
// Partial matches are never completed into an address.
func ExtractEmail(text string) string {
	return extractEmailRe.FindString(text)
}

// ExtractDurationYears returns the first number followed by an "años"
// token, or 0 if none.
func ExtractDurationYears(text string) float64 {
	m := durationRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	years, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return years
}

// ExtractTotalHours returns the first integer followed by an "horas"
// token, or 0 if none.
func ExtractTotalHours(text string) int {
	m := hoursRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return hours
}

// ExtractModality detects the delivery mode. The in-person token takes
// precedence when a page mentions both.
func ExtractModality(text string) Modality {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "presencial"):
		return ModalityPresencial
	case strings.Contains(lower, "virtual"), strings.Contains(lower, "distancia"):
		return ModalityVirtual
	default:
		return ModalityUnspecified
	}
}

// ExtractSchedule returns the first weekday-plus-time span, truncated
// to 100 characters, or "".
func ExtractSchedule(text string) string {
	m := scheduleRe.FindString(text)
	if m == "" {
		return ""
	}
	if r := []rune(m); len(r) > scheduleMaxLen {
		m = string(r[:scheduleMaxLen])
	}
	return CleanText(m)
}

// ExtractCycles collects the program's cycle structure from repeated
// "<ordinal> ciclo: <n> horas" spans, in source order. Nil when none.
func ExtractCycles(text string) []Cycle {
	matches := cycleRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	cycles := make([]Cycle, 0, len(matches))
	for _, m := range matches {
		hours, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		cycles = append(cycles, Cycle{Name: m[1], Hours: hours})
	}
	return cycles
}

// ExtractRequirementLines collects bullet- or number-prefixed lines of
// 20 to 200 characters. It is the fallback for requirement pages
// without list-item markup.
func ExtractRequirementLines(text string) []string {
	matches := requirementRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	reqs := make([]string, 0, len(matches))
	for _, m := range matches {
		reqs = append(reqs, CleanText(m[1]))
	}
	return reqs
}

// ExtractObjectives returns the text following an "Objetivos" label,
// bounded to 100-1000 characters. Without a label it falls back to the
// first paragraph-like line longer than 100 characters. Empty when
// neither exists.
func ExtractObjectives(text string) string {
	if m := objectivesRe.FindStringSubmatch(text); m != nil {
		return CleanText(m[1])
	}
	for _, line := range strings.Split(text, "\n") {
		if len([]rune(line)) > objectivesMinLen {
			return CleanText(line)
		}
	}
	return ""
}

// ExtractSubjects collects curriculum subjects from "<number>. <Name>"
// spans, preserving source order and duplicates. Per-subject hours are
// found by re-searching the page for the subject name followed by an
// hour count; a single "optativa" token anywhere on the page marks
// every subject elective (the catalog tags electives per page, not per
// entry).
func ExtractSubjects(text string) []*Subject {
	matches := subjectRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	kind := KindTroncal
	if strings.Contains(strings.ToLower(text), "optativa") {
		kind = KindOptativa
	}

	subjects := make([]*Subject, 0, len(matches))
	for _, m := range matches {
		name := CleanText(m[1])
		if n := len([]rune(name)); n <= subjectMinLen || n >= subjectMaxLen {
			continue
		}
		subjects = append(subjects, &Subject{
			Name:     name,
			Kind:     kind,
			Hours:    subjectHours(text, name),
			Position: len(subjects),
		})
	}
	return subjects
}

// subjectHours looks up the first hour count following the subject name
// anywhere in the page text. Zero when absent.
func subjectHours(text, name string) int {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(name) + `[^\d]*(\d+)\s*horas?`)
	if err != nil {
		return 0
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return hours
}
