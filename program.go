package posgrados

import (
	"context"
	"regexp"
	"time"
)

// Category identifies the kind of postgraduate program.
type Category string

// Program categories offered by the catalog.
const (
	CategoryMaestria        Category = "maestria"
	CategoryEspecializacion Category = "especializacion"
	CategoryDoctorado       Category = "doctorado"
)

// Modality identifies how a program is delivered.
type Modality string

// Delivery modes. ModalityUnspecified means the catalog page carried
// no recognizable modality token.
const (
	ModalityUnspecified Modality = ""
	ModalityPresencial  Modality = "presencial"
	ModalityVirtual     Modality = "virtual"
)

// Cycle is one named stage of a program's curriculum with its hour count.
type Cycle struct {
	Name  string `json:"name"`
	Hours int    `json:"hours"`
}

// Program represents one postgraduate program scraped from the catalog.
// A program is replaced wholesale on each successful scrape cycle;
// fields are never merged with a previous version.
//
// Optional fields keep their zero value when the source page carried no
// extractable data. Rendering layers translate zero values to
// "unspecified" rather than omitting them.
type Program struct {
	// Key is the stable short identifier used in catalog URLs,
	// e.g. "mae_der_penal". Unique across the record store.
	Key       string   `json:"key"`
	Category  Category `json:"category"`
	Name      string   `json:"name"`
	SourceURL string   `json:"sourceUrl"`

	// Leadership and contact.
	Director       string `json:"director"`
	DeputyDirector string `json:"deputyDirector"`
	Coordinator    string `json:"coordinator"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`

	// Academic data.
	DurationYears float64  `json:"durationYears"`
	TotalHours    int      `json:"totalHours"`
	Modality      Modality `json:"modality"`
	Schedule      string   `json:"schedule"`

	// Program structure.
	Requirements []string `json:"requirements"`
	Objectives   string   `json:"objectives"`
	Cycles       []Cycle  `json:"cycles"`

	UpdatedAt time.Time `json:"updatedAt"`
	Active    bool      `json:"active"`
}

// emailRe matches a syntactically well-formed address. The same pattern,
// unanchored, drives extraction from page text.
var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate returns an error if the program contains invalid fields.
func (p *Program) Validate() error {
	if p.Key == "" {
		return Errorf(EINVALID, "program key required")
	}
	if p.Category == "" {
		return Errorf(EINVALID, "program category required")
	}
	if p.Email != "" && !emailRe.MatchString(p.Email) {
		return Errorf(EINVALID, "program email %q is not a valid address", p.Email)
	}
	if p.DurationYears < 0 {
		return Errorf(EINVALID, "program duration must be positive")
	}
	if p.TotalHours < 0 {
		return Errorf(EINVALID, "program hours must be positive")
	}
	return nil
}

// ProgramFilter represents a filter for FindPrograms.
type ProgramFilter struct {
	Key      *string   `json:"key"`
	Category *Category `json:"category"`
	Modality *Modality `json:"modality"`

	// Query matches case-insensitively as a substring of the program
	// name, director, or coordinator.
	Query *string `json:"query"`

	// Area matches as a substring of the program name.
	Area *string `json:"area"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ProgramService represents a service for managing program records.
// Writes are whole-entity: a program is replaced in full, never patched.
type ProgramService interface {
	// ReplaceProgram creates the program or replaces an existing one
	// with the same key.
	ReplaceProgram(ctx context.Context, program *Program) error

	// FindProgramByKey retrieves a program by its catalog key.
	// Returns ENOTFOUND if the program does not exist.
	FindProgramByKey(ctx context.Context, key string) (*Program, error)

	// FindPrograms retrieves programs matching the filter, in stable
	// store-iteration order (catalog insertion order). Also returns the
	// total count of matching records before limit and offset.
	FindPrograms(ctx context.Context, filter ProgramFilter) ([]*Program, int, error)

	// DeleteProgram permanently removes a program and its subjects.
	// Returns ENOTFOUND if the program does not exist.
	DeleteProgram(ctx context.Context, key string) error
}
