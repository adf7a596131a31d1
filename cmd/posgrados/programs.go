package main

import (
	"fmt"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

// Run executes the programs command.
func (c *ProgramsCmd) Run(deps *Dependencies) error {
	filter := posgrados.ProgramFilter{}
	if c.Tipo != "" {
		category := posgrados.Category(c.Tipo)
		filter.Category = &category
	}

	programs, n, err := deps.Programs.FindPrograms(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", posgrados.ErrorMessage(err))
		return err
	}

	if n == 0 {
		fmt.Fprintln(deps.Stdout, "No programs stored. Use 'posgrados scrape' to populate the catalog.")
		return nil
	}

	for _, p := range programs {
		fmt.Fprintf(deps.Stdout, "%-50s  %-15s  %s\n", p.Key, p.Category, p.Name)
	}
	fmt.Fprintf(deps.Stdout, "\n%d programs\n", n)

	return nil
}
