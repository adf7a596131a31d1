package main

import (
	"fmt"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Logs.Stats(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", posgrados.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Programs:          %d (%d maestrías, %d especializaciones)\n",
		stats.Programs, stats.Maestrias, stats.Especializaciones)
	fmt.Fprintf(deps.Stdout, "Subjects:          %d\n", stats.Subjects)
	fmt.Fprintf(deps.Stdout, "Queries answered:  %d\n", stats.Queries)

	top, err := deps.Logs.TopPrograms(deps.Ctx, 5)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", posgrados.ErrorMessage(err))
		return err
	}

	if len(top) > 0 {
		fmt.Fprintln(deps.Stdout, "\nMost consulted:")
		for _, pc := range top {
			fmt.Fprintf(deps.Stdout, "  %4d  %s\n", pc.Count, pc.Program)
		}
	}

	return nil
}
