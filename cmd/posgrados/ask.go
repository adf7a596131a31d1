package main

import (
	"fmt"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", posgrados.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer.Text)
	if answer.MatchedProgram != "" {
		fmt.Fprintf(deps.Stdout, "\n(Programa relacionado: %s)\n", answer.MatchedProgram)
	}
	return nil
}
