package main

import (
	"fmt"
	"os"
	"os/signal"

	poshttp "github.com/marianomartinho/uba-posgrados-chatbot/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := poshttp.NewServer()
	server.Addr = c.Addr
	server.Asker = deps.Asker
	server.Programs = deps.Programs
	server.Subjects = deps.Subjects
	server.Logs = deps.Logs
	server.Cache = deps.Cache
	server.CredentialConfigured = os.Getenv("GEMINI_API_KEY") != ""

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %q: %w", c.Addr, err)
	}
	defer server.Close()

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(deps.Stdout, "Shutting down")
	return nil
}
