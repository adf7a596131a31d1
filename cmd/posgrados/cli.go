package main

import (
	"context"
	"io"
	"log/slog"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
	"github.com/marianomartinho/uba-posgrados-chatbot/scrape"
	"github.com/marianomartinho/uba-posgrados-chatbot/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Programs posgrados.ProgramService
	Subjects posgrados.SubjectService
	Logs     posgrados.QueryLogService
	Scraper  *scrape.Scraper
	Asker    posgrados.Asker
	Cache    posgrados.ContextCache
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape   ScrapeCmd   `cmd:"" help:"Scrape the catalog and replace the stored records"`
	Ask      AskCmd      `cmd:"" help:"Ask a question about the catalog"`
	Serve    ServeCmd    `cmd:"" help:"Serve the chatbot over HTTP"`
	Programs ProgramsCmd `cmd:"" help:"List stored programs"`
	Stats    StatsCmd    `cmd:"" help:"Show usage statistics"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Concurrency int `short:"c" default:"4" help:"Concurrent program limit"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question about the postgraduate catalog"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"HTTP listen address"`
	Raw  bool   `help:"Answer from the raw page-text cache instead of the structured records"`
}

// ProgramsCmd is the "programs" subcommand.
type ProgramsCmd struct {
	Tipo string `help:"Filter by category (maestria, especializacion)"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}
