package main

import (
	"fmt"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
	"github.com/marianomartinho/uba-posgrados-chatbot/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	deps.Scraper.Concurrency = c.Concurrency

	sources := posgrados.DefaultCatalog()
	fmt.Fprintf(deps.Stdout, "Scraping %d programs...\n", len(sources))

	result, err := deps.Scraper.ScrapeCatalog(deps.Ctx, sources, func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", e.Completed, e.Total, e.Key)
		case scrape.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s (page missing, skipped)\n", e.Completed, e.Total, e.Key)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %v\n", e.Completed, e.Total, e.Key, e.Error)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", posgrados.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done: %d saved, %d skipped, %d failed, %d subjects\n",
		result.Saved, result.Skipped, result.Failed, result.Subjects)
	return nil
}
