// Package scrape orchestrates the catalog scrape: fetching each
// program's pages, extracting structured fields from the flattened
// text, and replacing the stored records.
package scrape

import (
	"context"
	"sort"
	"time"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is how many programs are scraped at once. The
// shared rate limiter still spaces individual page fetches.
const DefaultConcurrency = 4

// Scraper coordinates fetching, extraction, and storage for the
// program catalog.
type Scraper struct {
	Fetcher   posgrados.Fetcher
	Flattener posgrados.Flattener
	Programs  posgrados.ProgramService
	Subjects  posgrados.SubjectService
	Limiter   posgrados.Limiter

	BaseURL     string
	Concurrency int
	Attempts    int
	RetryDelay  time.Duration

	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a catalog scrape.
type Result struct {
	Saved    int
	Skipped  int
	Failed   int
	Subjects int
}

// ProgressEvent reports progress during a catalog scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Key       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// scrapeResult holds the outcome of scraping a single program.
type scrapeResult struct {
	position int
	key      string
	program  *posgrados.Program
	subjects []*posgrados.Subject
	err      error
}

// ScrapeCatalog fetches and extracts every source concurrently, then
// replaces the stored records sequentially in catalog order so the
// store's iteration order matches the source list. A program whose main
// page is missing is skipped; failures on a program's auxiliary pages
// degrade that program's record instead of failing it.
func (s *Scraper) ScrapeCatalog(ctx context.Context, sources []posgrados.Source, progress ProgressFunc) (*Result, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(sources)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan scrapeResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, src := range sources {
		g.Go(func() error {
			program, subjects, err := s.ScrapeProgram(gctx, src)
			select {
			case resultCh <- scrapeResult{position: i, key: src.Key, program: program, subjects: subjects, err: err}:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(resultCh)

	results := make([]scrapeResult, 0, total)
	for r := range resultCh {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].position < results[j].position })

	result := &Result{}
	completed := 0
	for _, r := range results {
		completed++

		switch {
		case r.err != nil:
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, Key: r.key, Error: r.err})
			}
			continue
		case r.program == nil:
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Completed: completed, Total: total, Key: r.key})
			}
			continue
		}

		if err := s.Programs.ReplaceProgram(ctx, r.program); err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, Key: r.key, Error: err})
			}
			continue
		}
		if err := s.Subjects.ReplaceSubjects(ctx, r.program.Key, r.subjects); err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, Key: r.key, Error: err})
			}
			continue
		}

		result.Saved++
		result.Subjects += len(r.subjects)
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, Key: r.key})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	return result, nil
}

// ScrapeProgram fetches and extracts one program without storing it.
// Returns (nil, nil, nil) when the main page is missing. Auxiliary
// pages that fail to fetch leave their fields empty.
func (s *Scraper) ScrapeProgram(ctx context.Context, src posgrados.Source) (*posgrados.Program, []*posgrados.Subject, error) {
	base := s.BaseURL
	if base == "" {
		base = posgrados.DefaultBaseURL
	}

	html, _, err := s.fetch(ctx, src.MainURL(base))
	if err != nil {
		return nil, nil, err
	}
	if html == "" {
		return nil, nil, nil
	}

	page, err := s.Flattener.Flatten(html)
	if err != nil {
		return nil, nil, err
	}

	program := posgrados.ExtractProgram(page, src.Key, src.Category, src.MainURL(base))

	var subjects []*posgrados.Subject
	if html, _, err := s.fetch(ctx, src.PlanURL(base)); err == nil && html != "" {
		if plan, err := s.Flattener.Flatten(html); err == nil {
			subjects = posgrados.ExtractSubjects(plan.Text)
			for _, sub := range subjects {
				sub.ProgramKey = src.Key
			}
			program.Cycles = posgrados.ExtractCycles(plan.Text)
		}
	} else if err != nil && ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}

	if html, _, err := s.fetch(ctx, src.RequirementsURL(base)); err == nil && html != "" {
		items, err := s.Flattener.ListItems(html)
		if err == nil && len(items) > 0 {
			program.Requirements = items
		} else if page, err := s.Flattener.Flatten(html); err == nil {
			program.Requirements = posgrados.ExtractRequirementLines(page.Text)
		}
	} else if err != nil && ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}

	if html, _, err := s.fetch(ctx, src.ObjectivesURL(base)); err == nil && html != "" {
		if page, err := s.Flattener.Flatten(html); err == nil {
			program.Objectives = posgrados.ExtractObjectives(page.Text)
		}
	} else if err != nil && ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	program.UpdatedAt = now()
	program.Active = true

	return program, subjects, nil
}

// fetch applies the courtesy delay and retry policy to one page.
func (s *Scraper) fetch(ctx context.Context, url string) (string, int, error) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return "", 0, err
		}
	}

	attempts := s.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	delay := s.RetryDelay
	if delay <= 0 {
		delay = DefaultRetryDelay
	}

	return FetchWithRetryDelay(ctx, url, s.Fetcher.Fetch, nil, attempts, delay)
}
