package posgrados

import "context"

// Fetcher retrieves raw HTML from catalog pages.
type Fetcher interface {
	// Fetch performs one HTTP GET against the URL and returns the body
	// and observed status. A non-200 response is not an error: the body
	// is empty and the status reports what the server said. Errors are
	// reserved for network-level failures (timeout, connection reset),
	// which callers may retry.
	Fetch(ctx context.Context, url string) (html string, status int, err error)

	// Close releases client resources.
	Close() error
}

// Limiter enforces the courtesy delay between successive page fetches.
// It bounds request rate against the source site; it is not a
// correctness mechanism.
type Limiter interface {
	// Wait blocks until the next request is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}

// Flattener turns raw HTML into the text the extraction rules run over.
type Flattener interface {
	// Flatten strips script/style content, normalizes whitespace while
	// preserving line breaks, captures the first heading as the title,
	// and truncates the text to a fixed per-page cap.
	Flatten(html string) (*PageText, error)

	// ListItems returns the cleaned text of list-item elements, used by
	// requirement pages before falling back to bullet-line matching.
	ListItems(html string) ([]string, error)
}

// PageText is a flattened catalog page ready for field extraction.
type PageText struct {
	// Title is the first heading-level text on the page, or empty.
	Title string

	// Text is the whitespace-normalized page text with line breaks
	// preserved and script/style content removed.
	Text string
}
