// Package goquery flattens catalog HTML into the text the extraction
// rules run over, using PuerkitoBio/goquery for parsing.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

// DefaultMaxTextLen caps the flattened text per page. The cap bounds
// both scraper memory and raw-cache prompt size.
const DefaultMaxTextLen = 8000

// minListItemLen filters navigation crumbs out of harvested list items.
const minListItemLen = 10

// Ensure Flattener implements posgrados.Flattener at compile time.
var _ posgrados.Flattener = (*Flattener)(nil)

// horizontalRe collapses spaces and tabs within a line; line breaks are
// preserved so line-anchored extraction rules keep working.
var horizontalRe = regexp.MustCompile(`[ \t\r\f\x{00a0}]+`)

// Flattener extracts the visible text of a page.
type Flattener struct {
	maxLen int
}

// Option configures a Flattener.
type Option func(*Flattener)

// WithMaxTextLen overrides the per-page text cap.
func WithMaxTextLen(n int) Option {
	return func(f *Flattener) {
		f.maxLen = n
	}
}

// NewFlattener creates a new Flattener.
func NewFlattener(opts ...Option) *Flattener {
	f := &Flattener{maxLen: DefaultMaxTextLen}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Flatten strips script/style content, captures the first heading as
// the title, and returns the whitespace-normalized page text truncated
// to the configured cap.
func (f *Flattener) Flatten(html string) (*posgrados.PageText, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, posgrados.Errorf(posgrados.EINVALID, "failed to parse HTML: %v", err)
	}

	title := posgrados.CleanText(doc.Find("h1").First().Text())
	if title == "" {
		title = posgrados.CleanText(doc.Find("h2").First().Text())
	}

	doc.Find("script, style, noscript").Remove()

	text := normalizeText(doc.Text())
	if r := []rune(text); len(r) > f.maxLen {
		text = string(r[:f.maxLen])
	}

	return &posgrados.PageText{Title: title, Text: text}, nil
}

// ListItems returns the cleaned text of every list item on the page,
// dropping entries too short to be a requirement.
func (f *Flattener) ListItems(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, posgrados.Errorf(posgrados.EINVALID, "failed to parse HTML: %v", err)
	}

	var items []string
	doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
		item := posgrados.CleanText(sel.Text())
		if len([]rune(item)) > minListItemLen {
			items = append(items, item)
		}
	})
	return items, nil
}

// normalizeText collapses horizontal whitespace within lines and drops
// blank lines, keeping one line break between text blocks.
func normalizeText(raw string) string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(horizontalRe.ReplaceAllString(line, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
