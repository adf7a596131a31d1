package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
	"github.com/marianomartinho/uba-posgrados-chatbot/cache"
	"github.com/marianomartinho/uba-posgrados-chatbot/gemini"
	"github.com/marianomartinho/uba-posgrados-chatbot/goquery"
	poshttp "github.com/marianomartinho/uba-posgrados-chatbot/http"
	"github.com/marianomartinho/uba-posgrados-chatbot/rag"
	"github.com/marianomartinho/uba-posgrados-chatbot/retrieve"
	"github.com/marianomartinho/uba-posgrados-chatbot/scrape"
	posslog "github.com/marianomartinho/uba-posgrados-chatbot/slog"
	"github.com/marianomartinho/uba-posgrados-chatbot/sqlite"
	"google.golang.org/genai"
)

// scrapeInterval spaces out catalog page fetches during a scrape.
const scrapeInterval = 500 * time.Millisecond

// cacheInterval spaces out page fetches during a raw-cache refresh.
const cacheInterval = time.Second

func main() {
	ctx := context.Background()

	// A missing .env is fine; the environment may carry the values.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ProgramService  posgrados.ProgramService
	SubjectService  posgrados.SubjectService
	QueryLogService posgrados.QueryLogService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("posgrados"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'posgrados --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set POSGRADOS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ProgramService = sqlite.NewProgramService(m.DB)
	m.SubjectService = sqlite.NewSubjectService(m.DB)
	m.QueryLogService = sqlite.NewQueryLogService(m.DB)
	deps.DB = m.DB
	deps.Programs = m.ProgramService
	deps.Subjects = m.SubjectService
	deps.Logs = m.QueryLogService

	if cmd == "scrape" {
		fetcher := poshttp.NewFetcher()
		defer fetcher.Close()

		deps.Scraper = &scrape.Scraper{
			Fetcher:   posslog.NewLoggingFetcher(fetcher, deps.Logger),
			Flattener: goquery.NewFlattener(),
			Programs:  m.ProgramService,
			Subjects:  m.SubjectService,
			Limiter:   scrape.NewLimiter(scrapeInterval),
		}
	}

	if cmd == "ask" || cmd == "serve" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		generator := gemini.NewGenerator(client, "")

		var asker posgrados.Asker
		if cmd == "serve" && cli.Serve.Raw {
			fetcher := poshttp.NewFetcher()
			defer fetcher.Close()

			pages := cache.New(
				posslog.NewLoggingFetcher(fetcher, deps.Logger),
				goquery.NewFlattener(),
				catalogURLs(),
				cache.WithLimiter(scrape.NewLimiter(cacheInterval)),
				cache.WithStore(sqlite.NewPageStore(m.DB)),
			)
			if err := pages.Load(ctx); err != nil {
				return fmt.Errorf("failed to load page cache: %w", err)
			}
			deps.Cache = pages

			asker = &rag.RawAsker{Cache: pages, Generator: generator, Logs: m.QueryLogService}
		} else {
			asker = &rag.Asker{
				Retriever: retrieve.NewEngine(m.ProgramService, m.SubjectService),
				Generator: generator,
				Logs:      m.QueryLogService,
			}
		}

		deps.Asker = posslog.NewLoggingAsker(asker, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("POSGRADOS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "posgrados.db"
	}
	dir := filepath.Join(home, ".posgrados")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "posgrados.db")
}

// catalogURLs returns every catalog page URL used by the raw-cache
// mode: the main page of each program in the hand-curated catalog.
func catalogURLs() []string {
	sources := posgrados.DefaultCatalog()
	urls := make([]string, 0, len(sources))
	for _, src := range sources {
		urls = append(urls, src.MainURL(posgrados.DefaultBaseURL))
	}
	return urls
}
