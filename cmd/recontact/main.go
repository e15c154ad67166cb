package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/recontact"
	"github.com/fwojciec/recontact/gemini"
	"github.com/fwojciec/recontact/goquery"
	rechttp "github.com/fwojciec/recontact/http"
	"github.com/fwojciec/recontact/htmltomarkdown"
	"github.com/fwojciec/recontact/mail"
	"github.com/fwojciec/recontact/phonenumbers"
	"github.com/fwojciec/recontact/recon"
	"github.com/fwojciec/recontact/regexp"
	recslog "github.com/fwojciec/recontact/slog"
	"github.com/fwojciec/recontact/sqlite"
	"github.com/fwojciec/recontact/theharvester"
	"github.com/fwojciec/recontact/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

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
	TargetService recontact.TargetService
	RecordService recontact.RecordService
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
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("recontact"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'recontact --help' to see available commands")
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
		fmt.Fprintf(stderr, "Hint: Set RECONTACT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := newLogger(stderr, cli.Scan.Verbose)

	// Wire core services into dependencies
	m.TargetService = sqlite.NewTargetService(m.DB)
	m.RecordService = recslog.NewLoggingRecordService(sqlite.NewRecordService(m.DB), logger)
	deps.DB = m.DB
	deps.Targets = m.TargetService
	deps.Records = m.RecordService

	// Wire scan-specific dependencies
	if cmd == "scan" {
		pipeline, cleanup, err := m.buildPipeline(ctx, cli, logger, stderr)
		if err != nil {
			return err
		}
		defer cleanup()
		deps.Pipeline = pipeline

		if cli.Scan.CheckMX {
			deps.MX = mail.NewMXChecker()
		}
	}

	return kongCtx.Run(deps)
}

// buildPipeline assembles the extraction pipeline from the scan flags.
func (m *Main) buildPipeline(ctx context.Context, cli *CLI, logger *slog.Logger, stderr io.Writer) (*recon.Pipeline, func(), error) {
	rules := recontact.NewRegistry()
	if err := rules.Register(recontact.Rule{
		Matcher:   regexp.NewEmailMatcher(),
		Validator: mail.NewValidator(),
	}); err != nil {
		return nil, nil, err
	}
	if err := rules.Register(recontact.Rule{
		Matcher:   regexp.NewPhoneMatcher(),
		Validator: phonenumbers.NewValidator(phonenumbers.WithRegion(cli.Scan.Region)),
	}); err != nil {
		return nil, nil, err
	}

	fetcher := recslog.NewLoggingFetcher(rechttp.NewFetcher(), logger)

	p := &recon.Pipeline{
		Fetcher:     fetcher,
		Rules:       rules,
		Builder:     recon.NewBuilder(),
		Extractor:   trafilatura.NewExtractor(),
		Converter:   htmltomarkdown.NewConverter(),
		Profiles:    goquery.DefaultSource(),
		RateLimiter: recon.NewHostLimiter(cli.Scan.RPS),
		Logger:      logger,
		MaxPages:    cli.Scan.Crawl,
		Concurrency: cli.Scan.Concurrency,
	}

	if cli.Scan.Crawl > 1 {
		p.Links = goquery.NewLinkFinder()
	}

	if cli.Scan.Harvest {
		p.Harvester = recslog.NewLoggingHarvester(theharvester.NewHarvester(), logger)
	}

	if cli.Scan.Guess {
		p.Guesser = theharvester.GuessEmails
	}

	if cli.Scan.Enrich {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, nil, fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		p.Enricher = gemini.NewEnricher(client)
	}

	cleanup := func() { fetcher.Close() }
	return p, cleanup, nil
}

// newLogger builds the stderr logger. Without --verbose only warnings
// surface, so normal runs stay quiet.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("RECONTACT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "recontact.db"
	}
	dir := filepath.Join(home, ".recontact")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "recontact.db")
}
