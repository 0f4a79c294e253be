package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/pagesnap/pagesnap"
	"github.com/pagesnap/pagesnap/capture"
	"github.com/pagesnap/pagesnap/chromedp"
	"github.com/pagesnap/pagesnap/fs"
	"github.com/pagesnap/pagesnap/goquery"
	"github.com/pagesnap/pagesnap/htmltomarkdown"
	"github.com/pagesnap/pagesnap/readability"
	"github.com/pagesnap/pagesnap/rod"
	pslog "github.com/pagesnap/pagesnap/slog"
	"github.com/pagesnap/pagesnap/sqlite"
	"github.com/pagesnap/pagesnap/trafilatura"
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

	// SQLite database used by the record service.
	DB *sqlite.DB

	// Service for end-to-end testing.
	RecordService pagesnap.RecordService
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
		kong.Name("pagesnap"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesnap --help' to see available commands")
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
		fmt.Fprintf(stderr, "Hint: Set PAGESNAP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RecordService = sqlite.NewRecordService(m.DB)
	deps.DB = m.DB
	deps.Records = m.RecordService

	// Wire capture-specific dependencies
	if cmd == "capture" {
		var browser pagesnap.Browser
		switch cli.Capture.Engine {
		case "chromedp":
			browser, err = chromedp.NewBrowser()
		default:
			browser, err = rod.NewBrowser()
		}
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer browser.Close()

		if cli.Capture.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			browser = pslog.NewLoggingBrowser(browser, logger)
		}

		var extractor pagesnap.Extractor
		switch cli.Capture.Extractor {
		case "readability":
			extractor = goquery.NewFiltered(readability.NewExtractor())
		case "trafilatura":
			extractor = goquery.NewFiltered(trafilatura.NewExtractor())
		default:
			extractor = goquery.NewIsolator()
		}

		var screenshots pagesnap.ScreenshotStore
		if cli.Capture.Screenshot {
			screenshots = fs.NewScreenshotDir(filepath.Join(cli.Capture.Out, "screenshots"))
		}

		deps.Pipeline = &capture.Pipeline{
			Browser: browser,
			Stabilizer: pagesnap.ScrollStabilizer{
				Timeout: cli.Capture.Timeout,
				Settle:  cli.Capture.Settle,
			},
			Extractor:     extractor,
			Converter:     htmltomarkdown.NewConverter(),
			Screenshots:   screenshots,
			CleanupScript: pagesnap.NoiseScript(pagesnap.DefaultNoiseRules),
		}
		deps.Writer = fs.NewWriter(cli.Capture.Out)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGESNAP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagesnap.db"
	}
	dir := filepath.Join(home, ".pagesnap")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagesnap.db")
}
