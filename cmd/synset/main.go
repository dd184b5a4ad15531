package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/king8fisher/synset"
	"github.com/king8fisher/synset/bloom"
	synetree "github.com/king8fisher/synset/etree"
	synhttp "github.com/king8fisher/synset/http"
	synslog "github.com/king8fisher/synset/slog"
	"github.com/king8fisher/synset/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defaultSourceURL is the lexicon the fetch command downloads when no URL
// is given.
const defaultSourceURL = "https://en-word.net/static/english-wordnet-2024.xml.gz"

// wordFPRate sizes the index's word filter.
const wordFPRate = 0.01

// Main represents the program.
type Main struct {
	// Lexicon file path. Set before calling Run().
	LexiconPath string

	// Index built from the loaded lexicon, for end-to-end testing.
	Index *synset.Index
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		LexiconPath: defaultLexiconPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("synset"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'synset --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Selected().Name

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cli.Lexicon != "" {
		m.LexiconPath = cli.Lexicon
	}

	// The fetch command is the only one that works without a lexicon.
	if cmd == "fetch" {
		deps.Fetcher = synhttp.NewFetcher(cacheDir())
		return kongCtx.Run(deps)
	}

	var loader synset.Loader = synetree.NewLoader()
	loader = synslog.NewLoggingLoader(loader, logger)

	lex, err := loader.Load(ctx, m.LexiconPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: run 'synset fetch' to download a lexicon, or set SYNSET_LEXICON\n")
		return fmt.Errorf("failed to load lexicon at %q: %w", m.LexiconPath, err)
	}

	filter := bloom.NewFilter(uint(len(lex.Entries))+1, wordFPRate)
	m.Index = synset.NewIndex(lex, synset.WithWordFilter(filter))
	deps.Index = m.Index

	if cmd == "export" {
		deps.Exporter = synslog.NewLoggingExportService(
			sqlite.NewExportService(cli.Export.Dest), logger)
	}

	return kongCtx.Run(deps)
}

func defaultLexiconPath() string {
	if path := os.Getenv("SYNSET_LEXICON"); path != "" {
		return path
	}
	return filepath.Join(cacheDir(), filepath.Base(defaultSourceURL))
}

func cacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".synset"
	}
	return filepath.Join(home, ".synset")
}
