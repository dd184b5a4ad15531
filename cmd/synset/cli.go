package main

import (
	"context"
	"io"

	"github.com/king8fisher/synset"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Index    *synset.Index
	Exporter synset.ExportService
	Fetcher  synset.Fetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Lexicon string `help:"Path to a WN-LMF lexicon file (plain or gzipped)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Def    DefCmd    `cmd:"" help:"Show definitions for a word"`
	Syn    SynCmd    `cmd:"" help:"List synonyms of a word"`
	Hyper  HyperCmd  `cmd:"" help:"List hypernym synsets of a word"`
	Hypo   HypoCmd   `cmd:"" help:"List hyponym synsets of a word"`
	Words  WordsCmd  `cmd:"" help:"List member words of a synset"`
	Info   InfoCmd   `cmd:"" help:"Show lexicon statistics"`
	Export ExportCmd `cmd:"" help:"Export the lexicon to a SQLite database"`
	Fetch  FetchCmd  `cmd:"" help:"Download a lexicon file into the local cache"`
}

// DefCmd is the "def" subcommand.
type DefCmd struct {
	Word string `arg:"" help:"Word to look up"`
}

// SynCmd is the "syn" subcommand.
type SynCmd struct {
	Word string `arg:"" help:"Word to look up"`
}

// HyperCmd is the "hyper" subcommand.
type HyperCmd struct {
	Word string `arg:"" help:"Word to look up"`
}

// HypoCmd is the "hypo" subcommand.
type HypoCmd struct {
	Word string `arg:"" help:"Word to look up"`
}

// WordsCmd is the "words" subcommand.
type WordsCmd struct {
	ID string `arg:"" help:"Synset identifier"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dest  string `arg:"" help:"Destination SQLite database path"`
	Force bool   `short:"f" help:"Overwrite an existing database"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL string `help:"Lexicon source URL (defaults to the Open English WordNet)"`
}
