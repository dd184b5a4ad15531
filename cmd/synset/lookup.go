package main

import (
	"fmt"
	"strings"

	"github.com/king8fisher/synset"
)

// Run executes the def command.
func (c *DefCmd) Run(deps *Dependencies) error {
	defs := deps.Index.Definitions(c.Word)
	if len(defs) == 0 {
		fmt.Fprintf(deps.Stdout, "No definitions found for %q.\n", c.Word)
		return nil
	}

	for _, d := range defs {
		fmt.Fprintf(deps.Stdout, "%s (%s)  %s\n", d.Synset.ID, d.PartOfSpeech, d.Text)
	}

	return nil
}

// Run executes the syn command.
func (c *SynCmd) Run(deps *Dependencies) error {
	syns := deps.Index.Synonyms(c.Word)
	if len(syns) == 0 {
		fmt.Fprintf(deps.Stdout, "No synonyms found for %q.\n", c.Word)
		return nil
	}

	for _, s := range syns {
		fmt.Fprintln(deps.Stdout, s)
	}

	return nil
}

// Run executes the hyper command.
func (c *HyperCmd) Run(deps *Dependencies) error {
	return printSynsets(deps, c.Word, deps.Index.Hypernyms(c.Word))
}

// Run executes the hypo command.
func (c *HypoCmd) Run(deps *Dependencies) error {
	return printSynsets(deps, c.Word, deps.Index.Hyponyms(c.Word))
}

func printSynsets(deps *Dependencies, word string, synsets []*synset.Synset) error {
	if len(synsets) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", word)
		return nil
	}

	for _, ss := range synsets {
		words := strings.Join(deps.Index.MemberWords(ss), ", ")
		if len(ss.Definitions) > 0 {
			fmt.Fprintf(deps.Stdout, "%s  %s: %s\n", ss.ID, words, ss.Definitions[0])
		} else {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", ss.ID, words)
		}
	}

	return nil
}

// Run executes the words command.
func (c *WordsCmd) Run(deps *Dependencies) error {
	ss, ok := deps.Index.Synset(c.ID)
	if !ok {
		fmt.Fprintf(deps.Stdout, "Synset %q not found.\n", c.ID)
		return nil
	}

	for _, w := range deps.Index.MemberWords(ss) {
		fmt.Fprintln(deps.Stdout, w)
	}

	return nil
}

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	lex := deps.Index.Lexicon()
	fmt.Fprintf(deps.Stdout, "%s (%s) version %s\n", lex.Label, lex.Language, lex.Version)
	fmt.Fprintf(deps.Stdout, "entries: %d\n", len(lex.Entries))
	fmt.Fprintf(deps.Stdout, "synsets: %d\n", len(lex.Synsets))
	fmt.Fprintf(deps.Stdout, "words:   %d\n", len(deps.Index.Words()))
	return nil
}
