package synset

import (
	"sort"
	"strings"
)

// WordFilter is a membership filter over canonical words. Test may return
// false positives but never false negatives, so the index can use it to
// answer unknown-word queries without touching the maps.
type WordFilter interface {
	// Add records a word in the filter.
	Add(word string)

	// Test returns true if the word might be in the filter.
	Test(word string) bool
}

// Index holds lookup maps derived from a Lexicon in a single pass. The maps
// are built once and read-only thereafter; all query methods are safe for
// concurrent readers.
type Index struct {
	lex *Lexicon

	entriesByID map[string]*LexicalEntry
	sensesByID  map[string]*Sense
	synsetsByID map[string]*Synset

	// Word-keyed maps use the lowercased canonical word and hold slices in
	// first-encountered order. Ordering contracts downstream (sense rank,
	// synonym emission) depend on these never becoming sets.
	entriesByWord map[string][]*LexicalEntry
	sensesByWord  map[string][]*Sense
	synsetsByWord map[string][]*Synset

	filter WordFilter
}

// IndexOption configures an Index.
type IndexOption func(*Index)

// WithWordFilter installs a membership filter populated during the build
// and consulted as a negative-lookup fast path by word queries.
func WithWordFilter(f WordFilter) IndexOption {
	return func(ix *Index) {
		ix.filter = f
	}
}

// NewIndex builds an Index from a Lexicon in one linear pass over entries
// and their senses. Building is a pure function of the lexicon: the same
// input yields the same index and no shared state is touched.
func NewIndex(lex *Lexicon, opts ...IndexOption) *Index {
	ix := &Index{
		lex:           lex,
		entriesByID:   make(map[string]*LexicalEntry, len(lex.Entries)),
		sensesByID:    make(map[string]*Sense),
		synsetsByID:   make(map[string]*Synset, len(lex.Synsets)),
		entriesByWord: make(map[string][]*LexicalEntry),
		sensesByWord:  make(map[string][]*Sense),
		synsetsByWord: make(map[string][]*Synset),
	}
	for _, opt := range opts {
		opt(ix)
	}

	// Synsets have no canonical word of their own; register them up front
	// so senses can resolve their synset during the entry pass.
	for _, ss := range lex.Synsets {
		ix.synsetsByID[ss.ID] = ss
	}

	for _, e := range lex.Entries {
		ix.entriesByID[e.ID] = e

		word := e.Word()
		if word != "" {
			ix.entriesByWord[word] = append(ix.entriesByWord[word], e)
			if ix.filter != nil {
				ix.filter.Add(word)
			}
		}

		for _, s := range e.Senses {
			ix.sensesByID[s.ID] = s
			if word == "" {
				continue
			}
			ix.sensesByWord[word] = append(ix.sensesByWord[word], s)

			ss, ok := ix.synsetsByID[s.SynsetID]
			if !ok {
				continue
			}
			if !containsSynsetID(ix.synsetsByWord[word], ss.ID) {
				ix.synsetsByWord[word] = append(ix.synsetsByWord[word], ss)
			}
		}
	}

	return ix
}

// containsSynsetID reports whether synsets already holds id. Comparison is
// by identifier, not pointer, so logically identical instances dedupe.
func containsSynsetID(synsets []*Synset, id string) bool {
	for _, ss := range synsets {
		if ss.ID == id {
			return true
		}
	}
	return false
}

// Lexicon returns the lexicon the index was built from.
func (ix *Index) Lexicon() *Lexicon {
	return ix.lex
}

// Entry resolves a lexical entry by identifier.
func (ix *Index) Entry(id string) (*LexicalEntry, bool) {
	e, ok := ix.entriesByID[id]
	return e, ok
}

// Sense resolves a sense by identifier.
func (ix *Index) Sense(id string) (*Sense, bool) {
	s, ok := ix.sensesByID[id]
	return s, ok
}

// Synset resolves a synset by identifier.
func (ix *Index) Synset(id string) (*Synset, bool) {
	ss, ok := ix.synsetsByID[id]
	return ss, ok
}

// Words returns every indexed canonical word, sorted lexicographically.
func (ix *Index) Words() []string {
	words := make([]string, 0, len(ix.entriesByWord))
	for w := range ix.entriesByWord {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// knownWord lowercases a query word and consults the filter fast path.
// A false return is definitive; a true return still requires a map lookup.
func (ix *Index) knownWord(word string) (string, bool) {
	w := strings.ToLower(word)
	if ix.filter != nil && !ix.filter.Test(w) {
		return w, false
	}
	return w, true
}
