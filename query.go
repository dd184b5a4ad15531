package synset

import "strings"

// WordDefinition is one definition row for a word query: the definition
// text together with the synset it came from.
type WordDefinition struct {
	Text         string
	Synset       *Synset
	PartOfSpeech PartOfSpeech
}

// FindEntries returns the entries whose canonical word matches,
// case-insensitively, in first-encountered order. Unknown words yield an
// empty result, never an error.
func (ix *Index) FindEntries(word string) []*LexicalEntry {
	w, ok := ix.knownWord(word)
	if !ok {
		return nil
	}
	return ix.entriesByWord[w]
}

// FindSenses returns the senses of every matching entry, case-insensitively,
// in first-encountered order.
func (ix *Index) FindSenses(word string) []*Sense {
	w, ok := ix.knownWord(word)
	if !ok {
		return nil
	}
	return ix.sensesByWord[w]
}

// FindSynsets returns the synsets reachable through any sense of the word,
// case-insensitively, deduplicated by synset identifier, in
// first-encountered order.
func (ix *Index) FindSynsets(word string) []*Synset {
	w, ok := ix.knownWord(word)
	if !ok {
		return nil
	}
	return ix.synsetsByWord[w]
}

// Definitions returns one row per definition string of every synset of the
// word: outer order follows FindSynsets, inner order follows the synset's
// declared definitions. A synset with multiple definitions yields multiple
// rows.
func (ix *Index) Definitions(word string) []WordDefinition {
	var defs []WordDefinition
	for _, ss := range ix.FindSynsets(word) {
		for _, text := range ss.Definitions {
			defs = append(defs, WordDefinition{
				Text:         text,
				Synset:       ss,
				PartOfSpeech: ss.PartOfSpeech,
			})
		}
	}
	return defs
}

// RelationNeighbors returns the synsets reached by the synset's outbound
// relations of the given type, in declared relation order. Relations whose
// target does not resolve are dropped, never null-padded.
func (ix *Index) RelationNeighbors(ss *Synset, relType RelationType) []*Synset {
	if ss == nil {
		return nil
	}
	var out []*Synset
	for _, rel := range ss.Relations {
		if rel.Type != relType {
			continue
		}
		target, ok := ix.synsetsByID[rel.Target]
		if !ok {
			continue
		}
		out = append(out, target)
	}
	return out
}

// Hypernyms returns the more general synsets of every synset of the word.
// Outer order follows FindSynsets, inner order follows relation order.
func (ix *Index) Hypernyms(word string) []*Synset {
	return ix.wordNeighbors(word, RelationHypernym)
}

// Hyponyms returns the more specific synsets of every synset of the word.
func (ix *Index) Hyponyms(word string) []*Synset {
	return ix.wordNeighbors(word, RelationHyponym)
}

func (ix *Index) wordNeighbors(word string, relType RelationType) []*Synset {
	var out []*Synset
	for _, ss := range ix.FindSynsets(word) {
		out = append(out, ix.RelationNeighbors(ss, relType)...)
	}
	return out
}

// Synonyms returns the lemmas of the other members of every synset of the
// word: outer order follows FindSynsets, inner order follows each synset's
// member enumeration. The query word itself is excluded
// (case-insensitively), as is any lemma string already emitted; the first
// occurrence wins. Members that do not resolve to an entry are skipped.
func (ix *Index) Synonyms(word string) []string {
	w := strings.ToLower(word)
	seen := make(map[string]bool)
	var out []string
	for _, ss := range ix.FindSynsets(word) {
		for _, memberID := range ss.Members {
			entry, ok := ix.entriesByID[memberID]
			if !ok {
				continue
			}
			lemma := entry.DisplayWord()
			if lemma == "" || strings.ToLower(lemma) == w {
				continue
			}
			if seen[lemma] {
				continue
			}
			seen[lemma] = true
			out = append(out, lemma)
		}
	}
	return out
}

// MemberWords returns the lemma of every resolvable member entry of the
// synset, in member enumeration order, without deduplication. Unresolved
// members are dropped silently.
func (ix *Index) MemberWords(ss *Synset) []string {
	if ss == nil {
		return nil
	}
	var out []string
	for _, memberID := range ss.Members {
		entry, ok := ix.entriesByID[memberID]
		if !ok {
			continue
		}
		if lemma := entry.DisplayWord(); lemma != "" {
			out = append(out, lemma)
		}
	}
	return out
}
