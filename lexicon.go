package synset

import (
	"context"
	"strings"
)

// PartOfSpeech is a WN-LMF part-of-speech tag.
type PartOfSpeech string

// Part-of-speech tags used by WN-LMF lexicons.
const (
	Noun              PartOfSpeech = "n"
	Verb              PartOfSpeech = "v"
	Adjective         PartOfSpeech = "a"
	Adverb            PartOfSpeech = "r"
	AdjectiveSatelite PartOfSpeech = "s"
)

// RelationType labels a typed edge between senses or between synsets.
// Values match the relType strings of the source resource.
type RelationType string

// Relation types used by the traversal operators. Lexicons carry many more;
// any string value is accepted.
const (
	RelationHypernym RelationType = "hypernym"
	RelationHyponym  RelationType = "hyponym"
)

// Lexicon is the root container of a lexical graph as delivered by a
// loader. It is passive data: declaration order of every nested sequence is
// semantically meaningful (sense rank, member enumeration, relation
// enumeration) and nothing downstream mutates it.
type Lexicon struct {
	ID       string
	Label    string
	Language string
	Version  string

	Entries            []*LexicalEntry
	Synsets            []*Synset
	SyntacticBehaviors []SyntacticBehavior
}

// LexicalEntry is a word-form grouping: one or more lemmas, the senses of
// the word, and optional alternate written forms.
type LexicalEntry struct {
	ID     string
	Lemmas []Lemma
	Senses []*Sense
	Forms  []Form
}

// Word returns the entry's canonical word: the written form of its first
// lemma, lowercased. Entries with no lemma return "" and are reachable by
// identifier only.
func (e *LexicalEntry) Word() string {
	return strings.ToLower(e.DisplayWord())
}

// DisplayWord returns the written form of the entry's first lemma with its
// original casing, or "" if the entry has no lemma.
func (e *LexicalEntry) DisplayWord() string {
	if len(e.Lemmas) == 0 {
		return ""
	}
	return e.Lemmas[0].WrittenForm
}

// Lemma is a written form with its part of speech.
type Lemma struct {
	WrittenForm  string
	PartOfSpeech PartOfSpeech
}

// Form is an alternate spelling of an entry.
type Form struct {
	WrittenForm string
}

// Sense links one lexical entry to exactly one synset.
type Sense struct {
	ID       string
	SynsetID string

	// SyntacticBehaviorID is optional; "" when absent.
	SyntacticBehaviorID string

	Relations []SenseRelation
}

// Synset is a set of senses considered synonymous. Members lists the
// identifiers of the entries whose senses belong to the synset, in
// enumeration order.
type Synset struct {
	ID           string
	PartOfSpeech PartOfSpeech
	ILI          string

	Definitions    []string
	ILIDefinitions []string
	Examples       []string

	Members   []string
	Relations []SynsetRelation
}

// SenseRelation is a typed edge from one sense to another. The target is
// not guaranteed to resolve; dangling references are expected in real
// lexicons and tolerated everywhere.
type SenseRelation struct {
	Type   RelationType
	Target string
}

// SynsetRelation is a typed edge from one synset to another. Same dangling
// target policy as SenseRelation.
type SynsetRelation struct {
	Type   RelationType
	Target string
}

// SyntacticBehavior describes a subcategorization frame referenced by
// senses.
type SyntacticBehavior struct {
	ID    string
	Frame string
}

// Loader parses a lexicon source file into a Lexicon.
type Loader interface {
	Load(ctx context.Context, path string) (*Lexicon, error)
}

// Fetcher retrieves a lexicon source file and returns the local path of the
// cached copy. A fresh download is skipped when the cached copy is intact.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
