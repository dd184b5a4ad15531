// Package etree provides a WN-LMF XML implementation of synset.Loader.
package etree

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/king8fisher/synset"
)

// Ensure Loader implements synset.Loader at compile time.
var _ synset.Loader = (*Loader)(nil)

// Loader parses WN-LMF (WordNet Lexical Markup Framework) XML documents.
// It validates document structure only; graph-level inconsistency such as
// dangling relation targets is expected input and passed through untouched.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the WN-LMF file at path into a Lexicon, preserving document
// order of entries, senses, synsets, and relations. Files ending in .gz are
// decompressed transparently.
func (l *Loader) Load(ctx context.Context, path string) (*synset.Lexicon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, synset.Errorf(synset.EINVALID, "invalid gzip file %q: %v", path, err)
		}
		defer gz.Close()
		r = gz
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, synset.Errorf(synset.EINVALID, "invalid XML in %q: %v", path, err)
	}

	root := doc.SelectElement("LexicalResource")
	if root == nil {
		return nil, synset.Errorf(synset.EINVALID, "missing LexicalResource root in %q", path)
	}
	lexEl := root.SelectElement("Lexicon")
	if lexEl == nil {
		return nil, synset.Errorf(synset.EINVALID, "missing Lexicon element in %q", path)
	}

	return parseLexicon(lexEl), nil
}

func parseLexicon(el *etree.Element) *synset.Lexicon {
	lex := &synset.Lexicon{
		ID:       el.SelectAttrValue("id", ""),
		Label:    el.SelectAttrValue("label", ""),
		Language: el.SelectAttrValue("language", ""),
		Version:  el.SelectAttrValue("version", ""),
	}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "LexicalEntry":
			entry, behaviors := parseEntry(child)
			lex.Entries = append(lex.Entries, entry)
			lex.SyntacticBehaviors = append(lex.SyntacticBehaviors, behaviors...)
		case "Synset":
			lex.Synsets = append(lex.Synsets, parseSynset(child))
		case "SyntacticBehaviour":
			// WN-LMF 1.1 places behaviours at lexicon level.
			lex.SyntacticBehaviors = append(lex.SyntacticBehaviors, parseBehavior(child))
		}
	}

	return lex
}

func parseEntry(el *etree.Element) (*synset.LexicalEntry, []synset.SyntacticBehavior) {
	entry := &synset.LexicalEntry{
		ID: el.SelectAttrValue("id", ""),
	}
	var behaviors []synset.SyntacticBehavior

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "Lemma":
			entry.Lemmas = append(entry.Lemmas, synset.Lemma{
				WrittenForm:  child.SelectAttrValue("writtenForm", ""),
				PartOfSpeech: synset.PartOfSpeech(child.SelectAttrValue("partOfSpeech", "")),
			})
		case "Form":
			entry.Forms = append(entry.Forms, synset.Form{
				WrittenForm: child.SelectAttrValue("writtenForm", ""),
			})
		case "Sense":
			entry.Senses = append(entry.Senses, parseSense(child))
		case "SyntacticBehaviour":
			// WN-LMF 1.0 nests behaviours inside entries.
			behaviors = append(behaviors, parseBehavior(child))
		}
	}

	return entry, behaviors
}

func parseSense(el *etree.Element) *synset.Sense {
	sense := &synset.Sense{
		ID:                  el.SelectAttrValue("id", ""),
		SynsetID:            el.SelectAttrValue("synset", ""),
		SyntacticBehaviorID: el.SelectAttrValue("subcat", ""),
	}
	for _, child := range el.ChildElements() {
		if child.Tag != "SenseRelation" {
			continue
		}
		sense.Relations = append(sense.Relations, synset.SenseRelation{
			Type:   synset.RelationType(child.SelectAttrValue("relType", "")),
			Target: child.SelectAttrValue("target", ""),
		})
	}
	return sense
}

func parseSynset(el *etree.Element) *synset.Synset {
	ss := &synset.Synset{
		ID:           el.SelectAttrValue("id", ""),
		PartOfSpeech: synset.PartOfSpeech(el.SelectAttrValue("partOfSpeech", "")),
		ILI:          el.SelectAttrValue("ili", ""),
		Members:      strings.Fields(el.SelectAttrValue("members", "")),
	}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "Definition":
			ss.Definitions = append(ss.Definitions, strings.TrimSpace(child.Text()))
		case "ILIDefinition":
			ss.ILIDefinitions = append(ss.ILIDefinitions, strings.TrimSpace(child.Text()))
		case "Example":
			ss.Examples = append(ss.Examples, strings.TrimSpace(child.Text()))
		case "SynsetRelation":
			ss.Relations = append(ss.Relations, synset.SynsetRelation{
				Type:   synset.RelationType(child.SelectAttrValue("relType", "")),
				Target: child.SelectAttrValue("target", ""),
			})
		}
	}

	return ss
}

func parseBehavior(el *etree.Element) synset.SyntacticBehavior {
	return synset.SyntacticBehavior{
		ID:    el.SelectAttrValue("id", ""),
		Frame: el.SelectAttrValue("subcategorizationFrame", ""),
	}
}
