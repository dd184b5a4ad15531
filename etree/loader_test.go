package etree_test

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/king8fisher/synset"
	syntree "github.com/king8fisher/synset/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLMF = `<?xml version="1.0" encoding="UTF-8"?>
<LexicalResource>
  <Lexicon id="test-en" label="Test English Lexicon" language="en" version="1.0">
    <LexicalEntry id="e-dog">
      <Lemma writtenForm="Dog" partOfSpeech="n"/>
      <Form writtenForm="dogs"/>
      <Sense id="s-dog-1" synset="ss-dog-animal">
        <SenseRelation relType="derivation" target="s-canine-1"/>
        <SenseRelation relType="derivation" target="s-missing"/>
      </Sense>
      <Sense id="s-dog-2" synset="ss-dog-chap"/>
    </LexicalEntry>
    <LexicalEntry id="e-canine">
      <Lemma writtenForm="canine" partOfSpeech="n"/>
      <Sense id="s-canine-1" synset="ss-canine" subcat="sb-1"/>
      <SyntacticBehaviour id="sb-1" subcategorizationFrame="Somebody ----s"/>
    </LexicalEntry>
    <Synset id="ss-dog-animal" ili="i1001" partOfSpeech="n" members="e-dog">
      <Definition>a member of the genus Canis</Definition>
      <ILIDefinition>a domesticated carnivorous mammal</ILIDefinition>
      <Example>the dog barked all night</Example>
      <SynsetRelation relType="hypernym" target="ss-canine"/>
      <SynsetRelation relType="hypernym" target="ss-missing"/>
    </Synset>
    <Synset id="ss-dog-chap" ili="i1002" partOfSpeech="n" members="e-dog"/>
    <Synset id="ss-canine" ili="i1003" partOfSpeech="n" members="e-canine">
      <Definition>a dog-like mammal</Definition>
    </Synset>
  </Lexicon>
</LexicalResource>`

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("parses lexicon metadata", func(t *testing.T) {
		t.Parallel()

		path := writeSample(t, "sample.xml", sampleLMF)
		lex, err := syntree.NewLoader().Load(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, "test-en", lex.ID)
		assert.Equal(t, "Test English Lexicon", lex.Label)
		assert.Equal(t, "en", lex.Language)
		assert.Equal(t, "1.0", lex.Version)
	})

	t.Run("parses entries with lemmas, forms, and senses in order", func(t *testing.T) {
		t.Parallel()

		path := writeSample(t, "sample.xml", sampleLMF)
		lex, err := syntree.NewLoader().Load(context.Background(), path)
		require.NoError(t, err)

		require.Len(t, lex.Entries, 2)
		dog := lex.Entries[0]
		assert.Equal(t, "e-dog", dog.ID)
		require.Len(t, dog.Lemmas, 1)
		assert.Equal(t, "Dog", dog.Lemmas[0].WrittenForm)
		assert.Equal(t, synset.Noun, dog.Lemmas[0].PartOfSpeech)
		require.Len(t, dog.Forms, 1)
		assert.Equal(t, "dogs", dog.Forms[0].WrittenForm)

		require.Len(t, dog.Senses, 2)
		assert.Equal(t, "s-dog-1", dog.Senses[0].ID)
		assert.Equal(t, "ss-dog-animal", dog.Senses[0].SynsetID)
		assert.Equal(t, "s-dog-2", dog.Senses[1].ID)

		require.Len(t, dog.Senses[0].Relations, 2)
		assert.Equal(t, synset.RelationType("derivation"), dog.Senses[0].Relations[0].Type)
		assert.Equal(t, "s-missing", dog.Senses[0].Relations[1].Target)
	})

	t.Run("parses synsets with members and relations in order", func(t *testing.T) {
		t.Parallel()

		path := writeSample(t, "sample.xml", sampleLMF)
		lex, err := syntree.NewLoader().Load(context.Background(), path)
		require.NoError(t, err)

		require.Len(t, lex.Synsets, 3)
		ss := lex.Synsets[0]
		assert.Equal(t, "ss-dog-animal", ss.ID)
		assert.Equal(t, "i1001", ss.ILI)
		assert.Equal(t, synset.Noun, ss.PartOfSpeech)
		assert.Equal(t, []string{"e-dog"}, ss.Members)
		assert.Equal(t, []string{"a member of the genus Canis"}, ss.Definitions)
		assert.Equal(t, []string{"a domesticated carnivorous mammal"}, ss.ILIDefinitions)
		assert.Equal(t, []string{"the dog barked all night"}, ss.Examples)

		require.Len(t, ss.Relations, 2)
		assert.Equal(t, synset.RelationHypernym, ss.Relations[0].Type)
		assert.Equal(t, "ss-canine", ss.Relations[0].Target)
		// Dangling target survives parsing untouched.
		assert.Equal(t, "ss-missing", ss.Relations[1].Target)
	})

	t.Run("parses syntactic behaviours and subcat references", func(t *testing.T) {
		t.Parallel()

		path := writeSample(t, "sample.xml", sampleLMF)
		lex, err := syntree.NewLoader().Load(context.Background(), path)
		require.NoError(t, err)

		require.Len(t, lex.SyntacticBehaviors, 1)
		assert.Equal(t, "sb-1", lex.SyntacticBehaviors[0].ID)
		assert.Equal(t, "Somebody ----s", lex.SyntacticBehaviors[0].Frame)
		assert.Equal(t, "sb-1", lex.Entries[1].Senses[0].SyntacticBehaviorID)
	})

	t.Run("reads gzipped files", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sample.xml.gz")
		f, err := os.Create(path)
		require.NoError(t, err)
		gz := gzip.NewWriter(f)
		_, err = gz.Write([]byte(sampleLMF))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
		require.NoError(t, f.Close())

		lex, err := syntree.NewLoader().Load(context.Background(), path)
		require.NoError(t, err)
		assert.Len(t, lex.Entries, 2)
	})

	t.Run("loaded lexicon feeds the index", func(t *testing.T) {
		t.Parallel()

		path := writeSample(t, "sample.xml", sampleLMF)
		lex, err := syntree.NewLoader().Load(context.Background(), path)
		require.NoError(t, err)

		ix := synset.NewIndex(lex)
		hypers := ix.Hypernyms("dog")
		require.Len(t, hypers, 1)
		assert.Contains(t, ix.MemberWords(hypers[0]), "canine")
	})

	t.Run("missing root is EINVALID", func(t *testing.T) {
		t.Parallel()

		path := writeSample(t, "bad.xml", "<NotALexicalResource/>")
		_, err := syntree.NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Equal(t, synset.EINVALID, synset.ErrorCode(err))
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := syntree.NewLoader().Load(context.Background(), "/nonexistent/sample.xml")
		require.Error(t, err)
	})

	t.Run("canceled context aborts the load", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := writeSample(t, "sample.xml", sampleLMF)
		_, err := syntree.NewLoader().Load(ctx, path)
		require.ErrorIs(t, err, context.Canceled)
	})
}
