package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/king8fisher/synset/cmd/synset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mainTestLMF = `<?xml version="1.0" encoding="UTF-8"?>
<LexicalResource>
  <Lexicon id="test-en" label="Test Lexicon" language="en" version="1.0">
    <LexicalEntry id="e-dog">
      <Lemma writtenForm="dog" partOfSpeech="n"/>
      <Sense id="s-dog-1" synset="ss-dog"/>
    </LexicalEntry>
    <LexicalEntry id="e-hound">
      <Lemma writtenForm="hound" partOfSpeech="n"/>
      <Sense id="s-hound-1" synset="ss-dog"/>
    </LexicalEntry>
    <Synset id="ss-dog" partOfSpeech="n" members="e-dog e-hound">
      <Definition>a member of the genus Canis</Definition>
    </Synset>
  </Lexicon>
</LexicalResource>`

func writeLexicon(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicon.xml")
	require.NoError(t, os.WriteFile(path, []byte(mainTestLMF), 0o644))
	return path
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments is an error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help succeeds without a lexicon", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "export")
	})

	t.Run("def loads the lexicon and answers", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		args := []string{"--lexicon", writeLexicon(t), "def", "dog"}

		err := m.Run(context.Background(), args, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "a member of the genus Canis")
		require.NotNil(t, m.Index)
	})

	t.Run("missing lexicon file surfaces a hint", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stderr := &bytes.Buffer{}
		args := []string{"--lexicon", "/nonexistent/lexicon.xml", "def", "dog"}

		err := m.Run(context.Background(), args, &bytes.Buffer{}, stderr)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "synset fetch")
	})

	t.Run("export writes a database", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		dest := filepath.Join(t.TempDir(), "out.db")
		args := []string{"--lexicon", writeLexicon(t), "export", dest}

		err := m.Run(context.Background(), args, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Exported to "+dest)
		assert.FileExists(t, dest)
	})
}
