package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/king8fisher/synset"
)

// Compile-time interface verification.
var _ synset.ExportService = (*ExportService)(nil)

// progressInterval is the row granularity of progress notifications.
const progressInterval = 256

// ExportService implements synset.ExportService against a SQLite database.
// The six stages run in order, each as one transaction: a failure between
// stages leaves prior stages durable and loses only the in-flight stage.
type ExportService struct {
	path string
}

// NewExportService creates an ExportService writing to the database at
// path. Use ":memory:" for an in-memory database (tests only; the overwrite
// precondition does not apply to it).
func NewExportService(path string) *ExportService {
	return &ExportService{path: path}
}

// Export projects the indexed lexicon into the destination database.
// If the destination already exists and opts.Overwrite is false, it fails
// with ECONFLICT before performing any write.
func (s *ExportService) Export(ctx context.Context, ix *synset.Index, opts synset.ExportOptions) error {
	if s.path != ":memory:" {
		if _, err := os.Stat(s.path); err == nil {
			if !opts.Overwrite {
				return synset.Errorf(synset.ECONFLICT, "destination %q already exists", s.path)
			}
			// Remove the stale database along with its WAL sidecars.
			for _, p := range []string{s.path, s.path + "-wal", s.path + "-shm"} {
				if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("failed to remove %q: %w", p, err)
				}
			}
		}
	}

	db := NewDB(s.path)
	if err := db.Open(); err != nil {
		return err
	}
	defer db.Close()

	run := &exportRun{db: db, ix: ix, progress: opts.Progress}
	return run.run(ctx)
}

// senseRef locates a sense in the exported schema: the surrogate id of its
// word and the id of its synset.
type senseRef struct {
	wordID   int64
	synsetID string
}

// exportRun holds the state shared by the stages of a single export.
type exportRun struct {
	db       *DB
	ix       *synset.Index
	progress synset.ExportProgressFunc

	// words is the sorted distinct canonical word list; wordIDs assigns
	// dense surrogate identifiers starting at 1 in sorted order.
	words   []string
	wordIDs map[string]int64

	// included is the set of synsets reachable via any sense of any
	// indexed word; includedOrder preserves first-reached order. This set
	// gates every stage after the synsets stage.
	included      map[string]bool
	includedOrder []*synset.Synset
}

func (e *exportRun) run(ctx context.Context) error {
	e.words = e.ix.Words()
	e.wordIDs = make(map[string]int64, len(e.words))
	for i, w := range e.words {
		e.wordIDs[w] = int64(i + 1)
	}
	e.collectIncluded()

	stages := []struct {
		phase synset.ExportPhase
		total int
		fn    func(context.Context, *sql.Tx) error
	}{
		{synset.PhaseWords, len(e.words), e.exportWords},
		{synset.PhaseSynsets, len(e.includedOrder), e.exportSynsets},
		{synset.PhaseWordSynsets, len(e.words), e.exportWordSynsets},
		{synset.PhaseSynsetExamples, len(e.includedOrder), e.exportSynsetExamples},
		{synset.PhaseSynsetRelations, len(e.includedOrder), e.exportSynsetRelations},
		{synset.PhaseSenseRelations, len(e.words), e.exportSenseRelations},
	}

	for _, stage := range stages {
		e.report(stage.phase, 0, stage.total)
		if err := e.inTx(ctx, stage.fn); err != nil {
			return fmt.Errorf("export stage %s: %w", stage.phase, err)
		}
		e.report(stage.phase, stage.total, stage.total)
	}

	return nil
}

// collectIncluded walks every sense of every indexed word, in word order,
// and records the synsets it can resolve. Dangling sense references are
// skipped; deduplication is by synset identifier.
func (e *exportRun) collectIncluded() {
	e.included = make(map[string]bool)
	for _, w := range e.words {
		for _, s := range e.ix.FindSenses(w) {
			ss, ok := e.ix.Synset(s.SynsetID)
			if !ok || e.included[ss.ID] {
				continue
			}
			e.included[ss.ID] = true
			e.includedOrder = append(e.includedOrder, ss)
		}
	}
}

// inTx runs fn inside a transaction, committing on success.
func (e *exportRun) inTx(ctx context.Context, fn func(context.Context, *sql.Tx) error) error {
	tx, err := e.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	if err := fn(ctx, tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (e *exportRun) report(phase synset.ExportPhase, current, total int) {
	if e.progress == nil {
		return
	}
	e.progress(synset.ExportProgress{Phase: phase, Current: current, Total: total})
}

func (e *exportRun) maybeReport(phase synset.ExportPhase, current, total int) {
	if current%progressInterval == 0 {
		e.report(phase, current, total)
	}
}

// exportWords writes the distinct lowercase canonical words in sorted order
// with their dense surrogate ids. The display form is the original casing
// of the first entry encountered for the word.
func (e *exportRun) exportWords(ctx context.Context, tx *sql.Tx) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO words (id, word, word_display) VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, w := range e.words {
		display := w
		if entries := e.ix.FindEntries(w); len(entries) > 0 {
			display = entries[0].DisplayWord()
		}
		if _, err := stmt.ExecContext(ctx, e.wordIDs[w], w, display); err != nil {
			return err
		}
		e.maybeReport(synset.PhaseWords, i+1, len(e.words))
	}
	return nil
}

// exportSynsets writes the included synsets: id, part of speech, and the
// first definition string (empty when the synset has none).
func (e *exportRun) exportSynsets(ctx context.Context, tx *sql.Tx) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO synsets (id, pos, definition) VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, ss := range e.includedOrder {
		definition := ""
		if len(ss.Definitions) > 0 {
			definition = ss.Definitions[0]
		}
		if _, err := stmt.ExecContext(ctx, ss.ID, string(ss.PartOfSpeech), definition); err != nil {
			return err
		}
		e.maybeReport(synset.PhaseSynsets, i+1, len(e.includedOrder))
	}
	return nil
}

// exportWordSynsets writes one edge per (word, entry, sense) walked in
// declaration order. The per-word sense_order counter starts at 0 and
// increments per emitted edge: downstream consumers rely on 0 being the
// primary sense. A duplicate (word_id, synset_id) key still consumes a
// counter value; the store drops it via conflict-ignore.
func (e *exportRun) exportWordSynsets(ctx context.Context, tx *sql.Tx) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO word_synsets (word_id, synset_id, sense_order) VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, w := range e.words {
		wordID := e.wordIDs[w]
		senseOrder := 0
		for _, entry := range e.ix.FindEntries(w) {
			for _, s := range entry.Senses {
				ss, ok := e.ix.Synset(s.SynsetID)
				if !ok || !e.included[ss.ID] {
					continue
				}
				if _, err := stmt.ExecContext(ctx, wordID, ss.ID, senseOrder); err != nil {
					return err
				}
				senseOrder++
			}
		}
		e.maybeReport(synset.PhaseWordSynsets, i+1, len(e.words))
	}
	return nil
}

// exportSynsetExamples writes the example strings of each included synset
// tagged with their 0-based declared position.
func (e *exportRun) exportSynsetExamples(ctx context.Context, tx *sql.Tx) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO synset_examples (synset_id, example, example_order) VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, ss := range e.includedOrder {
		for j, example := range ss.Examples {
			if _, err := stmt.ExecContext(ctx, ss.ID, example, j); err != nil {
				return err
			}
		}
		e.maybeReport(synset.PhaseSynsetExamples, i+1, len(e.includedOrder))
	}
	return nil
}

// exportSynsetRelations writes each included synset's outbound relations
// whose target is also included. Relations to excluded synsets are dropped
// entirely, not substituted.
func (e *exportRun) exportSynsetRelations(ctx context.Context, tx *sql.Tx) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO synset_relations (source_id, target_id, rel_type) VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, ss := range e.includedOrder {
		for _, rel := range ss.Relations {
			if !e.included[rel.Target] {
				continue
			}
			if _, err := stmt.ExecContext(ctx, ss.ID, rel.Target, string(rel.Type)); err != nil {
				return err
			}
		}
		e.maybeReport(synset.PhaseSynsetRelations, i+1, len(e.includedOrder))
	}
	return nil
}

// exportSenseRelations builds a reverse map from sense id to
// (word surrogate id, synset id) over every sense of every included entry
// whose synset resolves, then writes each such sense's outbound relations
// whose target resolves in that map.
func (e *exportRun) exportSenseRelations(ctx context.Context, tx *sql.Tx) error {
	refs := make(map[string]senseRef)
	for _, w := range e.words {
		wordID := e.wordIDs[w]
		for _, entry := range e.ix.FindEntries(w) {
			for _, s := range entry.Senses {
				if _, ok := e.ix.Synset(s.SynsetID); !ok {
					continue
				}
				refs[s.ID] = senseRef{wordID: wordID, synsetID: s.SynsetID}
			}
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO sense_relations
			(source_word_id, source_synset_id, target_word_id, target_synset_id, rel_type)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, w := range e.words {
		for _, entry := range e.ix.FindEntries(w) {
			for _, s := range entry.Senses {
				src, ok := refs[s.ID]
				if !ok {
					continue
				}
				for _, rel := range s.Relations {
					tgt, ok := refs[rel.Target]
					if !ok {
						continue
					}
					if _, err := stmt.ExecContext(ctx,
						src.wordID, src.synsetID, tgt.wordID, tgt.synsetID, string(rel.Type)); err != nil {
						return err
					}
				}
			}
		}
		e.maybeReport(synset.PhaseSenseRelations, i+1, len(e.words))
	}
	return nil
}
