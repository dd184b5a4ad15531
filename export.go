package synset

import "context"

// ExportPhase identifies one stage of an export run.
type ExportPhase string

// Export phases, in execution order. Each phase is one atomic bulk-write
// unit against the destination store.
const (
	PhaseWords           ExportPhase = "words"
	PhaseSynsets         ExportPhase = "synsets"
	PhaseWordSynsets     ExportPhase = "word_synsets"
	PhaseSynsetExamples  ExportPhase = "synset_examples"
	PhaseSynsetRelations ExportPhase = "synset_relations"
	PhaseSenseRelations  ExportPhase = "sense_relations"
)

// ExportProgress reports coarse progress within a phase. Current is
// monotonically non-decreasing per phase. Progress is observability only
// and never affects row contents.
type ExportProgress struct {
	Phase   ExportPhase
	Current int
	Total   int
}

// ExportProgressFunc is called as export stages advance. It must not block.
type ExportProgressFunc func(ExportProgress)

// ExportOptions configures an export run.
type ExportOptions struct {
	// Overwrite allows replacing an existing destination. Without it, an
	// existing destination fails with ECONFLICT before any write.
	Overwrite bool

	// Progress, if set, receives per-phase progress notifications.
	Progress ExportProgressFunc
}

// ExportService projects an indexed lexicon into a normalized relational
// schema restricted to the closure reachable from indexed words.
// Re-exporting identical input is idempotent: inserts use conflict-ignore
// semantics, so duplicate composite keys are skipped, not errors.
type ExportService interface {
	Export(ctx context.Context, ix *Index, opts ExportOptions) error
}
