// Package bloom provides a probabilistic word-membership filter used as a
// negative-lookup fast path by the index.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/king8fisher/synset"
)

// Ensure Filter implements synset.WordFilter at compile time.
var _ synset.WordFilter = (*Filter)(nil)

// Filter wraps a Bloom filter over canonical words. False positives fall
// through to the exact index maps, so query results are unaffected; false
// negatives are not possible.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected words
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a word to the filter.
func (f *Filter) Add(word string) {
	f.f.AddString(word)
}

// Test returns true if the word might be in the filter.
func (f *Filter) Test(word string) bool {
	return f.f.TestString(word)
}

// EstimatedCount returns the approximate number of words in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
