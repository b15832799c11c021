// Package bloom provides URL deduplication for batch runs.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for URL deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd tests for the URL and adds it in one step. Returns true if
// the URL was probably seen before. False positives are possible; false
// negatives are not.
func (f *Filter) TestAndAdd(url string) bool {
	return f.f.TestAndAddString(url)
}
