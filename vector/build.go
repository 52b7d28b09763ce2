package vector

import (
	"errors"
	"fmt"
	"sort"

	"github.com/viant/tagrec/catalog"
)

// DefaultMaxFeatures caps the vocabulary size.
const DefaultMaxFeatures = 3000

var (
	// ErrEmptyCatalog is returned when a feature space is requested for a
	// catalog without items.
	ErrEmptyCatalog = errors.New("vector: catalog is empty")

	// ErrInvalidMaxFeatures is returned when the vocabulary cap is not positive.
	ErrInvalidMaxFeatures = errors.New("vector: max features must be positive")
)

type buildOptions struct {
	maxFeatures int
	filter      TokenFilter
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

// WithMaxFeatures sets the vocabulary cap.
func WithMaxFeatures(k int) BuildOption {
	return func(o *buildOptions) { o.maxFeatures = k }
}

// WithTokenFilter replaces DefaultTokenFilter.
func WithTokenFilter(f TokenFilter) BuildOption {
	return func(o *buildOptions) { o.filter = f }
}

// Build tokenizes every item's tags, keeps the most frequent tokens as the
// vocabulary and counts them per item.
//
// Tokens are ranked by total occurrences across the catalog, descending; ties
// keep the order in which tokens were first seen. Columns are assigned in
// rank order.
func Build(cat *catalog.Catalog, opts ...BuildOption) (*Vocabulary, *Matrix, error) {
	o := buildOptions{maxFeatures: DefaultMaxFeatures, filter: DefaultTokenFilter}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxFeatures <= 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidMaxFeatures, o.maxFeatures)
	}
	if cat.Len() == 0 {
		return nil, nil, ErrEmptyCatalog
	}

	docs := make([][]string, cat.Len())
	freq := make(map[string]int)
	var seen []string
	for i := 0; i < cat.Len(); i++ {
		tokens := o.filter.Tokenize(cat.Item(i).Tags)
		docs[i] = tokens
		for _, t := range tokens {
			if _, ok := freq[t]; !ok {
				seen = append(seen, t)
			}
			freq[t]++
		}
	}

	// seen is in first-appearance order, so a stable sort on frequency
	// alone yields the documented tie-break.
	ranked := append([]string(nil), seen...)
	sort.SliceStable(ranked, func(a, b int) bool { return freq[ranked[a]] > freq[ranked[b]] })
	if len(ranked) > o.maxFeatures {
		ranked = ranked[:o.maxFeatures]
	}
	vocab := newVocabulary(ranked, o.filter.Version)

	m := &Matrix{
		rows:  make([]sparseRow, len(docs)),
		cols:  vocab.Len(),
		norms: make([]float64, len(docs)),
	}
	for i, tokens := range docs {
		counts := make(map[int]float64)
		for _, t := range tokens {
			if col, ok := vocab.Column(t); ok {
				counts[col]++
			}
		}
		row := sparseRow{cols: make([]int, 0, len(counts)), counts: make([]float64, 0, len(counts))}
		for col := range counts {
			row.cols = append(row.cols, col)
		}
		sort.Ints(row.cols)
		for _, col := range row.cols {
			row.counts = append(row.counts, counts[col])
		}
		m.rows[i] = row
		m.norms[i] = row.norm()
	}
	return vocab, m, nil
}
