package bruteforce

import (
	"errors"
	"fmt"
	"sort"

	"github.com/viant/tagrec/index"
	"github.com/viant/tagrec/vector"
)

// Index is a simple brute-force index implementing cosine similarity.
type Index struct {
	m *vector.Matrix
}

// New returns an index built over m.
func New(m *vector.Matrix) (*Index, error) {
	idx := &Index{}
	if err := idx.Build(m); err != nil {
		return nil, err
	}
	return idx, nil
}

// Build keeps a reference to m; row norms are already cached by the matrix.
func (i *Index) Build(m *vector.Matrix) error {
	if m == nil {
		return errors.New("bruteforce: matrix is nil")
	}
	i.m = m
	return nil
}

// Query returns top-k rows by cosine similarity. Rows with equal scores keep
// ascending row order; zero-magnitude rows score 0.
func (i *Index) Query(row, k int) ([]index.Hit, error) {
	if i.m == nil {
		return nil, index.ErrNotBuilt
	}
	n := i.m.Rows()
	if row < 0 || row >= n {
		return nil, fmt.Errorf("%w: %d (rows=%d)", index.ErrRowOutOfRange, row, n)
	}
	hits := make([]index.Hit, n)
	for j := 0; j < n; j++ {
		hits[j] = index.Hit{Row: j, Score: i.m.Cosine(row, j)}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Score > hits[b].Score })
	if k <= 0 || k > n {
		k = n
	}
	return hits[:k], nil
}

var _ index.Index = (*Index)(nil)
