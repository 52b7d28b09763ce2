package index

import (
	"errors"

	"github.com/viant/tagrec/vector"
)

var (
	// ErrNotBuilt is returned when Query is called before Build.
	ErrNotBuilt = errors.New("index: not built")

	// ErrRowOutOfRange is returned for query rows outside the matrix.
	ErrRowOutOfRange = errors.New("index: row out of range")
)

// Hit is a single ranked row with its similarity score.
type Hit struct {
	Row   int
	Score float64
}

// Index defines a nearest-neighbour index over the rows of a feature Matrix.
type Index interface {
	// Build prepares the index for the given matrix. The matrix must not be
	// modified afterwards.
	Build(m *vector.Matrix) error

	// Query ranks matrix rows by decreasing similarity to row and returns up
	// to k hits; k <= 0 returns every row. The query row itself is included.
	Query(row, k int) ([]Hit, error)
}
