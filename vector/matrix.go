package vector

import "math"

// Matrix holds raw token counts, one row per catalog item and one column per
// vocabulary token. Rows are stored sparsely with ascending columns and a
// precomputed L2 norm. Matrix is read-only after Build.
type Matrix struct {
	rows  []sparseRow
	cols  int
	norms []float64
}

type sparseRow struct {
	cols   []int
	counts []float64
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the count at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	r := m.rows[i]
	for k, c := range r.cols {
		if c == j {
			return r.counts[k]
		}
		if c > j {
			break
		}
	}
	return 0
}

// Row returns a dense copy of row i.
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, m.cols)
	r := m.rows[i]
	for k, c := range r.cols {
		out[c] = r.counts[k]
	}
	return out
}

// NonZero returns the number of non-zero cells in row i.
func (m *Matrix) NonZero(i int) int { return len(m.rows[i].cols) }

// Norm returns the L2 norm of row i.
func (m *Matrix) Norm(i int) float64 { return m.norms[i] }

// Dot returns the dot product of rows i and j.
func (m *Matrix) Dot(i, j int) float64 {
	a, b := m.rows[i], m.rows[j]
	var sum float64
	x, y := 0, 0
	for x < len(a.cols) && y < len(b.cols) {
		switch {
		case a.cols[x] == b.cols[y]:
			sum += a.counts[x] * b.counts[y]
			x++
			y++
		case a.cols[x] < b.cols[y]:
			x++
		default:
			y++
		}
	}
	return sum
}

// Cosine returns the cosine similarity of rows i and j, 0 when either row is
// all zeros.
func (m *Matrix) Cosine(i, j int) float64 {
	return cosine(m.Dot(i, j), m.norms[i], m.norms[j])
}

func (r sparseRow) norm() float64 {
	var sum float64
	for _, c := range r.counts {
		sum += c * c
	}
	return math.Sqrt(sum)
}
