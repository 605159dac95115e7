// Package distmat provides a symmetric, zero-diagonal distance matrix
// whose rows and columns are labeled by sample ids.
package distmat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Tolerance is the largest |data[i][j] - data[j][i]| accepted by New.
const Tolerance = 1e-10

// DistanceMatrix is an immutable labeled distance matrix.
type DistanceMatrix struct {
	data  *mat.SymDense
	ids   []string
	index map[string]int
}

// New builds a distance matrix from a square, symmetric, hollow array.
// The upper triangle is kept.
func New(data [][]float64, ids []string) (*DistanceMatrix, error) {
	n := len(data)
	for i, row := range data {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		if data[i][i] != 0 {
			return nil, fmt.Errorf("%w: entry (%d, %d) is %g", ErrNonHollow, i, i, data[i][i])
		}
		for j := i + 1; j < n; j++ {
			if math.Abs(data[i][j]-data[j][i]) > Tolerance || math.IsNaN(data[i][j]) != math.IsNaN(data[j][i]) {
				return nil, fmt.Errorf("%w: entries (%d, %d) and (%d, %d)", ErrAsymmetric, i, j, j, i)
			}
		}
	}

	var sym *mat.SymDense
	if n > 0 {
		sym = mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				sym.SetSym(i, j, data[i][j])
			}
		}
	}
	return FromSymDense(sym, ids)
}

// FromSymDense wraps data, which the matrix takes ownership of. A nil
// data is an empty matrix.
func FromSymDense(data *mat.SymDense, ids []string) (*DistanceMatrix, error) {
	n := 0
	if data != nil {
		n = data.SymmetricDim()
	} else {
		data = &mat.SymDense{}
	}
	if len(ids) != n {
		return nil, fmt.Errorf("%w: %d ids for %d rows", ErrIDCount, len(ids), n)
	}
	for i := 0; i < n; i++ {
		if v := data.At(i, i); v != 0 {
			return nil, fmt.Errorf("%w: entry (%d, %d) is %g", ErrNonHollow, i, i, v)
		}
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		index[id] = i
	}

	return &DistanceMatrix{
		data:  data,
		ids:   append([]string(nil), ids...),
		index: index,
	}, nil
}

// Shape returns the matrix dimensions.
func (d *DistanceMatrix) Shape() (int, int) {
	n := len(d.ids)
	return n, n
}

// IDs returns a copy of the ids in row order.
func (d *DistanceMatrix) IDs() []string {
	return append([]string(nil), d.ids...)
}

// Index returns the row of id.
func (d *DistanceMatrix) Index(id string) (int, bool) {
	i, ok := d.index[id]
	return i, ok
}

// At returns the distance between the samples labeled a and b.
func (d *DistanceMatrix) At(a, b string) (float64, error) {
	i, ok := d.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownID, a)
	}
	j, ok := d.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownID, b)
	}
	return d.data.At(i, j), nil
}

// AtIndex returns the distance between rows i and j.
func (d *DistanceMatrix) AtIndex(i, j int) float64 {
	return d.data.At(i, j)
}

// Data returns a copy of the underlying matrix.
func (d *DistanceMatrix) Data() *mat.SymDense {
	n := len(d.ids)
	if n == 0 {
		return &mat.SymDense{}
	}
	c := mat.NewSymDense(n, nil)
	c.CopySym(d.data)
	return c
}

// Condensed returns the upper triangle in row-major order, the layout
// used for the n*(n-1)/2 unique pairs.
func (d *DistanceMatrix) Condensed() []float64 {
	n := len(d.ids)
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, d.data.At(i, j))
		}
	}
	return out
}

// Equal reports whether both matrices have the same ids in the same
// order and identical entries.
func (d *DistanceMatrix) Equal(o *DistanceMatrix) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.ids) != len(o.ids) {
		return false
	}
	for i := range d.ids {
		if d.ids[i] != o.ids[i] {
			return false
		}
	}
	if len(d.ids) == 0 {
		return true
	}
	return mat.Equal(d.data, o.data)
}
