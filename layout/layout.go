package layout

import (
	"errors"
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/vecspace/kernel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrInvalidOrder is returned by Reorder when order is not a permutation of
// the matrix indices.
var ErrInvalidOrder = errors.New("layout: order is not a permutation of matrix indices")

// similarityFloor is the lowest possible cosine similarity. A candidate must
// lie strictly above it to count as an informative neighbor.
const similarityFloor = -1.0

// separabilityNeighbors is the neighborhood size used by Separability.
const separabilityNeighbors = 3

// Statistics describes the off-diagonal upper-triangle similarities.
type Statistics struct {
	Mean     float64
	Variance float64 // population variance
	Min      float64
	Max      float64
	Count    int
}

// GreedyOrder chains indices by similarity: it starts at 0 and repeatedly
// appends the unvisited index most similar to the last appended one. When no
// remaining index rises above the similarity floor the lowest unvisited index
// is appended instead.
func GreedyOrder(m *kernel.Matrix) []int {
	n := m.Size()
	order := make([]int, 0, n)
	if n == 0 {
		return order
	}

	unvisited := roaring.New()
	unvisited.AddRange(1, uint64(n))

	last := 0
	order = append(order, last)

	for !unvisited.IsEmpty() {
		next := -1
		best := similarityFloor

		it := unvisited.Iterator()
		for it.HasNext() {
			j := int(it.Next())
			if sim := m.At(last, j); sim > best {
				best = sim
				next = j
			}
		}

		if next < 0 {
			next = int(unvisited.Minimum())
		}

		unvisited.Remove(uint32(next))
		order = append(order, next)
		last = next
	}

	return order
}

// Stats returns descriptive statistics over all similarities with i < j.
// The zero value is returned for matrices with fewer than two rows.
func Stats(m *kernel.Matrix) Statistics {
	values := m.UpperTriangle()
	if len(values) == 0 {
		return Statistics{}
	}

	mean, variance := stat.PopMeanVariance(values, nil)

	return Statistics{
		Mean:     mean,
		Variance: variance,
		Min:      floats.Min(values),
		Max:      floats.Max(values),
		Count:    len(values),
	}
}

// Separability returns, averaged over all points, the mean similarity to the
// three most similar neighbors minus the mean similarity to all other points.
// Points with fewer than three neighbors use the neighbors they have. Higher
// values indicate tighter, more distinct neighborhoods; a matrix of uniform
// similarities scores 0. Returns 0 for fewer than two points.
func Separability(m *kernel.Matrix) float64 {
	n := m.Size()
	if n < 2 {
		return 0
	}

	others := make([]float64, 0, n-1)
	var total float64

	for i := range n {
		others = others[:0]
		for j := range n {
			if j != i {
				others = append(others, m.At(i, j))
			}
		}

		slices.Sort(others)
		top := others[len(others)-min(separabilityNeighbors, len(others)):]

		total += stat.Mean(top, nil) - stat.Mean(others, nil)
	}

	return total / float64(n)
}

// Reorder returns a copy of m with rows and columns permuted so that entry
// (a, b) of the result is m.At(order[a], order[b]).
func Reorder(m *kernel.Matrix, order []int) (*kernel.Matrix, error) {
	n := m.Size()
	if len(order) != n {
		return nil, fmt.Errorf("%w: got %d indices for %d rows", ErrInvalidOrder, len(order), n)
	}
	if n == 0 {
		return m, nil
	}

	seen := roaring.New()
	for _, idx := range order {
		if idx < 0 || idx >= n || !seen.CheckedAdd(uint32(idx)) {
			return nil, fmt.Errorf("%w: index %d", ErrInvalidOrder, idx)
		}
	}

	sym := mat.NewSymDense(n, nil)
	for a := range n {
		for b := a; b < n; b++ {
			sym.SetSym(a, b, m.At(order[a], order[b]))
		}
	}

	return kernel.FromSymmetric(sym), nil
}
