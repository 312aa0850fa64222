package kernel

import (
	"github.com/hupe1980/vecspace/vecmath"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable n x n symmetric similarity matrix with a unit
// diagonal.
type Matrix struct {
	sym *mat.SymDense // nil when n == 0
	n   int
}

type options struct {
	workers int
}

// Option configures Build.
type Option func(*options)

// WithWorkers computes rows of the upper triangle on up to n goroutines.
// Values <= 1 keep the build fully sequential (the default).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Build computes the cosine similarity matrix of vectors.
//
// Only the upper triangle (i < j) is evaluated; the symmetric storage mirrors
// it. The diagonal is fixed at 1.0. Returns *vecmath.ErrDimensionMismatch if
// the vectors do not share a length.
func Build(vectors [][]float32, optFns ...Option) (*Matrix, error) {
	opts := options{workers: 1}
	for _, fn := range optFns {
		fn(&opts)
	}

	n := len(vectors)
	if n == 0 {
		return &Matrix{}, nil
	}

	if _, err := vecmath.CheckDimensions(vectors); err != nil {
		return nil, err
	}

	sym := mat.NewSymDense(n, nil)

	// Rows are disjoint regions of the backing array, so concurrent
	// writers never touch the same element.
	fillRow := func(i int) error {
		sym.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			sim, err := vecmath.CosineSimilarity(vectors[i], vectors[j])
			if err != nil {
				return err
			}
			sym.SetSym(i, j, sim)
		}
		return nil
	}

	if opts.workers <= 1 {
		for i := range n {
			if err := fillRow(i); err != nil {
				return nil, err
			}
		}
		return &Matrix{sym: sym, n: n}, nil
	}

	var g errgroup.Group
	g.SetLimit(opts.workers)
	for i := range n {
		g.Go(func() error {
			return fillRow(i)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Matrix{sym: sym, n: n}, nil
}

// FromSymmetric wraps an existing symmetric matrix. The diagonal is forced to
// 1.0 and the data is copied, so later changes to s are not observed.
func FromSymmetric(s mat.Symmetric) *Matrix {
	n := s.SymmetricDim()
	if n == 0 {
		return &Matrix{}
	}

	sym := mat.NewSymDense(n, nil)
	for i := range n {
		sym.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			sym.SetSym(i, j, s.At(i, j))
		}
	}

	return &Matrix{sym: sym, n: n}
}

// Size returns n, the number of vectors the matrix was built from.
func (m *Matrix) Size() int {
	return m.n
}

// At returns the similarity between vectors i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.sym.At(i, j)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, m.n)
	for j := range m.n {
		row[j] = m.sym.At(i, j)
	}
	return row
}

// Symmetric returns a copy of the matrix for use with gonum. Changes to the
// copy are not observed by m. Returns nil for an empty matrix.
func (m *Matrix) Symmetric() *mat.SymDense {
	if m.sym == nil {
		return nil
	}
	cp := mat.NewSymDense(m.n, nil)
	cp.CopySym(m.sym)
	return cp
}

// UpperTriangle returns all off-diagonal similarities with i < j in
// row-major order. The result has n*(n-1)/2 entries.
func (m *Matrix) UpperTriangle() []float64 {
	if m.n < 2 {
		return nil
	}

	values := make([]float64, 0, m.n*(m.n-1)/2)
	for i := range m.n {
		for j := i + 1; j < m.n; j++ {
			values = append(values, m.sym.At(i, j))
		}
	}

	return values
}
