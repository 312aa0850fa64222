package vecmath

import "fmt"

// ErrDimensionMismatch indicates two vectors (or a vector and a label array)
// that were expected to share a length but do not.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// CheckDimensions verifies that every vector has the length of the first one.
// It returns the shared dimension, or 0 for an empty collection.
func CheckDimensions(vectors [][]float32) (int, error) {
	if len(vectors) == 0 {
		return 0, nil
	}

	dim := len(vectors[0])
	for _, v := range vectors[1:] {
		if len(v) != dim {
			return 0, &ErrDimensionMismatch{Expected: dim, Actual: len(v)}
		}
	}

	return dim, nil
}
