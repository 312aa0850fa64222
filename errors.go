package vecspace

import (
	"errors"

	"github.com/hupe1980/vecspace/som"
	"github.com/hupe1980/vecspace/vecmath"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidEpsilon is returned when the DBSCAN radius is negative or NaN.
	ErrInvalidEpsilon = errors.New("epsilon must be a non-negative number")

	// ErrInvalidMinPts is returned when the DBSCAN density threshold is not positive.
	ErrInvalidMinPts = errors.New("minPts must be positive")

	// ErrInvalidIterations is returned when a training iteration count is negative.
	ErrInvalidIterations = errors.New("iterations must not be negative")

	// ErrNilInput is returned when a required matrix or map argument is nil.
	ErrNilInput = errors.New("input must not be nil")

	// ErrInvalidGrid is returned for non-positive SOM grid sizes or dimensions.
	ErrInvalidGrid = som.ErrInvalidGrid
)

// ErrDimensionMismatch indicates a vector dimensionality mismatch, or a label
// array whose length differs from the vector collection.
type ErrDimensionMismatch = vecmath.ErrDimensionMismatch
