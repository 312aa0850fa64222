package som

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/hupe1980/vecspace/vecmath"
)

// ErrInvalidGrid is returned by New for non-positive grid sizes or dimensions.
var ErrInvalidGrid = errors.New("som: width, height and dimension must be positive")

// State is the training lifecycle state of a Map.
type State int

const (
	Uninitialized State = iota
	Training
	Trained
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Training:
		return "Training"
	case Trained:
		return "Trained"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Coord addresses a grid cell.
type Coord struct {
	X, Y int
}

type options struct {
	rand   *rand.Rand
	logger *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithRand sets the source of randomness for weight initialization and
// sample selection.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithLogger sets the logger used for debug-level training output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Map is a Self-Organizing Map.
type Map struct {
	width  int
	height int
	dim    int

	// weights holds width*height prototypes of dim components, row-major by
	// cell: cell (x, y) starts at (y*width+x)*dim.
	weights []float32

	rand   *rand.Rand
	logger *slog.Logger
	state  State
}

// New creates a width x height map of dim-dimensional prototypes with
// components drawn uniformly from [-0.5, 0.5).
func New(width, height, dim int, optFns ...Option) (*Map, error) {
	if width <= 0 || height <= 0 || dim <= 0 {
		return nil, fmt.Errorf("%w: %dx%d, dim %d", ErrInvalidGrid, width, height, dim)
	}

	opts := options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.rand == nil {
		opts.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) // nolint gosec
	}
	if opts.logger == nil {
		opts.logger = slog.New(slog.DiscardHandler)
	}

	m := &Map{
		width:   width,
		height:  height,
		dim:     dim,
		weights: make([]float32, width*height*dim),
		rand:    opts.rand,
		logger:  opts.logger,
	}
	for i := range m.weights {
		m.weights[i] = m.rand.Float32() - 0.5
	}

	return m, nil
}

// Width returns the number of grid columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of grid rows.
func (m *Map) Height() int { return m.height }

// Dim returns the prototype dimensionality.
func (m *Map) Dim() int { return m.dim }

// State returns the lifecycle state.
func (m *Map) State() State { return m.state }

// Weights returns a copy of the prototype at (x, y).
func (m *Map) Weights(x, y int) []float32 {
	return append([]float32(nil), m.cell(x, y)...)
}

func (m *Map) cell(x, y int) []float32 {
	off := (y*m.width + x) * m.dim
	return m.weights[off : off+m.dim : off+m.dim]
}

// Train runs iterations steps of competitive learning on data starting at
// learningRate. It is a no-op for empty data or non-positive iterations.
//
// The neighborhood radius starts at half the longer grid side and decays as
// radius0 * exp(-t / (iterations / ln(radius0))); the learning rate decays
// linearly toward zero.
func (m *Map) Train(data [][]float32, iterations int, learningRate float64) {
	if len(data) == 0 || iterations <= 0 {
		return
	}

	m.state = Training

	radius0 := float64(max(m.width, m.height)) / 2
	timeConstant := float64(iterations)
	if l := math.Log(radius0); l > 0 {
		timeConstant /= l
	}

	var radius, rate float64
	for t := range iterations {
		radius = radius0 * math.Exp(-float64(t)/timeConstant)
		rate = learningRate * (1 - float64(t)/float64(iterations))

		sample := data[m.rand.IntN(len(data))]
		m.update(sample, m.FindBMU(sample), radius, rate)
	}

	m.state = Trained

	m.logger.LogAttrs(context.Background(), slog.LevelDebug, "som training finished",
		slog.Int("width", m.width),
		slog.Int("height", m.height),
		slog.Int("iterations", iterations),
		slog.Float64("final_radius", radius),
		slog.Float64("final_learning_rate", rate),
	)
}

// update pulls every prototype within radius of bmu toward sample.
func (m *Map) update(sample []float32, bmu Coord, radius, rate float64) {
	r2 := radius * radius
	reach := int(math.Ceil(radius))

	for y := max(0, bmu.Y-reach); y <= min(m.height-1, bmu.Y+reach); y++ {
		for x := max(0, bmu.X-reach); x <= min(m.width-1, bmu.X+reach); x++ {
			dx, dy := float64(x-bmu.X), float64(y-bmu.Y)
			d2 := dx*dx + dy*dy
			if d2 >= r2 {
				continue
			}

			f := float32(math.Exp(-d2/(2*r2)) * rate)
			w := m.cell(x, y)
			for i := range w {
				w[i] += f * (sample[i] - w[i])
			}
		}
	}
}

// FindBMU returns the cell whose prototype is closest to input in Euclidean
// distance. Ties resolve to the first cell in row-major order.
func (m *Map) FindBMU(input []float32) Coord {
	var bmu Coord
	best := math.Inf(1)

	for y := range m.height {
		for x := range m.width {
			d := vecmath.EuclideanDistance(input, m.cell(x, y))
			if d < best {
				best = d
				bmu = Coord{X: x, Y: y}
			}
		}
	}

	return bmu
}

// MapAll returns the best matching unit of every vector in data.
func (m *Map) MapAll(data [][]float32) []Coord {
	coords := make([]Coord, len(data))
	for i, v := range data {
		coords[i] = m.FindBMU(v)
	}
	return coords
}

// QuantizationError returns the mean distance between each vector in data and
// its best matching prototype, or 0 for empty data.
func (m *Map) QuantizationError(data [][]float32) float64 {
	if len(data) == 0 {
		return 0
	}

	var sum float64
	for _, v := range data {
		bmu := m.FindBMU(v)
		sum += vecmath.EuclideanDistance(v, m.cell(bmu.X, bmu.Y))
	}

	return sum / float64(len(data))
}
