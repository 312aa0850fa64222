package testutil

import (
	"math"
	"math/rand/v2"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: newRand(seed),
		seed: seed,
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) // nolint gosec
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = newRand(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Rand returns an independent *rand.Rand seeded from the RNG seed. Each call
// returns a fresh source with the same sequence, suitable for injecting into
// the clusterers and the SOM.
func (r *RNG) Rand() *rand.Rand {
	return newRand(r.seed)
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// UniformRangeVectors generates random vectors with values in range [-1, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformRangeVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()*2 - 1
		}
		vectors[i] = vec
	}

	return vectors
}

// UnitVectors generates L2-normalized random vectors (on the hypersphere).
// Uses a Gaussian distribution for uniform coverage of the sphere.
func (r *RNG) UnitVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([][]float32, num)
	for i := range num {
		vec := make([]float32, dimensions)
		var norm float64
		for j := range vec {
			v := r.rand.NormFloat64()
			vec[j] = float32(v)
			norm += v * v
		}

		if norm == 0 {
			norm = 1
		}

		inv := float32(1 / math.Sqrt(norm))
		for j := range vec {
			vec[j] *= inv
		}
		vectors[i] = vec
	}

	return vectors
}

// Blobs generates perCenter points around every center with Gaussian noise of
// standard deviation spread. Points are emitted center by center; labels holds
// the index of the generating center for each point.
func (r *RNG) Blobs(centers [][]float32, perCenter int, spread float32) ([][]float32, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([][]float32, 0, len(centers)*perCenter)
	labels := make([]int, 0, len(centers)*perCenter)

	for c, center := range centers {
		for range perCenter {
			vec := make([]float32, len(center))
			for j := range center {
				vec[j] = center[j] + float32(r.rand.NormFloat64())*spread
			}
			vectors = append(vectors, vec)
			labels = append(labels, c)
		}
	}

	return vectors, labels
}

// ClusteredVectors generates num vectors around clusters random unit
// centroids, assigned round-robin. Returns the vectors and the centroid index
// of each one.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float32) ([][]float32, []int) {
	// UnitVectors acquires the lock itself.
	centroids := r.UnitVectors(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([][]float32, num)
	labels := make([]int, num)

	for i := range num {
		centroid := centroids[i%clusters]
		vec := make([]float32, dim)
		for j := range dim {
			vec[j] = centroid[j] + float32(r.rand.NormFloat64())*spread
		}
		vectors[i] = vec
		labels[i] = i % clusters
	}

	return vectors, labels
}

// SquareCorners returns the four corners of the axis-aligned square
// [0, side] x [0, side] in the order (0,0), (side,0), (0,side), (side,side).
func SquareCorners(side float32) [][]float32 {
	return [][]float32{
		{0, 0},
		{side, 0},
		{0, side},
		{side, side},
	}
}

// SameGrouping reports whether two label assignments describe the same
// partition up to a renaming of the labels.
func SameGrouping(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	fwd := make(map[int]int)
	bwd := make(map[int]int)
	for i := range a {
		if x, ok := fwd[a[i]]; ok && x != b[i] {
			return false
		}
		if y, ok := bwd[b[i]]; ok && y != a[i] {
			return false
		}
		fwd[a[i]] = b[i]
		bwd[b[i]] = a[i]
	}

	return true
}
