package quality

import (
	"math"

	"github.com/hupe1980/vecspace/cluster"
	"github.com/hupe1980/vecspace/vecmath"
	"gonum.org/v1/gonum/floats"
)

// Metrics bundles the three indices for one (vectors, labels) pair.
type Metrics struct {
	Silhouette       float64
	DaviesBouldin    float64
	CalinskiHarabasz float64
}

// Evaluate computes all three indices.
// Returns *vecmath.ErrDimensionMismatch if labels and vectors differ in length.
func Evaluate(vectors [][]float32, labels []int) (Metrics, error) {
	if len(labels) != len(vectors) {
		return Metrics{}, &vecmath.ErrDimensionMismatch{Expected: len(vectors), Actual: len(labels)}
	}

	p := newPartition(vectors, labels)

	return Metrics{
		Silhouette:       p.silhouette(),
		DaviesBouldin:    p.daviesBouldin(),
		CalinskiHarabasz: p.calinskiHarabasz(),
	}, nil
}

// Silhouette returns the mean silhouette coefficient over all non-noise
// points whose cluster has at least one other member. It returns 0 when no
// point qualifies or fewer than two clusters exist. Like the other indices it
// returns 0 when labels and vectors differ in length; use Evaluate to get an
// error instead.
func Silhouette(vectors [][]float32, labels []int) float64 {
	return newPartition(vectors, labels).silhouette()
}

// DaviesBouldin returns the Davies-Bouldin index, or 0 if fewer than two
// clusters exist or labels and vectors differ in length.
func DaviesBouldin(vectors [][]float32, labels []int) float64 {
	return newPartition(vectors, labels).daviesBouldin()
}

// CalinskiHarabasz returns the Calinski-Harabasz index, or 0 if there are
// fewer than two clusters, no more points than clusters, no within-cluster
// dispersion, or a labels/vectors length mismatch.
func CalinskiHarabasz(vectors [][]float32, labels []int) float64 {
	return newPartition(vectors, labels).calinskiHarabasz()
}

// partition is a label assignment resolved into per-cluster member lists.
type partition struct {
	vectors [][]float32
	ids     []int         // sorted non-noise labels
	members map[int][]int // label -> member indices
}

// newPartition returns an empty partition, which scores 0 on every index, when
// labels and vectors differ in length.
func newPartition(vectors [][]float32, labels []int) *partition {
	if len(labels) != len(vectors) {
		return &partition{}
	}

	l := cluster.Labels(labels)
	return &partition{
		vectors: vectors,
		ids:     l.Clusters(),
		members: l.Members(),
	}
}

func (p *partition) meanDistance(i int, members []int) float64 {
	var sum float64
	count := 0
	for _, j := range members {
		if j == i {
			continue
		}
		sum += vecmath.EuclideanDistance(p.vectors[i], p.vectors[j])
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func (p *partition) silhouette() float64 {
	if len(p.ids) < 2 {
		return 0
	}

	var sum float64
	scored := 0

	for _, label := range p.ids {
		own := p.members[label]
		if len(own) < 2 {
			continue
		}

		for _, i := range own {
			a := p.meanDistance(i, own)

			b := math.Inf(1)
			for _, other := range p.ids {
				if other == label {
					continue
				}
				b = min(b, p.meanDistance(i, p.members[other]))
			}

			if a != 0 || b != 0 {
				sum += (b - a) / max(a, b)
			}
			scored++
		}
	}

	if scored == 0 {
		return 0
	}
	return sum / float64(scored)
}

func (p *partition) centroid(members []int) []float64 {
	c := make([]float64, len(p.vectors[members[0]]))
	row := make([]float64, len(c))
	for _, i := range members {
		widen(row, p.vectors[i])
		floats.Add(c, row)
	}
	floats.Scale(1/float64(len(members)), c)
	return c
}

func (p *partition) daviesBouldin() float64 {
	k := len(p.ids)
	if k < 2 {
		return 0
	}

	centroids := make([][]float64, k)
	scatter := make([]float64, k)
	row := make([]float64, len(p.vectors[p.members[p.ids[0]][0]]))

	for c, label := range p.ids {
		members := p.members[label]
		centroids[c] = p.centroid(members)

		var sum float64
		for _, i := range members {
			widen(row, p.vectors[i])
			sum += floats.Distance(row, centroids[c], 2)
		}
		scatter[c] = sum / float64(len(members))
	}

	var total float64
	for i := range k {
		worst := 0.0
		for j := range k {
			if i == j {
				continue
			}
			d := floats.Distance(centroids[i], centroids[j], 2)
			if d == 0 {
				continue
			}
			worst = max(worst, (scatter[i]+scatter[j])/d)
		}
		total += worst
	}

	return total / float64(k)
}

func (p *partition) calinskiHarabasz() float64 {
	k := len(p.ids)
	n := 0
	for _, label := range p.ids {
		n += len(p.members[label])
	}
	if k < 2 || n <= k {
		return 0
	}

	dim := len(p.vectors[p.members[p.ids[0]][0]])
	global := make([]float64, dim)
	row := make([]float64, dim)
	centroids := make([][]float64, k)
	var ssWithin, ssBetween float64

	for c, label := range p.ids {
		members := p.members[label]
		centroids[c] = p.centroid(members)

		for _, i := range members {
			widen(row, p.vectors[i])
			floats.Add(global, row)
			ssWithin += squaredDistance(row, centroids[c])
		}
	}
	floats.Scale(1/float64(n), global)

	for c, label := range p.ids {
		ssBetween += float64(len(p.members[label])) * squaredDistance(centroids[c], global)
	}

	if ssWithin == 0 {
		return 0
	}

	return (ssBetween / float64(k-1)) / (ssWithin / float64(n-k))
}

func squaredDistance(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// widen copies v into dst as float64.
func widen(dst []float64, v []float32) {
	for i, x := range v {
		dst[i] = float64(x)
	}
}
