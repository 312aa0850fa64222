package cluster

import (
	"maps"
	"slices"
)

// Noise is the label DBSCAN assigns to points outside every dense region.
const Noise = -1

// Labels maps vector index to cluster label.
type Labels []int

// Clusters returns the distinct non-noise labels in ascending order.
func (l Labels) Clusters() []int {
	return slices.Sorted(maps.Keys(l.Sizes()))
}

// Sizes returns the number of members per non-noise label.
func (l Labels) Sizes() map[int]int {
	sizes := make(map[int]int)
	for _, label := range l {
		if label == Noise {
			continue
		}
		sizes[label]++
	}
	return sizes
}

// Members returns the member indices per non-noise label, in index order.
func (l Labels) Members() map[int][]int {
	members := make(map[int][]int)
	for i, label := range l {
		if label == Noise {
			continue
		}
		members[label] = append(members[label], i)
	}
	return members
}

// NoiseCount returns the number of points labeled Noise.
func (l Labels) NoiseCount() int {
	count := 0
	for _, label := range l {
		if label == Noise {
			count++
		}
	}
	return count
}
