package som

import "github.com/hupe1980/vecspace/vecmath"

var neighborOffsets = [4]Coord{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// UMatrix returns the unified distance matrix indexed [y][x].
//
// Each value is the mean Euclidean distance between a prototype and its
// existing up, down, left and right neighbors; the matrix is then min-max
// normalized into [0, 1]. A flat matrix (max == min) is all zeros.
func (m *Map) UMatrix() [][]float64 {
	u := make([][]float64, m.height)
	for y := range u {
		u[y] = make([]float64, m.width)
	}

	lo, hi := 0.0, 0.0
	for y := range m.height {
		for x := range m.width {
			var sum float64
			count := 0
			for _, off := range neighborOffsets {
				nx, ny := x+off.X, y+off.Y
				if nx < 0 || ny < 0 || nx >= m.width || ny >= m.height {
					continue
				}
				sum += vecmath.EuclideanDistance(m.cell(x, y), m.cell(nx, ny))
				count++
			}

			var v float64
			if count > 0 {
				v = sum / float64(count)
			}
			u[y][x] = v

			if x == 0 && y == 0 {
				lo, hi = v, v
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}

	span := hi - lo
	for y := range u {
		for x := range u[y] {
			if span == 0 {
				u[y][x] = 0
				continue
			}
			u[y][x] = (u[y][x] - lo) / span
		}
	}

	return u
}
