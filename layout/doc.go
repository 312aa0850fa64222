// Package layout derives heatmap-oriented views of a kernel matrix: a greedy
// nearest-neighbor ordering that places similar rows next to each other,
// descriptive statistics of the off-diagonal similarities, and a separability
// index describing how distinct local neighborhoods are.
package layout
