package spatialindex

import "gonum.org/v1/gonum/spatial/r3"

// BruteForce is an O(n) reference backend used to cross-check RTree in
// tests. It implements the same Index contract with no external library.
type BruteForce struct {
	points []r3.Vec
}

// NewBruteForce builds a brute-force index over points.
func NewBruteForce(points []r3.Vec) *BruteForce {
	return &BruteForce{points: points}
}

// RadiusSearch implements Index.
func (idx *BruteForce) RadiusSearch(center r3.Vec, r float64) (indices []int, squaredDistances []float64) {
	r2 := r * r
	for i, p := range idx.points {
		d2 := r3.Norm2(r3.Sub(p, center))
		if d2 <= r2 {
			indices = append(indices, i)
			squaredDistances = append(squaredDistances, d2)
		}
	}
	return indices, squaredDistances
}

var _ Index = (*BruteForce)(nil)
