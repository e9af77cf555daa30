// Package spatialindex implements the spatial index contract: radius
// neighborhood search around a 3D query point, built once from the input
// point cloud and read-only thereafter.
package spatialindex

import "gonum.org/v1/gonum/spatial/r3"

// Index is the radius-search contract (component B). Implementations must
// return every stored point within Euclidean distance r of center; ordering
// is not required.
type Index interface {
	// RadiusSearch returns the indices of all points within r of center,
	// paired with their squared distances to center.
	RadiusSearch(center r3.Vec, r float64) (indices []int, squaredDistances []float64)
}
