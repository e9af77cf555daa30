package spatialindex

import (
	"github.com/dhconnelly/rtreego"
	"gonum.org/v1/gonum/spatial/r3"
)

// pointTolerance is the half-width rtreego uses to turn a degenerate point
// into a zero-volume-avoiding bounding box; it has no bearing on search
// accuracy since RTree filters hits by exact squared distance afterward.
const pointTolerance = 1e-9

// rtreeDimensions, minChildren, and maxChildren tune the R-tree's branching
// factor; these are reasonable defaults for point clouds up to a few
// hundred thousand samples.
const (
	rtreeDimensions = 3
	minChildren     = 25
	maxChildren     = 50
)

// entry adapts one point-cloud sample to rtreego.Spatial.
type entry struct {
	idx   int
	point rtreego.Point
}

func (e *entry) Bounds() *rtreego.Rect {
	return e.point.ToRect(pointTolerance)
}

// RTree is the primary spatial index backend, backed by an R-tree.
type RTree struct {
	tree   *rtreego.Rtree
	points []r3.Vec
}

// NewRTree builds an R-tree over points. The tree is read-only after
// construction.
func NewRTree(points []r3.Vec) *RTree {
	tree := rtreego.NewTree(rtreeDimensions, minChildren, maxChildren)
	for i, p := range points {
		tree.Insert(&entry{idx: i, point: rtreego.Point{p.X, p.Y, p.Z}})
	}
	return &RTree{tree: tree, points: points}
}

// RadiusSearch implements Index.
func (idx *RTree) RadiusSearch(center r3.Vec, r float64) (indices []int, squaredDistances []float64) {
	lengths := []float64{2 * r, 2 * r, 2 * r}
	corner := rtreego.Point{center.X - r, center.Y - r, center.Z - r}
	bb, err := rtreego.NewRect(corner, lengths)
	if err != nil {
		return nil, nil
	}

	r2 := r * r
	for _, hit := range idx.tree.SearchIntersect(bb) {
		e := hit.(*entry)
		d2 := r3.Norm2(r3.Sub(idx.points[e.idx], center))
		if d2 <= r2 {
			indices = append(indices, e.idx)
			squaredDistances = append(squaredDistances, d2)
		}
	}
	return indices, squaredDistances
}

var _ Index = (*RTree)(nil)
