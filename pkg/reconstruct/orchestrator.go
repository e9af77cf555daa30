package reconstruct

import (
	"fmt"

	"github.com/chazu/ballpivot/pkg/geom"
	"github.com/chazu/ballpivot/pkg/spatialindex"
	"github.com/chazu/ballpivot/pkg/topology"
	"gonum.org/v1/gonum/spatial/r3"
)

// Run applies the ball-pivoting reconstruction across radii, in order,
// against store and index, reactivating border edges whose triangle admits
// a larger empty ball before seeding or expanding at each radius
// (component F). Preconditions: every radius must be positive.
func Run(store *topology.Store, index spatialindex.Index, radii []float64) error {
	for _, r := range radii {
		if r <= 0 {
			return fmt.Errorf("reconstruct: invalid radius %v: must be positive", r)
		}
	}

	d := newDriver(store, index)
	for _, r := range radii {
		d.reactivateBorderEdges(r)
		if d.front.empty() {
			d.findSeedTriangles(r)
		} else {
			d.expand(r)
		}
	}
	return nil
}

// reactivateBorderEdges tries to reclassify each Border edge as Front at
// radius r, if its first triangle admits an empty ball of that larger
// radius.
func (d *driver) reactivateBorderEdges(r float64) {
	var survivors []*topology.Edge
	for _, e := range d.border {
		t := e.T0
		center, ok := geom.BallCenter(
			d.store.Position(t.U), d.store.Position(t.V), d.store.Position(t.W),
			d.store.Normal(t.U), d.store.Normal(t.V), d.store.Normal(t.W),
			r,
		)
		if ok && d.ballOnlyCoversTriangle(center, r, t) {
			d.store.MarkFront(e)
			d.front.pushBack(e)
			continue
		}
		survivors = append(survivors, e)
	}
	d.border = survivors
}

// ballOnlyCoversTriangle reports whether the only points within r of center
// are t's own three vertices.
func (d *driver) ballOnlyCoversTriangle(center r3.Vec, r float64, t *topology.Triangle) bool {
	indices, _ := d.index.RadiusSearch(center, r)
	for _, idx := range indices {
		if idx != t.U && idx != t.V && idx != t.W {
			return false
		}
	}
	return true
}
