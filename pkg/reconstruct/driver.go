// Package reconstruct implements the front driver (component E) and the
// multi-radius orchestrator (component F): seeding initial triangles,
// expanding the triangulation by pivoting front edges, and reactivating
// border edges as larger radii are tried.
package reconstruct

import (
	"github.com/chazu/ballpivot/pkg/geom"
	"github.com/chazu/ballpivot/pkg/pivot"
	"github.com/chazu/ballpivot/pkg/spatialindex"
	"github.com/chazu/ballpivot/pkg/topology"
	"gonum.org/v1/gonum/spatial/r3"
)

// driver runs the front-expansion state machine over a shared topology store
// and spatial index; one driver serves every radius of a run, so its front
// and border list carry over from one radius to the next.
type driver struct {
	store  *topology.Store
	index  spatialindex.Index
	front  *frontQueue
	border []*topology.Edge
}

func newDriver(store *topology.Store, index spatialindex.Index) *driver {
	return &driver{
		store: store,
		index: index,
		front: newFrontQueue(),
	}
}

// compatible reports whether triangle (u, v, w) is roughly consistent with
// all three vertex normals.
func compatible(s *topology.Store, u, v, w int) bool {
	nf := geom.FaceNormal(s.Position(u), s.Position(v), s.Position(w))
	if r3.Dot(nf, s.Normal(u)) < -geom.AlignmentEpsilon {
		nf = r3.Scale(-1, nf)
	}
	return r3.Dot(nf, s.Normal(u)) > -geom.AlignmentEpsilon &&
		r3.Dot(nf, s.Normal(v)) > -geom.AlignmentEpsilon &&
		r3.Dot(nf, s.Normal(w)) > -geom.AlignmentEpsilon
}

// tryTriangleSeed attempts to seed a triangle over (v0, v1, v2) at radius r,
// verifying it is empty of every point in neighbors other than the three
// vertices themselves.
func (d *driver) tryTriangleSeed(v0, v1, v2 int, neighbors []int, r float64) (r3.Vec, bool) {
	if !compatible(d.store, v0, v1, v2) {
		return r3.Vec{}, false
	}

	if e := d.store.EdgeBetween(v0, v2); e != nil && e.Type == topology.EdgeInner {
		return r3.Vec{}, false
	}
	if e := d.store.EdgeBetween(v1, v2); e != nil && e.Type == topology.EdgeInner {
		return r3.Vec{}, false
	}

	center, ok := geom.BallCenter(d.store.Position(v0), d.store.Position(v1), d.store.Position(v2),
		d.store.Normal(v0), d.store.Normal(v1), d.store.Normal(v2), r)
	if !ok {
		return r3.Vec{}, false
	}

	threshold := r - geom.AlignmentEpsilon
	for _, n := range neighbors {
		if n == v0 || n == v1 || n == v2 {
			continue
		}
		if r3.Norm(r3.Sub(center, d.store.Position(n))) < threshold {
			return r3.Vec{}, false
		}
	}

	return center, true
}

// trySeed searches the neighborhood of v for a pair of mutually orphan
// vertices admitting an empty-ball seed triangle, creates it on success, and
// enqueues its newly-Front edges.
func (d *driver) trySeed(v int, r float64) bool {
	neighbors, _ := d.index.RadiusSearch(d.store.Position(v), 2*r)
	if len(neighbors) < 3 {
		return false
	}

	for i := 0; i < len(neighbors); i++ {
		nb0 := neighbors[i]
		if nb0 == v || d.store.Vertex(nb0).Type != topology.VertexOrphan {
			continue
		}
		for j := 0; j < len(neighbors); j++ {
			nb1 := neighbors[j]
			if nb0 >= nb1 {
				continue
			}
			if nb1 == v || d.store.Vertex(nb1).Type != topology.VertexOrphan {
				continue
			}

			center, ok := d.tryTriangleSeed(v, nb0, nb1, neighbors, r)
			if !ok {
				continue
			}

			skip := false
			for _, pair := range [][2]int{{v, nb0}, {nb0, nb1}, {nb1, v}} {
				if e := d.store.EdgeBetween(pair[0], pair[1]); e != nil && e.Type != topology.EdgeFront {
					skip = true
					break
				}
			}
			if skip {
				continue
			}

			d.store.CreateTriangle(v, nb0, nb1, center, r)
			for _, pair := range [][2]int{{v, nb0}, {nb0, nb1}, {nb1, v}} {
				if e := d.store.EdgeBetween(pair[0], pair[1]); e != nil && e.Type == topology.EdgeFront {
					d.front.pushFront(e)
				}
			}
			return true
		}
	}
	return false
}

// findSeedTriangles iterates vertices in index order, attempting to seed
// and then expand a connected component from each orphan vertex.
func (d *driver) findSeedTriangles(r float64) {
	for v := 0; v < d.store.NumVertices(); v++ {
		if d.store.Vertex(v).Type != topology.VertexOrphan {
			continue
		}
		if d.trySeed(v, r) {
			d.expand(r)
		}
	}
}

// expand pivots the active front until it is empty, creating triangles or
// demoting edges to Border as find_candidate dictates.
func (d *driver) expand(r float64) {
	for !d.front.empty() {
		e, ok := d.front.popFront()
		if !ok {
			break
		}
		if e.Type != topology.EdgeFront {
			continue
		}

		cand, ok := pivot.FindCandidate(d.store, d.index, e, r)
		if !ok || d.store.Vertex(cand.Vertex).Type == topology.VertexInner || !compatible(d.store, cand.Vertex, e.Source, e.Target) {
			d.store.MarkBorder(e)
			d.border = append(d.border, e)
			continue
		}

		e0 := d.store.EdgeBetween(cand.Vertex, e.Source)
		e1 := d.store.EdgeBetween(cand.Vertex, e.Target)
		if (e0 != nil && e0.Type != topology.EdgeFront) || (e1 != nil && e1.Type != topology.EdgeFront) {
			d.store.MarkBorder(e)
			d.border = append(d.border, e)
			continue
		}

		d.store.CreateTriangle(e.Source, e.Target, cand.Vertex, cand.Center, r)

		e0 = d.store.EdgeBetween(cand.Vertex, e.Source)
		e1 = d.store.EdgeBetween(cand.Vertex, e.Target)
		if e0 != nil && e0.Type == topology.EdgeFront {
			d.front.pushFront(e0)
		}
		if e1 != nil && e1.Type == topology.EdgeFront {
			d.front.pushFront(e1)
		}
	}
}
