package topology

import (
	"fmt"
	"log"

	"github.com/chazu/ballpivot/pkg/geom"
	"github.com/chazu/ballpivot/pkg/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Store owns all vertices, edges, and triangles for the duration of one
// reconstruction run, and accumulates the output mesh as triangles are
// created.
type Store struct {
	positions []r3.Vec
	normals   []r3.Vec

	vertices  []*Vertex
	edges     map[edgeKey]*Edge
	triangles []*Triangle

	mesh *mesh.TriangleMesh
}

// NewStore builds a topology store over the given positions and normals,
// seeding one Orphan vertex per point, and targets out into m.
func NewStore(positions, normals []r3.Vec, m *mesh.TriangleMesh) *Store {
	vertices := make([]*Vertex, len(positions))
	for i := range positions {
		vertices[i] = &Vertex{Index: i, Type: VertexOrphan, edges: make(map[edgeKey]*Edge)}
	}
	return &Store{
		positions: positions,
		normals:   normals,
		vertices:  vertices,
		edges:     make(map[edgeKey]*Edge),
		mesh:      m,
	}
}

// Vertex returns the vertex at idx.
func (s *Store) Vertex(idx int) *Vertex {
	return s.vertices[idx]
}

// Position returns the position of vertex idx.
func (s *Store) Position(idx int) r3.Vec {
	return s.positions[idx]
}

// Normal returns the normal of vertex idx.
func (s *Store) Normal(idx int) r3.Vec {
	return s.normals[idx]
}

// NumVertices returns the number of vertices in the store.
func (s *Store) NumVertices() int {
	return len(s.vertices)
}

// EdgeBetween returns the existing edge between u and v, or nil.
func (s *Store) EdgeBetween(u, v int) *Edge {
	return s.edges[newEdgeKey(u, v)]
}

// MarkBorder reclassifies e as Border.
func (s *Store) MarkBorder(e *Edge) {
	e.Type = EdgeBorder
}

// MarkFront reclassifies e as Front (used when reactivating a border edge).
func (s *Store) MarkFront(e *Edge) {
	e.Type = EdgeFront
}

// OppositeVertex returns the vertex of e.T0 that is neither e.Source nor
// e.Target. Panics if e.T0 is unset: calling opposite_vertex on an edge
// without a first adjacent triangle is a programming error.
func (s *Store) OppositeVertex(e *Edge) int {
	if e.T0 == nil {
		panic(fmt.Sprintf("topology: opposite_vertex called on edge (%d,%d) with no adjacent triangle", e.Source, e.Target))
	}
	o, ok := oppositeVertexOf(e.T0, e.Source, e.Target)
	if !ok {
		panic(fmt.Sprintf("topology: edge (%d,%d) is not incident to its own t0 triangle", e.Source, e.Target))
	}
	return o
}

// getOrCreateEdge looks up the edge between u and v, creating it (oriented
// u->v, Type already Front per the construction-time convention) if absent.
func (s *Store) getOrCreateEdge(u, v int) *Edge {
	k := newEdgeKey(u, v)
	if e, ok := s.edges[k]; ok {
		return e
	}
	e := &Edge{Source: u, Target: v, Type: EdgeFront}
	s.edges[k] = e
	return e
}

// attachTriangle attaches tri as the next adjacent triangle of e.
func (s *Store) attachTriangle(e *Edge, tri *Triangle) {
	if e.T0 == tri || e.T1 == tri {
		return
	}
	if e.T0 == nil {
		e.T0 = tri
		e.Type = EdgeFront
		if o, ok := oppositeVertexOf(tri, e.Source, e.Target); ok {
			cross := r3.Cross(r3.Sub(s.positions[e.Target], s.positions[e.Source]), r3.Sub(s.positions[o], s.positions[e.Source]))
			nSum := r3.Add(r3.Add(s.normals[e.Source], s.normals[e.Target]), s.normals[o])
			if r3.Dot(cross, nSum) < 0 {
				e.Source, e.Target = e.Target, e.Source
			}
		}
		return
	}
	if e.T1 == nil {
		e.T1 = tri
		e.Type = EdgeInner
		return
	}
	log.Printf("topology: attempt to attach a third triangle to edge (%d,%d); ignored", e.Source, e.Target)
}

// linkIncident registers e in vertex idx's incident-edge set.
func (s *Store) linkIncident(idx int, e *Edge) {
	s.vertices[idx].edges[newEdgeKey(e.Source, e.Target)] = e
}

// recomputeVertexType derives idx's type from its current incident edges.
func (s *Store) recomputeVertexType(idx int) {
	v := s.vertices[idx]
	if len(v.edges) == 0 {
		v.Type = VertexOrphan
		return
	}
	for _, e := range v.edges {
		if e.Type != EdgeInner {
			v.Type = VertexFront
			return
		}
	}
	v.Type = VertexInner
}

// CreateTriangle constructs a triangle over (u, v, w) with the given ball
// center, wiring its three edges, updating incident sets and vertex types,
// and emitting a winding-corrected triangle into the output mesh.
func (s *Store) CreateTriangle(u, v, w int, center r3.Vec, radius float64) *Triangle {
	nf := geom.FaceNormal(s.positions[u], s.positions[v], s.positions[w])
	tri := &Triangle{U: u, V: v, W: w, Center: center, Radius: radius, Normal: nf}
	s.triangles = append(s.triangles, tri)

	e0 := s.getOrCreateEdge(u, v)
	e1 := s.getOrCreateEdge(v, w)
	e2 := s.getOrCreateEdge(w, u)

	s.attachTriangle(e0, tri)
	s.attachTriangle(e1, tri)
	s.attachTriangle(e2, tri)

	s.linkIncident(u, e0)
	s.linkIncident(v, e0)
	s.linkIncident(v, e1)
	s.linkIncident(w, e1)
	s.linkIncident(w, e2)
	s.linkIncident(u, e2)

	s.recomputeVertexType(u)
	s.recomputeVertexType(v)
	s.recomputeVertexType(w)

	if r3.Dot(nf, s.normals[u]) >= -geom.AlignmentEpsilon {
		s.mesh.AddTriangle(u, v, w, nf)
	} else {
		s.mesh.AddTriangle(u, w, v, nf)
	}

	return tri
}

// IncidentEdges returns the edges currently incident to vertex idx.
func (s *Store) IncidentEdges(idx int) []*Edge {
	v := s.vertices[idx]
	out := make([]*Edge, 0, len(v.edges))
	for _, e := range v.edges {
		out = append(out, e)
	}
	return out
}

// AllEdges returns every edge the store has ever created.
func (s *Store) AllEdges() []*Edge {
	out := make([]*Edge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e)
	}
	return out
}

// AllTriangles returns every triangle the store has ever created.
func (s *Store) AllTriangles() []*Triangle {
	return s.triangles
}

// oppositeVertexOf returns the vertex of tri that is neither source nor
// target.
func oppositeVertexOf(tri *Triangle, source, target int) (int, bool) {
	for _, idx := range [3]int{tri.U, tri.V, tri.W} {
		if idx != source && idx != target {
			return idx, true
		}
	}
	return 0, false
}
