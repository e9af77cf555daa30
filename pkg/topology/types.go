package topology

import "gonum.org/v1/gonum/spatial/r3"

// VertexType is the derived classification of a vertex from its incident
// edges. Recomputed whenever incident edges change.
type VertexType int

const (
	VertexOrphan VertexType = iota // no incident edges
	VertexFront                    // some incident edge is not yet Inner
	VertexInner                    // all incident edges are Inner
)

func (t VertexType) String() string {
	switch t {
	case VertexOrphan:
		return "Orphan"
	case VertexFront:
		return "Front"
	case VertexInner:
		return "Inner"
	default:
		return "VertexType(unknown)"
	}
}

// EdgeType is the classification of an edge by how many triangles it
// currently borders.
type EdgeType int

const (
	EdgeFront  EdgeType = iota // exactly one adjacent triangle, still pivotable
	EdgeInner                  // two adjacent triangles
	EdgeBorder                 // abandoned at the current radius
)

func (t EdgeType) String() string {
	switch t {
	case EdgeFront:
		return "Front"
	case EdgeInner:
		return "Inner"
	case EdgeBorder:
		return "Border"
	default:
		return "EdgeType(unknown)"
	}
}

// Vertex represents one input sample and its incident-edge-derived type.
type Vertex struct {
	Index int
	Type  VertexType

	// edges is keyed by the unordered-pair key of each incident edge, so
	// an edge is never registered twice against the same vertex.
	edges map[edgeKey]*Edge
}

// Triangle is three vertex references plus the ball center consistent with
// them. Immutable once constructed.
type Triangle struct {
	U, V, W int // vertex indices, in create_triangle's original order
	Center  r3.Vec
	Radius  float64 // the ball radius this triangle was created at
	// Normal is n_f as computed at construction time, never flipped for
	// output winding purposes.
	Normal r3.Vec
}

// Edge is the undirected topological edge between two vertices, stored with
// an oriented (Source, Target) pair fixed on first triangle attachment.
type Edge struct {
	Source, Target int
	T0, T1         *Triangle
	Type           EdgeType
}

// edgeKey is the unordered-pair key used to de-duplicate edges; Lo <= Hi.
type edgeKey struct {
	Lo, Hi int
}

func newEdgeKey(u, v int) edgeKey {
	if u <= v {
		return edgeKey{Lo: u, Hi: v}
	}
	return edgeKey{Lo: v, Hi: u}
}
