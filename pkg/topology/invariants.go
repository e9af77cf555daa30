package topology

import (
	"fmt"

	"github.com/chazu/ballpivot/pkg/geom"
	"github.com/chazu/ballpivot/pkg/spatialindex"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/spatial/r3"
)

// Severity indicates whether a finding blocks an invariant or is merely
// informational.
type Severity int

const (
	SeverityError   Severity = iota // the invariant is violated
	SeverityWarning                 // advisory only
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Violation describes a single testable-property finding (§8 of the design
// document).
type Violation struct {
	Message  string
	Severity Severity
}

func (v Violation) Error() string {
	return fmt.Sprintf("[%s] %s", v.Severity, v.Message)
}

// Errors returns the subset of violations with SeverityError.
func Errors(violations []Violation) []Violation {
	return lo.Filter(violations, func(v Violation, _ int) bool {
		return v.Severity == SeverityError
	})
}

// CheckAll runs every testable-property check against the store's current
// (quiescent) state and returns all findings. idx is used for the
// ball-emptiness check, which re-queries the spatial index at each
// triangle's recorded radius.
func CheckAll(s *Store, idx spatialindex.Index) []Violation {
	var out []Violation
	out = append(out, checkEdgeTypeConsistency(s)...)
	out = append(out, checkVertexTypeConsistency(s)...)
	out = append(out, checkManifold(s)...)
	out = append(out, checkWindingConsistency(s)...)
	out = append(out, checkBallEmptiness(s, idx)...)
	return out
}

// checkEdgeTypeConsistency verifies that Inner iff both T0/T1 set, Front iff
// exactly T0 set and not Border.
func checkEdgeTypeConsistency(s *Store) []Violation {
	var out []Violation
	for _, e := range s.AllEdges() {
		bothSet := e.T0 != nil && e.T1 != nil
		oneSet := (e.T0 != nil) != (e.T1 != nil)

		switch e.Type {
		case EdgeInner:
			if !bothSet {
				out = append(out, Violation{
					Message:  fmt.Sprintf("edge (%d,%d) is Inner but does not have both adjacent triangles set", e.Source, e.Target),
					Severity: SeverityError,
				})
			}
		case EdgeFront:
			if !oneSet {
				out = append(out, Violation{
					Message:  fmt.Sprintf("edge (%d,%d) is Front but does not have exactly one adjacent triangle set", e.Source, e.Target),
					Severity: SeverityError,
				})
			}
		case EdgeBorder:
			// Border is an explicit demotion; no adjacency constraint.
		}
	}
	return out
}

// checkVertexTypeConsistency verifies the derived-type rule for every
// vertex against its current incident edges.
func checkVertexTypeConsistency(s *Store) []Violation {
	var out []Violation
	for i := 0; i < s.NumVertices(); i++ {
		v := s.Vertex(i)
		edges := s.IncidentEdges(i)

		var want VertexType
		switch {
		case len(edges) == 0:
			want = VertexOrphan
		default:
			want = VertexInner
			for _, e := range edges {
				if e.Type != EdgeInner {
					want = VertexFront
					break
				}
			}
		}
		if v.Type != want {
			out = append(out, Violation{
				Message:  fmt.Sprintf("vertex %d has type %s, want %s", i, v.Type, want),
				Severity: SeverityError,
			})
		}
	}
	return out
}

// checkManifold verifies no edge has more than two adjacent triangles.
func checkManifold(s *Store) []Violation {
	var out []Violation
	for _, e := range s.AllEdges() {
		if e.T0 != nil && e.T1 != nil && e.T0 == e.T1 {
			out = append(out, Violation{
				Message:  fmt.Sprintf("edge (%d,%d) has the same triangle attached twice", e.Source, e.Target),
				Severity: SeverityError,
			})
		}
	}
	counts := make(map[edgeKey]int)
	for _, tri := range s.AllTriangles() {
		for _, pair := range [3][2]int{{tri.U, tri.V}, {tri.V, tri.W}, {tri.W, tri.U}} {
			counts[newEdgeKey(pair[0], pair[1])]++
		}
	}
	for k, n := range counts {
		if n > 2 {
			out = append(out, Violation{
				Message:  fmt.Sprintf("edge (%d,%d) is used by %d triangles", k.Lo, k.Hi, n),
				Severity: SeverityError,
			})
		}
	}
	return out
}

// checkWindingConsistency verifies every triangle's face normal has
// non-negative dot product with its first vertex's normal.
func checkWindingConsistency(s *Store) []Violation {
	var out []Violation
	for _, tri := range s.AllTriangles() {
		nu := s.Normal(tri.U)
		if d := r3.Dot(tri.Normal, nu); d < -geom.AlignmentEpsilon {
			out = append(out, Violation{
				Message:  fmt.Sprintf("triangle (%d,%d,%d) face normal disagrees with vertex %d normal (dot=%v)", tri.U, tri.V, tri.W, tri.U, d),
				Severity: SeverityError,
			})
		}
	}
	return out
}

// checkBallEmptiness re-queries idx at each triangle's recorded radius and
// verifies no sample other than the triangle's own three vertices lies
// strictly inside the ball.
func checkBallEmptiness(s *Store, idx spatialindex.Index) []Violation {
	if idx == nil {
		return nil
	}
	var out []Violation
	for _, tri := range s.AllTriangles() {
		indices, sq := idx.RadiusSearch(tri.Center, tri.Radius)
		threshold := tri.Radius - geom.AlignmentEpsilon
		for i, vi := range indices {
			if vi == tri.U || vi == tri.V || vi == tri.W {
				continue
			}
			if sq[i] < threshold*threshold {
				out = append(out, Violation{
					Message:  fmt.Sprintf("triangle (%d,%d,%d) ball at radius %v is not empty: contains vertex %d", tri.U, tri.V, tri.W, tri.Radius, vi),
					Severity: SeverityError,
				})
			}
		}
	}
	return out
}
