// Package pivot implements the ball-pivoting candidate search (component D):
// given a front edge and a radius, find the next vertex that the rolling
// ball strikes first while remaining empty of all other samples.
package pivot

import (
	"math"

	"github.com/chazu/ballpivot/pkg/geom"
	"github.com/chazu/ballpivot/pkg/spatialindex"
	"github.com/chazu/ballpivot/pkg/topology"
	"gonum.org/v1/gonum/spatial/r3"
)

// Candidate is a successful find_candidate result.
type Candidate struct {
	Vertex int
	Center r3.Vec
}

// FindCandidate finds the next vertex to close a new triangle on the front
// edge e at radius r, or reports ok=false if none exists.
func FindCandidate(s *topology.Store, idx spatialindex.Index, e *topology.Edge, r float64) (Candidate, bool) {
	src, tgt := e.Source, e.Target
	opp := s.OppositeVertex(e)

	m := r3.Scale(0.5, r3.Add(s.Position(src), s.Position(tgt)))
	c := e.T0.Center

	axis := r3.Unit(r3.Sub(s.Position(tgt), s.Position(src)))
	armA := r3.Unit(r3.Sub(c, m))

	neighbors, _ := idx.RadiusSearch(m, 2*r)

	var (
		found     bool
		best      int
		bestCtr   r3.Vec
		bestTheta = math.Inf(1)
	)

	for _, k := range neighbors {
		if k == src || k == tgt || k == opp {
			continue
		}

		if geom.PointsCoplanar(s.Position(src), s.Position(tgt), s.Position(opp), s.Position(k)) {
			d1 := geom.SegmentsMinimumDistance(m, s.Position(k), s.Position(src), s.Position(opp))
			d2 := geom.SegmentsMinimumDistance(m, s.Position(k), s.Position(tgt), s.Position(opp))
			if d1 < geom.SegmentEpsilon || d2 < geom.SegmentEpsilon {
				continue
			}
		}

		newCenter, ok := geom.BallCenter(s.Position(src), s.Position(tgt), s.Position(k), s.Normal(src), s.Normal(tgt), s.Normal(k), r)
		if !ok {
			continue
		}

		armB := r3.Unit(r3.Sub(newCenter, m))
		cosTheta := clamp(r3.Dot(armA, armB), -1, 1)
		theta := math.Acos(cosTheta)
		if r3.Dot(r3.Cross(armA, armB), axis) < 0 {
			theta = 2*math.Pi - theta
		}

		if theta >= bestTheta {
			continue
		}

		if !ballIsEmpty(s, idx, neighbors, newCenter, r, src, tgt, k) {
			continue
		}

		bestTheta = theta
		best = k
		bestCtr = newCenter
		found = true
	}

	if !found {
		return Candidate{}, false
	}
	return Candidate{Vertex: best, Center: bestCtr}, true
}

// ballIsEmpty reports whether center is free of every neighbor sample other
// than src, tgt, and k, within the empty-ball tolerance.
func ballIsEmpty(s *topology.Store, idx spatialindex.Index, neighbors []int, center r3.Vec, r float64, src, tgt, k int) bool {
	threshold := r - geom.AlignmentEpsilon
	for _, j := range neighbors {
		if j == src || j == tgt || j == k {
			continue
		}
		if r3.Norm(r3.Sub(center, s.Position(j))) < threshold {
			return false
		}
	}
	return true
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
