// Package geom implements the geometry kernel: ball-center-of-three-points,
// face normal, coplanarity, and segment-minimum-distance predicates that the
// reconstruction engine treats as external collaborators.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// AlignmentEpsilon is the tolerance used wherever a dot product is compared
// against zero to test normal alignment (e.g. winding/orientation checks).
// Load-bearing: must match the reference implementation exactly.
const AlignmentEpsilon = 1e-16

// SegmentEpsilon is the tolerance used to detect near-intersection between
// two line segments. Load-bearing.
const SegmentEpsilon = 1e-12

// minSumForBallCenter is the threshold below which the barycentric weight
// sum S in BallCenter is treated as degenerate (collinear input).
const minSumForBallCenter = 1e-16

// FaceNormal returns the unit normal of the triangle (v0, v1, v2), oriented
// by the right-hand rule from v0→v1 and v0→v2. Returns the zero vector if
// the triangle is degenerate.
func FaceNormal(v0, v1, v2 r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(v1, v0), r3.Sub(v2, v0))
	norm := r3.Norm(n)
	if norm == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/norm, n)
}

// BallCenter computes the center of the radius-r sphere that passes through
// v1, v2, v3, on the side consistent with the averaged vertex normals
// n1+n2+n3. Reports ok=false if the triplet is degenerate (collinear, S too
// small) or if r is too small to admit a ball through the three points.
func BallCenter(v1, v2, v3, n1, n2, n3 r3.Vec, r float64) (center r3.Vec, ok bool) {
	a := r3.Norm2(r3.Sub(v3, v2))
	b := r3.Norm2(r3.Sub(v1, v3))
	c := r3.Norm2(r3.Sub(v2, v1))

	alpha := a * (b + c - a)
	beta := b * (a + c - b)
	gamma := c * (a + b - c)
	s := alpha + beta + gamma
	if s < minSumForBallCenter {
		return r3.Vec{}, false
	}

	p := r3.Scale(1/s, r3.Add(r3.Add(r3.Scale(alpha, v1), r3.Scale(beta, v2)), r3.Scale(gamma, v3)))

	sa, sb, sc := math.Sqrt(a), math.Sqrt(b), math.Sqrt(c)
	denom := (sa + sb + sc) * (sb + sc - sa) * (sc + sa - sb) * (sa + sb - sc)
	if denom == 0 {
		return r3.Vec{}, false
	}
	rho2 := (a * b * c) / denom

	h2 := r*r - rho2
	if h2 < 0 {
		return r3.Vec{}, false
	}
	h := math.Sqrt(h2)

	n := FaceNormal(v1, v2, v3)
	avg := r3.Add(r3.Add(n1, n2), n3)
	if r3.Dot(n, avg) < 0 {
		n = r3.Scale(-1, n)
	}

	return r3.Add(p, r3.Scale(h, n)), true
}

// PointsCoplanar reports whether four points lie on a common plane, via the
// scalar triple product of the three edge vectors from a.
func PointsCoplanar(a, b, c, d r3.Vec) bool {
	ab := r3.Sub(b, a)
	ac := r3.Sub(c, a)
	ad := r3.Sub(d, a)
	triple := r3.Dot(ab, r3.Cross(ac, ad))
	return math.Abs(triple) < SegmentEpsilon
}

// SegmentsMinimumDistance returns the minimum Euclidean distance between
// segment p-q and segment r-s.
func SegmentsMinimumDistance(p, q, r, s r3.Vec) float64 {
	d1 := r3.Sub(q, p) // direction of segment 1
	d2 := r3.Sub(s, r) // direction of segment 2
	rVec := r3.Sub(p, r)

	a := r3.Dot(d1, d1) // squared length of segment 1
	e := r3.Dot(d2, d2) // squared length of segment 2
	f := r3.Dot(d2, rVec)

	var sNum, tNum float64

	if a <= SegmentEpsilon && e <= SegmentEpsilon {
		// Both segments degenerate to points.
		return r3.Norm(r3.Sub(p, r))
	}
	if a <= SegmentEpsilon {
		// Segment 1 degenerates to a point.
		sNum = 0
		tNum = clamp01(f / e)
	} else {
		c := r3.Dot(d1, rVec)
		if e <= SegmentEpsilon {
			// Segment 2 degenerates to a point.
			tNum = 0
			sNum = clamp01(-c / a)
		} else {
			b := r3.Dot(d1, d2)
			denom := a*e - b*b

			if denom != 0 {
				sNum = clamp01((b*f - c*e) / denom)
			} else {
				sNum = 0
			}

			tNum = (b*sNum + f) / e

			if tNum < 0 {
				tNum = 0
				sNum = clamp01(-c / a)
			} else if tNum > 1 {
				tNum = 1
				sNum = clamp01((b - c) / a)
			}
		}
	}

	closest1 := r3.Add(p, r3.Scale(sNum, d1))
	closest2 := r3.Add(r, r3.Scale(tNum, d2))
	return r3.Norm(r3.Sub(closest1, closest2))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
