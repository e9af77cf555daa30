package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestFaceNormal(t *testing.T) {
	v0 := r3.Vec{X: 0, Y: 0, Z: 0}
	v1 := r3.Vec{X: 1, Y: 0, Z: 0}
	v2 := r3.Vec{X: 0, Y: 1, Z: 0}

	n := FaceNormal(v0, v1, v2)
	want := r3.Vec{X: 0, Y: 0, Z: 1}
	if !vecApproxEqual(n, want, 1e-9) {
		t.Fatalf("FaceNormal = %v, want %v", n, want)
	}
}

func TestFaceNormalDegenerate(t *testing.T) {
	v := r3.Vec{X: 1, Y: 1, Z: 1}
	n := FaceNormal(v, v, v)
	if n != (r3.Vec{}) {
		t.Fatalf("expected zero normal for degenerate triangle, got %v", n)
	}
}

func TestBallCenterUnitRightTriangle(t *testing.T) {
	// Scenario 1 from the spec's end-to-end cases.
	v1 := r3.Vec{X: 0, Y: 0, Z: 0}
	v2 := r3.Vec{X: 1, Y: 0, Z: 0}
	v3 := r3.Vec{X: 0, Y: 1, Z: 0}
	n := r3.Vec{X: 0, Y: 0, Z: 1}

	center, ok := BallCenter(v1, v2, v3, n, n, n, 1.0)
	if !ok {
		t.Fatalf("expected BallCenter to succeed")
	}
	want := r3.Vec{X: 0.5, Y: 0.5, Z: math.Sqrt(1 - 0.5)}
	if !vecApproxEqual(center, want, 1e-9) {
		t.Fatalf("BallCenter = %v, want %v", center, want)
	}
}

func TestBallCenterRadiusTooSmall(t *testing.T) {
	// Scenario 5: equilateral triangle side 1, radius 0.4; rho^2 = 1/3 > r^2.
	v1 := r3.Vec{X: 0, Y: 0, Z: 0}
	v2 := r3.Vec{X: 1, Y: 0, Z: 0}
	v3 := r3.Vec{X: 0.5, Y: math.Sqrt(3) / 2, Z: 0}
	n := r3.Vec{X: 0, Y: 0, Z: 1}

	_, ok := BallCenter(v1, v2, v3, n, n, n, 0.4)
	if ok {
		t.Fatalf("expected BallCenter to fail for radius too small")
	}
}

func TestBallCenterCollinear(t *testing.T) {
	v1 := r3.Vec{X: 0, Y: 0, Z: 0}
	v2 := r3.Vec{X: 1, Y: 0, Z: 0}
	v3 := r3.Vec{X: 2, Y: 0, Z: 0}
	n := r3.Vec{X: 0, Y: 0, Z: 1}

	_, ok := BallCenter(v1, v2, v3, n, n, n, 5.0)
	if ok {
		t.Fatalf("expected BallCenter to fail for collinear points")
	}
}

func TestPointsCoplanar(t *testing.T) {
	a := r3.Vec{X: 0, Y: 0, Z: 0}
	b := r3.Vec{X: 1, Y: 0, Z: 0}
	c := r3.Vec{X: 0, Y: 1, Z: 0}
	d := r3.Vec{X: 1, Y: 1, Z: 0}
	if !PointsCoplanar(a, b, c, d) {
		t.Fatalf("expected coplanar points to test true")
	}

	e := r3.Vec{X: 0, Y: 0, Z: 1}
	if PointsCoplanar(a, b, c, e) {
		t.Fatalf("expected non-coplanar points to test false")
	}
}

func TestSegmentsMinimumDistanceIntersecting(t *testing.T) {
	p := r3.Vec{X: -1, Y: 0, Z: 0}
	q := r3.Vec{X: 1, Y: 0, Z: 0}
	r := r3.Vec{X: 0, Y: -1, Z: 0}
	s := r3.Vec{X: 0, Y: 1, Z: 0}

	d := SegmentsMinimumDistance(p, q, r, s)
	if d > 1e-9 {
		t.Fatalf("expected ~0 distance for crossing segments, got %v", d)
	}
}

func TestSegmentsMinimumDistanceParallel(t *testing.T) {
	p := r3.Vec{X: 0, Y: 0, Z: 0}
	q := r3.Vec{X: 1, Y: 0, Z: 0}
	r := r3.Vec{X: 0, Y: 1, Z: 0}
	s := r3.Vec{X: 1, Y: 1, Z: 0}

	d := SegmentsMinimumDistance(p, q, r, s)
	if math.Abs(d-1) > 1e-9 {
		t.Fatalf("expected distance 1 for parallel offset segments, got %v", d)
	}
}

func TestSegmentsMinimumDistanceDegeneratePoints(t *testing.T) {
	p := r3.Vec{X: 0, Y: 0, Z: 0}
	r := r3.Vec{X: 3, Y: 4, Z: 0}

	d := SegmentsMinimumDistance(p, p, r, r)
	if math.Abs(d-5) > 1e-9 {
		t.Fatalf("expected distance 5 between degenerate point segments, got %v", d)
	}
}

func vecApproxEqual(a, b r3.Vec, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}
