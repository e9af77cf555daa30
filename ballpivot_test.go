package ballpivot

import (
	"math"
	"testing"

	"github.com/chazu/ballpivot/pkg/pointcloud"
	"gonum.org/v1/gonum/spatial/r3"
)

func upNormals(n int) []r3.Vec {
	normals := make([]r3.Vec, n)
	for i := range normals {
		normals[i] = r3.Vec{X: 0, Y: 0, Z: 1}
	}
	return normals
}

func TestReconstructUnitRightTriangle(t *testing.T) {
	cloud := &pointcloud.Cloud{
		Positions: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		Normals: upNormals(3),
	}

	m, err := Reconstruct(cloud, []float64{1.0})
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	if m.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", m.TriangleCount())
	}
	if m.Indices[0] != [3]int{0, 1, 2} {
		t.Fatalf("expected triangle {0,1,2}, got %v", m.Indices[0])
	}
	if math.Abs(m.FaceNormals[0].Z-1) > 1e-9 {
		t.Fatalf("expected face normal (0,0,1), got %v", m.FaceNormals[0])
	}
}

func TestReconstructMultiRadiusRefinement(t *testing.T) {
	// Two isolated right triangles of leg 1 and leg 2, far apart. A right
	// triangle's circumradius is leg*sqrt(2)/2, so the small triangle seeds
	// at the first (smaller) radius while the large triangle only becomes
	// seedable once the second (larger) radius is tried.
	cloud := &pointcloud.Cloud{
		Positions: []r3.Vec{
			// small triangle, legs of length 1, near the origin
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			// large triangle, legs of length 2, far from the small one
			{X: 100, Y: 100, Z: 0},
			{X: 102, Y: 100, Z: 0},
			{X: 100, Y: 102, Z: 0},
		},
		Normals: upNormals(6),
	}

	m, err := Reconstruct(cloud, []float64{0.8, 1.6})
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("expected 2 triangles (one per isolated triangle), got %d", m.TriangleCount())
	}

	seen := make(map[[3]int]bool)
	for _, tri := range m.Indices {
		if seen[tri] {
			t.Fatalf("duplicate triangle %v in output", tri)
		}
		seen[tri] = true
	}
}

func TestReconstructRequiresNormals(t *testing.T) {
	cloud := &pointcloud.Cloud{
		Positions: []r3.Vec{{X: 0}, {X: 1}, {X: 2}},
	}
	if _, err := Reconstruct(cloud, []float64{1.0}); err == nil {
		t.Fatalf("expected an error when normals are absent")
	}
}

func TestReconstructRequiresPositiveRadius(t *testing.T) {
	cloud := &pointcloud.Cloud{
		Positions: []r3.Vec{{X: 0}, {X: 1}, {X: 2}},
		Normals:   upNormals(3),
	}
	if _, err := Reconstruct(cloud, []float64{-1.0}); err == nil {
		t.Fatalf("expected an error for a non-positive radius")
	}
}

func TestReconstructRequiresAtLeastOneRadius(t *testing.T) {
	cloud := &pointcloud.Cloud{
		Positions: []r3.Vec{{X: 0}, {X: 1}, {X: 2}},
		Normals:   upNormals(3),
	}
	if _, err := Reconstruct(cloud, nil); err == nil {
		t.Fatalf("expected an error for an empty radii sequence")
	}
}

func TestReconstructFewerThanThreePointsIsEmptyNotError(t *testing.T) {
	cloud := &pointcloud.Cloud{
		Positions: []r3.Vec{{X: 0}, {X: 1}},
		Normals:   upNormals(2),
	}
	m, err := Reconstruct(cloud, []float64{1.0})
	if err != nil {
		t.Fatalf("expected no error for fewer than 3 points, got %v", err)
	}
	if !m.IsEmpty() {
		t.Fatalf("expected an empty mesh")
	}
}

func TestReconstructIdempotentOnRepeatedRun(t *testing.T) {
	cloud := &pointcloud.Cloud{
		Positions: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		Normals: upNormals(4),
	}

	m1, err := Reconstruct(cloud, []float64{0.9})
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	m2, err := Reconstruct(cloud, []float64{0.9})
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	if m1.TriangleCount() != m2.TriangleCount() {
		t.Fatalf("expected repeated runs to produce the same triangle count, got %d vs %d", m1.TriangleCount(), m2.TriangleCount())
	}
}
