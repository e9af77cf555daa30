// Package mesh defines the reconstruction engine's output: an indexed
// triangle mesh with per-vertex data copied from the input point cloud and
// per-triangle face normals (component G).
package mesh

import "gonum.org/v1/gonum/spatial/r3"

// TriangleMesh is the output of surface reconstruction. Positions, Normals,
// and (if present) Colors are copied verbatim from the input point cloud;
// Indices and FaceNormals accumulate as triangles are created.
type TriangleMesh struct {
	Positions []r3.Vec
	Normals   []r3.Vec
	Colors    []r3.Vec

	Indices     [][3]int // one entry per triangle, vertex indices into Positions
	FaceNormals []r3.Vec // one entry per triangle
}

// New returns an empty mesh pre-seeded with the cloud's per-vertex data.
func New(positions, normals, colors []r3.Vec) *TriangleMesh {
	return &TriangleMesh{
		Positions: positions,
		Normals:   normals,
		Colors:    colors,
	}
}

// AddTriangle appends one output triangle with the given winding and face
// normal.
func (m *TriangleMesh) AddTriangle(u, v, w int, faceNormal r3.Vec) {
	m.Indices = append(m.Indices, [3]int{u, v, w})
	m.FaceNormals = append(m.FaceNormals, faceNormal)
}

// VertexCount returns the number of vertices carried by the mesh.
func (m *TriangleMesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of emitted triangles.
func (m *TriangleMesh) TriangleCount() int {
	return len(m.Indices)
}

// IsEmpty reports whether the mesh has no triangles.
func (m *TriangleMesh) IsEmpty() bool {
	return len(m.Indices) == 0
}
