// Package pointcloud defines the oriented point cloud input to surface
// reconstruction: ordered positions, per-point unit normals, and optional
// per-point colors.
package pointcloud

import "gonum.org/v1/gonum/spatial/r3"

// Cloud is an oriented point cloud. Positions, Normals, and (if present)
// Colors are equal-length parallel slices indexed by the same vertex index
// used throughout the reconstruction engine.
type Cloud struct {
	Positions []r3.Vec
	Normals   []r3.Vec
	Colors    []r3.Vec // optional; empty if the cloud carries no color data
}

// Len returns the number of points in the cloud.
func (c *Cloud) Len() int {
	return len(c.Positions)
}

// HasNormals reports whether the cloud carries a unit normal for every
// position. A cloud with a Normals slice shorter than Positions has no
// usable normals at all.
func (c *Cloud) HasNormals() bool {
	return len(c.Normals) == len(c.Positions)
}

// HasColors reports whether the cloud carries a color for every position.
func (c *Cloud) HasColors() bool {
	return len(c.Colors) == len(c.Positions) && len(c.Colors) > 0
}
