// Package ballpivot implements the core of a ball-pivoting surface
// reconstruction engine: it converts an oriented point cloud into a
// consistent triangle mesh by rolling virtual balls of one or more radii
// over the samples.
package ballpivot

import (
	"fmt"

	"github.com/chazu/ballpivot/pkg/mesh"
	"github.com/chazu/ballpivot/pkg/pointcloud"
	"github.com/chazu/ballpivot/pkg/reconstruct"
	"github.com/chazu/ballpivot/pkg/spatialindex"
	"github.com/chazu/ballpivot/pkg/topology"
)

// Reconstruct is the engine's sole entry point:
// create_mesh_from_point_cloud_ball_pivoting(cloud, radii) → mesh.
//
// radii must be a non-empty ordered sequence of positive radii, typically
// small-to-large. The returned mesh may be empty (no seed triangle found at
// any radius) or partial (regions where no ball of any given radius fits);
// partiality is expected output, not an error.
func Reconstruct(cloud *pointcloud.Cloud, radii []float64) (*mesh.TriangleMesh, error) {
	if !cloud.HasNormals() {
		return nil, fmt.Errorf("ballpivot: normals required")
	}
	if len(radii) == 0 {
		return nil, fmt.Errorf("ballpivot: at least one radius is required")
	}

	out := mesh.New(cloud.Positions, cloud.Normals, cloud.Colors)

	if cloud.Len() < 3 {
		return out, nil
	}

	store := topology.NewStore(cloud.Positions, cloud.Normals, out)
	index := spatialindex.NewRTree(cloud.Positions)

	if err := reconstruct.Run(store, index, radii); err != nil {
		return nil, fmt.Errorf("ballpivot: %w", err)
	}

	return out, nil
}
