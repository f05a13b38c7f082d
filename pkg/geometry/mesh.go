package geometry

import (
	"fmt"

	"github.com/ajwaitz/ray-trace-go/pkg/core"
)

// Mesh is a collection of triangles sharing one material, built from a
// vertex list and face indices. Intersection is an exhaustive linear scan
// over the triangles; there is no acceleration structure.
type Mesh struct {
	triangles []*Triangle
	material  core.Material
}

// NewMesh creates a mesh from vertices and face indices.
// faces holds triangle index triples (each group of 3 indices is one face).
func NewMesh(vertices []core.Vec3, faces []int, material core.Material) (*Mesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}

	numTriangles := len(faces) / 3
	triangles := make([]*Triangle, 0, numTriangles)

	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		for _, idx := range []int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of bounds (%d vertices)", i, idx, len(vertices))
			}
		}
		triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2], material))
	}

	return &Mesh{triangles: triangles, material: material}, nil
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Hit scans every triangle and returns the closest valid hit.
// Same aggregation as the scene-level scan, scoped to this mesh.
func (m *Mesh) Hit(ray core.Ray, ti core.Interval) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := ti.Max

	for _, tri := range m.triangles {
		if hit, ok := tri.Hit(ray, core.NewInterval(ti.Min, closestSoFar)); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}
