// Package scene builds the primitive collections the renderer consumes.
package scene

import (
	"fmt"

	"github.com/ajwaitz/ray-trace-go/pkg/core"
	"github.com/ajwaitz/ray-trace-go/pkg/geometry"
	"github.com/ajwaitz/ray-trace-go/pkg/loaders"
	"github.com/ajwaitz/ray-trace-go/pkg/material"
)

// NewDefaultScene creates the standard sphere scene: a large diffuse
// ground sphere plus two metal spheres of different fuzz.
func NewDefaultScene() *World {
	world := NewWorld()

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialLeft := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround))
	world.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight))
	world.Add(geometry.NewSphere(core.NewVec3(0.5, 0, -0.7), 0.05, materialLeft))

	return world
}

// NewMeshScene creates a scene around a mesh loaded from an OBJ file,
// with the default ground and a fuzzy metal sphere beside it.
func NewMeshScene(objPath string) (*World, error) {
	data, err := loaders.LoadOBJ(objPath)
	if err != nil {
		return nil, err
	}

	mesh, err := geometry.NewMesh(data.Vertices, data.Faces, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh from %s: %w", objPath, err)
	}

	world := NewWorld()
	world.Add(mesh)
	world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))))
	world.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)))

	return world, nil
}
