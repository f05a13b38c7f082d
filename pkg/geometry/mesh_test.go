package geometry

import (
	"math"
	"testing"

	"github.com/ajwaitz/ray-trace-go/pkg/core"
	"github.com/ajwaitz/ray-trace-go/pkg/material"
)

func twoQuadMesh(t *testing.T) *Mesh {
	t.Helper()

	// Two parallel quads at z=-1 and z=-2, each split into two triangles
	vertices := []core.Vec3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: -2}, {X: 1, Y: -1, Z: -2}, {X: 1, Y: 1, Z: -2}, {X: -1, Y: 1, Z: -2},
	}
	faces := []int{
		0, 1, 2, 0, 2, 3,
		4, 5, 6, 4, 6, 7,
	}

	mesh, err := NewMesh(vertices, faces, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	if err != nil {
		t.Fatalf("Unexpected mesh construction error: %v", err)
	}
	return mesh
}

func TestMesh_Hit_ClosestTriangleWins(t *testing.T) {
	mesh := twoQuadMesh(t)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := mesh.Hit(ray, testInterval())
	if !isHit {
		t.Fatal("Expected hit, got miss")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected nearest quad at t=1.0, got t=%f", hit.T)
	}
}

func TestMesh_Hit_FartherSurfaceWhenNearExcluded(t *testing.T) {
	mesh := twoQuadMesh(t)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := mesh.Hit(ray, core.NewInterval(1.5, 1000.0))
	if !isHit {
		t.Fatal("Expected hit on farther quad, got miss")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected farther quad at t=2.0, got t=%f", hit.T)
	}
}

func TestMesh_Hit_Miss(t *testing.T) {
	mesh := twoQuadMesh(t)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if hit, isHit := mesh.Hit(ray, testInterval()); isHit {
		t.Errorf("Expected miss behind camera, got hit at t=%f", hit.T)
	}
}

func TestNewMesh_Validation(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	vertices := []core.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}

	tests := []struct {
		name  string
		faces []int
	}{
		{"faces not multiple of 3", []int{0, 1}},
		{"index out of bounds", []int{0, 1, 3}},
		{"negative index", []int{0, 1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMesh(vertices, tt.faces, mat); err == nil {
				t.Error("Expected construction error, got nil")
			}
		})
	}

	mesh, err := NewMesh(vertices, []int{0, 1, 2}, mat)
	if err != nil {
		t.Fatalf("Unexpected error for valid mesh: %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("Expected 1 triangle, got %d", mesh.TriangleCount())
	}
}
