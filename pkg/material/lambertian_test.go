package material

import (
	"math/rand"
	"testing"

	"github.com/ajwaitz/ray-trace-go/pkg/core"
)

func makeHit(point, normal core.Vec3, mat core.Material) core.HitRecord {
	return core.HitRecord{
		T:         1.0,
		Point:     point,
		Normal:    normal,
		FrontFace: true,
		Material:  mat,
	}
}

func TestLambertian_NeverAbsorbs(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := makeHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), lambertian)

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatalf("Iteration %d: expected diffuse material to always scatter", i)
		}
		if scatter.Attenuation != lambertian.Albedo {
			t.Fatalf("Expected attenuation %v, got %v", lambertian.Albedo, scatter.Attenuation)
		}
	}
}

func TestLambertian_ScatterOriginatesAtHitPoint(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	random := rand.New(rand.NewSource(1))

	point := core.NewVec3(1, 2, 3)
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), point)
	hit := makeHit(point, core.NewVec3(0, 1, 0), lambertian)

	scatter, _ := lambertian.Scatter(rayIn, hit, random)
	if scatter.Scattered.Origin != point {
		t.Errorf("Expected scattered ray origin %v, got %v", point, scatter.Scattered.Origin)
	}
}

func TestLambertian_ScatterDirectionNeverZero(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	random := rand.New(rand.NewSource(9))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := makeHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), lambertian)

	for i := 0; i < 1000; i++ {
		scatter, _ := lambertian.Scatter(rayIn, hit, random)
		if scatter.Scattered.Direction.NearZero() {
			t.Fatalf("Iteration %d: degenerate scatter direction %v", i, scatter.Scattered.Direction)
		}
	}
}
