package geometry

import (
	"math"

	"github.com/ajwaitz/ray-trace-go/pkg/core"
)

// Sphere represents a sphere primitive
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects the sphere within the interval
func (s *Sphere) Hit(ray core.Ray, ti core.Interval) (*core.HitRecord, bool) {
	// Quadratic ‖O + tD − C‖² = r² in the half-b form
	oc := s.Center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Prefer the nearer root, falling back to the farther one
	sqrtD := math.Sqrt(discriminant)
	root := (h - sqrtD) / a
	if !ti.Surrounds(root) {
		root = (h + sqrtD) / a
		if !ti.Surrounds(root) {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(s.Center).Divide(s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
