package geometry

import (
	"github.com/ajwaitz/ray-trace-go/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	A, B, C  core.Vec3
	Material core.Material
	normal   core.Vec3 // Cached geometric normal
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(a, b, c core.Vec3, material core.Material) *Triangle {
	t := &Triangle{
		A:        a,
		B:        b,
		C:        c,
		Material: material,
	}
	edgeAB := b.Subtract(a)
	edgeAC := c.Subtract(a)
	t.normal = edgeAB.Cross(edgeAC).Normalize()
	return t
}

// Normal returns the triangle's cached geometric normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Hit tests if a ray intersects the triangle by solving
// O + t*D = A + u*AB + v*AC with Cramer's rule.
func (t *Triangle) Hit(ray core.Ray, ti core.Interval) (*core.HitRecord, bool) {
	// Rays parallel to the plane are rejected on exact equality; widening
	// to an epsilon would change visible edge-case behavior.
	if ray.Direction.Dot(t.normal) == 0.0 {
		return nil, false
	}

	edgeAB := t.B.Subtract(t.A)
	edgeAC := t.C.Subtract(t.A)
	negDir := ray.Direction.Negate()
	rhs := ray.Origin.Subtract(t.A)

	det := core.Det(negDir, edgeAB, edgeAC)
	if det == 0.0 {
		return nil, false
	}

	tParam := core.Det(rhs, edgeAB, edgeAC) / det
	u := core.Det(negDir, rhs, edgeAC) / det
	v := core.Det(negDir, edgeAB, rhs) / det

	// Barycentric bounds of the unit triangle
	if u < 0 || v < 0 || u+v > 1 {
		return nil, false
	}

	// Closed containment, unlike the sphere's open test
	if !ti.Contains(tParam) {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		Material: t.Material,
	}
	hit.SetFaceNormal(ray, t.normal)

	return hit, true
}
