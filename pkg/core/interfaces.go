package core

import "math/rand"

// Hittable is the ray-intersection contract shared by primitives and
// aggregates. Hit must be a pure function of the ray, the interval and the
// receiver's immutable fields so it can be called concurrently from many
// goroutines with no synchronization. A miss is signaled by the false
// return; the record pointer is only valid when ok is true.
type Hittable interface {
	Hit(ray Ray, ti Interval) (*HitRecord, bool)
}

// Material decides whether and how an incoming ray scatters at a surface.
// Materials are immutable and shared read-only across all render workers.
// A false return means the ray was absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the outgoing ray and per-channel attenuation
// produced by a successful scatter.
type ScatterResult struct {
	Scattered   Ray
	Attenuation Vec3
}

// HitRecord contains information about a ray-object intersection.
// It lives for the duration of one intersection query.
type HitRecord struct {
	T         float64  // Parameter t along the ray
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// Callers rely on the invariant that Normal is unit length and satisfies
// dot(ray.Direction, Normal) <= 0 exactly when FrontFace is true.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Logger interface for renderer progress logging
type Logger interface {
	Printf(format string, args ...interface{})
}
