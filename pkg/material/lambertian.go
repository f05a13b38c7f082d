package material

import (
	"math/rand"

	"github.com/ajwaitz/ray-trace-go/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements diffuse scattering: the outgoing direction is the
// surface normal perturbed by a random point in the unit ball. A diffuse
// surface never absorbs the ray.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomInUnitSphere(random))

	// The random offset can cancel the normal; fall back to the normal to
	// avoid a degenerate zero-length scatter direction.
	if direction.NearZero() {
		direction = hit.Normal
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo,
	}, true
}
