package core

import "math/rand"

// All sampling takes an explicit *rand.Rand. Each render worker owns its
// own generator, so none of these need synchronization.

// RandomVec3 generates a vector with components uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{random.Float64(), random.Float64(), random.Float64()}
}

// RandomVec3Range generates a vector with components uniform in [min, max)
func RandomVec3Range(min, max float64, random *rand.Rand) Vec3 {
	span := max - min
	return Vec3{
		X: min + span*random.Float64(),
		Y: min + span*random.Float64(),
		Z: min + span*random.Float64(),
	}
}

// RandomInUnitSphere generates a uniform random point inside the unit ball
// by rejection sampling from the [-1,1]³ cube. The loop has no iteration
// cap; acceptance probability is ~0.52, so it terminates almost surely
// after ~2 expected draws.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(-1, 1, random)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
