// Package renderer holds the camera, the light-transport evaluation and
// the parallel band renderer that fills the shared framebuffer.
package renderer

import (
	"math/rand"

	"github.com/ajwaitz/ray-trace-go/pkg/core"
)

var (
	white = core.NewVec3(1.0, 1.0, 1.0)
	sky   = core.NewVec3(0.5, 0.7, 1.0)
)

// CameraConfig contains the camera construction parameters
type CameraConfig struct {
	ImageWidth      int // Image width in pixels
	ImageHeight     int // Image height in pixels
	SamplesPerPixel int // Rays per pixel for anti-aliasing
	MaxDepth        int // Recursion budget for ray bounces
}

// DefaultCameraConfig returns the standard 512x512 configuration
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		ImageWidth:      512,
		ImageHeight:     512,
		SamplesPerPixel: 10,
		MaxDepth:        10,
	}
}

// Camera generates view rays and evaluates their color. It is fully
// determined at construction, immutable, and cheap to copy into each
// render worker.
type Camera struct {
	ImageWidth      int
	ImageHeight     int
	SamplesPerPixel int
	MaxDepth        int

	center      core.Vec3
	pixel00Loc  core.Vec3
	pixelDeltaU core.Vec3
	pixelDeltaV core.Vec3
}

// NewCamera creates a camera at the origin looking down -z with a focal
// length of 1 and a viewport height of 2.
func NewCamera(config CameraConfig) Camera {
	cam := Camera{
		ImageWidth:      config.ImageWidth,
		ImageHeight:     config.ImageHeight,
		SamplesPerPixel: config.SamplesPerPixel,
		MaxDepth:        config.MaxDepth,
		center:          core.NewVec3(0, 0, 0),
	}

	focalLength := 1.0
	viewportHeight := 2.0
	viewportWidth := viewportHeight * float64(cam.ImageWidth) / float64(cam.ImageHeight)

	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -viewportHeight, 0)

	cam.pixelDeltaU = viewportU.Divide(float64(cam.ImageWidth))
	cam.pixelDeltaV = viewportV.Divide(float64(cam.ImageHeight))

	viewportUpperLeft := cam.center.
		Subtract(core.NewVec3(0, 0, focalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	cam.pixel00Loc = viewportUpperLeft.Add(cam.pixelDeltaU.Add(cam.pixelDeltaV).Multiply(0.5))

	return cam
}

// RayColor evaluates the radiance carried back along a ray. Hits scatter
// through the surface material and recurse with one less bounce; once the
// depth budget is spent the path contributes black rather than erroring.
func (c Camera) RayColor(ray core.Ray, world core.Hittable, random *rand.Rand, depth int) core.Vec3 {
	if depth < 0 {
		return core.Vec3{}
	}

	if hit, isHit := world.Hit(ray, core.ForwardEps); isHit {
		if scatter, didScatter := hit.Material.Scatter(ray, *hit, random); didScatter {
			return scatter.Attenuation.MultiplyVec(c.RayColor(scatter.Scattered, world, random, depth-1))
		}
		return core.Vec3{}
	}

	return BackgroundGradient(ray)
}

// BackgroundGradient returns the sky color for a ray that escapes the
// scene: white blended toward sky blue by the direction's height. The
// direction is normalized by its max-abs component (Chebyshev), not by
// Euclidean length.
func BackgroundGradient(ray core.Ray) core.Vec3 {
	unitDir := ray.Direction.NormalizeChebyshev()
	t := 0.5 * (unitDir.Y + 1.0)
	return white.Multiply(1.0 - t).Add(sky.Multiply(t))
}

// RenderPixel estimates the color of pixel (i, j) by averaging
// SamplesPerPixel jittered rays through the pixel's footprint.
func (c Camera) RenderPixel(world core.Hittable, random *rand.Rand, i, j int) core.Vec3 {
	pixelCenter := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))

	var color core.Vec3
	for s := 0; s < c.SamplesPerPixel; s++ {
		xNoise := random.Float64() - 0.5
		yNoise := random.Float64() - 0.5
		samplePoint := pixelCenter.
			Add(c.pixelDeltaU.Multiply(xNoise)).
			Add(c.pixelDeltaV.Multiply(yNoise))

		ray := core.NewRay(c.center, samplePoint.Subtract(c.center))
		color = color.Add(c.RayColor(ray, world, random, c.MaxDepth))
	}

	return color.Divide(float64(c.SamplesPerPixel))
}
