package scene

import (
	"github.com/ajwaitz/ray-trace-go/pkg/core"
)

// World is the scene aggregate: an ordered collection of primitives that
// answers closest-hit queries. It is built once before rendering starts
// and is read-only afterwards, so all workers may query it concurrently.
type World struct {
	objects []core.Hittable
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// Add appends a primitive to the world
func (w *World) Add(h core.Hittable) {
	w.objects = append(w.objects, h)
}

// Count returns the number of top-level primitives
func (w *World) Count() int {
	return len(w.objects)
}

// Hit scans every primitive with a shrinking interval and returns the
// globally nearest intersection. Each accepted hit lowers the interval's
// upper bound, so later primitives only report strictly closer hits.
// Exactly-equal t values resolve to the first primitive in scan order.
func (w *World) Hit(ray core.Ray, ti core.Interval) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := ti.Max

	for _, obj := range w.objects {
		if hit, ok := obj.Hit(ray, core.NewInterval(ti.Min, closestSoFar)); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}
