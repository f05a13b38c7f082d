package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/ajwaitz/ray-trace-go/pkg/core"
)

// Framebuffer is a flat row-major buffer of linear radiance values,
// three channels per pixel.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []float64
}

// NewFramebuffer creates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height*3),
	}
}

// At returns the linear color at pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	idx := (y*fb.Width + x) * 3
	return core.NewVec3(fb.Pix[idx], fb.Pix[idx+1], fb.Pix[idx+2])
}

// RenderOptions configures a parallel render
type RenderOptions struct {
	Bands  int         // Number of horizontal bands / workers; <= 0 picks a default
	Seed   int64       // Base RNG seed; 0 draws one from the clock
	Logger core.Logger // Optional progress logger
}

// Render renders the world into a framebuffer using one goroutine per
// horizontal band. Each worker owns a copy of the camera and its own RNG,
// renders into a private band buffer, and copies it into the shared
// framebuffer under the mutex exactly once. The image height must divide
// evenly by the band count.
func (c Camera) Render(world core.Hittable, opts RenderOptions) (*Framebuffer, error) {
	bands := opts.Bands
	if bands <= 0 {
		bands = defaultBands(c.ImageHeight)
	}
	if c.ImageHeight%bands != 0 {
		return nil, fmt.Errorf("image height %d is not divisible by %d bands", c.ImageHeight, bands)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bandHeight := c.ImageHeight / bands
	rowSize := c.ImageWidth * 3

	fb := NewFramebuffer(c.ImageWidth, c.ImageHeight)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for band := 0; band < bands; band++ {
		wg.Add(1)
		go func(band int) {
			defer wg.Done()

			random := newWorkerRand(seed, band)
			localBuf := make([]float64, bandHeight*rowSize)
			startRow := band * bandHeight
			start := time.Now()

			for y := 0; y < bandHeight; y++ {
				for x := 0; x < c.ImageWidth; x++ {
					color := c.RenderPixel(world, random, x, startRow+y)
					idx := y*rowSize + x*3
					localBuf[idx] = color.X
					localBuf[idx+1] = color.Y
					localBuf[idx+2] = color.Z
				}
			}

			// One critical section per worker: bulk-copy the band into
			// its disjoint region of the shared buffer.
			mu.Lock()
			copy(fb.Pix[startRow*rowSize:(startRow+bandHeight)*rowSize], localBuf)
			mu.Unlock()

			if opts.Logger != nil {
				opts.Logger.Printf("band %d/%d done (rows %d-%d) in %v",
					band+1, bands, startRow, startRow+bandHeight-1, time.Since(start))
			}
		}(band)
	}

	wg.Wait()
	return fb, nil
}

// newWorkerRand derives a worker-private generator from the base seed.
// No generator is shared across goroutines, and a fixed base seed makes
// the whole render reproducible bit for bit.
func newWorkerRand(seed int64, band int) *rand.Rand {
	return rand.New(rand.NewSource(seed + int64(band)))
}

// defaultBands picks the largest band count up to the CPU count that
// divides the image height evenly.
func defaultBands(height int) int {
	bands := min(height, runtime.NumCPU())
	for height%bands != 0 {
		bands--
	}
	return bands
}
