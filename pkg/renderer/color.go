package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
)

// LinearToGamma converts a linear radiance channel to display gamma using
// the square-root approximation (gamma 2).
func LinearToGamma(x float64) float64 {
	if x > 0 {
		return math.Sqrt(x)
	}
	return 0
}

// encodeChannel maps a linear channel value to an 8-bit display value
func encodeChannel(x float64) uint8 {
	g := LinearToGamma(x)
	if g > 1 {
		g = 1
	}
	return uint8(255 * g)
}

// ToImage converts the linear framebuffer to a gamma-encoded RGBA image
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: encodeChannel(c.X),
				G: encodeChannel(c.Y),
				B: encodeChannel(c.Z),
				A: 255,
			})
		}
	}
	return img
}

// WritePPM writes the framebuffer as plain-text PPM (P3): a
// "P3\n{w} {h}\n255\n" header, then gamma-encoded "r g b " triples in
// row-major order with a newline after each row.
func WritePPM(w io.Writer, fb *Framebuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d ", encodeChannel(c.X), encodeChannel(c.Y), encodeChannel(c.Z)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// PPMImage holds decoded 8-bit pixel data from a plain-text PPM file
type PPMImage struct {
	Width  int
	Height int
	Pixels []uint8 // 3 channels per pixel, row-major
}

// ReadPPM parses the plain-text PPM format written by WritePPM
func ReadPPM(r io.Reader) (*PPMImage, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func() (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return scanner.Text(), nil
	}

	magic, err := next()
	if err != nil {
		return nil, err
	}
	if magic != "P3" {
		return nil, fmt.Errorf("unsupported PPM magic %q", magic)
	}

	var width, height, maxVal int
	for _, dst := range []*int{&width, &height, &maxVal} {
		tok, err := next()
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Sscanf(tok, "%d", dst); err != nil {
			return nil, fmt.Errorf("invalid PPM header token %q: %w", tok, err)
		}
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("unsupported max channel value %d", maxVal)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}

	pixels := make([]uint8, 0, width*height*3)
	for i := 0; i < width*height*3; i++ {
		tok, err := next()
		if err != nil {
			return nil, fmt.Errorf("truncated pixel data at channel %d: %w", i, err)
		}
		var v int
		if _, err := fmt.Sscanf(tok, "%d", &v); err != nil {
			return nil, fmt.Errorf("invalid channel value %q: %w", tok, err)
		}
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("channel value %d out of range", v)
		}
		pixels = append(pixels, uint8(v))
	}

	return &PPMImage{Width: width, Height: height, Pixels: pixels}, nil
}
