package renderer

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestLinearToGamma(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"zero", 0, 0},
		{"negative clamps to zero", -0.5, 0},
		{"quarter", 0.25, 0.5},
		{"one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearToGamma(tt.input); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("LinearToGamma(%f): expected %f, got %f", tt.input, tt.expected, got)
			}
		})
	}
}

func TestEncodeChannel_Clamps(t *testing.T) {
	if got := encodeChannel(4.0); got != 255 {
		t.Errorf("Expected over-range radiance to clamp to 255, got %d", got)
	}
	if got := encodeChannel(-1.0); got != 0 {
		t.Errorf("Expected negative radiance to encode as 0, got %d", got)
	}
	if got := encodeChannel(0.25); got != 127 {
		t.Errorf("Expected 0.25 to encode as 127, got %d", got)
	}
}

func TestFramebuffer_ToImage(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Pix = []float64{1, 0, 0.25, 0, 1, 0}

	img := fb.ToImage()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Expected 2x1 image, got %v", img.Bounds())
	}

	left := img.RGBAAt(0, 0)
	if left.R != 255 || left.G != 0 || left.B != 127 || left.A != 255 {
		t.Errorf("Unexpected left pixel %v", left)
	}
	right := img.RGBAAt(1, 0)
	if right.R != 0 || right.G != 255 || right.B != 0 {
		t.Errorf("Unexpected right pixel %v", right)
	}
}

func TestPPM_RoundTrip(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	for i := range fb.Pix {
		fb.Pix[i] = float64(i) / float64(len(fb.Pix))
	}

	var buf bytes.Buffer
	if err := WritePPM(&buf, fb); err != nil {
		t.Fatalf("Unexpected write error: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "P3\n3 2\n255\n") {
		t.Errorf("Unexpected PPM header: %q", buf.String()[:20])
	}

	decoded, err := ReadPPM(&buf)
	if err != nil {
		t.Fatalf("Unexpected read error: %v", err)
	}
	if decoded.Width != 3 || decoded.Height != 2 {
		t.Fatalf("Expected 3x2, got %dx%d", decoded.Width, decoded.Height)
	}

	for i := 0; i < len(fb.Pix); i++ {
		expected := encodeChannel(fb.Pix[i])
		if decoded.Pixels[i] != expected {
			t.Errorf("Channel %d: expected %d, got %d", i, expected, decoded.Pixels[i])
		}
	}
}

func TestReadPPM_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong magic", "P6\n2 2\n255\n"},
		{"bad max value", "P3\n2 2\n65535\n"},
		{"truncated pixels", "P3\n2 2\n255\n1 2 3"},
		{"channel out of range", "P3\n1 1\n255\n300 0 0 "},
		{"garbage dimensions", "P3\nx y\n255\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPPM(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected decode error, got nil")
			}
		})
	}
}
