package saver

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/hdrsnap/hdrsnap/internal/frame"
	"github.com/hdrsnap/hdrsnap/internal/pixelmath"
)

func solidBGRA(w, h int, b, g, r, a byte) *frame.Frame {
	pixels := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		pixels[i*4+0] = b
		pixels[i*4+1] = g
		pixels[i*4+2] = r
		pixels[i*4+3] = a
	}
	return &frame.Frame{Width: w, Height: h, Format: pixelmath.FormatBGRA8, Pixels: pixels, Stride: w * 4}
}

func TestEncodePNGRejectsNonBGRA8(t *testing.T) {
	f := &frame.Frame{Width: 1, Height: 1, Format: pixelmath.FormatRGBA16F, Pixels: make([]byte, 8), Stride: 8}
	if _, err := EncodePNG(f); err == nil {
		t.Fatal("expected error for non-BGRA8 frame")
	}
}

func TestEncodePNGChannelOrder(t *testing.T) {
	f := solidBGRA(2, 2, 10, 20, 200, 255)
	data, err := EncodePNG(f)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode roundtrip: %v", err)
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if byte(r>>8) != 200 || byte(g>>8) != 20 || byte(b>>8) != 10 || byte(a>>8) != 255 {
		t.Fatalf("decoded pixel = (%d,%d,%d,%d), want (200,20,10,255)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestScaledDimsPreservesAspect(t *testing.T) {
	w, h := scaledDims(1920, 1080, 360)
	if w != 360 {
		t.Fatalf("want long edge 360, got %d", w)
	}
	if h != 202 && h != 203 {
		t.Fatalf("height = %d, want ~202", h)
	}
}

func TestScaledDimsMinimumOne(t *testing.T) {
	w, h := scaledDims(4000, 1, 360)
	if w != 360 || h != 1 {
		t.Fatalf("want (360,1), got (%d,%d)", w, h)
	}
}

func TestScaledDimsPortrait(t *testing.T) {
	w, h := scaledDims(1080, 1920, 360)
	if h != 360 {
		t.Fatalf("want long edge 360 on height, got %d", h)
	}
	if w < 1 {
		t.Fatalf("width must be >=1, got %d", w)
	}
}
