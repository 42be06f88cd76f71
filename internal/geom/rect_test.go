package geom

import (
	"bytes"
	"testing"

	"github.com/hdrsnap/hdrsnap/internal/frame"
	"github.com/hdrsnap/hdrsnap/internal/pixelmath"
)

func TestUnionAllTwoMonitors(t *testing.T) {
	rects := []Rect{
		{Left: -1920, Top: 0, Right: 0, Bottom: 1080},
		{Left: 0, Top: 0, Right: 1920, Bottom: 1080},
	}
	got := UnionAll(rects)
	want := Rect{Left: -1920, Top: 0, Right: 1920, Bottom: 1080}
	if got != want {
		t.Fatalf("UnionAll = %+v, want %+v", got, want)
	}
}

func TestUnionAllEmpty(t *testing.T) {
	if got := UnionAll(nil); got != (Rect{}) {
		t.Fatalf("UnionAll(nil) = %+v, want zero", got)
	}
}

func TestClampInBounds(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Right: 20, Bottom: 20}
	got := Clamp(r, 100, 100)
	if got != r {
		t.Fatalf("Clamp in-bounds changed rect: %+v", got)
	}
}

func TestClampOutOfRange(t *testing.T) {
	r := Rect{Left: -50, Top: -50, Right: 5000, Bottom: 5000}
	got := Clamp(r, 100, 100)
	want := Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}
	if got != want {
		t.Fatalf("Clamp = %+v, want %+v", got, want)
	}
}

func TestClampEmptyIntersectionNeverFails(t *testing.T) {
	r := Rect{Left: 500, Top: 500, Right: 600, Bottom: 600}
	got := Clamp(r, 100, 100)
	if !got.Empty() {
		t.Fatalf("expected zero-area rect, got %+v", got)
	}
}

func TestNormalizeDragEndpoints(t *testing.T) {
	got := Normalize(50, 80, 10, 20)
	want := Rect{Left: 10, Top: 20, Right: 50, Bottom: 80}
	if got != want {
		t.Fatalf("Normalize = %+v, want %+v", got, want)
	}
}

func makeTestFrame(w, h int) *frame.Frame {
	pix := make([]byte, w*h*4)
	for i := range pix {
		pix[i] = byte(i % 251)
	}
	return &frame.Frame{Width: w, Height: h, Format: pixelmath.FormatBGRA8, Pixels: pix, Stride: w * 4}
}

func TestCropFullBoundsIsBitwiseEqual(t *testing.T) {
	src := makeTestFrame(8, 6)
	out, err := Crop(src, Rect{Left: 0, Top: 0, Right: 8, Bottom: 6})
	if err != nil {
		t.Fatalf("Crop error: %v", err)
	}
	if !bytes.Equal(out.Pixels, src.Pixels) {
		t.Fatal("full-bounds crop not bitwise equal to source")
	}
}

func TestCropOutOfRangeClamps(t *testing.T) {
	src := makeTestFrame(4, 4)
	out, err := Crop(src, Rect{Left: -10, Top: -10, Right: 100, Bottom: 100})
	if err != nil {
		t.Fatalf("Crop error: %v", err)
	}
	if out.Width != 4 || out.Height != 4 {
		t.Fatalf("expected clamp to 4x4, got %dx%d", out.Width, out.Height)
	}
}

func TestCropEmptyIntersectionNeverFails(t *testing.T) {
	src := makeTestFrame(4, 4)
	out, err := Crop(src, Rect{Left: 100, Top: 100, Right: 200, Bottom: 200})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Width != 0 || out.Height != 0 {
		t.Fatalf("expected zero-area frame, got %dx%d", out.Width, out.Height)
	}
}

func TestCropSubRectangle(t *testing.T) {
	src := makeTestFrame(4, 4)
	out, err := Crop(src, Rect{Left: 1, Top: 1, Right: 3, Bottom: 3})
	if err != nil {
		t.Fatalf("Crop error: %v", err)
	}
	if out.Width != 2 || out.Height != 2 {
		t.Fatalf("expected 2x2, got %dx%d", out.Width, out.Height)
	}
	wantRow0 := src.Pixels[1*src.Stride+1*4 : 1*src.Stride+3*4]
	if !bytes.Equal(out.Pixels[0:8], wantRow0) {
		t.Fatal("cropped row 0 mismatch")
	}
}

func TestCropRequiresCPUBuffer(t *testing.T) {
	src := &frame.Frame{Width: 4, Height: 4, Format: pixelmath.FormatBGRA8, Texture: 1}
	_, err := Crop(src, Rect{Right: 4, Bottom: 4})
	if err == nil {
		t.Fatal("expected error cropping a GPU-only frame")
	}
}
