package tonemap

import (
	"testing"

	"github.com/hdrsnap/hdrsnap/internal/frame"
	"github.com/hdrsnap/hdrsnap/internal/pixelmath"
)

func encodeHalfPixel(r, g, b, a float32) []byte {
	rh := pixelmath.Float32ToHalf(r)
	gh := pixelmath.Float32ToHalf(g)
	bh := pixelmath.Float32ToHalf(b)
	ah := pixelmath.Float32ToHalf(a)
	buf := make([]byte, 8)
	buf[0], buf[1] = byte(rh), byte(rh>>8)
	buf[2], buf[3] = byte(gh), byte(gh>>8)
	buf[4], buf[5] = byte(bh), byte(bh>>8)
	buf[6], buf[7] = byte(ah), byte(ah>>8)
	return buf
}

func rgba16fFrame(pixels [][4]float32, w, h int) *frame.Frame {
	buf := make([]byte, 0, w*h*8)
	for _, p := range pixels {
		buf = append(buf, encodeHalfPixel(p[0], p[1], p[2], p[3])...)
	}
	return &frame.Frame{Width: w, Height: h, Format: pixelmath.FormatRGBA16F, Pixels: buf, Stride: w * 8}
}

func TestToneMapAt80NitsIdentityScale(t *testing.T) {
	// SDR white (1.0 scRGB) at 80 nits paper-white should round-trip to
	// 0xFF after the sRGB encode, since scale is 1.
	src := rgba16fFrame([][4]float32{{1, 1, 1, 1}}, 1, 1)
	out, err := ToneMap(src, 80)
	if err != nil {
		t.Fatalf("ToneMap error: %v", err)
	}
	if out.Pixels[0] != 255 || out.Pixels[1] != 255 || out.Pixels[2] != 255 || out.Pixels[3] != 255 {
		t.Fatalf("expected opaque white, got %v", out.Pixels)
	}
}

func TestToneMapAt200NitsDimsSDRWhite(t *testing.T) {
	// scRGB value of 1.0 represents 80 nits regardless of paper-white;
	// against a 200-nit paper-white the normalized value is 80/200=0.4,
	// well below full scale after sRGB encoding.
	src := rgba16fFrame([][4]float32{{1, 1, 1, 1}}, 1, 1)
	out, err := ToneMap(src, 200)
	if err != nil {
		t.Fatalf("ToneMap error: %v", err)
	}
	if out.Pixels[0] >= 255 {
		t.Fatalf("expected dimmed channel at 200 nits, got %d", out.Pixels[0])
	}
}

func TestToneMapClampsNegativeChannels(t *testing.T) {
	src := rgba16fFrame([][4]float32{{-0.5, -0.5, -0.5, 1}}, 1, 1)
	out, err := ToneMap(src, 80)
	if err != nil {
		t.Fatalf("ToneMap error: %v", err)
	}
	if out.Pixels[0] != 0 || out.Pixels[1] != 0 || out.Pixels[2] != 0 {
		t.Fatalf("expected below-black clamp to 0, got %v", out.Pixels[:3])
	}
}

func TestToneMapClampsHDRHighlights(t *testing.T) {
	// A channel far above 1.0 scRGB (an HDR highlight) must hard-clip to
	// full white, not wrap or overflow.
	src := rgba16fFrame([][4]float32{{4.0, 4.0, 4.0, 1}}, 1, 1)
	out, err := ToneMap(src, 80)
	if err != nil {
		t.Fatalf("ToneMap error: %v", err)
	}
	if out.Pixels[0] != 255 || out.Pixels[1] != 255 || out.Pixels[2] != 255 {
		t.Fatalf("expected highlight clamp to 255, got %v", out.Pixels[:3])
	}
}

func TestToneMapBGRA8Passthrough(t *testing.T) {
	src := &frame.Frame{
		Width: 1, Height: 1, Format: pixelmath.FormatBGRA8,
		Pixels: []byte{10, 20, 30, 255}, Stride: 4,
	}
	out, err := ToneMap(src, 80)
	if err != nil {
		t.Fatalf("ToneMap error: %v", err)
	}
	if out.Pixels[0] != 10 || out.Pixels[1] != 20 || out.Pixels[2] != 30 || out.Pixels[3] != 255 {
		t.Fatalf("expected passthrough, got %v", out.Pixels)
	}
	// Defensive copy: mutating src must not affect out.
	src.Pixels[0] = 99
	if out.Pixels[0] == 99 {
		t.Fatal("ToneMap BGRA8 passthrough did not copy the buffer")
	}
}

func TestToneMapUnsupportedFormatFails(t *testing.T) {
	src := &frame.Frame{Width: 1, Height: 1, Format: pixelmath.FormatUnknown, Pixels: []byte{0, 0, 0, 0}, Stride: 4}
	if _, err := ToneMap(src, 80); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestToneMapRequiresCPUBuffer(t *testing.T) {
	src := &frame.Frame{Width: 1, Height: 1, Format: pixelmath.FormatRGBA16F, Texture: 1}
	if _, err := ToneMap(src, 80); err == nil {
		t.Fatal("expected error for GPU-only frame")
	}
}

func TestPaperWhiteNitsOverrideTakesPrecedence(t *testing.T) {
	if got := PaperWhiteNits(120); got != 120 {
		t.Fatalf("PaperWhiteNits(120) = %v, want 120", got)
	}
}

func TestPaperWhiteNitsFallsBackToDefault(t *testing.T) {
	// On the non-windows test platform the OS query always fails, so the
	// zero-override path must land on the documented default.
	if got := PaperWhiteNits(0); got != DefaultPaperWhiteNits {
		t.Fatalf("PaperWhiteNits(0) = %v, want %v", got, DefaultPaperWhiteNits)
	}
}
