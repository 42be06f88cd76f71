package frame

import (
	"errors"
	"testing"

	"github.com/hdrsnap/hdrsnap/internal/pixelmath"
)

func TestValidRejectsEmptyFrame(t *testing.T) {
	f := &Frame{Width: 10, Height: 10, Format: pixelmath.FormatBGRA8}
	if err := f.Valid(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestValidAcceptsCPUOnly(t *testing.T) {
	f := &Frame{
		Width:  2,
		Height: 2,
		Format: pixelmath.FormatBGRA8,
		Pixels: make([]byte, 2*2*4),
		Stride: 2 * 4,
	}
	if err := f.Valid(); err != nil {
		t.Fatalf("expected valid frame, got %v", err)
	}
}

func TestValidAcceptsGPUOnly(t *testing.T) {
	f := &Frame{Width: 2, Height: 2, Format: pixelmath.FormatRGBA16F, Texture: 0xdeadbeef}
	if err := f.Valid(); err != nil {
		t.Fatalf("expected valid frame, got %v", err)
	}
}

func TestValidRejectsUnrecognizedFormat(t *testing.T) {
	f := &Frame{Width: 2, Height: 2, Format: pixelmath.FormatUnknown, Texture: 1}
	if err := f.Valid(); err == nil {
		t.Fatal("expected error for unrecognized format")
	}
}

func TestMaterializeNoOpWhenCPUAlreadyPresent(t *testing.T) {
	f := &Frame{
		Width:  1,
		Height: 1,
		Format: pixelmath.FormatBGRA8,
		Pixels: []byte{1, 2, 3, 4},
	}
	if err := f.Materialize(); err != nil {
		t.Fatalf("expected no-op success, got %v", err)
	}
	if len(f.Pixels) != 4 {
		t.Fatalf("pixels mutated unexpectedly: %v", f.Pixels)
	}
}

func TestBytesPerPixel(t *testing.T) {
	f := &Frame{Format: pixelmath.FormatRGBA16F}
	if got := f.BytesPerPixel(); got != 8 {
		t.Fatalf("BytesPerPixel() = %d, want 8", got)
	}
}
