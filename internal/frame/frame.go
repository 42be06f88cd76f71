// Package frame defines the Frame container that flows between the
// duplicator, tone mapper, window-capture adapter and saver. A Frame
// carries either a GPU texture handle, a CPU pixel buffer, or both; the
// invariant is that at least one is populated (§4.2).
package frame

import (
	"errors"

	"github.com/hdrsnap/hdrsnap/internal/pixelmath"
)

// ErrEmpty is returned by operations that require pixel data (CPU or GPU)
// when a Frame has neither.
var ErrEmpty = errors.New("frame: no GPU texture and no CPU buffer populated")

// Frame is a rectangular pixel surface tagged with its packing format.
// Width and Height are in pixels; Stride is the CPU buffer's row pitch in
// bytes (tight-packed, i.e. Width*BytesPerPixel, once Pixels is populated).
type Frame struct {
	Width  int
	Height int
	Format pixelmath.Format

	// Texture is an opaque GPU resource handle (an ID3D11Texture2D COM
	// pointer on Windows). Zero means no GPU-side data is attached.
	Texture uintptr

	// Device and Context are the D3D11 device/context that Texture was
	// allocated against, needed to read it back. Both zero when Texture
	// is zero.
	Device  uintptr
	Context uintptr

	// Pixels is the CPU-side tight-packed buffer, once materialized (or
	// if this Frame was constructed directly from CPU data). Length is
	// exactly Width*Height*BytesPerPixel(Format).
	Pixels []byte

	// Stride is the row length in bytes of Pixels. Always
	// Width*BytesPerPixel(Format) once Pixels is set; a Frame never
	// carries a CPU buffer with padding between rows.
	Stride int
}

// BytesPerPixel is a convenience wrapper over pixelmath.BytesPerPixel for
// this frame's format.
func (f *Frame) BytesPerPixel() int {
	return pixelmath.BytesPerPixel(f.Format)
}

// HasGPU reports whether f carries a live GPU texture handle.
func (f *Frame) HasGPU() bool {
	return f.Texture != 0
}

// HasCPU reports whether f carries materialized CPU pixel data.
func (f *Frame) HasCPU() bool {
	return f.Pixels != nil
}

// Valid checks the frame invariant: non-negative dimensions, a recognized
// format, and at least one of {GPU texture, CPU buffer} populated.
func (f *Frame) Valid() error {
	if f.Width < 0 || f.Height < 0 {
		return errors.New("frame: negative dimension")
	}
	if pixelmath.BytesPerPixel(f.Format) == 0 {
		return errors.New("frame: unrecognized pixel format")
	}
	if !f.HasGPU() && !f.HasCPU() {
		return ErrEmpty
	}
	return nil
}
