package geom

import (
	"github.com/hdrsnap/hdrsnap/internal/frame"
)

// Crop extracts the sub-rectangle rect from src's CPU pixel buffer,
// clamping each edge to src's bounds first (§4.7). The result is always a
// new Frame with a fresh, tightly packed CPU buffer; it never carries a
// GPU texture forward (crop is CPU-only by design — only the final
// confirmed capture needs it). src must already have a CPU buffer
// materialized; Crop does not perform readback.
func Crop(src *frame.Frame, rect Rect) (*frame.Frame, error) {
	if !src.HasCPU() {
		return nil, frame.ErrEmpty
	}
	clamped := Clamp(rect, int32(src.Width), int32(src.Height))
	bpp := src.BytesPerPixel()

	w := int(clamped.Width())
	h := int(clamped.Height())
	out := &frame.Frame{
		Width:  w,
		Height: h,
		Format: src.Format,
		Stride: w * bpp,
		Pixels: make([]byte, w*h*bpp),
	}
	if w == 0 || h == 0 {
		return out, nil
	}

	rowBytes := w * bpp
	for y := 0; y < h; y++ {
		srcY := int(clamped.Top) + y
		srcStart := srcY*src.Stride + int(clamped.Left)*bpp
		dstStart := y * rowBytes
		copy(out.Pixels[dstStart:dstStart+rowBytes], src.Pixels[srcStart:srcStart+rowBytes])
	}
	return out, nil
}
