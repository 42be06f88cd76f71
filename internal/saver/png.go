// Package saver hands a tone-mapped BGRA8 frame off to whichever
// destination the host's "copy to clipboard" preference selects (§6),
// and separately renders the toast-notification thumbnail. It owns no
// GPU or window-message state, matching the teacher's pattern of keeping
// output-format concerns (PNG encode, DIB layout) in their own leaf
// package away from the capture/transport logic.
package saver

import (
	"bytes"
	"image"
	"image/png"

	"github.com/hdrsnap/hdrsnap/internal/frame"
	"github.com/hdrsnap/hdrsnap/internal/pixelmath"
)

// EncodePNG renders bgra (a BGRA8 frame, per §6 "Output PNG") as an
// 8-bit, no-color-profile PNG. Go's png package only writes RGB(A)
// channel order, so the channel swap happens once while building the
// intermediate image.NRGBA; the encoded bytes are still the sRGB, alpha=255
// BGRA-sourced bitmap the spec describes, just in the channel order PNG
// itself requires on disk.
func EncodePNG(bgra *frame.Frame) ([]byte, error) {
	if bgra.Format != pixelmath.FormatBGRA8 {
		return nil, ErrUnsupportedFormat
	}
	if !bgra.HasCPU() {
		return nil, frame.ErrEmpty
	}

	img := toNRGBA(bgra)
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toNRGBA reinterprets a tight-packed BGRA8 buffer as an image.NRGBA,
// swapping B/R per pixel (the two formats agree on stride and alpha
// position, differing only in the first/third byte).
func toNRGBA(bgra *frame.Frame) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, bgra.Width, bgra.Height))
	for y := 0; y < bgra.Height; y++ {
		srcRow := bgra.Pixels[y*bgra.Stride : y*bgra.Stride+bgra.Width*4]
		dstRow := img.Pix[y*img.Stride : y*img.Stride+bgra.Width*4]
		for x := 0; x < bgra.Width; x++ {
			si := x * 4
			dstRow[si+0] = srcRow[si+2] // R
			dstRow[si+1] = srcRow[si+1] // G
			dstRow[si+2] = srcRow[si+0] // B
			dstRow[si+3] = srcRow[si+3] // A
		}
	}
	return img
}
