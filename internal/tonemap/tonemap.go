// Package tonemap implements the HDR-aware conversion from a captured
// Frame (RGBA16F linear scRGB, or already-BGRA8) to a tightly packed BGRA8
// buffer suitable for PNG encoding or clipboard DIB hand-off (§4.4).
package tonemap

import (
	"errors"
	"fmt"

	"github.com/hdrsnap/hdrsnap/internal/frame"
	"github.com/hdrsnap/hdrsnap/internal/logging"
	"github.com/hdrsnap/hdrsnap/internal/pixelmath"
)

var log = logging.L("tonemap")

// DefaultPaperWhiteNits is the scRGB reference white point (§4.4.1):
// scale = 80/80 = 1, an identity normalization safe for SDR desktops.
const DefaultPaperWhiteNits = 80.0

// ErrUnsupportedFormat is returned when ToneMap is given a Frame whose
// format is neither RGBA16F nor BGRA8.
var ErrUnsupportedFormat = errors.New("tonemap: unsupported frame format")

// PaperWhiteNits returns override when it is positive (the config override
// takes precedence); otherwise it returns the primary monitor's SDR white
// level in nits, or DefaultPaperWhiteNits if the OS query fails or yields a
// zero or negative value (§4.4.1).
func PaperWhiteNits(override float64) float64 {
	if override > 0 {
		return override
	}
	nits, err := queryPrimaryPaperWhiteNits()
	if err != nil {
		log.Warn("paper-white query failed, using default", "error", err, "default", DefaultPaperWhiteNits)
		return DefaultPaperWhiteNits
	}
	if nits <= 0 {
		log.Warn("paper-white query returned non-positive value, using default", "value", nits)
		return DefaultPaperWhiteNits
	}
	return nits
}

// ToneMap converts src (which must already have a materialized CPU buffer)
// into a new BGRA8 frame. For an RGBA16F source, each pixel is normalized
// against paperWhiteNits, hard-clipped, sRGB-encoded and quantized; a
// BGRA8 source passes through unchanged (a defensive copy, since callers
// may crop or save the result independently of src).
func ToneMap(src *frame.Frame, paperWhiteNits float64) (*frame.Frame, error) {
	if !src.HasCPU() {
		return nil, frame.ErrEmpty
	}

	switch src.Format {
	case pixelmath.FormatBGRA8:
		out := make([]byte, len(src.Pixels))
		copy(out, src.Pixels)
		return &frame.Frame{
			Width: src.Width, Height: src.Height,
			Format: pixelmath.FormatBGRA8,
			Pixels: out, Stride: src.Width * 4,
		}, nil
	case pixelmath.FormatRGBA16F:
		return toneMapRGBA16F(src, paperWhiteNits)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, src.Format)
	}
}

func toneMapRGBA16F(src *frame.Frame, paperWhiteNits float64) (*frame.Frame, error) {
	if paperWhiteNits <= 0 {
		paperWhiteNits = DefaultPaperWhiteNits
	}
	scale := float32(80.0 / paperWhiteNits)

	dst := make([]byte, src.Width*src.Height*4)
	for y := 0; y < src.Height; y++ {
		srcRow := y * src.Stride
		dstRow := y * src.Width * 4
		for x := 0; x < src.Width; x++ {
			si := srcRow + x*8
			di := dstRow + x*4

			r16 := uint16(src.Pixels[si]) | uint16(src.Pixels[si+1])<<8
			g16 := uint16(src.Pixels[si+2]) | uint16(src.Pixels[si+3])<<8
			b16 := uint16(src.Pixels[si+4]) | uint16(src.Pixels[si+5])<<8

			r := toneMapChannel(pixelmath.HalfToFloat32(r16), scale)
			g := toneMapChannel(pixelmath.HalfToFloat32(g16), scale)
			b := toneMapChannel(pixelmath.HalfToFloat32(b16), scale)

			dst[di+0] = pixelmath.Quantize8(b)
			dst[di+1] = pixelmath.Quantize8(g)
			dst[di+2] = pixelmath.Quantize8(r)
			dst[di+3] = 255
		}
	}

	return &frame.Frame{
		Width: src.Width, Height: src.Height,
		Format: pixelmath.FormatBGRA8,
		Pixels: dst, Stride: src.Width * 4,
	}, nil
}

// toneMapChannel applies steps 2-5 of §4.4 to a single decoded channel:
// clamp below black, normalize, clamp highlights, sRGB-encode.
func toneMapChannel(v, scale float32) float32 {
	if v < 0 {
		v = 0
	}
	v *= scale
	if v > 1 {
		v = 1
	}
	return pixelmath.LinearToSRGB(v)
}
