package saver

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/hdrsnap/hdrsnap/internal/frame"
)

// writeThumbnail scales bgra so its longest edge is longEdge pixels
// (aspect preserved, minimum dimension 1) and saves it to the process's
// temp directory under the fixed ThumbnailBasename, deleting any prior
// thumbnail first (§6 "Thumbnail PNG").
func writeThumbnail(bgra *frame.Frame, longEdge int) (string, error) {
	if longEdge <= 0 {
		longEdge = 360
	}
	path := filepath.Join(os.TempDir(), ThumbnailBasename)
	_ = os.Remove(path)

	src := toNRGBA(bgra)
	dstW, dstH := scaledDims(bgra.Width, bgra.Height, longEdge)
	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// scaledDims computes the longest-edge-preserving target size, clamping
// the minor dimension to at least 1 pixel (§6).
func scaledDims(w, h, longEdge int) (int, int) {
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	if w >= h {
		scaled := int(float64(h) * float64(longEdge) / float64(w))
		if scaled < 1 {
			scaled = 1
		}
		return longEdge, scaled
	}
	scaled := int(float64(w) * float64(longEdge) / float64(h))
	if scaled < 1 {
		scaled = 1
	}
	return scaled, longEdge
}
