//go:build windows

package clipboard

import (
	"encoding/binary"
	"testing"

	"github.com/hdrsnap/hdrsnap/internal/frame"
	"github.com/hdrsnap/hdrsnap/internal/pixelmath"
)

func TestBuildDIBHeaderFields(t *testing.T) {
	f := &frame.Frame{Width: 2, Height: 2, Format: pixelmath.FormatBGRA8, Stride: 8,
		Pixels: []byte{
			1, 2, 3, 255, 4, 5, 6, 255, // row 0: (b,g,r,a) x2
			7, 8, 9, 255, 10, 11, 12, 255, // row 1
		}}
	block := buildDIB(f)

	if len(block) != bitmapInfoHeaderSize+2*2*4 {
		t.Fatalf("block length = %d, want %d", len(block), bitmapInfoHeaderSize+16)
	}
	if got := binary.LittleEndian.Uint32(block[0:4]); got != bitmapInfoHeaderSize {
		t.Errorf("biSize = %d, want %d", got, bitmapInfoHeaderSize)
	}
	if got := int32(binary.LittleEndian.Uint32(block[8:12])); got != 2 {
		t.Errorf("biHeight = %d, want positive 2 (bottom-up)", got)
	}
	if got := binary.LittleEndian.Uint16(block[14:16]); got != biBitCount {
		t.Errorf("biBitCount = %d, want %d", got, biBitCount)
	}
}

func TestBuildDIBRowsAreBottomUp(t *testing.T) {
	f := &frame.Frame{Width: 1, Height: 2, Format: pixelmath.FormatBGRA8, Stride: 4,
		Pixels: []byte{
			10, 20, 30, 255, // row 0 (top)
			40, 50, 60, 255, // row 1 (bottom)
		}}
	block := buildDIB(f)
	pixels := block[bitmapInfoHeaderSize:]

	// CF_DIB rows are bottom-up: source row 1 (bottom) comes first.
	if pixels[0] != 40 || pixels[1] != 50 || pixels[2] != 60 {
		t.Errorf("first DIB row = %v, want source row 1 (bottom)", pixels[0:4])
	}
	if pixels[4] != 10 || pixels[5] != 20 || pixels[6] != 30 {
		t.Errorf("second DIB row = %v, want source row 0 (top)", pixels[4:8])
	}
}
