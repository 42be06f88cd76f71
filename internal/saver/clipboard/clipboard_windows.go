//go:build windows

package clipboard

import (
	"encoding/binary"
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/hdrsnap/hdrsnap/internal/frame"
	"github.com/hdrsnap/hdrsnap/internal/pixelmath"
)

var (
	user32   = syscall.NewLazyDLL("user32.dll")
	kernel32 = syscall.NewLazyDLL("kernel32.dll")

	procOpenClipboard  = user32.NewProc("OpenClipboard")
	procCloseClipboard = user32.NewProc("CloseClipboard")
	procEmptyClipboard = user32.NewProc("EmptyClipboard")
	procSetClipboardData = user32.NewProc("SetClipboardData")
	procGlobalAlloc     = kernel32.NewProc("GlobalAlloc")
	procGlobalLock      = kernel32.NewProc("GlobalLock")
	procGlobalUnlock    = kernel32.NewProc("GlobalUnlock")
)

const (
	cfDIB       = 8
	gmemMoveable = 0x0002

	bitmapInfoHeaderSize = 40
	biPlanes             = 1
	biBitCount           = 32
	biCompressionRGB     = 0
)

// SetDIB copies bgra's pixels to the clipboard as CF_DIB (§6): a
// BITMAPINFOHEADER (biHeight positive, meaning bottom-up) followed by
// bottom-up pixel rows, 4-byte stride, BGRA order — which happens to be
// exactly the row-reversed form of bgra's own top-down BGRA8 buffer, so no
// channel reordering is needed, only row order.
func SetDIB(bgra *frame.Frame) error {
	if bgra.Format != pixelmath.FormatBGRA8 {
		return fmt.Errorf("clipboard: frame is not BGRA8")
	}
	if !bgra.HasCPU() {
		return frame.ErrEmpty
	}

	block := buildDIB(bgra)

	if err := openClipboard(); err != nil {
		return err
	}
	defer closeClipboard()

	if err := emptyClipboard(); err != nil {
		return err
	}

	handle, err := globalAlloc(gmemMoveable, uintptr(len(block)))
	if err != nil {
		return err
	}
	ptr, err := globalLock(handle)
	if err != nil {
		return err
	}
	dst := unsafe.Slice((*byte)(ptr), len(block))
	copy(dst, block)
	globalUnlock(handle)

	// On success, SetClipboardData takes ownership of handle (§6): it
	// must not be freed here.
	if err := setClipboardData(cfDIB, handle); err != nil {
		return err
	}
	return nil
}

// buildDIB assembles the 40-byte BITMAPINFOHEADER plus bottom-up pixel
// rows described in §6.
func buildDIB(f *frame.Frame) []byte {
	rowBytes := f.Width * 4
	imageSize := rowBytes * f.Height
	out := make([]byte, bitmapInfoHeaderSize+imageSize)

	binary.LittleEndian.PutUint32(out[0:4], bitmapInfoHeaderSize)
	binary.LittleEndian.PutUint32(out[4:8], uint32(int32(f.Width)))
	binary.LittleEndian.PutUint32(out[8:12], uint32(int32(f.Height))) // positive: bottom-up
	binary.LittleEndian.PutUint16(out[12:14], biPlanes)
	binary.LittleEndian.PutUint16(out[14:16], biBitCount)
	binary.LittleEndian.PutUint32(out[16:20], biCompressionRGB)
	binary.LittleEndian.PutUint32(out[20:24], uint32(imageSize))
	// biXPelsPerMeter, biYPelsPerMeter, biClrUsed, biClrImportant left zero.

	pixels := out[bitmapInfoHeaderSize:]
	for y := 0; y < f.Height; y++ {
		srcRow := f.Pixels[y*f.Stride : y*f.Stride+rowBytes]
		dstRow := pixels[(f.Height-1-y)*rowBytes : (f.Height-y)*rowBytes]
		copy(dstRow, srcRow)
	}
	return out
}

func openClipboard() error {
	r, _, err := procOpenClipboard.Call(0)
	if r == 0 {
		return err
	}
	return nil
}

func closeClipboard() {
	procCloseClipboard.Call()
}

func emptyClipboard() error {
	r, _, err := procEmptyClipboard.Call()
	if r == 0 {
		return err
	}
	return nil
}

func setClipboardData(format uint32, handle windows.Handle) error {
	r, _, err := procSetClipboardData.Call(uintptr(format), uintptr(handle))
	if r == 0 {
		return err
	}
	return nil
}

func globalAlloc(flags uint32, size uintptr) (windows.Handle, error) {
	r, _, err := procGlobalAlloc.Call(uintptr(flags), size)
	if r == 0 {
		return 0, err
	}
	return windows.Handle(r), nil
}

func globalLock(handle windows.Handle) (unsafe.Pointer, error) {
	r, _, err := procGlobalLock.Call(uintptr(handle))
	if r == 0 {
		return nil, err
	}
	return unsafe.Pointer(r), nil
}

func globalUnlock(handle windows.Handle) {
	procGlobalUnlock.Call(uintptr(handle))
}
