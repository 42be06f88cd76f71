//go:build !windows

package wincapture

import "github.com/hdrsnap/hdrsnap/internal/frame"

// Capture is unavailable outside Windows; Windows.Graphics.Capture is a
// Windows Runtime API with no cross-platform equivalent.
func Capture(hwnd uintptr, device, context uintptr) (*frame.Frame, error) {
	return nil, ErrUnavailable
}
