//go:build !windows

package clipboard

import "github.com/hdrsnap/hdrsnap/internal/frame"

// SetDIB is unavailable outside Windows: CF_DIB is a Windows clipboard
// format with no cross-platform equivalent.
func SetDIB(bgra *frame.Frame) error {
	return ErrUnavailable
}
