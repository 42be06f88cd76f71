//go:build !windows

package preview

import (
	"errors"

	"github.com/hdrsnap/hdrsnap/internal/frame"
	"github.com/hdrsnap/hdrsnap/internal/geom"
)

// Run is unavailable outside Windows: the overlay shell is built on
// win32 window/message-pump APIs with no cross-platform equivalent.
func Run(mode Mode, composite *frame.Frame, bounds geom.Rect) (*Result, error) {
	return nil, errors.New("preview: unavailable on this platform")
}
