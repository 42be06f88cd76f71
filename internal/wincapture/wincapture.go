// Package wincapture implements the Window-Capture Adapter (§4.5): an
// alternate single-window acquisition path via Windows.Graphics.Capture,
// robust to occlusion in a way the Desktop Duplicator's whole-desktop
// composite is not.
package wincapture

import (
	"errors"

	"github.com/hdrsnap/hdrsnap/internal/logging"
)

var log = logging.L("wincapture")

// ErrInvalidWindow is returned when the target window handle is not a
// valid, capturable top-level window.
var ErrInvalidWindow = errors.New("wincapture: invalid window handle")

// ErrUnavailable is returned when Windows.Graphics.Capture is not present
// on this system (pre-1809 Windows, or the interop factory is missing).
var ErrUnavailable = errors.New("wincapture: Windows.Graphics.Capture unavailable")

// ErrTimeout is returned when no frame arrives within the capture
// deadline (§4.5 step 5: "blocks up to 2 seconds for the first-frame
// event").
var ErrTimeout = errors.New("wincapture: timed out waiting for first frame")
