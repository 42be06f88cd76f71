// Package preview implements the Interactive Preview (§4.6): a fullscreen
// top-most borderless window spanning the virtual desktop, with three
// modes (full-desktop, region-selection, window-picker) sharing one
// shell and differing only in input handling and overlay drawing.
package preview

import (
	"errors"

	"github.com/hdrsnap/hdrsnap/internal/geom"
	"github.com/hdrsnap/hdrsnap/internal/logging"
)

var log = logging.L("preview")

// Mode selects the preview's input/overlay behavior.
type Mode int

const (
	ModeFullDesktop Mode = iota
	ModeRegion
	ModeWindowPicker
)

func (m Mode) String() string {
	switch m {
	case ModeFullDesktop:
		return "full-desktop"
	case ModeRegion:
		return "region"
	case ModeWindowPicker:
		return "window-picker"
	default:
		return "unknown"
	}
}

// ErrCancelled is returned when the user dismisses the preview without
// confirming a selection (Esc, secondary-button click, or window
// destruction). Callers should treat this as a normal "no save" result,
// not surface it as an error (§7).
var ErrCancelled = errors.New("preview: selection cancelled")

// Result carries what the user confirmed.
type Result struct {
	// Rect is the confirmed region in composite pixel space. For
	// ModeFullDesktop this is the full composite bounds; for
	// ModeWindowPicker it is the window's screen rectangle, used as a
	// fallback if the Window-Capture Adapter fails on Handle.
	Rect geom.Rect

	// Handle is the chosen top-level window, set only in ModeWindowPicker.
	Handle uintptr
}
