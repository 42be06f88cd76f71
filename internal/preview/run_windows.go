//go:build windows

package preview

import (
	"fmt"

	"github.com/hdrsnap/hdrsnap/internal/frame"
	"github.com/hdrsnap/hdrsnap/internal/geom"
	"github.com/hdrsnap/hdrsnap/internal/tonemap"
)

// Run shows the preview overlay in mode over composite (the duplicator's
// latest captured frame) and blocks until the user confirms or cancels
// (§4.6). composite must already have GPU data; Run materializes and
// tone-maps a throwaway SDR copy purely for on-screen preview — the
// eventual save path re-tone-maps (or crops) the original composite, so
// this copy never touches what gets written to disk or the clipboard.
func Run(mode Mode, composite *frame.Frame, bounds geom.Rect) (*Result, error) {
	sdr, w, h, err := buildPreviewBitmap(composite)
	if err != nil {
		return nil, fmt.Errorf("preview: building SDR preview: %w", err)
	}

	sess := &session{mode: mode, bounds: bounds, sdr: sdr, sdrWidth: w, sdrHeight: h}
	if mode == ModeFullDesktop {
		for _, r := range enumerateMonitorRects() {
			sess.monitorRects = append(sess.monitorRects, geom.Rect{
				Left: r.Left - bounds.Left, Top: r.Top - bounds.Top,
				Right: r.Right - bounds.Left, Bottom: r.Bottom - bounds.Top,
			})
		}
	}
	if mode == ModeWindowPicker {
		sess.windows = enumerateCapturableWindows()
		sess.hoveredIndex = -1
	}

	hwnd, err := createOverlayWindow(bounds, sess)
	if err != nil {
		return nil, err
	}
	defer destroyOverlayWindow(hwnd)

	if mode == ModeFullDesktop {
		runBlockingPump(hwnd)
	} else {
		runRedrawPump(hwnd)
	}

	if sess.cancelled || !sess.done.Load() {
		return nil, ErrCancelled
	}
	return &sess.result, nil
}

// buildPreviewBitmap tone-maps composite at the default paper-white (the
// preview window is not itself HDR-aware GDI output) into a BGRA8 buffer
// suitable for StretchDIBits.
func buildPreviewBitmap(composite *frame.Frame) ([]byte, int, int, error) {
	if err := composite.Materialize(); err != nil {
		return nil, 0, 0, err
	}
	mapped, err := tonemap.ToneMap(composite, tonemap.DefaultPaperWhiteNits)
	if err != nil {
		return nil, 0, 0, err
	}
	return mapped.Pixels, mapped.Width, mapped.Height, nil
}
