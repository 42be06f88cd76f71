package capture

import (
	"errors"
	"fmt"

	"github.com/hdrsnap/hdrsnap/internal/duplicator"
	"github.com/hdrsnap/hdrsnap/internal/frame"
	"github.com/hdrsnap/hdrsnap/internal/geom"
	"github.com/hdrsnap/hdrsnap/internal/logging"
	"github.com/hdrsnap/hdrsnap/internal/preview"
	"github.com/hdrsnap/hdrsnap/internal/saver"
	"github.com/hdrsnap/hdrsnap/internal/tonemap"
	"github.com/hdrsnap/hdrsnap/internal/wincapture"
)

var log = logging.L("capture")

// Options carries the config knobs a capture cycle needs (§10.2): the
// clipboard-vs-file preference the out-of-scope tray host owns, where to
// save, and tone-mapper/thumbnail tuning.
type Options struct {
	CopyToClipboard        bool
	SaveDirectory          string
	PaperWhiteOverrideNits float64
	ThumbnailLongEdge      int
}

// Session owns the shared GPU device/context and the long-lived Desktop
// Duplicator, and implements the three host-facing operations of §6
// (full-desktop, region, window) on top of them. Exactly one Session per
// process matches §5's single shared GPU device model; Session is not
// safe for concurrent use, matching the core's single-threaded
// cooperative discipline.
type Session struct {
	device, context uintptr
	dup             *duplicator.Duplicator
}

// NewSession initializes the Desktop Duplicator against device/context
// (owned and torn down by the host, per §9 "Shared ownership of the GPU
// device"). A failure here is the §7 "Initialization failure" case: fatal,
// the host is expected to surface a modal error and exit.
func NewSession(device, context uintptr) (*Session, error) {
	dup := &duplicator.Duplicator{}
	if err := dup.Init(device, context); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	return &Session{device: device, context: context, dup: dup}, nil
}

// Close releases the duplicator's per-output sessions and cached shader.
// It does not touch the shared device/context, which the host owns.
func (s *Session) Close() {
	s.dup.Close()
}

// Full runs the full-desktop capture cycle: acquire the composite, let the
// user confirm or cancel via the full-desktop preview, tone-map the whole
// composite, and hand it to the saver/clipboard helper.
func (s *Session) Full(opts Options) (saver.Result, error) {
	composite, bounds, err := s.acquireComposite()
	if err != nil {
		return saver.Result{}, err
	}
	if _, err := preview.Run(preview.ModeFullDesktop, composite, bounds); err != nil {
		return saver.Result{}, cancelOrWrap(err)
	}
	if err := composite.Materialize(); err != nil {
		return saver.Result{}, fmt.Errorf("capture: materialize composite: %w", err)
	}
	return s.toneMapAndSave(composite, opts)
}

// Region runs the region-selection capture cycle: acquire the composite,
// let the user drag a rectangle, crop to the normalized selection, then
// tone-map and save (§4.6 "Region").
func (s *Session) Region(opts Options) (saver.Result, error) {
	composite, bounds, err := s.acquireComposite()
	if err != nil {
		return saver.Result{}, err
	}
	result, err := preview.Run(preview.ModeRegion, composite, bounds)
	if err != nil {
		return saver.Result{}, cancelOrWrap(err)
	}
	if err := composite.Materialize(); err != nil {
		return saver.Result{}, fmt.Errorf("capture: materialize composite: %w", err)
	}
	cropped, err := geom.Crop(composite, result.Rect)
	if err != nil {
		return saver.Result{}, fmt.Errorf("capture: crop selection: %w", err)
	}
	return s.toneMapAndSave(cropped, opts)
}

// Window runs the window-picker capture cycle: acquire the composite, let
// the user hover-pick a window, then try the Window-Capture Adapter on the
// chosen handle; on failure it falls back to cropping the composite at the
// recorded screen rectangle (§4.6 "Window", §7 "Window-Capture Adapter
// failure").
func (s *Session) Window(opts Options) (saver.Result, error) {
	composite, bounds, err := s.acquireComposite()
	if err != nil {
		return saver.Result{}, err
	}
	result, err := preview.Run(preview.ModeWindowPicker, composite, bounds)
	if err != nil {
		return saver.Result{}, cancelOrWrap(err)
	}

	target, err := s.windowOrFallback(result, composite)
	if err != nil {
		return saver.Result{}, err
	}
	return s.toneMapAndSave(target, opts)
}

// windowOrFallback implements the single bounded fallback of §7: at most
// one hop from the Window-Capture Adapter to a cropped composite.
func (s *Session) windowOrFallback(result *preview.Result, composite *frame.Frame) (*frame.Frame, error) {
	wframe, werr := wincapture.Capture(result.Handle, s.device, s.context)
	if werr == nil {
		if merr := wframe.Materialize(); merr == nil {
			return wframe, nil
		} else {
			werr = merr
		}
	}
	log.Warn("window capture failed, falling back to desktop crop", "error", werr)

	if err := composite.Materialize(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowCaptureFailed, err)
	}
	cropped, err := geom.Crop(composite, result.Rect)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowCaptureFailed, err)
	}
	return cropped, nil
}

// acquireComposite implements §7's bounded recovery for acquisition
// failure: the duplicator is rebuilt once, after forcing a desktop
// composition cycle, and capture retried; a second failure is reported.
func (s *Session) acquireComposite() (*frame.Frame, geom.Rect, error) {
	composite, err := s.dup.Capture()
	if err == nil {
		return composite, s.dup.Bounds(), nil
	}

	log.Warn("capture failed, forcing composition and re-initializing once", "error", err)
	forceCompositionCycle()
	s.dup.Close()
	if reinitErr := s.dup.Init(s.device, s.context); reinitErr != nil {
		return nil, geom.Rect{}, fmt.Errorf("%w: %v", ErrAcquisitionFailed, reinitErr)
	}

	composite, err = s.dup.Capture()
	if err != nil {
		return nil, geom.Rect{}, fmt.Errorf("%w: %v", ErrAcquisitionFailed, err)
	}
	return composite, s.dup.Bounds(), nil
}

// toneMapAndSave is the shared tail of all three operations (§4.6 "issues
// the final tone-mapping and hand-off to the saver/clipboard helper").
func (s *Session) toneMapAndSave(f *frame.Frame, opts Options) (saver.Result, error) {
	paperWhite := tonemap.PaperWhiteNits(opts.PaperWhiteOverrideNits)
	bgra, err := tonemap.ToneMap(f, paperWhite)
	if err != nil {
		return saver.Result{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	result, err := saver.Save(bgra, opts.CopyToClipboard, saver.Options{
		SaveDirectory:     opts.SaveDirectory,
		ThumbnailLongEdge: opts.ThumbnailLongEdge,
	})
	if err != nil {
		return saver.Result{}, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return result, nil
}

// cancelOrWrap translates preview.ErrCancelled into this package's
// sentinel (§7 "User cancellation": a normal no-save result, not an
// error to surface), leaving other preview failures untouched.
func cancelOrWrap(err error) error {
	if errors.Is(err, preview.ErrCancelled) {
		return ErrCancelled
	}
	return err
}
