// Package capture implements the three host-facing operations of §6
// ("full-desktop capture, region capture, window capture") by sequencing
// the Desktop Duplicator, Interactive Preview, Window-Capture Adapter,
// Tone Mapper and Saver/clipboard hand-off into the strict single-cycle
// ordering described in §5 ("Ordering").
package capture

import "errors"

// Error kinds mirror the taxonomy of §7 so host code (and tests) can
// errors.Is against a stable sentinel instead of parsing messages.
var (
	// ErrInitFailed marks a fatal duplicator initialization failure: no
	// output has a working duplication session, or the conversion shader
	// failed to compile. The host is expected to surface a modal error
	// and exit (§7).
	ErrInitFailed = errors.New("capture: duplicator initialization failed")

	// ErrAcquisitionFailed marks a non-fatal capture failure (timeout,
	// device removed, topology change, protected content) that survived
	// the one bounded re-init-and-retry (§7).
	ErrAcquisitionFailed = errors.New("capture: acquisition failed after retry")

	// ErrUnsupportedFormat marks a captured frame whose pixel format the
	// tone mapper does not recognize.
	ErrUnsupportedFormat = errors.New("capture: unsupported pixel format")

	// ErrCancelled is returned when the user dismissed the preview
	// without confirming; a normal "no save" outcome, not a failure to
	// surface to the user (§7).
	ErrCancelled = errors.New("capture: cancelled by user")

	// ErrSaveFailed marks a failure handing the finished bitmap to the
	// file saver or clipboard. The host surfaces a modal error but stays
	// running (§7).
	ErrSaveFailed = errors.New("capture: save or clipboard hand-off failed")

	// ErrWindowCaptureFailed marks a Window-Capture Adapter failure. It is
	// only surfaced to the caller if the fallback crop of the composite
	// also fails; otherwise the cycle proceeds transparently (§7).
	ErrWindowCaptureFailed = errors.New("capture: window capture failed")
)
