// Package duplicator implements the Desktop Duplicator (§4.3): on demand,
// it produces a single GPU-resident RGBA16F texture containing the entire
// virtual desktop in linear scRGB, compositing each attached monitor's
// native output (BGRA8 SDR or RGBA16F HDR) via an on-GPU sRGB→linear
// compute shader.
package duplicator

import (
	"errors"

	"github.com/hdrsnap/hdrsnap/internal/geom"
	"github.com/hdrsnap/hdrsnap/internal/logging"
)

var log = logging.L("duplicator")

// State is the duplicator's lifecycle state (§4.3 "State machine").
type State int

const (
	StateUninitialized State = iota
	StateReady
	StateStale
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateStale:
		return "stale"
	default:
		return "uninitialized"
	}
}

// ErrNoActiveOutputs is returned by Init when no display output has a
// working duplication session.
var ErrNoActiveOutputs = errors.New("duplicator: no output has a working duplication session")

// ErrAllOutputsFailed is returned by Capture when every per-output
// acquisition failed; the caller should treat this as a display-topology
// change and re-initialize (§4.3 "State machine").
var ErrAllOutputsFailed = errors.New("duplicator: all outputs failed acquisition")

// outputSession holds one monitor's duplication handle and cached
// descriptor, kept until the next re-init (§3 "Per-output duplication
// handle").
type outputSession struct {
	duplication uintptr
	bounds      geom.Rect // desktop coordinates
	format      uint32    // DXGI_FORMAT delivered by this output
	rotation    uint32
}

// Duplicator holds the per-output duplication handles and the pre-compiled
// format-conversion compute shader (§4.3). Not safe for concurrent use —
// the core's single-threaded cooperative model (§5) serializes all calls
// through one goroutine.
type Duplicator struct {
	device  uintptr
	context uintptr

	outputs []outputSession
	bounds  geom.Rect

	convertShader  uintptr
	convertCBuf    uintptr
	intermediate   uintptr // scratch bindable copy of the non-bindable OS texture
	intermediateW  int
	intermediateH  int

	state State
}

// State reports the duplicator's current lifecycle state.
func (d *Duplicator) State() State { return d.state }

// Bounds returns the virtual-desktop bounding rectangle computed at the
// last successful Init.
func (d *Duplicator) Bounds() geom.Rect { return d.bounds }
