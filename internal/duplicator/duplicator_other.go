//go:build !windows

package duplicator

import (
	"errors"

	"github.com/hdrsnap/hdrsnap/internal/frame"
)

func (d *Duplicator) Init(device, context uintptr) error {
	return errors.New("duplicator: desktop duplication requires windows")
}

func (d *Duplicator) Capture() (*frame.Frame, error) {
	return nil, errors.New("duplicator: desktop duplication requires windows")
}

func (d *Duplicator) Close() {}
