//go:build !windows

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hdrsnap/hdrsnap/internal/capture"
	"github.com/hdrsnap/hdrsnap/internal/saver"
)

type captureFunc func(*capture.Session, capture.Options) (saver.Result, error)

func captureFull(*capture.Session, capture.Options) (saver.Result, error)   { return saver.Result{}, errUnsupported }
func captureRegion(*capture.Session, capture.Options) (saver.Result, error) { return saver.Result{}, errUnsupported }
func captureWindow(*capture.Session, capture.Options) (saver.Result, error) { return saver.Result{}, errUnsupported }

var errUnsupported = fmt.Errorf("hdrsnap: desktop duplication and tone mapping require Windows")

func runCapture(cmd *cobra.Command, fn captureFunc) error {
	return errUnsupported
}

func runMonitors() error {
	return errUnsupported
}
