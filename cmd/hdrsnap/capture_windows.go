//go:build windows

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hdrsnap/hdrsnap/internal/capture"
	"github.com/hdrsnap/hdrsnap/internal/comutil"
	"github.com/hdrsnap/hdrsnap/internal/saver"
	"github.com/hdrsnap/hdrsnap/internal/tonemap"
)

type captureFunc func(*capture.Session, capture.Options) (saver.Result, error)

func captureFull(s *capture.Session, opts capture.Options) (saver.Result, error) { return s.Full(opts) }
func captureRegion(s *capture.Session, opts capture.Options) (saver.Result, error) {
	return s.Region(opts)
}
func captureWindow(s *capture.Session, opts capture.Options) (saver.Result, error) {
	return s.Window(opts)
}

// runCapture wires config, the shared GPU device, and a Session together
// for a single capture cycle, then runs fn and reports the outcome. Each
// CLI invocation owns the device for its own lifetime (§9 "the host
// retains sole ownership and tears down last" — here the CLI process is
// the host).
func runCapture(cmd *cobra.Command, fn captureFunc) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	device, context, err := comutil.CreateDevice()
	if err != nil {
		return fmt.Errorf("create D3D11 device: %w", err)
	}
	defer comutil.Release(context)
	defer comutil.Release(device)

	sess, err := capture.NewSession(device, context)
	if err != nil {
		return fmt.Errorf("initialize duplicator: %w", err)
	}
	defer sess.Close()

	opts := capture.Options{
		CopyToClipboard:        flagClipboard || cfg.CopyToClipboard,
		SaveDirectory:          cfg.SaveDirectory,
		PaperWhiteOverrideNits: cfg.PaperWhiteOverrideNits,
		ThumbnailLongEdge:      cfg.ThumbnailLongEdge,
	}

	result, err := fn(sess, opts)
	if err != nil {
		if errors.Is(err, capture.ErrCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
			return nil
		}
		return err
	}

	if result.SavedPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", result.SavedPath)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "copied to clipboard")
	}
	return nil
}

func runMonitors() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	nits := tonemap.PaperWhiteNits(cfg.PaperWhiteOverrideNits)
	fmt.Printf("primary monitor SDR white level: %.0f nits\n", nits)
	return nil
}
