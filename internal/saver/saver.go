package saver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hdrsnap/hdrsnap/internal/frame"
	"github.com/hdrsnap/hdrsnap/internal/logging"
	"github.com/hdrsnap/hdrsnap/internal/saver/clipboard"
)

var log = logging.L("saver")

// ErrUnsupportedFormat is returned when asked to encode or transfer a
// frame that is not already tone-mapped BGRA8.
var ErrUnsupportedFormat = errors.New("saver: frame is not BGRA8")

// ThumbnailBasename is the fixed name used for the toast-notification
// thumbnail (§6): "Deleted before each new thumbnail write."
const ThumbnailBasename = "hdrsnap-thumbnail.png"

// Options configures a save cycle (§10.2 config fields this package reads).
type Options struct {
	// SaveDirectory is where file-output captures land when CopyToClipboard
	// is false.
	SaveDirectory string
	// ThumbnailLongEdge is the target longest-edge size in pixels for the
	// toast thumbnail; spec default is 360.
	ThumbnailLongEdge int
}

// Result reports where the finished bitmap went.
type Result struct {
	// SavedPath is the file written, empty when ToClipboard was true.
	SavedPath string
	// ThumbnailPath is the thumbnail written; empty if the thumbnail write
	// failed, which does not make Save fail.
	ThumbnailPath string
}

// Save hands bgra (a tone-mapped BGRA8 frame) to the clipboard or to a
// timestamped file under opts.SaveDirectory, per the host's
// copy-to-clipboard preference, and unconditionally (re)writes the toast
// thumbnail (§6). The host's toast-notification layer and file-save
// dialog are both out of scope (§1); this is the seam that hands them a
// finished bitmap.
func Save(bgra *frame.Frame, toClipboard bool, opts Options) (Result, error) {
	png, err := EncodePNG(bgra)
	if err != nil {
		return Result{}, fmt.Errorf("saver: encode PNG: %w", err)
	}

	var result Result
	if toClipboard {
		if err := clipboard.SetDIB(bgra); err != nil {
			return Result{}, fmt.Errorf("saver: clipboard hand-off: %w", err)
		}
		log.Info("copied capture to clipboard", "width", bgra.Width, "height", bgra.Height)
	} else {
		path, err := saveToFile(opts.SaveDirectory, png)
		if err != nil {
			return Result{}, fmt.Errorf("saver: save to file: %w", err)
		}
		result.SavedPath = path
		log.Info("saved capture to file", "path", path)
	}

	thumbPath, err := writeThumbnail(bgra, opts.ThumbnailLongEdge)
	if err != nil {
		// The thumbnail feeds the host's toast notification only; a
		// failure here does not invalidate the save/clipboard result
		// the user actually asked for.
		log.Warn("thumbnail write failed", "error", err)
	} else {
		result.ThumbnailPath = thumbPath
	}

	return result, nil
}

func saveToFile(dir string, png []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("hdrsnap-%s.png", timestamp())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func timestamp() string {
	return time.Now().Format("20060102-150405")
}
