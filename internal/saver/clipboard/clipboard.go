// Package clipboard hands a tone-mapped BGRA8 Frame to the Windows
// clipboard as a CF_DIB-compatible memory block (§6 "Clipboard output"),
// adapted from the teacher's CF_UNICODETEXT/PNG/RTF GlobalAlloc transfer
// in internal/remote/clipboard/clipboard_windows.go.
package clipboard

import "errors"

// ErrUnavailable is returned on platforms with no Windows clipboard.
var ErrUnavailable = errors.New("clipboard: unavailable on this platform")
