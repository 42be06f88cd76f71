//go:build windows

package capture

import "syscall"

var (
	dwmapiDLL    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmFlush = dwmapiDLL.NewProc("DwmFlush")
)

// forceCompositionCycle asks the desktop window manager to complete a
// composition pass before the duplicator re-initializes (§7
// "Acquisition failure"). DwmFlush blocks until the next vblank/present,
// which is the closest public API to "force a desktop composition cycle."
// A failure here is non-fatal: the re-init attempt proceeds regardless.
func forceCompositionCycle() {
	procDwmFlush.Call()
}
