//go:build windows

package preview

import (
	"fmt"
	"sync/atomic"
	"syscall"
	"unsafe"

	"github.com/lxn/win"

	"github.com/hdrsnap/hdrsnap/internal/geom"
)

const windowClassName = "hdrsnap-preview-overlay"

var (
	classRegistered bool
	wndProcPtr      = syscall.NewCallback(overlayWndProc)
)

// session holds per-invocation state reachable from the window procedure,
// keyed by HWND since WndProc is a bare function pointer with no closure
// environment (§4.6's shared shell).
type session struct {
	mode   Mode
	bounds geom.Rect // virtual-desktop bounds in screen space

	sdr       []byte // BGRA8 preview pixels, tight-packed, bounds.Width()*bounds.Height()*4
	sdrWidth  int
	sdrHeight int

	monitorRects []geom.Rect // full-desktop mode only: per-monitor rectangles in bounds-local space

	dragging  bool
	dragStart win.POINT
	dragEnd   win.POINT

	windows       []windowCandidate
	hoveredIndex  int
	done          atomic.Bool
	cancelled     bool
	result        Result
}

var sessions = map[win.HWND]*session{}

func registerClassOnce() error {
	if classRegistered {
		return nil
	}
	className, err := syscall.UTF16PtrFromString(windowClassName)
	if err != nil {
		return err
	}
	wc := win.WNDCLASSEX{
		CbSize:        uint32(unsafe.Sizeof(win.WNDCLASSEX{})),
		Style:         win.CS_HREDRAW | win.CS_VREDRAW,
		LpfnWndProc:   wndProcPtr,
		HInstance:     win.GetModuleHandle(nil),
		HbrBackground: 0,
		LpszClassName: className,
	}
	if win.RegisterClassEx(&wc) == 0 {
		return fmt.Errorf("preview: RegisterClassEx failed")
	}
	classRegistered = true
	return nil
}

func cursorForMode(mode Mode) win.HCURSOR {
	switch mode {
	case ModeRegion:
		return win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_CROSS))
	case ModeWindowPicker:
		return win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_HAND))
	default:
		return win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW))
	}
}

// createOverlayWindow creates the fullscreen top-most borderless window
// spanning bounds and registers sess against its HWND.
func createOverlayWindow(bounds geom.Rect, sess *session) (win.HWND, error) {
	if err := registerClassOnce(); err != nil {
		return 0, err
	}
	className, _ := syscall.UTF16PtrFromString(windowClassName)
	title, _ := syscall.UTF16PtrFromString("hdrsnap")

	hwnd := win.CreateWindowEx(
		win.WS_EX_TOPMOST|win.WS_EX_TOOLWINDOW,
		className,
		title,
		win.WS_POPUP,
		int32(bounds.Left), int32(bounds.Top), bounds.Width(), bounds.Height(),
		0, 0, win.GetModuleHandle(nil), nil,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("preview: CreateWindowEx failed")
	}
	sessions[hwnd] = sess
	win.SetCursor(cursorForMode(sess.mode))
	win.ShowWindow(hwnd, win.SW_SHOW)
	win.SetForegroundWindow(hwnd)
	win.SetFocus(hwnd)
	win.UpdateWindow(hwnd)
	return hwnd, nil
}

func destroyOverlayWindow(hwnd win.HWND) {
	delete(sessions, hwnd)
	win.DestroyWindow(hwnd)
}

// runBlockingPump drives a plain GetMessage loop (full-desktop mode: no
// per-frame redraw needed, §5).
func runBlockingPump(hwnd win.HWND) {
	var msg win.MSG
	for {
		r := win.GetMessage(&msg, 0, 0, 0)
		if r == 0 || r == -1 {
			return
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
		if sessions[hwnd] == nil || sessions[hwnd].done.Load() {
			return
		}
	}
}

// runRedrawPump drives a peek+wait-message loop, redrawing only when
// redraw is requested (region/window-picker modes, §4.6, §5).
func runRedrawPump(hwnd win.HWND) {
	var msg win.MSG
	for {
		for win.PeekMessage(&msg, 0, 0, 0, win.PM_REMOVE) != 0 {
			if msg.Message == win.WM_QUIT {
				return
			}
			win.TranslateMessage(&msg)
			win.DispatchMessage(&msg)
		}
		sess := sessions[hwnd]
		if sess == nil || sess.done.Load() {
			return
		}
		win.WaitMessage()
	}
}

func loword(l uintptr) int32 { return int32(int16(win.LOWORD(uint32(l)))) }
func hiword(l uintptr) int32 { return int32(int16(win.HIWORD(uint32(l)))) }
