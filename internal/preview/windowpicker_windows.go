//go:build windows

package preview

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"

	"github.com/hdrsnap/hdrsnap/internal/geom"
)

const (
	dwmwaCloaked              = 14
	dwmwaExtendedFrameBounds = 9
)

var (
	dwmapiDLL               = syscall.NewLazyDLL("dwmapi.dll")
	procDwmGetWindowAttribute = dwmapiDLL.NewProc("DwmGetWindowAttribute")
)

type windowCandidate struct {
	handle uintptr
	rect   geom.Rect
}

// enumerateCapturableWindows lists visible top-level windows in Z-order
// (front to back, the order EnumWindows itself yields), skipping
// invisible, minimized, and DWM-cloaked (UWP hidden container) windows,
// preferring the extended frame bounds over the raw window rect so drop
// shadows are excluded (§4.6 window-picker mode).
func enumerateCapturableWindows() []windowCandidate {
	var out []windowCandidate
	cb := syscall.NewCallback(func(hwnd win.HWND, lparam uintptr) uintptr {
		if win.IsWindowVisible(hwnd) == 0 || win.IsIconic(hwnd) {
			return 1
		}
		if isCloaked(hwnd) {
			return 1
		}
		r, ok := extendedFrameBounds(hwnd)
		if !ok {
			var wr win.RECT
			if !win.GetWindowRect(hwnd, &wr) {
				return 1
			}
			r = geom.Rect{Left: wr.Left, Top: wr.Top, Right: wr.Right, Bottom: wr.Bottom}
		}
		if r.Width() <= 1 || r.Height() <= 1 {
			return 1
		}
		out = append(out, windowCandidate{handle: uintptr(hwnd), rect: r})
		return 1
	})
	win.EnumWindows(cb, 0)
	return out
}

func isCloaked(hwnd win.HWND) bool {
	var cloaked int32
	ret, _, _ := procDwmGetWindowAttribute.Call(
		uintptr(hwnd), dwmwaCloaked,
		uintptr(unsafe.Pointer(&cloaked)), unsafe.Sizeof(cloaked),
	)
	return ret == 0 && cloaked != 0
}

func extendedFrameBounds(hwnd win.HWND) (geom.Rect, bool) {
	var rc win.RECT
	ret, _, _ := procDwmGetWindowAttribute.Call(
		uintptr(hwnd), dwmwaExtendedFrameBounds,
		uintptr(unsafe.Pointer(&rc)), unsafe.Sizeof(rc),
	)
	if ret != 0 {
		return geom.Rect{}, false
	}
	return geom.Rect{Left: rc.Left, Top: rc.Top, Right: rc.Right, Bottom: rc.Bottom}, true
}
