//go:build windows

package preview

import (
	"syscall"

	"github.com/lxn/win"

	"github.com/hdrsnap/hdrsnap/internal/geom"
)

// enumerateMonitorRects lists each active monitor's rectangle in virtual
// screen space, for full-desktop mode's per-monitor border chrome (§4.6).
func enumerateMonitorRects() []geom.Rect {
	var out []geom.Rect
	cb := syscall.NewCallback(func(hMonitor win.HMONITOR, hdcMonitor win.HDC, lprcMonitor *win.RECT, dwData uintptr) uintptr {
		out = append(out, geom.Rect{
			Left: lprcMonitor.Left, Top: lprcMonitor.Top,
			Right: lprcMonitor.Right, Bottom: lprcMonitor.Bottom,
		})
		return 1
	})
	win.EnumDisplayMonitors(0, nil, cb, 0)
	return out
}
