//go:build windows

package preview

import (
	"github.com/lxn/win"

	"github.com/hdrsnap/hdrsnap/internal/geom"
)

func overlayWndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	sess := sessions[hwnd]
	if sess == nil {
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}

	switch msg {
	case win.WM_NCHITTEST:
		return uintptr(win.HTCLIENT)

	case win.WM_LBUTTONDOWN:
		handlePrimaryDown(hwnd, sess, loword(lParam), hiword(lParam))
		return 0

	case win.WM_MOUSEMOVE:
		handleMouseMove(hwnd, sess, loword(lParam), hiword(lParam))
		return 0

	case win.WM_LBUTTONUP:
		handlePrimaryUp(sess, loword(lParam), hiword(lParam))
		return 0

	case win.WM_MBUTTONDOWN, win.WM_RBUTTONDOWN:
		if sess.mode == ModeFullDesktop && msg == win.WM_MBUTTONDOWN {
			confirmFullDesktop(sess)
			return 0
		}
		cancel(sess)
		return 0

	case win.WM_KEYDOWN:
		if wParam == win.VK_ESCAPE {
			cancel(sess)
		}
		return 0

	case win.WM_PAINT:
		paint(hwnd, sess)
		return 0

	case win.WM_DESTROY:
		if !sess.done.Load() {
			sess.cancelled = true
		}
		sess.done.Store(true)
		win.PostQuitMessage(0)
		return 0
	}
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

func cancel(sess *session) {
	sess.cancelled = true
	sess.done.Store(true)
}

func confirmFullDesktop(sess *session) {
	sess.result = Result{Rect: sess.bounds}
	sess.done.Store(true)
}

func handlePrimaryDown(hwnd win.HWND, sess *session, x, y int32) {
	switch sess.mode {
	case ModeFullDesktop:
		confirmFullDesktop(sess)
	case ModeRegion:
		win.SetCapture(hwnd)
		sess.dragging = true
		sess.dragStart = win.POINT{X: x, Y: y}
		sess.dragEnd = sess.dragStart
		win.InvalidateRect(hwnd, nil, false)
	}
}

func handleMouseMove(hwnd win.HWND, sess *session, x, y int32) {
	switch sess.mode {
	case ModeRegion:
		if sess.dragging {
			sess.dragEnd = win.POINT{X: x, Y: y}
			win.InvalidateRect(hwnd, nil, false)
		}
	case ModeWindowPicker:
		idx := hitTestWindows(sess.windows, x, y)
		if idx != sess.hoveredIndex {
			sess.hoveredIndex = idx
			win.InvalidateRect(hwnd, nil, false)
		}
	}
}

func handlePrimaryUp(sess *session, x, y int32) {
	switch sess.mode {
	case ModeRegion:
		if !sess.dragging {
			return
		}
		win.ReleaseCapture()
		sess.dragging = false
		sess.dragEnd = win.POINT{X: x, Y: y}
		r := geom.Normalize(
			int32(sess.dragStart.X), int32(sess.dragStart.Y),
			int32(sess.dragEnd.X), int32(sess.dragEnd.Y),
		)
		if r.Width() > 1 && r.Height() > 1 {
			sess.result = Result{Rect: r}
			sess.done.Store(true)
		}
	case ModeWindowPicker:
		if sess.hoveredIndex < 0 || sess.hoveredIndex >= len(sess.windows) {
			return
		}
		w := sess.windows[sess.hoveredIndex]
		sess.result = Result{Handle: w.handle, Rect: w.rect}
		sess.done.Store(true)
	}
}

func hitTestWindows(candidates []windowCandidate, x, y int32) int {
	for i, c := range candidates {
		if x >= c.rect.Left && x < c.rect.Right && y >= c.rect.Top && y < c.rect.Bottom {
			return i
		}
	}
	return -1
}
