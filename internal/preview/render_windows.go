//go:build windows

package preview

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"

	"github.com/hdrsnap/hdrsnap/internal/geom"
)

const (
	dimAlpha         = 128 // 50% black dim, §4.6
	outerStrokeWidth = 4
	innerStrokeWidth = 3

	acSrcOver = 0 // AC_SRC_OVER
)

var (
	msimg32DLL     = syscall.NewLazyDLL("msimg32.dll")
	procAlphaBlend = msimg32DLL.NewProc("AlphaBlend")
)

// blendFunction matches the Win32 BLENDFUNCTION struct (4 packed bytes),
// passed to AlphaBlend by value as a single DWORD-sized argument.
type blendFunction struct {
	BlendOp             byte
	BlendFlags          byte
	SourceConstantAlpha byte
	AlphaFormat         byte
}

func (bf blendFunction) toUintptr() uintptr {
	return uintptr(*(*uint32)(unsafe.Pointer(&bf)))
}

func alphaBlend(hdcDest win.HDC, xDest, yDest, wDest, hDest int32, hdcSrc win.HDC, xSrc, ySrc, wSrc, hSrc int32, fn blendFunction) bool {
	r, _, _ := procAlphaBlend.Call(
		uintptr(hdcDest), uintptr(xDest), uintptr(yDest), uintptr(wDest), uintptr(hDest),
		uintptr(hdcSrc), uintptr(xSrc), uintptr(ySrc), uintptr(wSrc), uintptr(hSrc),
		fn.toUintptr(),
	)
	return r != 0
}

// paint blits the SDR preview composite, then draws mode-specific overlay
// chrome. Direct2D would be the literal reading of §4.6's "two-dimensional
// graphics overlay context", but GDI covers the same drawing primitives
// (filled rectangles, text) in the plain syscall style this module uses
// elsewhere, without adding a second rendering stack solely for chrome
// drawn on top of an already-rasterized SDR preview frame.
func paint(hwnd win.HWND, sess *session) {
	var ps win.PAINTSTRUCT
	hdc := win.BeginPaint(hwnd, &ps)
	defer win.EndPaint(hwnd, &ps)

	blitComposite(hdc, sess)

	switch sess.mode {
	case ModeFullDesktop:
		for _, r := range sess.monitorRects {
			drawBorder(hdc, r)
			drawLabel(hdc, r, fmt.Sprintf("%d x %d", r.Width(), r.Height()))
		}
	case ModeRegion:
		if sess.dragging {
			r := geom.Normalize(int32(sess.dragStart.X), int32(sess.dragStart.Y), int32(sess.dragEnd.X), int32(sess.dragEnd.Y))
			drawDimAround(hdc, sess.bounds, r)
			drawBorder(hdc, r)
			drawLabel(hdc, r, fmt.Sprintf("%d x %d", r.Width(), r.Height()))
		} else {
			drawDim(hdc, sess.bounds)
		}
	case ModeWindowPicker:
		if sess.hoveredIndex >= 0 && sess.hoveredIndex < len(sess.windows) {
			r := sess.windows[sess.hoveredIndex].rect
			drawDimAround(hdc, sess.bounds, r)
			drawBorder(hdc, r)
		} else {
			drawDim(hdc, sess.bounds)
		}
	}
}

func blitComposite(hdc win.HDC, sess *session) {
	if len(sess.sdr) == 0 || sess.sdrWidth <= 0 || sess.sdrHeight <= 0 {
		return
	}
	bmi := win.BITMAPINFO{
		BmiHeader: win.BITMAPINFOHEADER{
			BiSize:        uint32(unsafe.Sizeof(win.BITMAPINFOHEADER{})),
			BiWidth:       int32(sess.sdrWidth),
			BiHeight:      -int32(sess.sdrHeight), // top-down, matches our row-major top-left buffer
			BiPlanes:      1,
			BiBitCount:    32,
			BiCompression: win.BI_RGB,
		},
	}
	win.StretchDIBits(hdc,
		0, 0, int32(sess.sdrWidth), int32(sess.sdrHeight),
		0, 0, int32(sess.sdrWidth), int32(sess.sdrHeight),
		unsafe.Pointer(&sess.sdr[0]), &bmi, win.DIB_RGB_COLORS, win.SRCCOPY)
}

// drawDim fills the whole rect with a 50% black wash (region/window-picker
// modes, no selection/hover yet, §4.6).
func drawDim(hdc win.HDC, r geom.Rect) {
	fillAlphaBlack(hdc, r)
}

// drawDimAround dims the four strips of bounds outside hole.
func drawDimAround(hdc win.HDC, bounds, hole geom.Rect) {
	fillAlphaBlack(hdc, geom.Rect{Left: bounds.Left, Top: bounds.Top, Right: bounds.Right, Bottom: hole.Top})          // top strip
	fillAlphaBlack(hdc, geom.Rect{Left: bounds.Left, Top: hole.Bottom, Right: bounds.Right, Bottom: bounds.Bottom})    // bottom strip
	fillAlphaBlack(hdc, geom.Rect{Left: bounds.Left, Top: hole.Top, Right: hole.Left, Bottom: hole.Bottom})            // left strip
	fillAlphaBlack(hdc, geom.Rect{Left: hole.Right, Top: hole.Top, Right: bounds.Right, Bottom: hole.Bottom})          // right strip
}

// fillAlphaBlack dims r to a 50% black wash (§4.6) via AlphaBlend: a 1x1
// black memory bitmap stretched over r with SourceConstantAlpha=dimAlpha.
// FillRect has no alpha argument, so a plain solid brush can't express
// this; AlphaBlend is the GDI primitive that can.
func fillAlphaBlack(hdc win.HDC, r geom.Rect) {
	if r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	memDC := win.CreateCompatibleDC(hdc)
	if memDC == 0 {
		return
	}
	defer win.DeleteDC(memDC)

	bmp := win.CreateCompatibleBitmap(hdc, 1, 1)
	if bmp == 0 {
		return
	}
	defer win.DeleteObject(win.HGDIOBJ(bmp))
	oldBmp := win.SelectObject(memDC, win.HGDIOBJ(bmp))
	defer win.SelectObject(memDC, oldBmp)

	brush := win.CreateSolidBrush(0x00000000)
	defer win.DeleteObject(win.HGDIOBJ(brush))
	pixel := win.RECT{Left: 0, Top: 0, Right: 1, Bottom: 1}
	win.FillRect(memDC, &pixel, brush)

	bf := blendFunction{BlendOp: acSrcOver, SourceConstantAlpha: dimAlpha}
	alphaBlend(hdc, r.Left, r.Top, r.Width(), r.Height(), memDC, 0, 0, 1, 1, bf)
}

// drawBorder draws the 4px black outer stroke + 3px green inner stroke
// (§4.6 full-desktop/region/window-picker border chrome).
func drawBorder(hdc win.HDC, r geom.Rect) {
	drawStroke(hdc, r, outerStrokeWidth, 0x00000000)
	inset := geom.Rect{Left: r.Left + outerStrokeWidth, Top: r.Top + outerStrokeWidth, Right: r.Right - outerStrokeWidth, Bottom: r.Bottom - outerStrokeWidth}
	drawStroke(hdc, inset, innerStrokeWidth, 0x0000FF00) // BGR: green
}

func drawStroke(hdc win.HDC, r geom.Rect, width int32, bgr uint32) {
	pen := win.CreatePen(win.PS_SOLID, width, win.COLORREF(bgr))
	defer win.DeleteObject(win.HGDIOBJ(pen))
	brush := win.GetStockObject(win.NULL_BRUSH)
	oldPen := win.SelectObject(hdc, win.HGDIOBJ(pen))
	oldBrush := win.SelectObject(hdc, win.HGDIOBJ(brush))
	win.Rectangle_(hdc, r.Left, r.Top, r.Right, r.Bottom)
	win.SelectObject(hdc, oldPen)
	win.SelectObject(hdc, oldBrush)
}

func drawLabel(hdc win.HDC, r geom.Rect, text string) {
	utf16, err := syscall.UTF16FromString(text)
	if err != nil {
		return
	}
	rc := win.RECT{Left: r.Right - 200, Top: r.Bottom - 28, Right: r.Right - 8, Bottom: r.Bottom - 4}
	win.SetTextColor(hdc, win.COLORREF(0x00FFFFFF))
	win.SetBkMode(hdc, win.TRANSPARENT)
	win.DrawText(hdc, &utf16[0], int32(len(text)), &rc, win.DT_RIGHT|win.DT_SINGLELINE|win.DT_VCENTER)
}
