//go:build windows

package wincapture

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/hdrsnap/hdrsnap/internal/comutil"
	"github.com/hdrsnap/hdrsnap/internal/frame"
	"github.com/hdrsnap/hdrsnap/internal/pixelmath"
)

const (
	firstFrameTimeout = 2 * time.Second
	pollInterval      = 15 * time.Millisecond

	directXPixelFormatR16G16B16A16Float = 10 // matches DXGI_FORMAT numeric value
	directXPixelFormatB8G8R8A8UNormSRGB = 91
)

type sizeInt32 struct {
	Width, Height int32
}

// Capture acquires a single frame of hwnd via Windows.Graphics.Capture
// (§4.5). device/context are the caller's shared D3D11 device pair, reused
// so the produced Frame's GPU texture is directly usable by the tone
// mapper without a cross-device copy.
//
// The free-threaded frame pool's arrival event is implemented here as a
// short poll loop against TryGetNextFrame rather than a true WinRT
// delegate callback: standing up a callback sink's vtable from Go requires
// a hand-built COM object backed by syscall.NewCallback trampolines for
// every IUnknown/ITypedEventHandler method, which is disproportionate
// machinery for a bounded 2-second wait. The observable contract (block up
// to 2 seconds for the first frame) is preserved.
func Capture(hwnd uintptr, device, context uintptr) (*frame.Frame, error) {
	if hwnd == 0 {
		return nil, ErrInvalidWindow
	}
	if err := roInitialize(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	item, err := captureItemForWindow(hwnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer comutil.Release(item)

	var size sizeInt32
	if _, err := comutil.Call(item, vtblItemGetSize, uintptr(unsafe.Pointer(&size))); err != nil {
		return nil, fmt.Errorf("wincapture: GetSize: %w", err)
	}
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("wincapture: invalid capture item size %dx%d", size.Width, size.Height)
	}

	dxgiDevice, err := comutil.QueryInterface(device, &comutil.IIDIDXGIDevice)
	if err != nil {
		return nil, fmt.Errorf("wincapture: QueryInterface IDXGIDevice: %w", err)
	}
	defer comutil.Release(dxgiDevice)

	winrtDevice, err := createDirect3DDeviceFromDXGI(dxgiDevice)
	if err != nil {
		return nil, fmt.Errorf("wincapture: wrap D3D device: %w", err)
	}
	defer comutil.Release(winrtDevice)

	pool, poolFormat, err := createFreeThreadedFramePool(winrtDevice, size)
	if err != nil {
		return nil, fmt.Errorf("wincapture: create frame pool: %w", err)
	}
	defer comutil.CallRaw(pool, vtblFramePoolClose)
	defer comutil.Release(pool)

	session, err := createCaptureSession(pool, item)
	if err != nil {
		return nil, fmt.Errorf("wincapture: create capture session: %w", err)
	}
	defer comutil.CallRaw(session, vtblSessionClose)
	defer comutil.Release(session)

	disableOverlays(session)

	if _, err := comutil.Call(session, vtblSessionStartCapture); err != nil {
		return nil, fmt.Errorf("wincapture: StartCapture: %w", err)
	}

	capturedFrame, err := waitForFirstFrame(pool)
	if err != nil {
		return nil, err
	}
	defer comutil.CallRaw(capturedFrame, vtblFrameClose)

	return extractFrame(capturedFrame, device, context, int(size.Width), int(size.Height), poolFormat)
}

func captureItemForWindow(hwnd uintptr) (uintptr, error) {
	factory, err := activationFactory(runtimeClassGraphicsCaptureItem, &iidIGraphicsCaptureItemInterop)
	if err != nil {
		return 0, err
	}
	defer comutil.Release(factory)

	var item uintptr
	_, err = comutil.Call(factory, vtblCreateForWindow,
		hwnd,
		uintptr(unsafe.Pointer(&iidIGraphicsCaptureItem)),
		uintptr(unsafe.Pointer(&item)),
	)
	if err != nil {
		return 0, err
	}
	return item, nil
}

// createFreeThreadedFramePool requests a single-buffer pool preferring
// RGBA16F, falling back to BGRA8 if the HDR format is rejected (§4.5 step
// 3); if the Statics2 factory itself is unavailable it returns that error
// without trying another factory. Returns the pixel format that was actually
// accepted so the caller can tag the resulting Frame correctly.
func createFreeThreadedFramePool(winrtDevice uintptr, size sizeInt32) (pool uintptr, format pixelmath.Format, err error) {
	factory, err := activationFactory(runtimeClassDirect3D11CaptureFramePool, &iidIDirect3D11CaptureFramePoolStatics2)
	if err != nil {
		return 0, pixelmath.FormatUnknown, err
	}
	defer comutil.Release(factory)

	for _, candidate := range []struct {
		directXFormat int32
		format        pixelmath.Format
	}{
		{directXPixelFormatR16G16B16A16Float, pixelmath.FormatRGBA16F},
		{directXPixelFormatB8G8R8A8UNormSRGB, pixelmath.FormatBGRA8},
	} {
		var p uintptr
		_, err = comutil.Call(factory, vtblFramePoolCreateFreeThreaded,
			winrtDevice,
			uintptr(candidate.directXFormat),
			1, // single buffer
			uintptr(unsafe.Pointer(&size)),
			uintptr(unsafe.Pointer(&p)),
		)
		if err == nil {
			return p, candidate.format, nil
		}
		log.Warn("CreateFreeThreaded rejected format, trying fallback", "format", candidate.directXFormat, "error", err)
	}
	return 0, pixelmath.FormatUnknown, fmt.Errorf("no supported pixel format")
}

func createCaptureSession(pool, item uintptr) (uintptr, error) {
	var session uintptr
	_, err := comutil.Call(pool, vtblFramePoolCreateCaptureSession, item, uintptr(unsafe.Pointer(&session)))
	if err != nil {
		return 0, err
	}
	return session, nil
}

// disableOverlays opts out of the yellow capture border and cursor
// overlay (§4.5 step 4). Both are best-effort: the interfaces may not
// exist on older Windows builds, and a failed toggle is explicitly
// non-fatal.
func disableOverlays(session uintptr) {
	if _, err := comutil.Call(session, vtblSessionPutCursorCaptureEnabled, 0); err != nil {
		log.Debug("cursor capture toggle unavailable", "error", err)
	}
	if _, err := comutil.Call(session, vtblSessionPutBorderRequired, 0); err != nil {
		log.Debug("capture border toggle unavailable", "error", err)
	}
}

func waitForFirstFrame(pool uintptr) (uintptr, error) {
	deadline := time.Now().Add(firstFrameTimeout)
	for time.Now().Before(deadline) {
		var f uintptr
		if _, err := comutil.Call(pool, vtblFramePoolTryGetNextFrame, uintptr(unsafe.Pointer(&f))); err == nil && f != 0 {
			return f, nil
		}
		time.Sleep(pollInterval)
	}
	return 0, ErrTimeout
}

// extractFrame pulls the GPU texture out of a Direct3D11CaptureFrame via
// the IDirect3DDxgiInterfaceAccess interop and wraps it as a Frame
// (§4.5 step 5). Only the GPU handle is populated here; CPU pixels are
// materialized lazily by frame.Frame.Materialize. format must be the pixel
// format the frame pool actually accepted (§4.5 step 3's RGBA16F/BGRA8
// fallback) so a readback later derives the right bytes-per-pixel and
// staging-texture format.
func extractFrame(capturedFrame, device, context uintptr, width, height int, format pixelmath.Format) (*frame.Frame, error) {
	var surface uintptr
	if _, err := comutil.Call(capturedFrame, vtblFrameGetSurface, uintptr(unsafe.Pointer(&surface))); err != nil {
		return nil, fmt.Errorf("wincapture: get Surface: %w", err)
	}
	defer comutil.Release(surface)

	access, err := comutil.QueryInterface(surface, &iidIDirect3DDxgiInterfaceAccess)
	if err != nil {
		return nil, fmt.Errorf("wincapture: QueryInterface IDirect3DDxgiInterfaceAccess: %w", err)
	}
	defer comutil.Release(access)

	var texture uintptr
	if _, err := comutil.Call(access, vtblDxgiInterfaceAccessGetInterface,
		uintptr(unsafe.Pointer(&comutil.IIDID3D11Texture2D)), uintptr(unsafe.Pointer(&texture))); err != nil {
		return nil, fmt.Errorf("wincapture: GetInterface ID3D11Texture2D: %w", err)
	}

	return &frame.Frame{
		Width: width, Height: height,
		Format:  format,
		Texture: texture,
		Device:  device,
		Context: context,
	}, nil
}
