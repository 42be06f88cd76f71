//go:build windows

package comutil

import "unsafe"

// AcquireNextFrame wraps IDXGIOutputDuplication::AcquireNextFrame. Returns
// the raw HRESULT (not wrapped as an error) so callers can distinguish the
// well-known timeout/access-lost/device-removed codes from genuine
// failures, the same dispatch the capture loop this is grounded on uses.
func AcquireNextFrame(duplication uintptr, timeoutMs uint32) (hresult uint32, info OutDuplFrameInfo, resource uintptr) {
	ret := CallRaw(duplication, DXGIDuplAcquireNextFrame,
		uintptr(timeoutMs),
		uintptr(unsafe.Pointer(&info)),
		uintptr(unsafe.Pointer(&resource)),
	)
	return uint32(ret), info, resource
}

// ReleaseFrame wraps IDXGIOutputDuplication::ReleaseFrame.
func ReleaseFrame(duplication uintptr) {
	CallRaw(duplication, DXGIDuplReleaseFrame)
}

// CopySubresourceRegion wraps ID3D11DeviceContext::CopySubresourceRegion
// for a single full-mip, single-array-slice 2D sub-rectangle copy.
func CopySubresourceRegion(context, dst uintptr, dstX, dstY uint32, src uintptr, box *Box) {
	CallRaw(context, D3D11CtxCopySubresourceRegion,
		dst, 0, uintptr(dstX), uintptr(dstY), 0,
		src, 0, uintptr(unsafe.Pointer(box)),
	)
}
