//go:build windows

package comutil

import (
	"fmt"
	"syscall"
	"unsafe"
)

var (
	d3d11DLL = syscall.NewLazyDLL("d3d11.dll")

	procD3D11CreateDevice = d3d11DLL.NewProc("D3D11CreateDevice")
)

// CreateDevice creates a hardware D3D11 device and immediate context with
// BGRA and video support, the flag combination the duplicator and
// window-capture adapter both need (BGRA for swap-chain interop, video
// support for the HDR-capable driver paths). Falls back to a plain device
// if the driver rejects those flags.
func CreateDevice() (device, context uintptr, err error) {
	featureLevel := uint32(D3DFeatureLevel11_0)
	var actualLevel uint32

	flags := uintptr(D3D11CreateDeviceBGRASupport | D3D11CreateDeviceVideoSupport)
	hr, _, _ := procD3D11CreateDevice.Call(
		0,
		uintptr(D3DDriverTypeHardware),
		0,
		flags,
		uintptr(unsafe.Pointer(&featureLevel)),
		1,
		uintptr(D3D11SDKVersion),
		uintptr(unsafe.Pointer(&device)),
		uintptr(unsafe.Pointer(&actualLevel)),
		uintptr(unsafe.Pointer(&context)),
	)
	if int32(hr) < 0 && flags != 0 {
		hr, _, _ = procD3D11CreateDevice.Call(
			0,
			uintptr(D3DDriverTypeHardware),
			0,
			0,
			uintptr(unsafe.Pointer(&featureLevel)),
			1,
			uintptr(D3D11SDKVersion),
			uintptr(unsafe.Pointer(&device)),
			uintptr(unsafe.Pointer(&actualLevel)),
			uintptr(unsafe.Pointer(&context)),
		)
	}
	if int32(hr) < 0 {
		return 0, 0, fmt.Errorf("D3D11CreateDevice failed: 0x%08X", uint32(hr))
	}
	return device, context, nil
}

// CreateTexture2D creates a texture with the given description.
func CreateTexture2D(device uintptr, desc *Texture2DDesc) (uintptr, error) {
	var tex uintptr
	_, err := Call(device, D3D11DeviceCreateTexture2D,
		uintptr(unsafe.Pointer(desc)),
		0,
		uintptr(unsafe.Pointer(&tex)),
	)
	if err != nil {
		return 0, err
	}
	return tex, nil
}
