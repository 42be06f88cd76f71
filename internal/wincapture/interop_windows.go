//go:build windows

package wincapture

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/hdrsnap/hdrsnap/internal/comutil"
)

var (
	combaseDLL = syscall.NewLazyDLL("combase.dll")
	d3d11DLL   = syscall.NewLazyDLL("d3d11.dll")

	procRoInitialize                         = combaseDLL.NewProc("RoInitialize")
	procRoGetActivationFactory               = combaseDLL.NewProc("RoGetActivationFactory")
	procWindowsCreateString                  = combaseDLL.NewProc("WindowsCreateString")
	procWindowsDeleteString                  = combaseDLL.NewProc("WindowsDeleteString")
	procCreateDirect3D11DeviceFromDXGIDevice = d3d11DLL.NewProc("CreateDirect3D11DeviceFromDXGIDevice")
)

const roInitMultithreaded = 1

// roInitialize initializes the WinRT runtime on the calling thread for
// multi-threaded apartment use, matching the core's single-threaded
// cooperative model (§5) while still allowing the frame pool's
// free-threaded callback.
func roInitialize() error {
	hr, _, _ := procRoInitialize.Call(uintptr(roInitMultithreaded))
	// RPC_E_CHANGED_MODE means a different apartment was already set by
	// the host process; that's fine, WinRT calls still work.
	if int32(hr) < 0 && uint32(hr) != 0x80010106 {
		return fmt.Errorf("RoInitialize failed: 0x%08X", uint32(hr))
	}
	return nil
}

// hstring creates a Windows runtime string, returning the handle and a
// release function the caller must invoke.
func hstring(s string) (uintptr, func(), error) {
	utf16, err := syscall.UTF16FromString(s)
	if err != nil {
		return 0, func() {}, err
	}
	var h uintptr
	hr, _, _ := procWindowsCreateString.Call(
		uintptr(unsafe.Pointer(&utf16[0])),
		uintptr(len(utf16)-1),
		uintptr(unsafe.Pointer(&h)),
	)
	if int32(hr) < 0 {
		return 0, func() {}, fmt.Errorf("WindowsCreateString failed: 0x%08X", uint32(hr))
	}
	return h, func() { procWindowsDeleteString.Call(h) }, nil
}

// activationFactory resolves the activation factory for a WinRT runtime
// class and QueryInterfaces it to iid.
func activationFactory(className string, iid *comutil.GUID) (uintptr, error) {
	h, release, err := hstring(className)
	if err != nil {
		return 0, err
	}
	defer release()

	var factory uintptr
	hr, _, _ := procRoGetActivationFactory.Call(h, uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(&factory)))
	if int32(hr) < 0 {
		return 0, fmt.Errorf("RoGetActivationFactory(%s) failed: 0x%08X", className, uint32(hr))
	}
	return factory, nil
}

// createDirect3DDeviceFromDXGI wraps a shared D3D11 device as the WinRT
// IDirect3DDevice the frame pool's CreateFreeThreaded requires.
func createDirect3DDeviceFromDXGI(dxgiDevice uintptr) (uintptr, error) {
	var winrtDevice uintptr
	hr, _, _ := procCreateDirect3D11DeviceFromDXGIDevice.Call(dxgiDevice, uintptr(unsafe.Pointer(&winrtDevice)))
	if int32(hr) < 0 {
		return 0, fmt.Errorf("CreateDirect3D11DeviceFromDXGIDevice failed: 0x%08X", uint32(hr))
	}
	return winrtDevice, nil
}
