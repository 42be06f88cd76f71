//go:build windows

// Package comutil holds the small COM vtable-calling core shared by the
// duplicator, frame readback, window-capture adapter and the CLI's device
// setup. It is the same pure-syscall approach (no cgo, no
// go-ole) the desktop-capture code this tool grew out of used throughout.
package comutil

import (
	"fmt"
	"syscall"
	"unsafe"
)

// GUID is a COM GUID (128-bit), binary-compatible with the Win32 GUID
// struct layout.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

const vtblQueryInterface = 0
const vtblRelease = 2

// VtblFn resolves a COM vtable function pointer by index.
func VtblFn(obj uintptr, idx int) uintptr {
	vtablePtr := *(*uintptr)(unsafe.Pointer(obj))
	return *(*uintptr)(unsafe.Pointer(vtablePtr + uintptr(idx)*unsafe.Sizeof(uintptr(0))))
}

// Call invokes a COM vtable method at the given index and treats a
// negative return value as a failing HRESULT.
func Call(obj uintptr, vtableIdx int, args ...uintptr) (uintptr, error) {
	ret := CallRaw(obj, vtableIdx, args...)
	if int32(ret) < 0 {
		return ret, fmt.Errorf("COM vtable[%d] HRESULT 0x%08X", vtableIdx, uint32(ret))
	}
	return ret, nil
}

// CallRaw invokes a COM vtable method without interpreting the result,
// for APIs (CopyResource, Flush) that are declared void.
func CallRaw(obj uintptr, vtableIdx int, args ...uintptr) uintptr {
	fnPtr := VtblFn(obj, vtableIdx)

	var ret uintptr
	switch len(args) {
	case 0:
		ret, _, _ = syscall.SyscallN(fnPtr, obj)
	case 1:
		ret, _, _ = syscall.SyscallN(fnPtr, obj, args[0])
	case 2:
		ret, _, _ = syscall.SyscallN(fnPtr, obj, args[0], args[1])
	case 3:
		ret, _, _ = syscall.SyscallN(fnPtr, obj, args[0], args[1], args[2])
	default:
		allArgs := make([]uintptr, 0, 1+len(args))
		allArgs = append(allArgs, obj)
		allArgs = append(allArgs, args...)
		ret, _, _ = syscall.SyscallN(fnPtr, allArgs...)
	}
	return ret
}

// QueryInterface performs IUnknown::QueryInterface for iid against obj.
func QueryInterface(obj uintptr, iid *GUID) (uintptr, error) {
	var out uintptr
	_, err := Call(obj, vtblQueryInterface, uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(&out)))
	if err != nil {
		return 0, err
	}
	return out, nil
}

// Release calls IUnknown::Release.
func Release(obj uintptr) {
	if obj != 0 {
		syscall.SyscallN(VtblFn(obj, vtblRelease), obj)
	}
}
