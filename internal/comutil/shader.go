//go:build windows

package comutil

import (
	"fmt"
	"syscall"
	"unsafe"
)

var (
	d3dCompilerDLL = syscall.NewLazyDLL("d3dcompiler_47.dll")

	procD3DCompile = d3dCompilerDLL.NewProc("D3DCompile")
)

const (
	blobGetBufferPointer = 3 // ID3DBlob (after IUnknown)
	blobGetBufferSize    = 4
)

// CompileComputeShader compiles HLSL source into cs_5_0 bytecode via
// D3DCompile (d3dcompiler_47.dll, the same system component the Direct3D
// SDK samples and every other HLSL-at-runtime consumer use — no
// third-party shader compiler is involved).
func CompileComputeShader(source, entryPoint string) ([]byte, error) {
	srcBytes := append([]byte(source), 0)
	entryBytes := append([]byte(entryPoint), 0)
	targetBytes := append([]byte("cs_5_0"), 0)

	var code, errs uintptr
	hr, _, _ := procD3DCompile.Call(
		uintptr(unsafe.Pointer(&srcBytes[0])),
		uintptr(len(source)),
		0, // pSourceName
		0, // pDefines
		0, // pInclude
		uintptr(unsafe.Pointer(&entryBytes[0])),
		uintptr(unsafe.Pointer(&targetBytes[0])),
		0, // Flags1
		0, // Flags2
		uintptr(unsafe.Pointer(&code)),
		uintptr(unsafe.Pointer(&errs)),
	)
	if int32(hr) < 0 {
		if errs != 0 {
			msg := blobString(errs)
			Release(errs)
			return nil, fmt.Errorf("D3DCompile failed: 0x%08X: %s", uint32(hr), msg)
		}
		return nil, fmt.Errorf("D3DCompile failed: 0x%08X", uint32(hr))
	}
	defer Release(code)

	ptr := CallRaw(code, blobGetBufferPointer)
	size := CallRaw(code, blobGetBufferSize)
	bytecode := make([]byte, size)
	copy(bytecode, unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size))
	return bytecode, nil
}

func blobString(blob uintptr) string {
	ptr := CallRaw(blob, blobGetBufferPointer)
	size := CallRaw(blob, blobGetBufferSize)
	if ptr == 0 || size == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size))
}

// CreateComputeShader creates a compute shader from compiled bytecode.
func CreateComputeShader(device uintptr, bytecode []byte) (uintptr, error) {
	var shader uintptr
	_, err := Call(device, D3D11DeviceCreateComputeShader,
		uintptr(unsafe.Pointer(&bytecode[0])),
		uintptr(len(bytecode)),
		0, // pClassLinkage
		uintptr(unsafe.Pointer(&shader)),
	)
	if err != nil {
		return 0, err
	}
	return shader, nil
}

// CreateShaderResourceView creates a full-texture Texture2D SRV over tex.
func CreateShaderResourceView(device, tex uintptr, format uint32) (uintptr, error) {
	desc := ShaderResourceViewDesc{
		Format:          format,
		ViewDimension:   SRVDimensionTexture2D,
		MostDetailedMip: 0,
		MipLevels:       1,
	}
	var view uintptr
	_, err := Call(device, D3D11DeviceCreateShaderResourceView,
		tex, uintptr(unsafe.Pointer(&desc)), uintptr(unsafe.Pointer(&view)))
	if err != nil {
		return 0, err
	}
	return view, nil
}

// CreateUnorderedAccessView creates a full-texture Texture2D UAV over tex.
func CreateUnorderedAccessView(device, tex uintptr, format uint32) (uintptr, error) {
	desc := UnorderedAccessViewDesc{
		Format:        format,
		ViewDimension: UAVDimensionTexture2D,
		MipSlice:      0,
	}
	var view uintptr
	_, err := Call(device, D3D11DeviceCreateUnorderedAccessView,
		tex, uintptr(unsafe.Pointer(&desc)), uintptr(unsafe.Pointer(&view)))
	if err != nil {
		return 0, err
	}
	return view, nil
}

// CreateConstantBuffer creates a dynamic, CPU-writable constant buffer
// pre-populated with initial. Size must already be 16-byte aligned, the
// layout constraint HLSL constant buffers require.
func CreateConstantBuffer(device uintptr, initial []byte) (uintptr, error) {
	desc := BufferDesc{
		ByteWidth:      uint32(len(initial)),
		Usage:          D3D11UsageDynamic,
		BindFlags:      D3D11BindConstantBuffer,
		CPUAccessFlags: D3D11CPUAccessWrite,
	}
	sub := SubresourceData{PSysMem: uintptr(unsafe.Pointer(&initial[0]))}
	var buf uintptr
	_, err := Call(device, D3D11DeviceCreateBuffer,
		uintptr(unsafe.Pointer(&desc)), uintptr(unsafe.Pointer(&sub)), uintptr(unsafe.Pointer(&buf)))
	if err != nil {
		return 0, err
	}
	return buf, nil
}

// UpdateConstantBuffer maps buf (D3D11_MAP_WRITE_DISCARD) and overwrites it
// with data.
func UpdateConstantBuffer(context, buf uintptr, data []byte) error {
	var mapped MappedSubresource
	const mapWriteDiscard = 4
	if _, err := Call(context, D3D11CtxMap, buf, 0, mapWriteDiscard, 0, uintptr(unsafe.Pointer(&mapped))); err != nil {
		return err
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(mapped.PData)), len(data))
	copy(dst, data)
	CallRaw(context, D3D11CtxUnmap, buf, 0)
	return nil
}
