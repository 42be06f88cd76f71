//go:build windows

package frame

import (
	"fmt"
	"unsafe"

	"github.com/hdrsnap/hdrsnap/internal/comutil"
)

// Materialize reads f's GPU texture back to the CPU, populating Pixels and
// Stride. It creates a one-shot staging texture, copies the full resource,
// maps it, repacks rows into a tight buffer (DXGI row pitch is often wider
// than Width*BytesPerPixel due to driver alignment), then unmaps and
// releases the staging texture. No-op if Pixels is already populated.
func (f *Frame) Materialize() error {
	if f.HasCPU() {
		return nil
	}
	if !f.HasGPU() {
		return ErrEmpty
	}
	bpp := f.BytesPerPixel()
	if bpp == 0 {
		return fmt.Errorf("frame: unrecognized format for readback")
	}

	dxgiFormat := uint32(comutil.DXGIFormatB8G8R8A8)
	if bpp == 8 {
		dxgiFormat = comutil.DXGIFormatR16G16B16A16Float
	}

	desc := comutil.Texture2DDesc{
		Width:          uint32(f.Width),
		Height:         uint32(f.Height),
		MipLevels:      1,
		ArraySize:      1,
		Format:         dxgiFormat,
		SampleCount:    1,
		SampleQuality:  0,
		Usage:          comutil.D3D11UsageStaging,
		BindFlags:      0,
		CPUAccessFlags: comutil.D3D11CPUAccessRead,
		MiscFlags:      0,
	}
	staging, err := comutil.CreateTexture2D(f.Device, &desc)
	if err != nil {
		return fmt.Errorf("frame: create staging texture: %w", err)
	}
	defer comutil.Release(staging)

	comutil.CallRaw(f.Context, comutil.D3D11CtxCopyResource, staging, f.Texture)

	var mapped comutil.MappedSubresource
	if _, err := comutil.Call(f.Context, comutil.D3D11CtxMap, staging, 0, 1, 0, uintptr(unsafe.Pointer(&mapped))); err != nil {
		return fmt.Errorf("frame: map staging texture: %w", err)
	}

	rowBytes := f.Width * bpp
	stride := rowBytes
	pixels := make([]byte, f.Height*rowBytes)
	rowPitch := int(mapped.RowPitch)
	if rowPitch == rowBytes {
		src := unsafe.Slice((*byte)(unsafe.Pointer(mapped.PData)), f.Height*rowPitch)
		copy(pixels, src)
	} else {
		for y := 0; y < f.Height; y++ {
			srcRow := unsafe.Slice((*byte)(unsafe.Pointer(mapped.PData+uintptr(y*rowPitch))), rowBytes)
			copy(pixels[y*rowBytes:], srcRow)
		}
	}

	comutil.CallRaw(f.Context, comutil.D3D11CtxUnmap, staging, 0)

	f.Pixels = pixels
	f.Stride = stride
	return nil
}
