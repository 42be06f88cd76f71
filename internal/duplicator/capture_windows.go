//go:build windows

package duplicator

import (
	"github.com/hdrsnap/hdrsnap/internal/comutil"
	"github.com/hdrsnap/hdrsnap/internal/frame"
	"github.com/hdrsnap/hdrsnap/internal/geom"
	"github.com/hdrsnap/hdrsnap/internal/pixelmath"
)

const acquireTimeoutMs = 1000

// Capture allocates a fresh RGBA16F composite texture sized to the
// virtual-desktop bounds and blits every output into it, converting
// non-RGBA16F outputs through the compute kernel (§4.3 "Capture"). Returns
// ErrAllOutputsFailed, transitioning to StateStale, only when every output
// fails; a frame is returned as long as at least one output succeeded.
func (d *Duplicator) Capture() (*frame.Frame, error) {
	width := int(d.bounds.Width())
	height := int(d.bounds.Height())

	composite, err := comutil.CreateTexture2D(d.device, &comutil.Texture2DDesc{
		Width:         uint32(width),
		Height:        uint32(height),
		MipLevels:     1,
		ArraySize:     1,
		Format:        comutil.DXGIFormatR16G16B16A16Float,
		SampleCount:   1,
		SampleQuality: 0,
		Usage:         comutil.D3D11UsageDefault,
		BindFlags:     comutil.D3D11BindShaderResource | comutil.D3D11BindUnorderedAccess,
	})
	if err != nil {
		return nil, err
	}

	compositeUAV, err := comutil.CreateUnorderedAccessView(d.device, composite, comutil.DXGIFormatR16G16B16A16Float)
	if err != nil {
		comutil.Release(composite)
		return nil, err
	}
	defer comutil.Release(compositeUAV)

	successes := 0
	for i := range d.outputs {
		if d.captureOutput(&d.outputs[i], composite, compositeUAV) {
			successes++
		}
	}

	if successes == 0 {
		comutil.Release(composite)
		d.state = StateStale
		return nil, ErrAllOutputsFailed
	}

	return &frame.Frame{
		Width:   width,
		Height:  height,
		Format:  pixelmath.FormatRGBA16F,
		Texture: composite,
		Device:  d.device,
		Context: d.context,
	}, nil
}

// captureOutput acquires and blits a single output into composite,
// releasing the acquired frame before returning regardless of outcome
// (§4.3 "Capture" step 1).
func (d *Duplicator) captureOutput(session *outputSession, composite, compositeUAV uintptr) bool {
	hresult, info, resource := comutil.AcquireNextFrame(session.duplication, acquireTimeoutMs)
	if int32(hresult) < 0 {
		if hresult != comutil.DXGIErrWaitTimeout {
			log.Warn("AcquireNextFrame failed", "hresult", hresult)
		}
		return false
	}
	defer comutil.ReleaseFrame(session.duplication)

	if info.AccumulatedFrames == 0 {
		comutil.Release(resource)
		// Nothing new since last capture; the most recent composite
		// contribution from this output is still valid, but without a
		// cached previous frame we treat it as a skip for this cycle.
		return false
	}

	texture, err := comutil.QueryInterface(resource, &comutil.IIDID3D11Texture2D)
	comutil.Release(resource)
	if err != nil {
		log.Warn("QueryInterface ID3D11Texture2D failed", "error", err)
		return false
	}
	defer comutil.Release(texture)

	dstOffsetX := session.bounds.Left - d.bounds.Left
	dstOffsetY := session.bounds.Top - d.bounds.Top
	blitRect := geom.Clamp(geom.Rect{
		Left: 0, Top: 0,
		Right:  session.bounds.Width(),
		Bottom: session.bounds.Height(),
	}, session.bounds.Width(), session.bounds.Height())
	blitW := uint32(blitRect.Width())
	blitH := uint32(blitRect.Height())
	if blitW == 0 || blitH == 0 {
		return false
	}

	if session.format == comutil.DXGIFormatR16G16B16A16Float {
		box := comutil.Box{Left: 0, Top: 0, Front: 0, Right: blitW, Bottom: blitH, Back: 1}
		comutil.CopySubresourceRegion(d.context, composite, uint32(dstOffsetX), uint32(dstOffsetY), texture, &box)
		return true
	}

	if err := d.convertBlit(texture, compositeUAV, int(dstOffsetX), int(dstOffsetY), int(blitW), int(blitH)); err != nil {
		log.Warn("conversion blit failed", "error", err)
		return false
	}
	return true
}

// convertBlit dispatches the sRGB→linear kernel for a non-RGBA16F output.
// The OS duplication texture is not directly bindable as a shader
// resource, so it is first copied into a scratch intermediate texture that
// is (§4.3 "Capture" step 3, final sentence).
func (d *Duplicator) convertBlit(srcTexture, compositeUAV uintptr, dstX, dstY, w, h int) error {
	if err := d.ensureIntermediate(w, h); err != nil {
		return err
	}
	comutil.CopySubresourceRegion(d.context, d.intermediate, 0, 0, srcTexture, &comutil.Box{
		Left: 0, Top: 0, Front: 0, Right: uint32(w), Bottom: uint32(h), Back: 1,
	})

	srv, err := comutil.CreateShaderResourceView(d.device, d.intermediate, comutil.DXGIFormatB8G8R8A8)
	if err != nil {
		return err
	}
	defer comutil.Release(srv)

	params := encodeBlitParams(blitParams{
		SrcOffsetX: 0, SrcOffsetY: 0,
		DstOffsetX: int32(dstX), DstOffsetY: int32(dstY),
		BlitSizeX: int32(w), BlitSizeY: int32(h),
	})
	if err := comutil.UpdateConstantBuffer(d.context, d.convertCBuf, params); err != nil {
		return err
	}

	groupsX := uint32((w + 15) / 16)
	groupsY := uint32((h + 15) / 16)
	comutil.DispatchConversion(d.context, d.convertShader, srv, compositeUAV, d.convertCBuf, groupsX, groupsY)
	return nil
}

// ensureIntermediate (re)allocates the scratch bindable texture when the
// requested dimensions change.
func (d *Duplicator) ensureIntermediate(w, h int) error {
	if d.intermediate != 0 && d.intermediateW == w && d.intermediateH == h {
		return nil
	}
	if d.intermediate != 0 {
		comutil.Release(d.intermediate)
		d.intermediate = 0
	}
	tex, err := comutil.CreateTexture2D(d.device, &comutil.Texture2DDesc{
		Width: uint32(w), Height: uint32(h),
		MipLevels: 1, ArraySize: 1,
		Format:        comutil.DXGIFormatB8G8R8A8,
		SampleCount:   1,
		Usage:         comutil.D3D11UsageDefault,
		BindFlags:     comutil.D3D11BindShaderResource,
	})
	if err != nil {
		return err
	}
	d.intermediate = tex
	d.intermediateW = w
	d.intermediateH = h
	return nil
}
