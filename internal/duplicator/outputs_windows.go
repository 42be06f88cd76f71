//go:build windows

package duplicator

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/hdrsnap/hdrsnap/internal/comutil"
	"github.com/hdrsnap/hdrsnap/internal/geom"
)

// Init enumerates the shared device's adapter outputs, builds a duplication
// session per attached output (preferring RGBA16F native delivery, falling
// back to BGRA8), computes the virtual-desktop bounds, and compiles the
// conversion compute shader (§4.3 "Initialization"). device and context are
// the caller's shared D3D11 device/immediate-context pair.
func (d *Duplicator) Init(device, context uintptr) error {
	d.device = device
	d.context = context

	dxgiDevice, err := comutil.QueryInterface(device, &comutil.IIDIDXGIDevice)
	if err != nil {
		return fmt.Errorf("duplicator: QueryInterface IDXGIDevice: %w", err)
	}
	defer comutil.Release(dxgiDevice)

	var adapter uintptr
	if _, err := comutil.Call(dxgiDevice, comutil.DXGIDeviceGetAdapter, uintptr(unsafe.Pointer(&adapter))); err != nil {
		return fmt.Errorf("duplicator: IDXGIDevice::GetAdapter: %w", err)
	}
	defer comutil.Release(adapter)

	var sessions []outputSession
	var bounds []geom.Rect

	for i := 0; ; i++ {
		var output uintptr
		ret := comutil.CallRaw(adapter, comutil.DXGIAdapterEnumOutputs, uintptr(i), uintptr(unsafe.Pointer(&output)))
		if int32(ret) < 0 {
			break // DXGI_ERROR_NOT_FOUND or similar: no more outputs
		}

		session, err := d.initOutput(device, output)
		comutil.Release(output)
		if err != nil {
			log.Warn("output duplication session failed, skipping", "index", i, "error", err)
			continue
		}
		sessions = append(sessions, session)
		bounds = append(bounds, session.bounds)
	}

	if len(sessions) == 0 {
		return ErrNoActiveOutputs
	}

	if err := d.compileConvertShader(); err != nil {
		d.releaseOutputs(sessions)
		return fmt.Errorf("duplicator: compile conversion shader: %w", err)
	}

	d.outputs = sessions
	d.bounds = geom.UnionAll(bounds)
	d.state = StateReady
	log.Info("duplicator initialized", "outputs", len(sessions), "bounds", d.bounds)
	return nil
}

// initOutput builds one output's duplication session. Matches §4.3 step 3:
// IDXGIOutput5::DuplicateOutput1 with a format preference list lets the OS
// deliver RGBA16F directly on an HDR output instead of only BGRA8.
func (d *Duplicator) initOutput(device, output uintptr) (outputSession, error) {
	var desc comutil.OutputDesc
	if _, err := comutil.Call(output, comutil.DXGIOutputGetDesc, uintptr(unsafe.Pointer(&desc))); err != nil {
		return outputSession{}, fmt.Errorf("GetDesc: %w", err)
	}
	if desc.AttachedToDesktop == 0 {
		return outputSession{}, fmt.Errorf("output not attached to desktop")
	}

	output5, err := comutil.QueryInterface(output, &comutil.IIDIDXGIOutput5)
	if err != nil {
		return outputSession{}, fmt.Errorf("QueryInterface IDXGIOutput5: %w", err)
	}
	defer comutil.Release(output5)

	formats := [2]uint32{comutil.DXGIFormatR16G16B16A16Float, comutil.DXGIFormatB8G8R8A8}
	var duplication uintptr
	_, err = comutil.Call(output5, comutil.DXGIOutput5DuplicateOutput1,
		device,
		0, // Flags
		uintptr(len(formats)),
		uintptr(unsafe.Pointer(&formats[0])),
		uintptr(unsafe.Pointer(&duplication)),
	)
	if err != nil {
		return outputSession{}, fmt.Errorf("DuplicateOutput1: %w", err)
	}

	var duplDesc comutil.OutDuplDesc
	if _, err := comutil.Call(duplication, comutil.DXGIDuplGetDesc, uintptr(unsafe.Pointer(&duplDesc))); err != nil {
		comutil.Release(duplication)
		return outputSession{}, fmt.Errorf("IDXGIOutputDuplication::GetDesc: %w", err)
	}

	return outputSession{
		duplication: duplication,
		bounds:      geom.Rect{Left: desc.Left, Top: desc.Top, Right: desc.Right, Bottom: desc.Bottom},
		format:      duplDesc.ModeDesc.Format,
		rotation:    duplDesc.Rotation,
	}, nil
}

func (d *Duplicator) releaseOutputs(sessions []outputSession) {
	for _, s := range sessions {
		comutil.Release(s.duplication)
	}
}

// compileConvertShader compiles the sRGB→linear kernel and allocates its
// constant buffer, both cached for the lifetime of this Duplicator
// (§4.3 step 4).
func (d *Duplicator) compileConvertShader() error {
	bytecode, err := comutil.CompileComputeShader(convertShaderSource, convertShaderEntryPoint)
	if err != nil {
		return err
	}
	shader, err := comutil.CreateComputeShader(d.device, bytecode)
	if err != nil {
		return err
	}

	zero := make([]byte, int(unsafe.Sizeof(blitParams{})))
	cbuf, err := comutil.CreateConstantBuffer(d.device, zero)
	if err != nil {
		comutil.Release(shader)
		return err
	}

	d.convertShader = shader
	d.convertCBuf = cbuf
	return nil
}

func encodeBlitParams(p blitParams) []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:], uint32(p.SrcOffsetX))
	binary.LittleEndian.PutUint32(buf[4:], uint32(p.SrcOffsetY))
	binary.LittleEndian.PutUint32(buf[8:], uint32(p.DstOffsetX))
	binary.LittleEndian.PutUint32(buf[12:], uint32(p.DstOffsetY))
	binary.LittleEndian.PutUint32(buf[16:], uint32(p.BlitSizeX))
	binary.LittleEndian.PutUint32(buf[20:], uint32(p.BlitSizeY))
	return buf
}

// Close releases all per-output duplication handles and the compiled
// shader, returning the duplicator to StateUninitialized.
func (d *Duplicator) Close() {
	d.releaseOutputs(d.outputs)
	d.outputs = nil
	if d.convertCBuf != 0 {
		comutil.Release(d.convertCBuf)
		d.convertCBuf = 0
	}
	if d.convertShader != 0 {
		comutil.Release(d.convertShader)
		d.convertShader = 0
	}
	if d.intermediate != 0 {
		comutil.Release(d.intermediate)
		d.intermediate = 0
	}
	d.state = StateUninitialized
}
