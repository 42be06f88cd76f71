//go:build windows

package wincapture

import "github.com/hdrsnap/hdrsnap/internal/comutil"

// WinRT interface IIDs, taken from the public Windows.Graphics.Capture ABI
// headers (the same constants every native Windows.Graphics.Capture
// consumer — C++/WinRT projected or raw ABI — compiles against).
var (
	iidIGraphicsCaptureItemInterop = comutil.GUID{0x3628e81b, 0x3cac, 0x4c60, [8]byte{0xb7, 0xf4, 0x23, 0xce, 0x0e, 0x0c, 0x33, 0x56}}
	iidIGraphicsCaptureItem         = comutil.GUID{0x79c3f95b, 0x31f7, 0x4ec2, [8]byte{0xa4, 0x64, 0x63, 0x2e, 0xf5, 0xd3, 0x07, 0x60}}
	iidIDirect3D11CaptureFramePoolStatics = comutil.GUID{0x7784056a, 0x67aa, 0x4d53, [8]byte{0xae, 0x54, 0x10, 0x88, 0xd5, 0xa8, 0xca, 0x21}}
	iidIDirect3D11CaptureFramePoolStatics2 = comutil.GUID{0x973887fe, 0xdb6b, 0x45eb, [8]byte{0xb6, 0xd6, 0xb4, 0x7a, 0x47, 0xe2, 0x44, 0x9b}}
)

// Runtime class names resolved via RoGetActivationFactory.
const (
	runtimeClassGraphicsCaptureItem        = "Windows.Graphics.Capture.GraphicsCaptureItem"
	runtimeClassDirect3D11CaptureFramePool = "Windows.Graphics.Capture.Direct3D11CaptureFramePool"
)

// IInspectable adds 3 vtable slots after IUnknown's 3 (GetIids, GetRuntimeClassName, GetTrustLevel),
// so an IInspectable-derived interface's first own method is at index 6.
const inspectableBase = 6

// Vtable indices, counted from each interface's own first method (after
// the IInspectable base for runtime classes, after IUnknown for the plain
// interop interfaces).
const (
	// IGraphicsCaptureItemInterop (derives IUnknown directly, not IInspectable)
	vtblCreateForWindow  = 3 // IGraphicsCaptureItemInterop::CreateForWindow
	vtblCreateForMonitor = 4

	// IGraphicsCaptureItem (IInspectable-derived)
	vtblItemGetDisplayName = inspectableBase + 0
	vtblItemGetSize        = inspectableBase + 1

	// IDirect3D11CaptureFramePoolStatics (IInspectable-derived)
	vtblFramePoolCreate = inspectableBase + 0

	// IDirect3D11CaptureFramePoolStatics2 (IInspectable-derived)
	vtblFramePoolCreateFreeThreaded = inspectableBase + 0

	// IDirect3D11CaptureFramePool instance (IInspectable-derived)
	vtblFramePoolCreateCaptureSession = inspectableBase + 0
	vtblFramePoolTryGetNextFrame      = inspectableBase + 1
	vtblFramePoolRecreate             = inspectableBase + 2
	vtblFramePoolAddFrameArrived      = inspectableBase + 3
	vtblFramePoolRemoveFrameArrived   = inspectableBase + 4
	vtblFramePoolClose                = inspectableBase + 5

	// IGraphicsCaptureSession instance (IInspectable-derived)
	vtblSessionStartCapture = inspectableBase + 0
	vtblSessionClose        = inspectableBase + 6

	// IGraphicsCaptureSession2 instance (cursor toggle, best-effort)
	vtblSessionPutCursorCaptureEnabled = inspectableBase + 0

	// IGraphicsCaptureSession3 instance (border toggle, Windows 11+, best-effort)
	vtblSessionPutBorderRequired = inspectableBase + 0

	// Direct3D11CaptureFrame instance (IInspectable-derived)
	vtblFrameGetSurface       = inspectableBase + 0
	vtblFrameGetContentSize   = inspectableBase + 1
	vtblFrameClose            = inspectableBase + 2

	// IDirect3DDxgiInterfaceAccess (plain IUnknown-derived interop interface)
	vtblDxgiInterfaceAccessGetInterface = 3
)

var iidIDirect3DDxgiInterfaceAccess = comutil.GUID{0xa9b3d012, 0x3df2, 0x4ee3, [8]byte{0xb8, 0xd1, 0x86, 0x95, 0xf4, 0x57, 0xd3, 0xc1}}
