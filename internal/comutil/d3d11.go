//go:build windows

package comutil

// D3D11/DXGI vtable indices. Fixed by the COM interface layout, same
// values used throughout the desktop-duplication code this package is
// grounded on.
const (
	DXGIDeviceGetAdapter       = 7  // IDXGIDevice (after IUnknown+IDXGIObject)
	DXGIAdapterEnumOutputs     = 7  // IDXGIAdapter
	DXGIOutputGetDesc          = 7  // IDXGIOutput
	DXGIOutput1DuplicateOutput = 22 // IDXGIOutput1
	DXGIDuplGetDesc            = 7  // IDXGIOutputDuplication
	DXGIDuplAcquireNextFrame   = 8  // IDXGIOutputDuplication
	DXGIDuplReleaseFrame       = 14 // IDXGIOutputDuplication
	D3D11DeviceCreateTexture2D = 5  // ID3D11Device
	D3D11CtxMap                = 14 // ID3D11DeviceContext
	D3D11CtxUnmap              = 15 // ID3D11DeviceContext
	D3D11CtxCopyResource       = 47 // ID3D11DeviceContext
	D3D11CtxCSSetShaderResources      = 67 // ID3D11DeviceContext
	D3D11CtxCSSetUnorderedAccessViews = 68 // ID3D11DeviceContext
	D3D11CtxCSSetShader               = 69 // ID3D11DeviceContext
	D3D11CtxCSSetConstantBuffers      = 71 // ID3D11DeviceContext
	D3D11CtxDispatch                  = 41 // ID3D11DeviceContext
	D3D11CtxCopySubresourceRegion     = 46 // ID3D11DeviceContext
	D3D11CtxFlush                     = 111

	D3D11DeviceCreateShaderResourceView  = 7  // ID3D11Device
	D3D11DeviceCreateUnorderedAccessView = 8  // ID3D11Device
	D3D11DeviceCreateComputeShader       = 18 // ID3D11Device
	D3D11DeviceCreateBuffer              = 3  // ID3D11Device

	DXGIOutput5DuplicateOutput1 = 26 // IDXGIOutput5
)

// D3D11/DXGI enum and flag values.
const (
	D3DDriverTypeHardware = 1
	D3DFeatureLevel11_0   = 0xb000
	D3D11SDKVersion       = 7

	D3D11CreateDeviceBGRASupport  = 0x20
	D3D11CreateDeviceVideoSupport = 0x800

	D3D11UsageDefault  = 0
	D3D11UsageStaging  = 3
	D3D11CPUAccessRead = 0x20000

	D3D11BindShaderResource  = 0x8
	D3D11BindRenderTarget    = 0x20
	D3D11BindUnorderedAccess = 0x80

	DXGIFormatR16G16B16A16Float = 10
	DXGIFormatB8G8R8A8          = 87
	DXGIFormatR8G8B8A8          = 28

	DXGIErrWaitTimeout   = 0x887A0027
	DXGIErrAccessLost    = 0x887A0026
	DXGIErrInvalidCall   = 0x887A0001
	DXGIErrDeviceRemoved = 0x887A0005
	DXGIErrDeviceReset   = 0x887A0007
)

// GUIDs for the DXGI/D3D11 interfaces used across the capture core.
var (
	IIDIDXGIDevice     = GUID{0x54ec77fa, 0x1377, 0x44e6, [8]byte{0x8c, 0x32, 0x88, 0xfd, 0x5f, 0x44, 0xc8, 0x4c}}
	IIDID3D11Texture2D = GUID{0x6f15aaf2, 0xd208, 0x4e89, [8]byte{0x9a, 0xb4, 0x48, 0x95, 0x35, 0xd3, 0x4f, 0x9c}}
	IIDIDXGIOutput1    = GUID{0x00cddea8, 0x939b, 0x4b83, [8]byte{0xa3, 0x40, 0xa6, 0x85, 0x22, 0x66, 0x66, 0xcc}}
	IIDIDXGIOutput5    = GUID{0x80a07424, 0xab52, 0x42eb, [8]byte{0x83, 0x3c, 0x0c, 0x42, 0xfd, 0x28, 0x2d, 0x98}}
)

// Texture2DDesc matches D3D11_TEXTURE2D_DESC.
type Texture2DDesc struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         uint32
	SampleCount    uint32
	SampleQuality  uint32
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

// MappedSubresource matches D3D11_MAPPED_SUBRESOURCE.
type MappedSubresource struct {
	PData      uintptr
	RowPitch   uint32
	DepthPitch uint32
}

type Rational struct {
	Numerator   uint32
	Denominator uint32
}

// ModeDesc matches DXGI_MODE_DESC.
type ModeDesc struct {
	Width            uint32
	Height           uint32
	RefreshRate      Rational
	Format           uint32
	ScanlineOrdering uint32
	Scaling          uint32
}

// OutputDesc matches DXGI_OUTPUT_DESC.
type OutputDesc struct {
	DeviceName        [32]uint16
	Left              int32
	Top               int32
	Right             int32
	Bottom            int32
	AttachedToDesktop int32
	Rotation          uint32
	Monitor           uintptr
}

// Box matches D3D11_BOX, the source sub-rectangle for
// CopySubresourceRegion.
type Box struct {
	Left, Top, Front, Right, Bottom, Back uint32
}

// OutDuplDesc matches DXGI_OUTDUPL_DESC.
type OutDuplDesc struct {
	ModeDesc                   ModeDesc
	Rotation                   uint32
	DesktopImageInSystemMemory int32
}

// OutDuplFrameInfo matches DXGI_OUTDUPL_FRAME_INFO.
type OutDuplFrameInfo struct {
	LastPresentTime           int64
	LastMouseUpdateTime       int64
	AccumulatedFrames         uint32
	RectsCoalesced            int32
	ProtectedContentMaskedOut int32
	PointerPositionX          int32
	PointerPositionY          int32
	PointerVisible            int32
	TotalMetadataBufferSize   uint32
	PointerShapeBufferSize    uint32
}

// BufferDesc matches D3D11_BUFFER_DESC, used for the conversion kernel's
// constant buffer (source offset, destination offset, blit size).
type BufferDesc struct {
	ByteWidth           uint32
	Usage               uint32
	BindFlags           uint32
	CPUAccessFlags      uint32
	MiscFlags           uint32
	StructureByteStride uint32
}

// SubresourceData matches D3D11_SUBRESOURCE_DATA, for initial buffer
// contents at creation time.
type SubresourceData struct {
	PSysMem          uintptr
	SysMemPitch      uint32
	SysMemSlicePitch uint32
}

// ShaderResourceViewDesc matches the Texture2D-SRV variant of
// D3D11_SHADER_RESOURCE_VIEW_DESC (the only variant the conversion kernel
// needs: a single full-texture view of the non-bindable OS duplication
// output, copied into a bindable intermediate first).
type ShaderResourceViewDesc struct {
	Format        uint32
	ViewDimension uint32
	MostDetailedMip uint32
	MipLevels       uint32
}

// UnorderedAccessViewDesc matches the Texture2D-UAV variant of
// D3D11_UNORDERED_ACCESS_VIEW_DESC.
type UnorderedAccessViewDesc struct {
	Format        uint32
	ViewDimension uint32
	MipSlice      uint32
}

const (
	SRVDimensionTexture2D = 4 // D3D11_SRV_DIMENSION_TEXTURE2D
	UAVDimensionTexture2D = 4 // D3D11_UAV_DIMENSION_TEXTURE2D

	D3D11UsageDynamic = 2

	D3D11BindConstantBuffer = 0x4
	D3D11CPUAccessWrite     = 0x10000
)
