//go:build windows

package tonemap

import (
	"fmt"
	"syscall"
	"unsafe"
)

var (
	user32DLL = syscall.NewLazyDLL("user32.dll")

	procMonitorFromPoint             = user32DLL.NewProc("MonitorFromPoint")
	procGetMonitorInfoW              = user32DLL.NewProc("GetMonitorInfoW")
	procGetDisplayConfigBufferSizes  = user32DLL.NewProc("GetDisplayConfigBufferSizes")
	procQueryDisplayConfig           = user32DLL.NewProc("QueryDisplayConfig")
	procDisplayConfigGetDeviceInfo   = user32DLL.NewProc("DisplayConfigGetDeviceInfo")
)

const (
	monitorDefaultToPrimary = 1

	qdcOnlyActivePaths = 0x00000002

	displayConfigDeviceInfoGetSourceName    = 1
	displayConfigDeviceInfoGetSDRWhiteLevel = 11

	ccchDeviceName = 32
)

type luid struct {
	LowPart  uint32
	HighPart int32
}

type rect struct {
	Left, Top, Right, Bottom int32
}

// monitorInfoExW matches MONITORINFOEXW.
type monitorInfoExW struct {
	CbSize    uint32
	RcMonitor rect
	RcWork    rect
	DwFlags   uint32
	SzDevice  [ccchDeviceName]uint16
}

// displayConfigPathSourceInfo matches DISPLAYCONFIG_PATH_SOURCE_INFO. The
// union (ModeInfoIdx/CloneGroupId+SourceModeInfoIdx) is read as a single
// uint32; we never interpret it, only forward it untouched.
type displayConfigPathSourceInfo struct {
	AdapterId   luid
	Id          uint32
	ModeInfoIdx uint32
	StatusFlags uint32
}

type displayConfigPathTargetInfo struct {
	AdapterId        luid
	Id               uint32
	ModeInfoIdx      uint32
	OutputTechnology uint32
	Rotation         uint32
	Scaling          uint32
	RefreshRateNum   uint32
	RefreshRateDenom uint32
	ScanLineOrdering uint32
	TargetAvailable  int32
	StatusFlags      uint32
}

// displayConfigPathInfo matches DISPLAYCONFIG_PATH_INFO.
type displayConfigPathInfo struct {
	SourceInfo displayConfigPathSourceInfo
	TargetInfo displayConfigPathTargetInfo
	Flags      uint32
}

// displayConfigModeInfo matches DISPLAYCONFIG_MODE_INFO: infoType + id +
// adapterId followed by a 48-byte union we never need to interpret, for
// the documented 64-byte total size.
type displayConfigModeInfo struct {
	InfoType  uint32
	Id        uint32
	AdapterId luid
	union     [48]byte
}

// displayConfigDeviceInfoHeader matches DISPLAYCONFIG_DEVICE_INFO_HEADER.
type displayConfigDeviceInfoHeader struct {
	Type      uint32
	Size      uint32
	AdapterId luid
	Id        uint32
}

// displayConfigSourceDeviceName matches DISPLAYCONFIG_SOURCE_DEVICE_NAME.
type displayConfigSourceDeviceName struct {
	Header            displayConfigDeviceInfoHeader
	ViewGdiDeviceName [ccchDeviceName]uint16
}

// displayConfigSDRWhiteLevel matches DISPLAYCONFIG_SDR_WHITE_LEVEL.
type displayConfigSDRWhiteLevel struct {
	Header        displayConfigDeviceInfoHeader
	SDRWhiteLevel uint32
}

// primaryMonitorHandle returns the HMONITOR for the monitor containing the
// origin, Windows' definition of "the primary monitor".
func primaryMonitorHandle() uintptr {
	h, _, _ := procMonitorFromPoint.Call(0, 0, uintptr(monitorDefaultToPrimary))
	return h
}

// queryPrimaryPaperWhiteNits implements §4.4.1: GDI device name lookup,
// DisplayConfig path walk, SDR white level read. Returns an error on any
// failed step; the caller (PaperWhiteNits) maps that to the 80-nit default.
func queryPrimaryPaperWhiteNits() (float64, error) {
	hMonitor := primaryMonitorHandle()
	if hMonitor == 0 {
		return 0, fmt.Errorf("tonemap: MonitorFromPoint returned no monitor")
	}

	var mi monitorInfoExW
	mi.CbSize = uint32(unsafe.Sizeof(mi))
	ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return 0, fmt.Errorf("tonemap: GetMonitorInfoW failed")
	}
	deviceName := syscall.UTF16ToString(mi.SzDevice[:])

	var numPaths, numModes uint32
	rc, _, _ := procGetDisplayConfigBufferSizes.Call(
		uintptr(qdcOnlyActivePaths),
		uintptr(unsafe.Pointer(&numPaths)),
		uintptr(unsafe.Pointer(&numModes)),
	)
	if rc != 0 {
		return 0, fmt.Errorf("tonemap: GetDisplayConfigBufferSizes failed: %d", rc)
	}
	if numPaths == 0 {
		return 0, fmt.Errorf("tonemap: no active display paths")
	}

	paths := make([]displayConfigPathInfo, numPaths)
	modes := make([]displayConfigModeInfo, numModes)
	rc, _, _ = procQueryDisplayConfig.Call(
		uintptr(qdcOnlyActivePaths),
		uintptr(unsafe.Pointer(&numPaths)),
		uintptr(unsafe.Pointer(&paths[0])),
		uintptr(unsafe.Pointer(&numModes)),
		uintptr(unsafe.Pointer(&modes[0])),
		0,
	)
	if rc != 0 {
		return 0, fmt.Errorf("tonemap: QueryDisplayConfig failed: %d", rc)
	}

	for i := range paths {
		path := &paths[i]
		var name displayConfigSourceDeviceName
		name.Header.Type = displayConfigDeviceInfoGetSourceName
		name.Header.Size = uint32(unsafe.Sizeof(name))
		name.Header.AdapterId = path.SourceInfo.AdapterId
		name.Header.Id = path.SourceInfo.Id

		rc, _, _ := procDisplayConfigGetDeviceInfo.Call(uintptr(unsafe.Pointer(&name)))
		if rc != 0 {
			continue
		}
		if syscall.UTF16ToString(name.ViewGdiDeviceName[:]) != deviceName {
			continue
		}

		var level displayConfigSDRWhiteLevel
		level.Header.Type = displayConfigDeviceInfoGetSDRWhiteLevel
		level.Header.Size = uint32(unsafe.Sizeof(level))
		level.Header.AdapterId = path.TargetInfo.AdapterId
		level.Header.Id = path.TargetInfo.Id

		rc, _, _ = procDisplayConfigGetDeviceInfo.Call(uintptr(unsafe.Pointer(&level)))
		if rc != 0 {
			return 0, fmt.Errorf("tonemap: DisplayConfigGetDeviceInfo(SDR_WHITE_LEVEL) failed: %d", rc)
		}
		return float64(level.SDRWhiteLevel) / 1000 * 80, nil
	}

	return 0, fmt.Errorf("tonemap: no display path matched device %q", deviceName)
}
