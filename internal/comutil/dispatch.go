//go:build windows

package comutil

import "unsafe"

// DispatchConversion binds the conversion compute shader's resources and
// issues a Dispatch covering the supplied thread-group counts. Unbinds the
// SRV/UAV afterward so the intermediate texture isn't left bound across
// the next output's blit (the duplicator reuses the same slots per
// output).
func DispatchConversion(context, shader, srv, uav, cbuf uintptr, groupsX, groupsY uint32) {
	CallRaw(context, D3D11CtxCSSetShader, shader, 0, 0)
	srvs := [1]uintptr{srv}
	CallRaw(context, D3D11CtxCSSetShaderResources, 0, 1, uintptr(unsafe.Pointer(&srvs[0])))
	uavs := [1]uintptr{uav}
	initialCounts := [1]uint32{0xFFFFFFFF}
	CallRaw(context, D3D11CtxCSSetUnorderedAccessViews, 0, 1, uintptr(unsafe.Pointer(&uavs[0])), uintptr(unsafe.Pointer(&initialCounts[0])))
	cbufs := [1]uintptr{cbuf}
	CallRaw(context, D3D11CtxCSSetConstantBuffers, 0, 1, uintptr(unsafe.Pointer(&cbufs[0])))

	CallRaw(context, D3D11CtxDispatch, uintptr(groupsX), uintptr(groupsY), 1)

	nullSRV := [1]uintptr{0}
	CallRaw(context, D3D11CtxCSSetShaderResources, 0, 1, uintptr(unsafe.Pointer(&nullSRV[0])))
	nullUAV := [1]uintptr{0}
	CallRaw(context, D3D11CtxCSSetUnorderedAccessViews, 0, 1, uintptr(unsafe.Pointer(&nullUAV[0])), uintptr(unsafe.Pointer(&initialCounts[0])))
}
