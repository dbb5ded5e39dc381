//go:build cgo

package bindings

/*
#cgo LDFLAGS: -lopenvr_api
#cgo linux LDFLAGS: -ldl

#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>

// Global entry points of the flat OpenVR API. Declared directly so the
// package links against any installed runtime without needing the
// vendor headers at build time. EVRInitError and EVRApplicationType are
// plain C enums, ABI-identical to int.
intptr_t VR_InitInternal( int *peError, int eType );
void VR_ShutdownInternal();
bool VR_IsHmdPresent();
intptr_t VR_GetGenericInterface( const char *pchInterfaceVersion, int *peError );
bool VR_IsRuntimeInstalled();
const char * VR_GetVRInitErrorAsSymbol( int error );
const char * VR_GetVRInitErrorAsEnglishDescription( int error );
*/
import "C"

import "unsafe"

// Available reports whether the native entry points are linked into
// this binary.
func Available() bool { return true }

// InitInternal connects the process to the runtime. The returned token
// is an opaque session handle owned by the runtime; the code is the
// vendor EVRInitError value, zero on success. Both are passed through
// verbatim: a zero token with a zero code is the runtime's problem to
// explain, not ours to reinterpret.
func InitInternal(appType int32) (uintptr, int32) {
	var code C.int
	token := C.VR_InitInternal(&code, C.int(appType))
	return uintptr(token), int32(code)
}

// ShutdownInternal disconnects the process from the runtime. The vendor
// call has no return value and no misuse signal.
func ShutdownInternal() {
	C.VR_ShutdownInternal()
}

// IsHmdPresent reports whether a headset is attached. Callable before
// InitInternal.
func IsHmdPresent() bool {
	return bool(C.VR_IsHmdPresent())
}

// IsRuntimeInstalled reports whether an OpenVR runtime is installed on
// this machine. Callable before InitInternal.
func IsRuntimeInstalled() bool {
	return bool(C.VR_IsRuntimeInstalled())
}

// GetGenericInterface resolves a versioned sub-interface by name. The
// returned pointer is owned by the runtime and stays valid until
// ShutdownInternal. A non-zero code always comes with a zero pointer.
func GetGenericInterface(version string) (uintptr, int32) {
	cs := C.CString(version)
	defer C.free(unsafe.Pointer(cs))

	var code C.int
	p := C.VR_GetGenericInterface(cs, &code)
	return uintptr(p), int32(code)
}

// InitErrorSymbol returns the runtime's symbol string for an init error
// code, or "" when the runtime has none. The vendor string is static;
// copying it into a Go string is the only allocation here.
func InitErrorSymbol(code int32) string {
	p := C.VR_GetVRInitErrorAsSymbol(C.int(code))
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

// InitErrorDescription returns the runtime's English description for an
// init error code, or "" when the runtime has none.
func InitErrorDescription(code int32) string {
	p := C.VR_GetVRInitErrorAsEnglishDescription(C.int(code))
	if p == nil {
		return ""
	}
	return C.GoString(p)
}
