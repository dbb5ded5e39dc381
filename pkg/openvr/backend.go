package openvr

import "github.com/vrmp/openvr-go/internal/bindings"

// Backend is the five-entry-point contract of the flat OpenVR API. The
// production implementation delegates to the linked runtime; tests
// inject a fake via WithBackend (see the mockvr subpackage).
//
// Implementations pass vendor codes through verbatim. A non-None code
// always comes with a zero token or pointer.
type Backend interface {
	// Available reports whether the backend can actually reach a
	// runtime. The native backend returns false when the module was
	// built without cgo.
	Available() bool

	// InitInternal connects the process to the runtime and returns the
	// opaque session token plus the vendor init error code.
	InitInternal(appType ApplicationType) (token uintptr, code InitError)

	// ShutdownInternal disconnects the process. No misuse signal, per
	// the vendor contract; sequencing is enforced by Runtime.
	ShutdownInternal()

	// IsHmdPresent reports headset presence. Callable before
	// InitInternal.
	IsHmdPresent() bool

	// IsRuntimeInstalled reports whether a runtime is installed.
	// Callable before InitInternal.
	IsRuntimeInstalled() bool

	// GetGenericInterface resolves a versioned sub-interface by name.
	GetGenericInterface(version string) (iface uintptr, code InitError)
}

// nativeBackend routes every call to internal/bindings and through it
// to the loaded openvr_api library.
type nativeBackend struct{}

func (nativeBackend) Available() bool { return bindings.Available() }

func (nativeBackend) InitInternal(appType ApplicationType) (uintptr, InitError) {
	token, code := bindings.InitInternal(int32(appType))
	return token, InitError(code)
}

func (nativeBackend) ShutdownInternal() { bindings.ShutdownInternal() }

func (nativeBackend) IsHmdPresent() bool { return bindings.IsHmdPresent() }

func (nativeBackend) IsRuntimeInstalled() bool { return bindings.IsRuntimeInstalled() }

func (nativeBackend) GetGenericInterface(version string) (uintptr, InitError) {
	p, code := bindings.GetGenericInterface(version)
	return p, InitError(code)
}

// IsHmdPresent reports whether a headset is attached. It is a pure
// query against the native runtime and may be called before Init.
func IsHmdPresent() bool { return nativeBackend{}.IsHmdPresent() }

// IsRuntimeInstalled reports whether an OpenVR runtime is installed on
// this machine. It may be called before Init.
func IsRuntimeInstalled() bool { return nativeBackend{}.IsRuntimeInstalled() }
