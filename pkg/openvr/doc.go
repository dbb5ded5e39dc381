// Package openvr provides Go bindings for the OpenVR runtime's global
// entry points: session lifecycle, headset presence detection, and
// versioned interface lookup, plus thin typed wrappers over the
// IVRSystem and IVRCompositor function tables.
//
// # Architecture
//
// The native runtime exposes free functions with a single implicit
// runtime instance per process. This package makes that explicit: Init
// returns a *Runtime owning the opaque session token, and a second Init
// before Shutdown fails with ErrAlreadyInitialized.
//
//	rt, err := openvr.Init(openvr.ApplicationScene)
//	if err != nil {
//		var code openvr.InitError
//		if errors.As(err, &code) {
//			log.Fatalf("runtime refused init: %s", code.Description())
//		}
//		log.Fatal(err)
//	}
//	defer rt.Shutdown()
//
//	sys, err := rt.System()
//	w, h := sys.RecommendedRenderTargetSize()
//
// Failure is never signaled by panic: vendor error codes cross the
// boundary verbatim as InitError and CompositorError values, both of
// which implement error.
//
// # Thread safety
//
// The vendor library documents no thread-safety guarantees for its
// entry points. This package serializes Init and Shutdown against each
// other but deliberately adds no locking around other native calls;
// treat concurrent use of a Runtime conservatively and serialize in the
// caller.
//
// # Building without the runtime
//
// Without cgo the package compiles against stubs: the pure queries
// report false and Init fails with ErrNotBuilt. Tests and offline
// callers can inject a fake runtime via WithBackend; see the mockvr
// subpackage.
package openvr
