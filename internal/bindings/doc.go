// Package bindings declares the global entry points of the OpenVR
// runtime shared library (openvr_api) and exposes them as plain Go
// functions. This package should ONLY be imported by pkg/openvr.
// All CGO complexity is isolated here.
//
// The package builds in two modes:
//
//   - cgo: the real externs, resolved by the dynamic loader from the
//     installed runtime at link time.
//   - !cgo: stubs that keep the module compiling. Callers gate on
//     Available() before touching anything that needs the runtime.
package bindings
