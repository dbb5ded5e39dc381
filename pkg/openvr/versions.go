package openvr

// Interface versions this wrapper was written against. Passing an older
// version string to GetGenericInterface is fine as long as the
// installed runtime still serves it.
const (
	IVRSystemVersion     = "IVRSystem_022"
	IVRCompositorVersion = "IVRCompositor_028"
)

// Version is the wrapper version, populated at build time via ldflags.
var Version = "v0.1.0-dev"
