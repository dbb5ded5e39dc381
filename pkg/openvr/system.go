package openvr

import "github.com/vrmp/openvr-go/internal/bindings"

// System wraps the IVRSystem function table: display geometry and
// projection queries.
type System struct {
	rt    *Runtime
	table uintptr
}

// System resolves the IVRSystem function table for this session.
func (r *Runtime) System() (*System, error) {
	if err := r.requireNative(); err != nil {
		return nil, err
	}
	table, err := r.FnTable(IVRSystemVersion)
	if err != nil {
		return nil, err
	}
	return &System{rt: r, table: table}, nil
}

// RecommendedRenderTargetSize returns the per-eye render target size
// the runtime suggests for the attached headset.
func (s *System) RecommendedRenderTargetSize() (width, height uint32) {
	return bindings.SystemRenderTargetSize(s.table)
}

// ProjectionMatrix returns the projection matrix for one eye with the
// given clip planes.
func (s *System) ProjectionMatrix(eye Eye, nearZ, farZ float32) Mat4 {
	return HmdMatrix44(bindings.SystemProjectionMatrix(s.table, int32(eye), nearZ, farZ)).Mat4()
}

// EyeToHeadTransform returns the transform from eye space to head
// space for one eye.
func (s *System) EyeToHeadTransform(eye Eye) Mat4 {
	return HmdMatrix34(bindings.SystemEyeToHeadTransform(s.table, int32(eye))).Mat4()
}
