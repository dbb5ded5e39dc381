package bindings

// TrackedPose carries the subset of the vendor TrackedDevicePose_t
// fields surfaced by the wrapper. Matrices keep the vendor row-major
// 3x4 layout; pkg/openvr owns the conversion to column-major form.
type TrackedPose struct {
	DeviceToAbsoluteTracking [3][4]float32
	Velocity                 [3]float32
	AngularVelocity          [3]float32
	TrackingResult           int32
	PoseIsValid              bool
	DeviceIsConnected        bool
}
