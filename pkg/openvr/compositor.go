package openvr

import "github.com/vrmp/openvr-go/internal/bindings"

// Compositor wraps the IVRCompositor function table: frame pacing and
// texture submission.
type Compositor struct {
	rt    *Runtime
	table uintptr
}

// Compositor resolves the IVRCompositor function table for this
// session.
func (r *Runtime) Compositor() (*Compositor, error) {
	if err := r.requireNative(); err != nil {
		return nil, err
	}
	table, err := r.FnTable(IVRCompositorVersion)
	if err != nil {
		return nil, err
	}
	return &Compositor{rt: r, table: table}, nil
}

// TrackedPose is one device pose as reported by WaitGetPoses.
type TrackedPose struct {
	DeviceToAbsoluteTracking HmdMatrix34
	Velocity                 [3]float32
	AngularVelocity          [3]float32
	PoseIsValid              bool
	DeviceIsConnected        bool
}

// TextureBounds selects the sub-rectangle of a submitted texture, in
// UV coordinates. Nil means the full texture.
type TextureBounds struct {
	UMin, VMin float32
	UMax, VMax float32
}

// WaitGetPoses blocks until the compositor is ready for the next frame
// and returns the first n device poses. Index 0 is the headset.
func (c *Compositor) WaitGetPoses(n int) ([]TrackedPose, error) {
	raw, code := bindings.CompositorWaitGetPoses(c.table, n)
	if code != 0 {
		return nil, CompositorError(code)
	}

	out := make([]TrackedPose, len(raw))
	for i, p := range raw {
		out[i] = TrackedPose{
			DeviceToAbsoluteTracking: HmdMatrix34(p.DeviceToAbsoluteTracking),
			Velocity:                 p.Velocity,
			AngularVelocity:          p.AngularVelocity,
			PoseIsValid:              p.PoseIsValid,
			DeviceIsConnected:        p.DeviceIsConnected,
		}
	}
	return out, nil
}

// WaitGetHmdPose is the single-device shortcut: it waits for the next
// frame and returns the headset pose as a column-major transform.
func (c *Compositor) WaitGetHmdPose() (Mat4, error) {
	poses, err := c.WaitGetPoses(1)
	if err != nil {
		return Mat4{}, err
	}
	return poses[0].DeviceToAbsoluteTracking.Mat4(), nil
}

// SubmitGL hands an OpenGL texture to the compositor for one eye,
// gamma color space. Vulkan and D3D submission are out of scope for
// this wrapper.
func (c *Compositor) SubmitGL(eye Eye, texture uintptr, bounds *TextureBounds) error {
	b := [4]float32{0, 0, 1, 1}
	if bounds != nil {
		b = [4]float32{bounds.UMin, bounds.VMin, bounds.UMax, bounds.VMax}
	}
	if code := bindings.CompositorSubmitGL(c.table, int32(eye), texture, b); code != 0 {
		return CompositorError(code)
	}
	return nil
}
