//go:build cgo

package bindings

/*
#include <stdbool.h>
#include <stdint.h>

typedef struct HmdMatrix34 { float m[3][4]; } HmdMatrix34_t;
typedef struct HmdMatrix44 { float m[4][4]; } HmdMatrix44_t;
typedef struct HmdVector3 { float v[3]; } HmdVector3_t;

typedef struct TrackedDevicePose {
	HmdMatrix34_t mDeviceToAbsoluteTracking;
	HmdVector3_t vVelocity;
	HmdVector3_t vAngularVelocity;
	int eTrackingResult;
	bool bPoseIsValid;
	bool bDeviceIsConnected;
} TrackedDevicePose_t;

typedef struct Texture {
	void *handle;
	int eType;
	int eColorSpace;
} Texture_t;

typedef struct VRTextureBounds {
	float uMin;
	float vMin;
	float uMax;
	float vMax;
} VRTextureBounds_t;

// Leading members of the vendor function tables, in vendor order. Only
// the entries called below are declared; the tables are only ever used
// through the pointer returned by VR_GetGenericInterface("FnTable:..."),
// so the undeclared tail is never touched.
typedef struct SystemFnTable {
	void (*GetRecommendedRenderTargetSize)(uint32_t *pnWidth, uint32_t *pnHeight);
	HmdMatrix44_t (*GetProjectionMatrix)(int eEye, float fNearZ, float fFarZ);
	void (*GetProjectionRaw)(int eEye, float *pfLeft, float *pfRight, float *pfTop, float *pfBottom);
	bool (*ComputeDistortion)(int eEye, float fU, float fV, void *pDistortionCoordinates);
	HmdMatrix34_t (*GetEyeToHeadTransform)(int eEye);
} SystemFnTable;

typedef struct CompositorFnTable {
	void (*SetTrackingSpace)(int eOrigin);
	int (*GetTrackingSpace)(void);
	int (*WaitGetPoses)(TrackedDevicePose_t *pRenderPoseArray, uint32_t unRenderPoseArrayCount, TrackedDevicePose_t *pGamePoseArray, uint32_t unGamePoseArrayCount);
	int (*GetLastPoses)(TrackedDevicePose_t *pRenderPoseArray, uint32_t unRenderPoseArrayCount, TrackedDevicePose_t *pGamePoseArray, uint32_t unGamePoseArrayCount);
	int (*GetLastPoseForTrackedDeviceIndex)(uint32_t unDeviceIndex, TrackedDevicePose_t *pOutputPose, TrackedDevicePose_t *pOutputGamePose);
	int (*Submit)(int eEye, Texture_t *pTexture, VRTextureBounds_t *pBounds, int nSubmitFlags);
} CompositorFnTable;

static void system_render_target_size(uintptr_t table, uint32_t *w, uint32_t *h) {
	((SystemFnTable *)table)->GetRecommendedRenderTargetSize(w, h);
}

static HmdMatrix44_t system_projection_matrix(uintptr_t table, int eye, float nearZ, float farZ) {
	return ((SystemFnTable *)table)->GetProjectionMatrix(eye, nearZ, farZ);
}

static HmdMatrix34_t system_eye_to_head(uintptr_t table, int eye) {
	return ((SystemFnTable *)table)->GetEyeToHeadTransform(eye);
}

static int compositor_wait_get_poses(uintptr_t table, TrackedDevicePose_t *poses, uint32_t n) {
	return ((CompositorFnTable *)table)->WaitGetPoses(poses, n, 0, 0);
}

// TextureType_OpenGL with ColorSpace_Gamma, submit flags none.
static int compositor_submit_gl(uintptr_t table, int eye, uintptr_t texture, VRTextureBounds_t *bounds) {
	Texture_t tex;
	tex.handle = (void *)texture;
	tex.eType = 1;
	tex.eColorSpace = 1;
	return ((CompositorFnTable *)table)->Submit(eye, &tex, bounds, 0);
}
*/
import "C"

// SystemRenderTargetSize returns the per-eye render target size the
// runtime recommends.
func SystemRenderTargetSize(table uintptr) (uint32, uint32) {
	var w, h C.uint32_t
	C.system_render_target_size(C.uintptr_t(table), &w, &h)
	return uint32(w), uint32(h)
}

// SystemProjectionMatrix returns the vendor row-major projection matrix
// for one eye.
func SystemProjectionMatrix(table uintptr, eye int32, nearZ, farZ float32) [4][4]float32 {
	m := C.system_projection_matrix(C.uintptr_t(table), C.int(eye), C.float(nearZ), C.float(farZ))
	var out [4][4]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = float32(m.m[i][j])
		}
	}
	return out
}

// SystemEyeToHeadTransform returns the vendor row-major 3x4 eye to head
// transform for one eye.
func SystemEyeToHeadTransform(table uintptr, eye int32) [3][4]float32 {
	m := C.system_eye_to_head(C.uintptr_t(table), C.int(eye))
	var out [3][4]float32
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = float32(m.m[i][j])
		}
	}
	return out
}

// CompositorWaitGetPoses blocks until the compositor is ready for the
// next frame and returns the first n device poses. The second return
// value is the vendor EVRCompositorError code.
func CompositorWaitGetPoses(table uintptr, n int) ([]TrackedPose, int32) {
	if n <= 0 {
		return nil, 0
	}
	poses := make([]C.TrackedDevicePose_t, n)
	code := C.compositor_wait_get_poses(C.uintptr_t(table), &poses[0], C.uint32_t(n))
	if code != 0 {
		return nil, int32(code)
	}

	out := make([]TrackedPose, n)
	for i := range poses {
		p := &poses[i]
		for r := 0; r < 3; r++ {
			for c := 0; c < 4; c++ {
				out[i].DeviceToAbsoluteTracking[r][c] = float32(p.mDeviceToAbsoluteTracking.m[r][c])
			}
		}
		for v := 0; v < 3; v++ {
			out[i].Velocity[v] = float32(p.vVelocity.v[v])
			out[i].AngularVelocity[v] = float32(p.vAngularVelocity.v[v])
		}
		out[i].TrackingResult = int32(p.eTrackingResult)
		out[i].PoseIsValid = bool(p.bPoseIsValid)
		out[i].DeviceIsConnected = bool(p.bDeviceIsConnected)
	}
	return out, 0
}

// CompositorSubmitGL hands an OpenGL texture to the compositor for one
// eye. Bounds are uMin, vMin, uMax, vMax. Returns the vendor
// EVRCompositorError code.
func CompositorSubmitGL(table uintptr, eye int32, texture uintptr, bounds [4]float32) int32 {
	b := C.VRTextureBounds_t{
		uMin: C.float(bounds[0]),
		vMin: C.float(bounds[1]),
		uMax: C.float(bounds[2]),
		vMax: C.float(bounds[3]),
	}
	return int32(C.compositor_submit_gl(C.uintptr_t(table), C.int(eye), C.uintptr_t(texture), &b))
}
