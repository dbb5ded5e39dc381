//go:build !cgo

package bindings

// Stub implementations for non-CGO builds. These keep the module
// compiling; pkg/openvr gates every session operation on Available(),
// so only the pure queries and the string lookups are ever reached, and
// those report "no runtime here" truthfully.

func Available() bool { return false }

func InitInternal(int32) (uintptr, int32) { return 0, 0 }

func ShutdownInternal() {}

func IsHmdPresent() bool { return false }

func IsRuntimeInstalled() bool { return false }

func GetGenericInterface(string) (uintptr, int32) { return 0, 0 }

func InitErrorSymbol(int32) string { return "" }

func InitErrorDescription(int32) string { return "" }

func SystemRenderTargetSize(uintptr) (uint32, uint32) { return 0, 0 }

func SystemProjectionMatrix(uintptr, int32, float32, float32) [4][4]float32 {
	return [4][4]float32{}
}

func SystemEyeToHeadTransform(uintptr, int32) [3][4]float32 {
	return [3][4]float32{}
}

func CompositorWaitGetPoses(uintptr, int) ([]TrackedPose, int32) { return nil, 0 }

func CompositorSubmitGL(uintptr, int32, uintptr, [4]float32) int32 { return 0 }
