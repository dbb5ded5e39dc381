package openvr

import "fmt"

// CompositorError is an OpenVR compositor error code. Values mirror
// the vendor EVRCompositorError enum.
type CompositorError int32

const (
	CompositorErrorNone                         CompositorError = 0
	CompositorErrorRequestFailed                CompositorError = 1
	CompositorErrorIncompatibleVersion          CompositorError = 100
	CompositorErrorDoNotHaveFocus               CompositorError = 101
	CompositorErrorInvalidTexture               CompositorError = 102
	CompositorErrorIsNotSceneApplication        CompositorError = 103
	CompositorErrorTextureIsOnWrongDevice       CompositorError = 104
	CompositorErrorTextureUsesUnsupportedFormat CompositorError = 105
	CompositorErrorSharedTexturesNotSupported   CompositorError = 106
	CompositorErrorIndexOutOfRange              CompositorError = 107
	CompositorErrorAlreadySubmitted             CompositorError = 108
	CompositorErrorInvalidBounds                CompositorError = 109
	CompositorErrorAlreadySet                   CompositorError = 110
)

func (e CompositorError) String() string {
	switch e {
	case CompositorErrorNone:
		return "None"
	case CompositorErrorRequestFailed:
		return "RequestFailed"
	case CompositorErrorIncompatibleVersion:
		return "IncompatibleVersion"
	case CompositorErrorDoNotHaveFocus:
		return "DoNotHaveFocus"
	case CompositorErrorInvalidTexture:
		return "InvalidTexture"
	case CompositorErrorIsNotSceneApplication:
		return "IsNotSceneApplication"
	case CompositorErrorTextureIsOnWrongDevice:
		return "TextureIsOnWrongDevice"
	case CompositorErrorTextureUsesUnsupportedFormat:
		return "TextureUsesUnsupportedFormat"
	case CompositorErrorSharedTexturesNotSupported:
		return "SharedTexturesNotSupported"
	case CompositorErrorIndexOutOfRange:
		return "IndexOutOfRange"
	case CompositorErrorAlreadySubmitted:
		return "AlreadySubmitted"
	case CompositorErrorInvalidBounds:
		return "InvalidBounds"
	case CompositorErrorAlreadySet:
		return "AlreadySet"
	default:
		return fmt.Sprintf("CompositorError(%d)", int32(e))
	}
}

func (e CompositorError) Error() string {
	return fmt.Sprintf("openvr: compositor error %s (%d)", e.String(), int32(e))
}
