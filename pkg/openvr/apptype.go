package openvr

//go:generate go tool stringer -type=ApplicationType -trimprefix=Application

// ApplicationType selects the mode in which the calling process wants
// to use the runtime. Values mirror the vendor EVRApplicationType enum
// exactly; a mismatch here is a silent correctness hazard, so the
// values are pinned by tests.
type ApplicationType int32

const (
	// ApplicationOther is for processes with no well-defined role.
	ApplicationOther ApplicationType = 0

	// ApplicationScene is a 3D application that will draw an
	// environment while running.
	ApplicationScene ApplicationType = 1

	// ApplicationOverlay draws overlays on top of another scene
	// application.
	ApplicationOverlay ApplicationType = 2

	// ApplicationBackground never starts the runtime itself and
	// silently exits Init when no server is already running.
	ApplicationBackground ApplicationType = 3

	// ApplicationUtility is for short-lived tools such as installers;
	// it starts the runtime but keeps no rendering role.
	ApplicationUtility ApplicationType = 4

	ApplicationVRMonitor     ApplicationType = 5
	ApplicationSteamWatchdog ApplicationType = 6
	ApplicationBootstrapper  ApplicationType = 7
	ApplicationWebHelper     ApplicationType = 8
	ApplicationOpenXRInstall ApplicationType = 9
	ApplicationOpenXRScene   ApplicationType = 10
	ApplicationOpenXROverlay ApplicationType = 11
	ApplicationPrism         ApplicationType = 12
	ApplicationRoomView      ApplicationType = 13
)

// Eye identifies one of the two stereo render targets. Values mirror
// the vendor EVREye enum.
type Eye int32

const (
	EyeLeft  Eye = 0
	EyeRight Eye = 1
)

func (e Eye) String() string {
	switch e {
	case EyeLeft:
		return "left"
	case EyeRight:
		return "right"
	default:
		return "unknown"
	}
}
