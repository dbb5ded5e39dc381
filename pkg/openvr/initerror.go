package openvr

import (
	"fmt"
	"sort"

	"github.com/vrmp/openvr-go/internal/bindings"
)

// InitError is an OpenVR init error code. Values mirror the vendor
// EVRInitError enum exactly and are pinned by tests. InitError
// implements error so init failures can be matched with errors.As and
// still expose the raw code.
type InitError int32

// General errors.
const (
	InitErrorNone    InitError = 0
	InitErrorUnknown InitError = 1
)

// Init group: failures while bringing up the runtime.
const (
	InitErrorInstallationNotFound         InitError = 100
	InitErrorInstallationCorrupt          InitError = 101
	InitErrorVRClientDLLNotFound          InitError = 102
	InitErrorFileNotFound                 InitError = 103
	InitErrorFactoryNotFound              InitError = 104
	InitErrorInterfaceNotFound            InitError = 105
	InitErrorInvalidInterface             InitError = 106
	InitErrorUserConfigDirectoryInvalid   InitError = 107
	InitErrorHmdNotFound                  InitError = 108
	InitErrorNotInitialized               InitError = 109
	InitErrorPathRegistryNotFound         InitError = 110
	InitErrorNoConfigPath                 InitError = 111
	InitErrorNoLogPath                    InitError = 112
	InitErrorPathRegistryNotWritable      InitError = 113
	InitErrorAppInfoInitFailed            InitError = 114
	InitErrorRetry                        InitError = 115
	InitErrorInitCanceledByUser           InitError = 116
	InitErrorAnotherAppLaunching          InitError = 117
	InitErrorSettingsInitFailed           InitError = 118
	InitErrorShuttingDown                 InitError = 119
	InitErrorTooManyObjects               InitError = 120
	InitErrorNoServerForBackgroundApp     InitError = 121
	InitErrorNotSupportedWithCompositor   InitError = 122
	InitErrorNotAvailableToUtilityApps    InitError = 123
	InitErrorInternal                     InitError = 124
	InitErrorHmdDriverIdIsNone            InitError = 125
	InitErrorHmdNotFoundPresenceFailed    InitError = 126
	InitErrorVRMonitorNotFound            InitError = 127
	InitErrorVRMonitorStartupFailed       InitError = 128
	InitErrorLowPowerWatchdogNotSupported InitError = 129
	InitErrorInvalidApplicationType       InitError = 130
	InitErrorNotAvailableToWatchdogApps   InitError = 131
	InitErrorWatchdogDisabledInSettings   InitError = 132
	InitErrorVRDashboardNotFound          InitError = 133
	InitErrorVRDashboardStartupFailed     InitError = 134
)

// Driver group: failures reported by the headset driver.
const (
	InitErrorDriverFailed                        InitError = 200
	InitErrorDriverUnknown                       InitError = 201
	InitErrorDriverHmdUnknown                    InitError = 202
	InitErrorDriverNotLoaded                     InitError = 203
	InitErrorDriverRuntimeOutOfDate              InitError = 204
	InitErrorDriverHmdInUse                      InitError = 205
	InitErrorDriverNotCalibrated                 InitError = 206
	InitErrorDriverCalibrationInvalid            InitError = 207
	InitErrorDriverHmdDisplayNotFound            InitError = 208
	InitErrorDriverTrackedDeviceInterfaceUnknown InitError = 209
	InitErrorDriverHmdDriverIdOutOfBounds        InitError = 211
	InitErrorDriverHmdDisplayMirrored            InitError = 212
)

// IPC group: failures talking to the runtime server process.
const (
	InitErrorIPCServerInitFailed                   InitError = 300
	InitErrorIPCConnectFailed                      InitError = 301
	InitErrorIPCSharedStateInitFailed              InitError = 302
	InitErrorIPCCompositorInitFailed               InitError = 303
	InitErrorIPCMutexInitFailed                    InitError = 304
	InitErrorIPCFailed                             InitError = 305
	InitErrorIPCCompositorConnectFailed            InitError = 306
	InitErrorIPCCompositorInvalidConnectResponse   InitError = 307
	InitErrorIPCConnectFailedAfterMultipleAttempts InitError = 308
)

// Compositor, vendor and Steam groups.
const (
	InitErrorCompositorFailed                     InitError = 400
	InitErrorCompositorD3D11HardwareRequired      InitError = 401
	InitErrorCompositorFirmwareRequiresUpdate     InitError = 402
	InitErrorCompositorOverlayInitFailed          InitError = 403
	InitErrorCompositorScreenshotsInitFailed      InitError = 404
	InitErrorVendorUnableToConnectToOculusRuntime InitError = 1000
	InitErrorSteamInstallationNotFound            InitError = 2000
)

// Error implements error. The text comes from the same description
// lookup callers get explicitly, so wrapping never loses information.
func (e InitError) Error() string {
	return "openvr: " + e.Description()
}

// Symbol returns the stable vendor symbol for the code, e.g.
// "VRInitError_Init_HmdNotFound". It prefers the installed runtime's
// own lookup and falls back to a built-in table mirroring the vendor
// strings, so stub builds and mock backends produce identical text.
func (e InitError) Symbol() string {
	if bindings.Available() {
		if s := bindings.InitErrorSymbol(int32(e)); s != "" {
			return s
		}
	}
	if s, ok := initErrorSymbols[e]; ok {
		return s
	}
	return fmt.Sprintf("VRInitError_%d", int32(e))
}

// Description returns a human-readable description of the code, with
// the same native-first, table-fallback behavior as Symbol.
func (e InitError) Description() string {
	if bindings.Available() {
		if s := bindings.InitErrorDescription(int32(e)); s != "" {
			return s
		}
	}
	if s, ok := initErrorDescriptions[e]; ok {
		return s
	}
	return fmt.Sprintf("Unknown VR init error (%d)", int32(e))
}

// KnownInitErrors returns every code this package declares, ascending.
func KnownInitErrors() []InitError {
	out := make([]InitError, 0, len(initErrorSymbols))
	for code := range initErrorSymbols {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var initErrorSymbols = map[InitError]string{
	InitErrorNone:    "VRInitError_None",
	InitErrorUnknown: "VRInitError_Unknown",

	InitErrorInstallationNotFound:         "VRInitError_Init_InstallationNotFound",
	InitErrorInstallationCorrupt:          "VRInitError_Init_InstallationCorrupt",
	InitErrorVRClientDLLNotFound:          "VRInitError_Init_VRClientDLLNotFound",
	InitErrorFileNotFound:                 "VRInitError_Init_FileNotFound",
	InitErrorFactoryNotFound:              "VRInitError_Init_FactoryNotFound",
	InitErrorInterfaceNotFound:            "VRInitError_Init_InterfaceNotFound",
	InitErrorInvalidInterface:             "VRInitError_Init_InvalidInterface",
	InitErrorUserConfigDirectoryInvalid:   "VRInitError_Init_UserConfigDirectoryInvalid",
	InitErrorHmdNotFound:                  "VRInitError_Init_HmdNotFound",
	InitErrorNotInitialized:               "VRInitError_Init_NotInitialized",
	InitErrorPathRegistryNotFound:         "VRInitError_Init_PathRegistryNotFound",
	InitErrorNoConfigPath:                 "VRInitError_Init_NoConfigPath",
	InitErrorNoLogPath:                    "VRInitError_Init_NoLogPath",
	InitErrorPathRegistryNotWritable:      "VRInitError_Init_PathRegistryNotWritable",
	InitErrorAppInfoInitFailed:            "VRInitError_Init_AppInfoInitFailed",
	InitErrorRetry:                        "VRInitError_Init_Retry",
	InitErrorInitCanceledByUser:           "VRInitError_Init_InitCanceledByUser",
	InitErrorAnotherAppLaunching:          "VRInitError_Init_AnotherAppLaunching",
	InitErrorSettingsInitFailed:           "VRInitError_Init_SettingsInitFailed",
	InitErrorShuttingDown:                 "VRInitError_Init_ShuttingDown",
	InitErrorTooManyObjects:               "VRInitError_Init_TooManyObjects",
	InitErrorNoServerForBackgroundApp:     "VRInitError_Init_NoServerForBackgroundApp",
	InitErrorNotSupportedWithCompositor:   "VRInitError_Init_NotSupportedWithCompositor",
	InitErrorNotAvailableToUtilityApps:    "VRInitError_Init_NotAvailableToUtilityApps",
	InitErrorInternal:                     "VRInitError_Init_Internal",
	InitErrorHmdDriverIdIsNone:            "VRInitError_Init_HmdDriverIdIsNone",
	InitErrorHmdNotFoundPresenceFailed:    "VRInitError_Init_HmdNotFoundPresenceFailed",
	InitErrorVRMonitorNotFound:            "VRInitError_Init_VRMonitorNotFound",
	InitErrorVRMonitorStartupFailed:       "VRInitError_Init_VRMonitorStartupFailed",
	InitErrorLowPowerWatchdogNotSupported: "VRInitError_Init_LowPowerWatchdogNotSupported",
	InitErrorInvalidApplicationType:       "VRInitError_Init_InvalidApplicationType",
	InitErrorNotAvailableToWatchdogApps:   "VRInitError_Init_NotAvailableToWatchdogApps",
	InitErrorWatchdogDisabledInSettings:   "VRInitError_Init_WatchdogDisabledInSettings",
	InitErrorVRDashboardNotFound:          "VRInitError_Init_VRDashboardNotFound",
	InitErrorVRDashboardStartupFailed:     "VRInitError_Init_VRDashboardStartupFailed",

	InitErrorDriverFailed:                        "VRInitError_Driver_Failed",
	InitErrorDriverUnknown:                       "VRInitError_Driver_Unknown",
	InitErrorDriverHmdUnknown:                    "VRInitError_Driver_HmdUnknown",
	InitErrorDriverNotLoaded:                     "VRInitError_Driver_NotLoaded",
	InitErrorDriverRuntimeOutOfDate:              "VRInitError_Driver_RuntimeOutOfDate",
	InitErrorDriverHmdInUse:                      "VRInitError_Driver_HmdInUse",
	InitErrorDriverNotCalibrated:                 "VRInitError_Driver_NotCalibrated",
	InitErrorDriverCalibrationInvalid:            "VRInitError_Driver_CalibrationInvalid",
	InitErrorDriverHmdDisplayNotFound:            "VRInitError_Driver_HmdDisplayNotFound",
	InitErrorDriverTrackedDeviceInterfaceUnknown: "VRInitError_Driver_TrackedDeviceInterfaceUnknown",
	InitErrorDriverHmdDriverIdOutOfBounds:        "VRInitError_Driver_HmdDriverIdOutOfBounds",
	InitErrorDriverHmdDisplayMirrored:            "VRInitError_Driver_HmdDisplayMirrored",

	InitErrorIPCServerInitFailed:                   "VRInitError_IPC_ServerInitFailed",
	InitErrorIPCConnectFailed:                      "VRInitError_IPC_ConnectFailed",
	InitErrorIPCSharedStateInitFailed:              "VRInitError_IPC_SharedStateInitFailed",
	InitErrorIPCCompositorInitFailed:               "VRInitError_IPC_CompositorInitFailed",
	InitErrorIPCMutexInitFailed:                    "VRInitError_IPC_MutexInitFailed",
	InitErrorIPCFailed:                             "VRInitError_IPC_Failed",
	InitErrorIPCCompositorConnectFailed:            "VRInitError_IPC_CompositorConnectFailed",
	InitErrorIPCCompositorInvalidConnectResponse:   "VRInitError_IPC_CompositorInvalidConnectResponse",
	InitErrorIPCConnectFailedAfterMultipleAttempts: "VRInitError_IPC_ConnectFailedAfterMultipleAttempts",

	InitErrorCompositorFailed:                     "VRInitError_Compositor_Failed",
	InitErrorCompositorD3D11HardwareRequired:      "VRInitError_Compositor_D3D11HardwareRequired",
	InitErrorCompositorFirmwareRequiresUpdate:     "VRInitError_Compositor_FirmwareRequiresUpdate",
	InitErrorCompositorOverlayInitFailed:          "VRInitError_Compositor_OverlayInitFailed",
	InitErrorCompositorScreenshotsInitFailed:      "VRInitError_Compositor_ScreenshotsInitFailed",
	InitErrorVendorUnableToConnectToOculusRuntime: "VRInitError_VendorSpecific_UnableToConnectToOculusRuntime",
	InitErrorSteamInstallationNotFound:            "VRInitError_Steam_SteamInstallationNotFound",
}

var initErrorDescriptions = map[InitError]string{
	InitErrorNone:    "No Error (0)",
	InitErrorUnknown: "Unknown Error (1)",

	InitErrorInstallationNotFound:         "Installation Not Found (100)",
	InitErrorInstallationCorrupt:          "Installation Corrupt (101)",
	InitErrorVRClientDLLNotFound:          "vrclient Shared Lib Not Found (102)",
	InitErrorFileNotFound:                 "File Not Found (103)",
	InitErrorFactoryNotFound:              "Factory Function Not Found (104)",
	InitErrorInterfaceNotFound:            "Interface Not Found (105)",
	InitErrorInvalidInterface:             "Invalid Interface (106)",
	InitErrorUserConfigDirectoryInvalid:   "User Config Directory Invalid (107)",
	InitErrorHmdNotFound:                  "Hmd Not Found (108)",
	InitErrorNotInitialized:               "Not Initialized (109)",
	InitErrorPathRegistryNotFound:         "Installation path could not be located (110)",
	InitErrorNoConfigPath:                 "Config path could not be located (111)",
	InitErrorNoLogPath:                    "Log path could not be located (112)",
	InitErrorPathRegistryNotWritable:      "Unable to write to config path (113)",
	InitErrorAppInfoInitFailed:            "App info manager init failed (114)",
	InitErrorRetry:                        "Internal Retry (115)",
	InitErrorInitCanceledByUser:           "User canceled init (116)",
	InitErrorAnotherAppLaunching:          "Another app was already launching (117)",
	InitErrorSettingsInitFailed:           "Settings manager init failed (118)",
	InitErrorShuttingDown:                 "VR system shutting down (119)",
	InitErrorTooManyObjects:               "Too many tracked objects (120)",
	InitErrorNoServerForBackgroundApp:     "Not starting vrserver for background app (121)",
	InitErrorNotSupportedWithCompositor:   "The requested interface is incompatible with the compositor and the compositor is running (122)",
	InitErrorNotAvailableToUtilityApps:    "This interface is not available to utility applications (123)",
	InitErrorInternal:                     "vrserver internal error (124)",
	InitErrorHmdDriverIdIsNone:            "Hmd DriverId is invalid (125)",
	InitErrorHmdNotFoundPresenceFailed:    "Hmd Not Found Presence Failed (126)",
	InitErrorVRMonitorNotFound:            "VR Monitor Not Found (127)",
	InitErrorVRMonitorStartupFailed:       "VR Monitor startup failed (128)",
	InitErrorLowPowerWatchdogNotSupported: "Low Power Watchdog Not Supported (129)",
	InitErrorInvalidApplicationType:       "Invalid Application Type (130)",
	InitErrorNotAvailableToWatchdogApps:   "Not available to watchdog apps (131)",
	InitErrorWatchdogDisabledInSettings:   "Watchdog disabled in settings (132)",
	InitErrorVRDashboardNotFound:          "VR Dashboard Not Found (133)",
	InitErrorVRDashboardStartupFailed:     "VR Dashboard startup failed (134)",

	InitErrorDriverFailed:                        "Driver Failed (200)",
	InitErrorDriverUnknown:                       "Driver Not Known (201)",
	InitErrorDriverHmdUnknown:                    "HMD Not Known (202)",
	InitErrorDriverNotLoaded:                     "Driver Not Loaded (203)",
	InitErrorDriverRuntimeOutOfDate:              "Driver runtime is out of date (204)",
	InitErrorDriverHmdInUse:                      "HMD already in use by another application (205)",
	InitErrorDriverNotCalibrated:                 "Device is not calibrated (206)",
	InitErrorDriverCalibrationInvalid:            "Device Calibration is invalid (207)",
	InitErrorDriverHmdDisplayNotFound:            "HMD detected over USB, but Monitor not found (208)",
	InitErrorDriverTrackedDeviceInterfaceUnknown: "Driver Tracked Device Interface unknown (209)",
	InitErrorDriverHmdDriverIdOutOfBounds:        "HMD DriverId is out of bounds (211)",
	InitErrorDriverHmdDisplayMirrored:            "HMD detected over USB, but Monitor may be mirrored instead of extended (212)",

	InitErrorIPCServerInitFailed:                   "VR Server Init Failed (300)",
	InitErrorIPCConnectFailed:                      "Connect to VR Server Failed (301)",
	InitErrorIPCSharedStateInitFailed:              "Shared IPC State Init Failed (302)",
	InitErrorIPCCompositorInitFailed:               "Shared IPC Compositor Init Failed (303)",
	InitErrorIPCMutexInitFailed:                    "Shared IPC Mutex Init Failed (304)",
	InitErrorIPCFailed:                             "Shared IPC Failed (305)",
	InitErrorIPCCompositorConnectFailed:            "Shared IPC Compositor Connect Failed (306)",
	InitErrorIPCCompositorInvalidConnectResponse:   "Shared IPC Compositor Invalid Connect Response (307)",
	InitErrorIPCConnectFailedAfterMultipleAttempts: "Shared IPC Connect Failed After Multiple Attempts (308)",

	InitErrorCompositorFailed:                     "Compositor failed to start (400)",
	InitErrorCompositorD3D11HardwareRequired:      "Compositor requires D3D11 hardware (401)",
	InitErrorCompositorFirmwareRequiresUpdate:     "Compositor requires a firmware update (402)",
	InitErrorCompositorOverlayInitFailed:          "Compositor overlay init failed (403)",
	InitErrorCompositorScreenshotsInitFailed:      "Compositor screenshots init failed (404)",
	InitErrorVendorUnableToConnectToOculusRuntime: "Unable to connect to Oculus Runtime (1000)",
	InitErrorSteamInstallationNotFound:            "Steam installation not found (2000)",
}
