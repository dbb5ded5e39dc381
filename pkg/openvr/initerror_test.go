package openvr

import (
	"errors"
	"testing"
)

// Vendor header values. If one of these fails, the enum drifted from
// the runtime's published ABI and every code crossing the boundary is
// suspect.
func TestInitErrorValuesMatchVendorHeader(t *testing.T) {
	cases := []struct {
		code InitError
		want int32
	}{
		{InitErrorNone, 0},
		{InitErrorUnknown, 1},
		{InitErrorInstallationNotFound, 100},
		{InitErrorInstallationCorrupt, 101},
		{InitErrorVRClientDLLNotFound, 102},
		{InitErrorFileNotFound, 103},
		{InitErrorFactoryNotFound, 104},
		{InitErrorInterfaceNotFound, 105},
		{InitErrorInvalidInterface, 106},
		{InitErrorUserConfigDirectoryInvalid, 107},
		{InitErrorHmdNotFound, 108},
		{InitErrorNotInitialized, 109},
		{InitErrorPathRegistryNotFound, 110},
		{InitErrorNoConfigPath, 111},
		{InitErrorNoLogPath, 112},
		{InitErrorPathRegistryNotWritable, 113},
		{InitErrorAppInfoInitFailed, 114},
		{InitErrorRetry, 115},
		{InitErrorInitCanceledByUser, 116},
		{InitErrorAnotherAppLaunching, 117},
		{InitErrorSettingsInitFailed, 118},
		{InitErrorShuttingDown, 119},
		{InitErrorTooManyObjects, 120},
		{InitErrorNoServerForBackgroundApp, 121},
		{InitErrorNotSupportedWithCompositor, 122},
		{InitErrorNotAvailableToUtilityApps, 123},
		{InitErrorInternal, 124},
		{InitErrorHmdDriverIdIsNone, 125},
		{InitErrorHmdNotFoundPresenceFailed, 126},
		{InitErrorVRMonitorNotFound, 127},
		{InitErrorVRMonitorStartupFailed, 128},
		{InitErrorLowPowerWatchdogNotSupported, 129},
		{InitErrorInvalidApplicationType, 130},
		{InitErrorNotAvailableToWatchdogApps, 131},
		{InitErrorWatchdogDisabledInSettings, 132},
		{InitErrorVRDashboardNotFound, 133},
		{InitErrorVRDashboardStartupFailed, 134},
		{InitErrorDriverFailed, 200},
		{InitErrorDriverUnknown, 201},
		{InitErrorDriverHmdUnknown, 202},
		{InitErrorDriverNotLoaded, 203},
		{InitErrorDriverRuntimeOutOfDate, 204},
		{InitErrorDriverHmdInUse, 205},
		{InitErrorDriverNotCalibrated, 206},
		{InitErrorDriverCalibrationInvalid, 207},
		{InitErrorDriverHmdDisplayNotFound, 208},
		{InitErrorDriverTrackedDeviceInterfaceUnknown, 209},
		{InitErrorDriverHmdDriverIdOutOfBounds, 211},
		{InitErrorDriverHmdDisplayMirrored, 212},
		{InitErrorIPCServerInitFailed, 300},
		{InitErrorIPCConnectFailed, 301},
		{InitErrorIPCSharedStateInitFailed, 302},
		{InitErrorIPCCompositorInitFailed, 303},
		{InitErrorIPCMutexInitFailed, 304},
		{InitErrorIPCFailed, 305},
		{InitErrorIPCCompositorConnectFailed, 306},
		{InitErrorIPCCompositorInvalidConnectResponse, 307},
		{InitErrorIPCConnectFailedAfterMultipleAttempts, 308},
		{InitErrorCompositorFailed, 400},
		{InitErrorCompositorD3D11HardwareRequired, 401},
		{InitErrorCompositorFirmwareRequiresUpdate, 402},
		{InitErrorCompositorOverlayInitFailed, 403},
		{InitErrorCompositorScreenshotsInitFailed, 404},
		{InitErrorVendorUnableToConnectToOculusRuntime, 1000},
		{InitErrorSteamInstallationNotFound, 2000},
	}

	for _, tc := range cases {
		if int32(tc.code) != tc.want {
			t.Errorf("%s: value %d, vendor header says %d", tc.code.Symbol(), int32(tc.code), tc.want)
		}
	}

	if len(cases) != len(initErrorSymbols) {
		t.Errorf("regression table covers %d codes, package declares %d", len(cases), len(initErrorSymbols))
	}
}

func TestInitErrorStringsStableAndNonEmpty(t *testing.T) {
	for _, code := range KnownInitErrors() {
		sym := code.Symbol()
		if sym == "" {
			t.Errorf("code %d: empty symbol", int32(code))
		}
		if sym != code.Symbol() {
			t.Errorf("code %d: symbol not stable across calls", int32(code))
		}

		desc := code.Description()
		if desc == "" {
			t.Errorf("code %d: empty description", int32(code))
		}
		if desc != code.Description() {
			t.Errorf("code %d: description not stable across calls", int32(code))
		}
	}
}

func TestInitErrorSymbolSpotChecks(t *testing.T) {
	// Symbols are vendor API and must not drift even through the
	// fallback tables.
	spot := map[InitError]string{
		InitErrorNone:                   "VRInitError_None",
		InitErrorHmdNotFound:            "VRInitError_Init_HmdNotFound",
		InitErrorInterfaceNotFound:      "VRInitError_Init_InterfaceNotFound",
		InitErrorInvalidApplicationType: "VRInitError_Init_InvalidApplicationType",
		InitErrorDriverFailed:           "VRInitError_Driver_Failed",
		InitErrorIPCServerInitFailed:    "VRInitError_IPC_ServerInitFailed",
	}
	for code, want := range spot {
		if got := code.Symbol(); got != want {
			t.Errorf("Symbol(%d) = %q, want %q", int32(code), got, want)
		}
	}
}

func TestInitErrorUnknownCode(t *testing.T) {
	code := InitError(987654)
	if code.Symbol() == "" {
		t.Error("unknown code: Symbol returned empty string")
	}
	if code.Description() == "" {
		t.Error("unknown code: Description returned empty string")
	}
}

func TestInitErrorImplementsError(t *testing.T) {
	var err error = InitErrorHmdNotFound

	var code InitError
	if !errors.As(err, &code) {
		t.Fatal("errors.As failed to extract InitError")
	}
	if code != InitErrorHmdNotFound {
		t.Fatalf("extracted %d, want %d", int32(code), int32(InitErrorHmdNotFound))
	}
	if err.Error() == "" {
		t.Error("Error() returned empty string")
	}
}

func TestKnownInitErrorsSorted(t *testing.T) {
	codes := KnownInitErrors()
	if len(codes) == 0 {
		t.Fatal("no known init errors")
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not strictly ascending at index %d: %d >= %d", i, codes[i-1], codes[i])
		}
	}
}
