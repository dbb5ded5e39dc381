package openvr

import "testing"

func TestApplicationTypeValuesMatchVendorHeader(t *testing.T) {
	cases := []struct {
		typ  ApplicationType
		want int32
	}{
		{ApplicationOther, 0},
		{ApplicationScene, 1},
		{ApplicationOverlay, 2},
		{ApplicationBackground, 3},
		{ApplicationUtility, 4},
		{ApplicationVRMonitor, 5},
		{ApplicationSteamWatchdog, 6},
		{ApplicationBootstrapper, 7},
		{ApplicationWebHelper, 8},
		{ApplicationOpenXRInstall, 9},
		{ApplicationOpenXRScene, 10},
		{ApplicationOpenXROverlay, 11},
		{ApplicationPrism, 12},
		{ApplicationRoomView, 13},
	}

	for _, tc := range cases {
		if int32(tc.typ) != tc.want {
			t.Errorf("%s: value %d, vendor header says %d", tc.typ, int32(tc.typ), tc.want)
		}
	}
}

func TestApplicationTypeString(t *testing.T) {
	if got := ApplicationScene.String(); got != "Scene" {
		t.Errorf("ApplicationScene.String() = %q, want %q", got, "Scene")
	}
	if got := ApplicationRoomView.String(); got != "RoomView" {
		t.Errorf("ApplicationRoomView.String() = %q, want %q", got, "RoomView")
	}
	if got := ApplicationType(42).String(); got != "ApplicationType(42)" {
		t.Errorf("out of range String() = %q", got)
	}
}

func TestEyeString(t *testing.T) {
	if EyeLeft.String() != "left" || EyeRight.String() != "right" {
		t.Error("eye names drifted")
	}
	if Eye(7).String() != "unknown" {
		t.Error("unexpected name for out of range eye")
	}
}
