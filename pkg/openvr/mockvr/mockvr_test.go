package mockvr

import (
	"testing"

	"github.com/vrmp/openvr-go/pkg/openvr"
)

func TestSequencingEnforced(t *testing.T) {
	m := New()

	// Interface lookup before init must fail the way the real runtime
	// fails.
	p, code := m.GetGenericInterface(openvr.IVRSystemVersion)
	if p != 0 || code != openvr.InitErrorNotInitialized {
		t.Fatalf("lookup before init: got (%#x, %d), want (0, %d)", p, int32(code), int32(openvr.InitErrorNotInitialized))
	}

	token, code := m.InitInternal(openvr.ApplicationBackground)
	if code != openvr.InitErrorNone {
		t.Fatalf("init failed: %d", int32(code))
	}
	if token == 0 {
		t.Fatal("init succeeded with zero token")
	}

	p, code = m.GetGenericInterface(openvr.IVRSystemVersion)
	if p == 0 || code != openvr.InitErrorNone {
		t.Fatalf("lookup after init: got (%#x, %d)", p, int32(code))
	}

	m.ShutdownInternal()
	p, code = m.GetGenericInterface(openvr.IVRSystemVersion)
	if p != 0 || code != openvr.InitErrorNotInitialized {
		t.Fatal("lookup after shutdown should fail")
	}
}

func TestForcedInitError(t *testing.T) {
	m := New()
	m.FailInitWith(openvr.InitErrorAnotherAppLaunching)

	token, code := m.InitInternal(openvr.ApplicationScene)
	if token != 0 || code != openvr.InitErrorAnotherAppLaunching {
		t.Fatalf("got (%#x, %d)", token, int32(code))
	}

	m.FailInitWith(openvr.InitErrorNone)
	if _, code := m.InitInternal(openvr.ApplicationScene); code != openvr.InitErrorNone {
		t.Fatalf("forced error did not clear: %d", int32(code))
	}
}

func TestRegisterInterface(t *testing.T) {
	m := New()
	m.RegisterInterface("IVROverlay_027", 0x3000)

	if _, code := m.InitInternal(openvr.ApplicationOverlay); code != openvr.InitErrorNone {
		t.Fatalf("init failed: %d", int32(code))
	}

	p, code := m.GetGenericInterface("IVROverlay_027")
	if p != 0x3000 || code != openvr.InitErrorNone {
		t.Fatalf("got (%#x, %d)", p, int32(code))
	}
}

func TestTokensAreDistinctPerSession(t *testing.T) {
	m := New()

	t1, _ := m.InitInternal(openvr.ApplicationBackground)
	m.ShutdownInternal()
	t2, _ := m.InitInternal(openvr.ApplicationBackground)

	if t1 == t2 {
		t.Fatalf("expected distinct session tokens, got %#x twice", t1)
	}
	if m.InitCalls() != 2 || m.ShutdownCalls() != 1 {
		t.Fatalf("call counters drifted: init=%d shutdown=%d", m.InitCalls(), m.ShutdownCalls())
	}
}
