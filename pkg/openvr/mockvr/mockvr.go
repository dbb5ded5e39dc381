// Package mockvr provides an in-memory stand-in for the native OpenVR
// runtime, implementing the openvr.Backend contract.
//
// Mockvr exists for tests and offline tooling: it validates the
// application type, enforces the init-before-interface-lookup
// sequencing the real runtime enforces, and answers interface lookups
// from a configurable registry. It performs no tracking, rendering, or
// IPC of any kind and is not suitable for production use.
package mockvr

import (
	"sync"

	"github.com/vrmp/openvr-go/pkg/openvr"
)

// Runtime is a fake OpenVR runtime. The zero value is not usable; call
// New. All methods are safe for concurrent use.
type Runtime struct {
	mu          sync.Mutex
	installed   bool
	hmdPresent  bool
	forcedErr   openvr.InitError
	interfaces  map[string]uintptr
	initialized bool
	nextToken   uintptr

	initCalls     int
	shutdownCalls int
	lookups       map[string]int
}

var _ openvr.Backend = (*Runtime)(nil)

// New returns a fake runtime that reports itself installed with a
// headset attached and serves the System and Compositor interfaces in
// both naming flavors.
func New() *Runtime {
	return &Runtime{
		installed:  true,
		hmdPresent: true,
		interfaces: map[string]uintptr{
			openvr.IVRSystemVersion:                            0x1000,
			openvr.IVRCompositorVersion:                        0x2000,
			openvr.FnTablePrefix + openvr.IVRSystemVersion:     0x1100,
			openvr.FnTablePrefix + openvr.IVRCompositorVersion: 0x2100,
		},
		lookups: make(map[string]int),
	}
}

// SetInstalled controls the IsRuntimeInstalled answer.
func (m *Runtime) SetInstalled(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.installed = v
}

// SetHmdPresent controls the IsHmdPresent answer.
func (m *Runtime) SetHmdPresent(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hmdPresent = v
}

// FailInitWith forces the next InitInternal calls to return the given
// code. Pass openvr.InitErrorNone to clear.
func (m *Runtime) FailInitWith(code openvr.InitError) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forcedErr = code
}

// RegisterInterface adds a version string to the lookup registry.
func (m *Runtime) RegisterInterface(version string, ptr uintptr) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interfaces[version] = ptr
}

// Available always reports true: the fake is always "linked in".
func (m *Runtime) Available() bool { return true }

func (m *Runtime) InitInternal(appType openvr.ApplicationType) (uintptr, openvr.InitError) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initCalls++

	if m.forcedErr != openvr.InitErrorNone {
		return 0, m.forcedErr
	}
	if !m.installed {
		return 0, openvr.InitErrorInstallationNotFound
	}
	if appType < openvr.ApplicationOther || appType > openvr.ApplicationRoomView {
		return 0, openvr.InitErrorInvalidApplicationType
	}
	if appType == openvr.ApplicationScene && !m.hmdPresent {
		return 0, openvr.InitErrorHmdNotFound
	}

	m.initialized = true
	m.nextToken++
	return m.nextToken, openvr.InitErrorNone
}

func (m *Runtime) ShutdownInternal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shutdownCalls++
	m.initialized = false
}

func (m *Runtime) IsHmdPresent() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hmdPresent
}

func (m *Runtime) IsRuntimeInstalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.installed
}

func (m *Runtime) GetGenericInterface(version string) (uintptr, openvr.InitError) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups[version]++

	if !m.initialized {
		return 0, openvr.InitErrorNotInitialized
	}
	p, ok := m.interfaces[version]
	if !ok {
		return 0, openvr.InitErrorInterfaceNotFound
	}
	return p, openvr.InitErrorNone
}

// InitCalls returns how many times InitInternal was invoked.
func (m *Runtime) InitCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initCalls
}

// ShutdownCalls returns how many times ShutdownInternal was invoked.
func (m *Runtime) ShutdownCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shutdownCalls
}

// Lookups returns how many times the given version string reached the
// fake, cache misses included, cache hits not.
func (m *Runtime) Lookups(version string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookups[version]
}
