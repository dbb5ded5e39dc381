package openvr

import (
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into
	// the current binary (built without cgo), or that the operation
	// needs real vendor pointers a substitute backend cannot supply.
	ErrNotBuilt = errors.New("openvr: native bindings not built")

	// ErrAlreadyInitialized reports a second Init while a Runtime is
	// live. The vendor runtime is a per-process singleton.
	ErrAlreadyInitialized = errors.New("openvr: runtime already initialized in this process")

	// ErrShutdown reports use of a Runtime after Shutdown.
	ErrShutdown = errors.New("openvr: runtime already shut down")
)

// FnTablePrefix is prepended to an interface version to request the
// C-callable function table flavor of the interface.
const FnTablePrefix = "FnTable:"

// interfaceCacheSize bounds the per-Runtime interface lookup cache. The
// runtime publishes only a handful of interfaces; 16 covers all of them
// with both naming flavors.
const interfaceCacheSize = 16

var (
	processMu sync.Mutex
	processRT *Runtime
)

// Runtime owns an active connection to the OpenVR runtime: the opaque
// session token returned by the native init call and the backend the
// session was opened through. At most one Runtime is live per process.
type Runtime struct {
	backend Backend
	log     *zap.Logger
	token   uintptr

	mu     sync.Mutex
	closed bool
	ifaces *lru.Cache[string, uintptr] // nil when caching is disabled
}

// Init connects the calling process to the OpenVR runtime in the given
// application mode. On a non-success vendor code it returns a nil
// Runtime and the InitError itself; there is no handle to check before
// the error, by construction.
func Init(appType ApplicationType, opts ...Option) (*Runtime, error) {
	o := defaultInitOptions()
	for _, opt := range opts {
		opt(&o)
	}

	backend := o.backend
	if backend == nil {
		backend = nativeBackend{}
	}
	if !backend.Available() {
		return nil, ErrNotBuilt
	}

	processMu.Lock()
	defer processMu.Unlock()
	if processRT != nil {
		return nil, ErrAlreadyInitialized
	}

	token, code := backend.InitInternal(appType)
	if code != InitErrorNone {
		o.logger.Debug("openvr init refused",
			zap.Stringer("application_type", appType),
			zap.Int32("code", int32(code)),
			zap.String("symbol", code.Symbol()))
		return nil, code
	}

	rt := &Runtime{backend: backend, log: o.logger, token: token}
	if o.cacheInterfaces {
		rt.ifaces, _ = lru.New[string, uintptr](interfaceCacheSize)
	}
	processRT = rt
	o.logger.Debug("openvr runtime initialized",
		zap.Stringer("application_type", appType),
		zap.Uint64("session_token", uint64(token)))
	return rt, nil
}

// Token returns the opaque session handle produced by the native init
// call. The value has no structure the caller may rely on.
func (r *Runtime) Token() uintptr { return r.token }

// Shutdown disconnects the process from the runtime and releases the
// process singleton slot. A second call returns ErrShutdown.
func (r *Runtime) Shutdown() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrShutdown
	}

	r.backend.ShutdownInternal()
	r.closed = true
	if r.ifaces != nil {
		r.ifaces.Purge()
	}

	processMu.Lock()
	if processRT == r {
		processRT = nil
	}
	processMu.Unlock()

	r.log.Debug("openvr runtime shut down")
	return nil
}

// GetGenericInterface resolves a versioned sub-interface, e.g.
// "IVRSystem_022". The returned pointer is owned by the runtime and
// stays valid until Shutdown, which is what makes the lookup cache
// sound. Failure returns a zero pointer and the vendor InitError,
// never a garbage pointer.
func (r *Runtime) GetGenericInterface(version string) (uintptr, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, ErrShutdown
	}

	if r.ifaces != nil {
		if p, ok := r.ifaces.Get(version); ok {
			r.log.Debug("interface cache hit", zap.String("version", version))
			return p, nil
		}
	}

	p, code := r.backend.GetGenericInterface(version)
	if code != InitErrorNone {
		r.log.Debug("interface lookup failed",
			zap.String("version", version),
			zap.String("symbol", code.Symbol()))
		return 0, code
	}

	if r.ifaces != nil {
		r.ifaces.Add(version, p)
	}
	r.log.Debug("interface resolved", zap.String("version", version))
	return p, nil
}

// FnTable resolves the C-callable function table flavor of an
// interface by prefixing the version with FnTablePrefix.
func (r *Runtime) FnTable(version string) (uintptr, error) {
	return r.GetGenericInterface(FnTablePrefix + version)
}

// requireNative rejects fn-table operations on substitute backends:
// the typed wrappers call straight through vendor function pointers,
// which only the real runtime can supply.
func (r *Runtime) requireNative() error {
	if _, ok := r.backend.(nativeBackend); !ok {
		return ErrNotBuilt
	}
	return nil
}
