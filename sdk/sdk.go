package sdk

import (
	stderrors "errors"
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"

	tapsdk "github.com/taptap/tapsdk-go"
	"github.com/taptap/tapsdk-go/errors"
	"github.com/taptap/tapsdk-go/events"
	"github.com/taptap/tapsdk-go/internal/ffi"
)

// callbackEvents is every event ID the vendor library reports. The global
// trampoline is registered for each at Init and removed at Close.
var callbackEvents = []tapsdk.EventID{
	tapsdk.EventSystemStateChanged,
	tapsdk.EventAuthorizeFinished,
	tapsdk.EventGamePlayableStatusChanged,
	tapsdk.EventDLCPlayableStatusChanged,
	tapsdk.EventCloudSaveList,
	tapsdk.EventCloudSaveCreate,
	tapsdk.EventCloudSaveUpdate,
	tapsdk.EventCloudSaveDelete,
	tapsdk.EventCloudSaveGetData,
	tapsdk.EventCloudSaveGetCover,
}

var (
	libraryPath string
	initialized atomic.Bool
	active      atomic.Pointer[SDK]
)

// SetLibraryPath overrides the vendor library location. Call it before Init
// or RestartAppIfNecessary; the default is taptap_api.dll resolved through
// the platform's library search path.
func SetLibraryPath(path string) {
	libraryPath = path
}

// loadLibrary resolves the vendor entry points. Unsupported platforms keep
// the stub table, which reports the platform as absent; a table swapped in by
// tests is left alone.
func loadLibrary() error {
	if ffi.Overridden() {
		return nil
	}
	if err := ffi.Load(libraryPath); err != nil {
		if stderrors.Is(err, ffi.ErrUnsupportedPlatform) {
			return nil
		}
		path := libraryPath
		if path == "" {
			path = ffi.DefaultLibrary
		}
		return errors.LibraryLoad("loading "+path, err)
	}
	return nil
}

// RestartAppIfNecessary asks the TapTap client whether the game was started
// outside the platform. When it returns true the client is relaunching the
// game through the platform and this process should exit immediately. Games
// call this first, before Init.
func RestartAppIfNecessary(clientID string) (bool, error) {
	if err := loadLibrary(); err != nil {
		return false, err
	}
	return ffi.P.RestartAppIfNecessary(clientID), nil
}

// SDK is a live binding to the vendor library. At most one instance exists
// at a time: Init creates it and Close retires it.
type SDK struct {
	queue   eventQueue
	pending pendingSet
	reqID   atomic.Int64
	closed  atomic.Bool
	pumping atomic.Bool
}

// Init initializes the vendor library with the game's public key and
// registers the event callback for every event ID. It fails when the TapTap
// client is not running, the key is rejected, or an instance already exists.
func Init(pubKey string) (*SDK, error) {
	if err := loadLibrary(); err != nil {
		return nil, err
	}
	if !initialized.CompareAndSwap(false, true) {
		return nil, errors.AlreadyInitialized()
	}

	var errMsg [ffi.ErrMsgLen]byte
	result := tapsdk.InitResult(ffi.P.Init(&errMsg[0], pubKey))
	if result != tapsdk.InitOK {
		initialized.Store(false)
		return nil, errors.InitFailed(result, ffi.BufString(errMsg[:]))
	}

	s := &SDK{}
	ffi.SetEventSink(s.enqueue)
	cb := ffi.CallbackPtr()
	for _, id := range callbackEvents {
		ffi.P.RegisterCallback(uint32(id), cb)
	}
	active.Store(s)

	Logger().Info("tapsdk initialized")
	return s, nil
}

// Active returns the live instance, or nil before Init and after Close.
// Domain packages use it to reach the current session.
func Active() *SDK {
	return active.Load()
}

// Ready reports whether the instance can still issue native calls.
func (s *SDK) Ready() bool {
	return !s.closed.Load()
}

// Close unregisters the event callback, shuts the vendor library down, and
// drops anything still queued or pending. The instance is unusable
// afterwards: every call fails with a closed error.
func (s *SDK) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return errors.Closed("sdk.close")
	}

	cb := ffi.CallbackPtr()
	for _, id := range callbackEvents {
		ffi.P.UnregisterCallback(uint32(id), cb)
	}
	ffi.SetEventSink(nil)
	active.CompareAndSwap(s, nil)
	ffi.P.Shutdown()
	initialized.Store(false)

	s.queue.drain()
	s.pending.clear()

	Logger().Info("tapsdk shut down")
	return nil
}

// ClientID returns the client ID the vendor library was launched with.
// The second result is false when the library has no ID to report.
func (s *SDK) ClientID() (string, bool) {
	if s.closed.Load() {
		return "", false
	}
	var buf [ffi.IDBufLen]byte
	if !ffi.P.GetClientID(&buf[0]) {
		return "", false
	}
	return ffi.BufString(buf[:]), true
}

// PollEvents flushes the vendor library's callbacks and returns every event
// buffered since the last poll, in arrival order. Correlated responses retire
// their pending-request entries. Single consumer; never blocks.
func (s *SDK) PollEvents() []events.Event {
	if s.closed.Load() {
		return nil
	}
	ffi.P.RunCallbacks()

	evs := s.queue.drain()
	for _, ev := range evs {
		if c, ok := ev.(events.Correlated); ok {
			s.pending.resolve(c.Request())
		}
	}
	return evs
}

// NextRequestID issues a fresh correlation ID for an asynchronous request.
// IDs are unique per instance and start at 1.
func (s *SDK) NextRequestID() int64 {
	return s.reqID.Add(1)
}

// Track registers an in-flight asynchronous request. PollEvents retires the
// entry when the correlated response event arrives.
func (s *SDK) Track(requestID int64, op string) {
	s.pending.track(requestID, op)
}

// Pending returns the outstanding asynchronous requests, ordered by ID.
func (s *SDK) Pending() []PendingRequest {
	return s.pending.snapshot()
}

// enqueue is the event sink behind the native trampoline. It decodes the
// payload before returning; the pointer is dead after that.
func (s *SDK) enqueue(eventID uint32, data unsafe.Pointer) {
	ev := events.Decode(tapsdk.EventID(eventID), data)
	s.queue.push(ev)
	Logger().Debug("event buffered", zap.Stringer("event", ev.EventID()))
}
