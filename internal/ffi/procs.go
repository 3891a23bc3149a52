package ffi

import (
	"errors"
	"sync"
	"unsafe"
)

// DefaultLibrary is the vendor DLL shipped alongside the game executable.
const DefaultLibrary = "taptap_api.dll"

// ErrUnsupportedPlatform is returned by Load where the vendor library does
// not exist. The proc table keeps its stub behavior, so the safe layers work
// (and report "platform not found") without it.
var ErrUnsupportedPlatform = errors.New("ffi: TapTap PC SDK is only available on windows/amd64")

// Procs is the vendor library's entry point table. Field order follows the
// header. On platforms without the vendor library the table keeps the stub
// behavior below, which mirrors how the real library responds when the
// TapTap client is absent.
type Procs struct {
	RestartAppIfNecessary func(clientID string) bool
	Init                  func(errMsg *byte, pubKey string) uint32
	Shutdown              func() bool
	GetClientID           func(buf *byte) bool
	AppsIsOwned           func() bool
	RegisterCallback      func(eventID uint32, callback uintptr)
	UnregisterCallback    func(eventID uint32, callback uintptr)
	RunCallbacks          func()
	UserAsyncAuthorize    func(scopes string) uint32
	UserGetOpenID         func(buf *byte) bool
	DLCShowStore          func(dlcID string) bool
	DLCIsOwned            func(dlcID string) bool
	CloudSave             func() uintptr
	CloudSaveList         func(handle uintptr, requestID int64) uint32
	CloudSaveCreate       func(handle uintptr, requestID int64, req *CloudSaveCreateRequest) uint32
	CloudSaveUpdate       func(handle uintptr, requestID int64, req *CloudSaveUpdateRequest) uint32
	CloudSaveDelete       func(handle uintptr, requestID int64, uuid string) uint32
	CloudSaveGetData      func(handle uintptr, requestID int64, req *CloudSaveGetFileRequest) uint32
	CloudSaveGetCover     func(handle uintptr, requestID int64, req *CloudSaveGetFileRequest) uint32
}

// Vendor result values needed by the stub. The full enumerations live in the
// root package; the raw layer only knows the wire numbers.
const (
	stubInitNoPlatform    = 2 // TapSDK_Init_Result_NoPlatform
	stubAuthorizeUnknown  = 0 // TapUser_AsyncAuthorize_Result_Unknown
	stubUninitialized     = 1 // TapCloudSave_Result_Uninitialized
	stubNoPlatformMessage = "TapTap platform not found"
)

func stubProcs() Procs {
	return Procs{
		RestartAppIfNecessary: func(string) bool { return false },
		Init: func(errMsg *byte, _ string) uint32 {
			if errMsg != nil {
				msg := stubNoPlatformMessage
				dst := unsafe.Slice(errMsg, ErrMsgLen)
				n := copy(dst[:ErrMsgLen-1], msg)
				dst[n] = 0
			}
			return stubInitNoPlatform
		},
		Shutdown:           func() bool { return true },
		GetClientID:        func(*byte) bool { return false },
		AppsIsOwned:        func() bool { return false },
		RegisterCallback:   func(uint32, uintptr) {},
		UnregisterCallback: func(uint32, uintptr) {},
		RunCallbacks:       func() {},
		UserAsyncAuthorize: func(string) uint32 { return stubAuthorizeUnknown },
		UserGetOpenID:      func(*byte) bool { return false },
		DLCShowStore:       func(string) bool { return false },
		DLCIsOwned:         func(string) bool { return false },
		CloudSave:          func() uintptr { return 0 },
		CloudSaveList: func(uintptr, int64) uint32 {
			return stubUninitialized
		},
		CloudSaveCreate: func(uintptr, int64, *CloudSaveCreateRequest) uint32 {
			return stubUninitialized
		},
		CloudSaveUpdate: func(uintptr, int64, *CloudSaveUpdateRequest) uint32 {
			return stubUninitialized
		},
		CloudSaveDelete: func(uintptr, int64, string) uint32 {
			return stubUninitialized
		},
		CloudSaveGetData: func(uintptr, int64, *CloudSaveGetFileRequest) uint32 {
			return stubUninitialized
		},
		CloudSaveGetCover: func(uintptr, int64, *CloudSaveGetFileRequest) uint32 {
			return stubUninitialized
		},
	}
}

// P is the active proc table. It is swapped whole: by Load once at startup,
// or by SetProcs in tests. Callers must not mutate individual fields.
var P = stubProcs()

// SetProcs installs a replacement table and returns the previous one.
// Intended for tests.
func SetProcs(p Procs) Procs {
	prev := P
	P = p
	overridden = true
	return prev
}

// ResetProcs restores the platform stub table.
func ResetProcs() {
	P = stubProcs()
	overridden = false
}

var overridden bool

// Overridden reports whether SetProcs replaced the table. The safe layer
// skips library loading for an overridden table.
func Overridden() bool {
	return overridden
}

var (
	sinkMu sync.RWMutex
	sink   func(eventID uint32, data unsafe.Pointer)
)

// SetEventSink installs the receiver for native callback events. A nil sink
// drops events. Only one sink is supported, matching the single-consumer
// polling model.
func SetEventSink(fn func(eventID uint32, data unsafe.Pointer)) {
	sinkMu.Lock()
	sink = fn
	sinkMu.Unlock()
}

// Dispatch routes one raw event to the registered sink. The native callback
// trampoline lands here; test fakes call it directly from their RunCallbacks.
// The payload pointer is valid only until Dispatch returns.
func Dispatch(eventID uint32, data unsafe.Pointer) {
	sinkMu.RLock()
	fn := sink
	sinkMu.RUnlock()
	if fn != nil {
		fn(eventID, data)
	}
}
