package user_test

import (
	stderrors "errors"
	"testing"
	"unsafe"

	tapsdk "github.com/taptap/tapsdk-go"
	"github.com/taptap/tapsdk-go/errors"
	"github.com/taptap/tapsdk-go/internal/ffi"
	"github.com/taptap/tapsdk-go/sdk"
	"github.com/taptap/tapsdk-go/user"
)

type fixture struct {
	authResult tapsdk.AuthorizeResult
	lastScopes string
	openID     string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{authResult: tapsdk.AuthorizeOK, openID: "open-id-1"}

	p := ffi.Procs{
		RestartAppIfNecessary: func(string) bool { return false },
		Init:                  func(*byte, string) uint32 { return uint32(tapsdk.InitOK) },
		Shutdown:              func() bool { return true },
		GetClientID:           func(*byte) bool { return false },
		AppsIsOwned:           func() bool { return false },
		RegisterCallback:      func(uint32, uintptr) {},
		UnregisterCallback:    func(uint32, uintptr) {},
		RunCallbacks:          func() {},
		UserAsyncAuthorize: func(scopes string) uint32 {
			f.lastScopes = scopes
			return uint32(f.authResult)
		},
		UserGetOpenID: func(buf *byte) bool {
			if f.openID == "" {
				return false
			}
			dst := unsafe.Slice(buf, ffi.IDBufLen)
			n := copy(dst[:ffi.IDBufLen-1], f.openID)
			dst[n] = 0
			return true
		},
		DLCShowStore: func(string) bool { return false },
		DLCIsOwned:   func(string) bool { return false },
		CloudSave:    func() uintptr { return 0 },
		CloudSaveList: func(uintptr, int64) uint32 {
			return uint32(tapsdk.DispatchUninitialized)
		},
		CloudSaveCreate: func(uintptr, int64, *ffi.CloudSaveCreateRequest) uint32 {
			return uint32(tapsdk.DispatchUninitialized)
		},
		CloudSaveUpdate: func(uintptr, int64, *ffi.CloudSaveUpdateRequest) uint32 {
			return uint32(tapsdk.DispatchUninitialized)
		},
		CloudSaveDelete: func(uintptr, int64, string) uint32 {
			return uint32(tapsdk.DispatchUninitialized)
		},
		CloudSaveGetData: func(uintptr, int64, *ffi.CloudSaveGetFileRequest) uint32 {
			return uint32(tapsdk.DispatchUninitialized)
		},
		CloudSaveGetCover: func(uintptr, int64, *ffi.CloudSaveGetFileRequest) uint32 {
			return uint32(tapsdk.DispatchUninitialized)
		},
	}
	ffi.SetProcs(p)
	t.Cleanup(ffi.ResetProcs)

	s, err := sdk.Init("pub-key")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() {
		if s.Ready() {
			s.Close()
		}
	})
	return f
}

func TestAuthorize(t *testing.T) {
	f := setup(t)

	if err := user.Authorize(user.ScopePublicProfile); err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if f.lastScopes != "public_profile" {
		t.Errorf("scopes = %q", f.lastScopes)
	}
}

func TestAuthorizeRejected(t *testing.T) {
	f := setup(t)
	f.authResult = tapsdk.AuthorizeInFlight

	err := user.Authorize(user.ScopePublicProfile)
	var terr *errors.Error
	if !stderrors.As(err, &terr) || terr.Kind != errors.KindAuthorizeFailed {
		t.Fatalf("Authorize = %v", err)
	}
}

func TestAuthorizeRequiresScopes(t *testing.T) {
	setup(t)

	err := user.Authorize("")
	var terr *errors.Error
	if !stderrors.As(err, &terr) || terr.Kind != errors.KindInvalidArgument {
		t.Errorf("Authorize(\"\") = %v", err)
	}
}

func TestAuthorizeBeforeInit(t *testing.T) {
	err := user.Authorize(user.ScopePublicProfile)
	var terr *errors.Error
	if !stderrors.As(err, &terr) || terr.Kind != errors.KindNotInitialized {
		t.Errorf("Authorize before Init = %v", err)
	}
}

func TestOpenID(t *testing.T) {
	f := setup(t)

	id, ok := user.OpenID()
	if !ok || id != "open-id-1" {
		t.Errorf("OpenID = %q, %v", id, ok)
	}

	f.openID = ""
	if _, ok := user.OpenID(); ok {
		t.Error("OpenID should report false when no user is signed in")
	}
}

func TestOpenIDBeforeInit(t *testing.T) {
	if _, ok := user.OpenID(); ok {
		t.Error("OpenID should report false before Init")
	}
}
