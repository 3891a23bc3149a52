// Package user covers TapTap account authorization and identity.
package user

import (
	tapsdk "github.com/taptap/tapsdk-go"
	"github.com/taptap/tapsdk-go/errors"
	"github.com/taptap/tapsdk-go/internal/ffi"
	"github.com/taptap/tapsdk-go/sdk"
)

// ScopePublicProfile grants access to the user's basic profile. Multiple
// scopes are joined with commas.
const ScopePublicProfile = "public_profile"

// Authorize starts the authorization flow in the TapTap client. A nil error
// means the flow started; the outcome (token, cancellation, or failure)
// arrives later as an AuthorizeFinished event.
func Authorize(scopes string) error {
	const op = "user.authorize"
	if sdk.Active() == nil {
		return errors.NotInitialized(op)
	}
	if scopes == "" {
		return errors.InvalidArgument(op, "at least one scope is required")
	}
	if r := tapsdk.AuthorizeResult(ffi.P.UserAsyncAuthorize(scopes)); r != tapsdk.AuthorizeOK {
		return errors.AuthorizeFailed(r)
	}
	return nil
}

// OpenID returns the signed-in user's open ID. The second result is false
// before initialization or when no user is signed in.
func OpenID() (string, bool) {
	if sdk.Active() == nil {
		return "", false
	}
	var buf [ffi.IDBufLen]byte
	if !ffi.P.UserGetOpenID(&buf[0]) {
		return "", false
	}
	return ffi.BufString(buf[:]), true
}
