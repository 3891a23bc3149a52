// Package dlc reports game and DLC ownership and opens store pages.
//
// Ownership answers come from the TapTap client's local state; changes made
// while the platform is offline (refunds, new purchases) arrive later as
// playable-status events.
package dlc

import (
	"github.com/taptap/tapsdk-go/errors"
	"github.com/taptap/tapsdk-go/internal/ffi"
	"github.com/taptap/tapsdk-go/sdk"
)

// GameOwned reports whether the current user owns the base game.
// It returns false before initialization.
func GameOwned() bool {
	if sdk.Active() == nil {
		return false
	}
	return ffi.P.AppsIsOwned()
}

// IsOwned reports whether the current user owns the DLC.
// It returns false before initialization.
func IsOwned(dlcID string) bool {
	if sdk.Active() == nil || dlcID == "" {
		return false
	}
	return ffi.P.DLCIsOwned(dlcID)
}

// ShowStore opens the DLC's store page in the TapTap client. A purchase made
// there arrives as a DLCPlayableStatusChanged event.
func ShowStore(dlcID string) (bool, error) {
	const op = "dlc.show_store"
	if sdk.Active() == nil {
		return false, errors.NotInitialized(op)
	}
	if dlcID == "" {
		return false, errors.InvalidArgument(op, "dlc ID must not be empty")
	}
	return ffi.P.DLCShowStore(dlcID), nil
}
