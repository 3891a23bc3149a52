package script

import (
	"github.com/taptap/tapsdk-go/cloudsave"
	"github.com/taptap/tapsdk-go/dlc"
	"github.com/taptap/tapsdk-go/errors"
	"github.com/taptap/tapsdk-go/events"
	"github.com/taptap/tapsdk-go/sdk"
	"github.com/taptap/tapsdk-go/user"
)

// Backend is the slice of the SDK the JavaScript binding needs. The live
// implementation is SDKBackend; tests substitute fakes.
type Backend interface {
	ClientID() (string, bool)
	OpenID() (string, bool)
	Authorize(scopes string) error
	GameOwned() bool
	DLCOwned(dlcID string) bool
	ShowDLCStore(dlcID string) (bool, error)

	NextRequestID() int64
	CloudSaveList(requestID int64) error
	CloudSaveCreate(requestID int64, req cloudsave.CreateRequest) error
	CloudSaveUpdate(requestID int64, req cloudsave.UpdateRequest) error
	CloudSaveDelete(requestID int64, uuid string) error
	CloudSaveGetData(requestID int64, uuid, fileID string) error
	CloudSaveGetCover(requestID int64, uuid, fileID string) error

	Poll() []events.Event
}

// SDKBackend adapts the live SDK instance to the Backend interface.
type SDKBackend struct{}

func (SDKBackend) active() (*sdk.SDK, error) {
	s := sdk.Active()
	if s == nil {
		return nil, errors.NotInitialized("script")
	}
	return s, nil
}

func (b SDKBackend) ClientID() (string, bool) {
	s := sdk.Active()
	if s == nil {
		return "", false
	}
	return s.ClientID()
}

func (SDKBackend) OpenID() (string, bool) {
	return user.OpenID()
}

func (SDKBackend) Authorize(scopes string) error {
	return user.Authorize(scopes)
}

func (SDKBackend) GameOwned() bool {
	return dlc.GameOwned()
}

func (SDKBackend) DLCOwned(dlcID string) bool {
	return dlc.IsOwned(dlcID)
}

func (SDKBackend) ShowDLCStore(dlcID string) (bool, error) {
	return dlc.ShowStore(dlcID)
}

func (b SDKBackend) NextRequestID() int64 {
	s := sdk.Active()
	if s == nil {
		return 0
	}
	return s.NextRequestID()
}

func (b SDKBackend) CloudSaveList(requestID int64) error {
	cs, err := cloudsave.Get()
	if err != nil {
		return err
	}
	return cs.List(requestID)
}

func (b SDKBackend) CloudSaveCreate(requestID int64, req cloudsave.CreateRequest) error {
	cs, err := cloudsave.Get()
	if err != nil {
		return err
	}
	return cs.Create(requestID, req)
}

func (b SDKBackend) CloudSaveUpdate(requestID int64, req cloudsave.UpdateRequest) error {
	cs, err := cloudsave.Get()
	if err != nil {
		return err
	}
	return cs.Update(requestID, req)
}

func (b SDKBackend) CloudSaveDelete(requestID int64, uuid string) error {
	cs, err := cloudsave.Get()
	if err != nil {
		return err
	}
	return cs.Delete(requestID, uuid)
}

func (b SDKBackend) CloudSaveGetData(requestID int64, uuid, fileID string) error {
	cs, err := cloudsave.Get()
	if err != nil {
		return err
	}
	return cs.GetData(requestID, uuid, fileID)
}

func (b SDKBackend) CloudSaveGetCover(requestID int64, uuid, fileID string) error {
	cs, err := cloudsave.Get()
	if err != nil {
		return err
	}
	return cs.GetCover(requestID, uuid, fileID)
}

func (b SDKBackend) Poll() []events.Event {
	s, err := b.active()
	if err != nil {
		return nil
	}
	return s.PollEvents()
}
