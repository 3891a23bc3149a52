package events

import (
	tapsdk "github.com/taptap/tapsdk-go"
	"github.com/taptap/tapsdk-go/errors"
)

// Event is one decoded native callback.
type Event interface {
	EventID() tapsdk.EventID
}

// Correlated is an Event that answers an asynchronous request. Request
// returns the caller-chosen ID passed when the request was issued.
type Correlated interface {
	Event
	Request() int64
}

// SystemStateChanged reports TapTap client connectivity transitions.
type SystemStateChanged struct {
	State tapsdk.SystemState
}

func (*SystemStateChanged) EventID() tapsdk.EventID { return tapsdk.EventSystemStateChanged }

// AuthToken is the credential material delivered after a successful
// authorization.
type AuthToken struct {
	TokenType    string
	KeyID        string
	MacKey       string
	MacAlgorithm string
	Scope        string
}

// AuthorizeFinished concludes an authorization flow started with
// user.Authorize. Token is nil when the user cancelled or Err is non-empty.
type AuthorizeFinished struct {
	Cancelled bool
	Err       string
	Token     *AuthToken
}

func (*AuthorizeFinished) EventID() tapsdk.EventID { return tapsdk.EventAuthorizeFinished }

// GamePlayableStatusChanged reports base-game playability changes, e.g.
// after a refund.
type GamePlayableStatusChanged struct {
	Playable bool
}

func (*GamePlayableStatusChanged) EventID() tapsdk.EventID {
	return tapsdk.EventGamePlayableStatusChanged
}

// DLCPlayableStatusChanged reports DLC playability changes. Playable becomes
// true once the DLC is purchased (and, for external DLC, downloaded).
type DLCPlayableStatusChanged struct {
	DLCID    string
	Playable bool
}

func (*DLCPlayableStatusChanged) EventID() tapsdk.EventID {
	return tapsdk.EventDLCPlayableStatusChanged
}

// SaveInfo describes one cloud save. Times are epoch seconds as reported on
// the wire. Summary and Extra are empty when absent.
type SaveInfo struct {
	UUID         string
	FileID       string
	Name         string
	SaveSize     uint32
	CoverSize    uint32
	Summary      string
	Extra        string
	Playtime     uint32
	CreatedTime  uint32
	ModifiedTime uint32
}

// CloudSaveList answers a cloudsave list request.
type CloudSaveList struct {
	RequestID int64
	Err       *errors.Error
	Saves     []SaveInfo
}

func (*CloudSaveList) EventID() tapsdk.EventID { return tapsdk.EventCloudSaveList }
func (e *CloudSaveList) Request() int64        { return e.RequestID }

// CloudSaveCreate answers a cloudsave create request. Save is nil on failure.
type CloudSaveCreate struct {
	RequestID int64
	Err       *errors.Error
	Save      *SaveInfo
}

func (*CloudSaveCreate) EventID() tapsdk.EventID { return tapsdk.EventCloudSaveCreate }
func (e *CloudSaveCreate) Request() int64        { return e.RequestID }

// CloudSaveUpdate answers a cloudsave update request. Save is nil on failure.
type CloudSaveUpdate struct {
	RequestID int64
	Err       *errors.Error
	Save      *SaveInfo
}

func (*CloudSaveUpdate) EventID() tapsdk.EventID { return tapsdk.EventCloudSaveUpdate }
func (e *CloudSaveUpdate) Request() int64        { return e.RequestID }

// CloudSaveDelete answers a cloudsave delete request.
type CloudSaveDelete struct {
	RequestID int64
	Err       *errors.Error
	UUID      string
}

func (*CloudSaveDelete) EventID() tapsdk.EventID { return tapsdk.EventCloudSaveDelete }
func (e *CloudSaveDelete) Request() int64        { return e.RequestID }

// CloudSaveGetData answers a cloudsave data download request.
type CloudSaveGetData struct {
	RequestID int64
	Err       *errors.Error
	Data      []byte
}

func (*CloudSaveGetData) EventID() tapsdk.EventID { return tapsdk.EventCloudSaveGetData }
func (e *CloudSaveGetData) Request() int64        { return e.RequestID }

// CloudSaveGetCover answers a cloudsave cover download request.
type CloudSaveGetCover struct {
	RequestID int64
	Err       *errors.Error
	Data      []byte
}

func (*CloudSaveGetCover) EventID() tapsdk.EventID { return tapsdk.EventCloudSaveGetCover }
func (e *CloudSaveGetCover) Request() int64        { return e.RequestID }

// Unknown is emitted for unrecognized event IDs and for recognized IDs whose
// payload pointer was NULL.
type Unknown struct {
	ID tapsdk.EventID
}

func (e *Unknown) EventID() tapsdk.EventID { return e.ID }
