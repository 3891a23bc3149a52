package tapsdk

import "fmt"

// EventID tags each native callback with its event category. The numbering
// scheme is partitioned into vendor-reserved ranges: [1, 2000) platform,
// [2001, 4000) user, [4001, 6000) ownership, [6001, 8000) cloud save.
type EventID uint32

const (
	EventUnknown EventID = 0

	EventSystemStateChanged EventID = 1

	EventAuthorizeFinished EventID = 2002

	EventGamePlayableStatusChanged EventID = 4001
	EventDLCPlayableStatusChanged  EventID = 4002

	EventCloudSaveList     EventID = 6001
	EventCloudSaveCreate   EventID = 6002
	EventCloudSaveUpdate   EventID = 6003
	EventCloudSaveDelete   EventID = 6004
	EventCloudSaveGetData  EventID = 6005
	EventCloudSaveGetCover EventID = 6006
)

func (id EventID) String() string {
	switch id {
	case EventSystemStateChanged:
		return "system-state-changed"
	case EventAuthorizeFinished:
		return "authorize-finished"
	case EventGamePlayableStatusChanged:
		return "game-playable-status-changed"
	case EventDLCPlayableStatusChanged:
		return "dlc-playable-status-changed"
	case EventCloudSaveList:
		return "cloud-save-list"
	case EventCloudSaveCreate:
		return "cloud-save-create"
	case EventCloudSaveUpdate:
		return "cloud-save-update"
	case EventCloudSaveDelete:
		return "cloud-save-delete"
	case EventCloudSaveGetData:
		return "cloud-save-get-data"
	case EventCloudSaveGetCover:
		return "cloud-save-get-cover"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(id))
	}
}

// SystemState reports the TapTap client's connectivity to its backend.
type SystemState uint32

const (
	StateUnknown SystemState = 0
	// StatePlatformOnline means the TapTap client can reach its servers.
	// Restrictions applied on a previous offline notification can be lifted.
	StatePlatformOnline SystemState = 1
	// StatePlatformOffline means ownership change notifications (e.g. refunds)
	// are not delivered in real time.
	StatePlatformOffline SystemState = 2
	// StatePlatformShutdown means the TapTap client is exiting. The game
	// should save and exit immediately.
	StatePlatformShutdown SystemState = 3
)

func (s SystemState) String() string {
	switch s {
	case StatePlatformOnline:
		return "online"
	case StatePlatformOffline:
		return "offline"
	case StatePlatformShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// InitResult is the outcome of initializing the native SDK.
type InitResult uint32

const (
	InitOK                      InitResult = 0
	InitFailedGeneric           InitResult = 1
	InitNoPlatform              InitResult = 2
	InitNotLaunchedByPlatform   InitResult = 3
	InitPlatformVersionMismatch InitResult = 4
)

func (r InitResult) String() string {
	switch r {
	case InitOK:
		return "ok"
	case InitFailedGeneric:
		return "generic failure"
	case InitNoPlatform:
		return "TapTap platform not found"
	case InitNotLaunchedByPlatform:
		return "not launched by TapTap"
	case InitPlatformVersionMismatch:
		return "platform version mismatch"
	default:
		return fmt.Sprintf("init result %d", uint32(r))
	}
}

// AuthorizeResult is the outcome of dispatching an authorization request.
// It reports whether the flow started, not whether the user approved it;
// approval arrives later as an AuthorizeFinished event.
type AuthorizeResult uint32

const (
	AuthorizeUnknown  AuthorizeResult = 0
	AuthorizeOK       AuthorizeResult = 1
	AuthorizeFailed   AuthorizeResult = 2
	AuthorizeInFlight AuthorizeResult = 3
)

func (r AuthorizeResult) String() string {
	switch r {
	case AuthorizeUnknown:
		return "unknown error"
	case AuthorizeOK:
		return "ok"
	case AuthorizeFailed:
		return "failed to start authorization"
	case AuthorizeInFlight:
		return "authorization already in progress"
	default:
		return fmt.Sprintf("authorize result %d", uint32(r))
	}
}

// DispatchResult is the outcome of dispatching a cloud-save request. Anything
// other than DispatchOK means the request was rejected before leaving the
// process and no callback will fire.
type DispatchResult uint32

const (
	DispatchOK                  DispatchResult = 0
	DispatchUninitialized       DispatchResult = 1
	DispatchNoClient            DispatchResult = 2
	DispatchClientOutdated      DispatchResult = 3
	DispatchInvalidArgument     DispatchResult = 4
	DispatchSDKFailed           DispatchResult = 5
	DispatchSaveFileUnreadable  DispatchResult = 6
	DispatchSaveFileTooLarge    DispatchResult = 7
	DispatchCoverFileUnreadable DispatchResult = 8
	DispatchCoverFileTooLarge   DispatchResult = 9
)

func (r DispatchResult) String() string {
	switch r {
	case DispatchOK:
		return "ok"
	case DispatchUninitialized:
		return "SDK not initialized"
	case DispatchNoClient:
		return "TapTap client not running"
	case DispatchClientOutdated:
		return "TapTap client outdated"
	case DispatchInvalidArgument:
		return "invalid argument"
	case DispatchSDKFailed:
		return "SDK internal failure"
	case DispatchSaveFileUnreadable:
		return "failed to read save file"
	case DispatchSaveFileTooLarge:
		return "save file exceeds 10MB limit"
	case DispatchCoverFileUnreadable:
		return "failed to read cover file"
	case DispatchCoverFileTooLarge:
		return "cover file exceeds 512KB limit"
	default:
		return fmt.Sprintf("dispatch result %d", uint32(r))
	}
}

// Code is a vendor-defined error code carried by failed asynchronous
// responses. The space is partitioned: 0-10 generic, 200000-299999 reserved
// for anti-addiction, 400000-499999 cloud save, 500000-599999 leaderboards.
type Code int64

const (
	CodeSuccess             Code = 0
	CodeUnknown             Code = 1
	CodeUnauthorized        Code = 2
	CodeMethodNotAllowed    Code = 3
	CodeUnimplemented       Code = 4
	CodeInvalidArguments    Code = 5
	CodeForbidden           Code = 6
	CodeUserIsDeactivated   Code = 7
	CodeInternalServerError Code = 8
	CodeInternalSDKError    Code = 9
	CodeNetworkError        Code = 10

	CodeCloudSaveInvalidFileSize    Code = 400000
	CodeCloudSaveUploadRateLimit    Code = 400001
	CodeCloudSaveFileNotFound       Code = 400002
	CodeCloudSaveFileCountLimit     Code = 400003
	CodeCloudSaveStorageSizeLimit   Code = 400004
	CodeCloudSaveTotalStorageLimit  Code = 400005
	CodeCloudSaveTimeout            Code = 400006
	CodeCloudSaveConcurrentCall     Code = 400007
	CodeCloudSaveStorageServerError Code = 400008
	CodeCloudSaveInvalidName        Code = 400009
)

func (c Code) String() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodeUnknown:
		return "unknown error"
	case CodeUnauthorized:
		return "unauthorized"
	case CodeMethodNotAllowed:
		return "method not allowed"
	case CodeUnimplemented:
		return "unimplemented"
	case CodeInvalidArguments:
		return "invalid arguments"
	case CodeForbidden:
		return "forbidden"
	case CodeUserIsDeactivated:
		return "user is deactivated"
	case CodeInternalServerError:
		return "internal server error"
	case CodeInternalSDKError:
		return "internal SDK error"
	case CodeNetworkError:
		return "network error"
	case CodeCloudSaveInvalidFileSize:
		return "invalid save or cover file size"
	case CodeCloudSaveUploadRateLimit:
		return "upload rate limit exceeded"
	case CodeCloudSaveFileNotFound:
		return "save file not found"
	case CodeCloudSaveFileCountLimit:
		return "save file count limit exceeded"
	case CodeCloudSaveStorageSizeLimit:
		return "per-client storage limit exceeded"
	case CodeCloudSaveTotalStorageLimit:
		return "total storage limit exceeded"
	case CodeCloudSaveTimeout:
		return "request timed out"
	case CodeCloudSaveConcurrentCall:
		return "concurrent call disallowed"
	case CodeCloudSaveStorageServerError:
		return "storage server error"
	case CodeCloudSaveInvalidName:
		return "invalid save name"
	default:
		return fmt.Sprintf("code %d", int64(c))
	}
}

// CloudSaveRange reports whether c falls in the vendor's cloud-save code
// partition.
func (c Code) CloudSaveRange() bool {
	return c >= 400000 && c < 500000
}
