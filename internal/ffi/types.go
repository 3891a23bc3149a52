package ffi

import "unsafe"

// Fixed buffer lengths from the vendor header. All strings crossing the
// boundary are NUL-terminated UTF-8.
const (
	ErrMsgLen       = 1024
	IDBufLen        = 256
	AuthErrorLen    = 1024
	TokenTypeLen    = 32
	KeyIDLen        = 8 * 1024
	MacKeyLen       = 8 * 1024
	MacAlgorithmLen = 32
	ScopeLen        = 1024
	DLCIDLen        = 32
)

// The vendor header packs every struct with #pragma pack(8). On 64-bit
// targets Go's natural layout matches; sizes are pinned by tests.

// Error is the code+message pair attached to failed asynchronous responses.
type Error struct {
	Code    int64
	Message *byte
}

// SystemStateNotification is the payload of event ID 1.
type SystemStateNotification struct {
	State uint32
}

// AuthorizeFinishedResponse is the payload of event ID 2002. All fields are
// inline fixed buffers, not pointers.
type AuthorizeFinishedResponse struct {
	IsCancel     bool
	Error        [AuthErrorLen]byte
	TokenType    [TokenTypeLen]byte
	KeyID        [KeyIDLen]byte
	MacKey       [MacKeyLen]byte
	MacAlgorithm [MacAlgorithmLen]byte
	Scope        [ScopeLen]byte
}

// GamePlayableStatusChangedResponse is the payload of event ID 4001.
type GamePlayableStatusChangedResponse struct {
	IsPlayable bool
}

// DLCPlayableStatusChangedResponse is the payload of event ID 4002.
type DLCPlayableStatusChangedResponse struct {
	DLCID      [DLCIDLen]byte
	IsPlayable bool
}

// CloudSaveInfo describes one cloud save. Summary and Extra may be nil.
type CloudSaveInfo struct {
	UUID         *byte
	FileID       *byte
	Name         *byte
	SaveSize     uint32
	CoverSize    uint32
	Summary      *byte
	Extra        *byte
	Playtime     uint32
	CreatedTime  uint32
	ModifiedTime uint32
}

// CloudSaveListResponse is the payload of event ID 6001. Saves points at an
// array of SaveCount entries; nil when SaveCount is zero.
type CloudSaveListResponse struct {
	RequestID int64
	Error     *Error
	SaveCount int32
	Saves     *CloudSaveInfo
}

// CloudSaveCreateRequest is passed to TapCloudSave_AsyncCreate. Extra and
// CoverFilePath may be nil.
type CloudSaveCreateRequest struct {
	Name          *byte
	Summary       *byte
	Extra         *byte
	Playtime      uint32
	DataFilePath  *byte
	CoverFilePath *byte
}

// CloudSaveCreateResponse is the payload of event IDs 6002 and 6003.
type CloudSaveCreateResponse struct {
	RequestID int64
	Error     *Error
	Save      *CloudSaveInfo
}

// CloudSaveUpdateRequest is passed to TapCloudSave_AsyncUpdate.
type CloudSaveUpdateRequest struct {
	UUID          *byte
	Name          *byte
	Summary       *byte
	Extra         *byte
	Playtime      uint32
	DataFilePath  *byte
	CoverFilePath *byte
}

// CloudSaveDeleteResponse is the payload of event ID 6004.
type CloudSaveDeleteResponse struct {
	RequestID int64
	Error     *Error
	UUID      *byte
}

// CloudSaveGetFileRequest is passed to TapCloudSave_AsyncGetData/GetCover.
// UUID and FileID together identify one stored file; FileID changes on every
// update.
type CloudSaveGetFileRequest struct {
	UUID   *byte
	FileID *byte
}

// CloudSaveGetFileResponse is the payload of event IDs 6005 and 6006. Data
// is nil when Size is zero.
type CloudSaveGetFileResponse struct {
	RequestID int64
	Error     *Error
	Size      uint32
	Data      unsafe.Pointer
}
