package events

import (
	"unsafe"

	tapsdk "github.com/taptap/tapsdk-go"
	"github.com/taptap/tapsdk-go/errors"
	"github.com/taptap/tapsdk-go/internal/ffi"
)

// Decode converts one raw callback into a typed, safely owned event. The
// payload pointer is only dereferenced during the call; everything reachable
// from it is copied. Unrecognized IDs and NULL payloads decode to Unknown.
func Decode(id tapsdk.EventID, data unsafe.Pointer) Event {
	if data == nil {
		return &Unknown{ID: id}
	}

	switch id {
	case tapsdk.EventSystemStateChanged:
		n := (*ffi.SystemStateNotification)(data)
		return &SystemStateChanged{State: tapsdk.SystemState(n.State)}

	case tapsdk.EventAuthorizeFinished:
		return decodeAuthorizeFinished((*ffi.AuthorizeFinishedResponse)(data))

	case tapsdk.EventGamePlayableStatusChanged:
		r := (*ffi.GamePlayableStatusChangedResponse)(data)
		return &GamePlayableStatusChanged{Playable: r.IsPlayable}

	case tapsdk.EventDLCPlayableStatusChanged:
		r := (*ffi.DLCPlayableStatusChangedResponse)(data)
		return &DLCPlayableStatusChanged{
			DLCID:    ffi.BufString(r.DLCID[:]),
			Playable: r.IsPlayable,
		}

	case tapsdk.EventCloudSaveList:
		r := (*ffi.CloudSaveListResponse)(data)
		ev := &CloudSaveList{
			RequestID: r.RequestID,
			Err:       decodeError(r.Error),
		}
		if r.Saves != nil && r.SaveCount > 0 {
			raw := unsafe.Slice(r.Saves, int(r.SaveCount))
			ev.Saves = make([]SaveInfo, len(raw))
			for i := range raw {
				ev.Saves[i] = decodeSaveInfo(&raw[i])
			}
		}
		return ev

	case tapsdk.EventCloudSaveCreate:
		r := (*ffi.CloudSaveCreateResponse)(data)
		return &CloudSaveCreate{
			RequestID: r.RequestID,
			Err:       decodeError(r.Error),
			Save:      decodeOptionalSave(r.Save),
		}

	case tapsdk.EventCloudSaveUpdate:
		r := (*ffi.CloudSaveCreateResponse)(data)
		return &CloudSaveUpdate{
			RequestID: r.RequestID,
			Err:       decodeError(r.Error),
			Save:      decodeOptionalSave(r.Save),
		}

	case tapsdk.EventCloudSaveDelete:
		r := (*ffi.CloudSaveDeleteResponse)(data)
		return &CloudSaveDelete{
			RequestID: r.RequestID,
			Err:       decodeError(r.Error),
			UUID:      ffi.GoString(r.UUID),
		}

	case tapsdk.EventCloudSaveGetData:
		r := (*ffi.CloudSaveGetFileResponse)(data)
		return &CloudSaveGetData{
			RequestID: r.RequestID,
			Err:       decodeError(r.Error),
			Data:      copyFileData(r),
		}

	case tapsdk.EventCloudSaveGetCover:
		r := (*ffi.CloudSaveGetFileResponse)(data)
		return &CloudSaveGetCover{
			RequestID: r.RequestID,
			Err:       decodeError(r.Error),
			Data:      copyFileData(r),
		}

	default:
		return &Unknown{ID: id}
	}
}

func decodeAuthorizeFinished(r *ffi.AuthorizeFinishedResponse) *AuthorizeFinished {
	ev := &AuthorizeFinished{
		Cancelled: r.IsCancel,
		Err:       ffi.BufString(r.Error[:]),
	}

	// Token buffers are only meaningful on success.
	if !ev.Cancelled && ev.Err == "" {
		ev.Token = &AuthToken{
			TokenType:    ffi.BufString(r.TokenType[:]),
			KeyID:        ffi.BufString(r.KeyID[:]),
			MacKey:       ffi.BufString(r.MacKey[:]),
			MacAlgorithm: ffi.BufString(r.MacAlgorithm[:]),
			Scope:        ffi.BufString(r.Scope[:]),
		}
	}
	return ev
}

func decodeError(e *ffi.Error) *errors.Error {
	if e == nil {
		return nil
	}
	return errors.APIError(tapsdk.Code(e.Code), ffi.GoString(e.Message))
}

func decodeSaveInfo(info *ffi.CloudSaveInfo) SaveInfo {
	return SaveInfo{
		UUID:         ffi.GoString(info.UUID),
		FileID:       ffi.GoString(info.FileID),
		Name:         ffi.GoString(info.Name),
		SaveSize:     info.SaveSize,
		CoverSize:    info.CoverSize,
		Summary:      ffi.GoString(info.Summary),
		Extra:        ffi.GoString(info.Extra),
		Playtime:     info.Playtime,
		CreatedTime:  info.CreatedTime,
		ModifiedTime: info.ModifiedTime,
	}
}

func decodeOptionalSave(info *ffi.CloudSaveInfo) *SaveInfo {
	if info == nil {
		return nil
	}
	s := decodeSaveInfo(info)
	return &s
}

func copyFileData(r *ffi.CloudSaveGetFileResponse) []byte {
	if r.Data == nil || r.Size == 0 {
		return nil
	}
	out := make([]byte, r.Size)
	copy(out, unsafe.Slice((*byte)(r.Data), int(r.Size)))
	return out
}
