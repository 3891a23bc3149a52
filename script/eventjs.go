package script

import (
	"github.com/dop251/goja"

	"github.com/taptap/tapsdk-go/errors"
	"github.com/taptap/tapsdk-go/events"
)

// eventToJS flattens a typed event into the plain-object shape scripts see.
// Every object carries eventId; correlated responses add requestId and an
// error field (null on success).
func eventToJS(vm *goja.Runtime, ev events.Event) map[string]any {
	obj := map[string]any{
		"eventId": uint32(ev.EventID()),
	}

	switch ev := ev.(type) {
	case *events.SystemStateChanged:
		obj["state"] = ev.State.String()

	case *events.AuthorizeFinished:
		obj["cancelled"] = ev.Cancelled
		obj["error"] = stringOrNull(ev.Err)
		if ev.Token != nil {
			obj["token"] = map[string]any{
				"tokenType":    ev.Token.TokenType,
				"kid":          ev.Token.KeyID,
				"macKey":       ev.Token.MacKey,
				"macAlgorithm": ev.Token.MacAlgorithm,
				"scope":        ev.Token.Scope,
			}
		} else {
			obj["token"] = nil
		}

	case *events.GamePlayableStatusChanged:
		obj["isPlayable"] = ev.Playable

	case *events.DLCPlayableStatusChanged:
		obj["dlcId"] = ev.DLCID
		obj["isPlayable"] = ev.Playable

	case *events.CloudSaveList:
		obj["requestId"] = ev.RequestID
		obj["error"] = errorToJS(ev.Err)
		saves := make([]map[string]any, len(ev.Saves))
		for i := range ev.Saves {
			saves[i] = saveToJS(&ev.Saves[i])
		}
		obj["saves"] = saves

	case *events.CloudSaveCreate:
		obj["requestId"] = ev.RequestID
		obj["error"] = errorToJS(ev.Err)
		obj["save"] = optionalSaveToJS(ev.Save)

	case *events.CloudSaveUpdate:
		obj["requestId"] = ev.RequestID
		obj["error"] = errorToJS(ev.Err)
		obj["save"] = optionalSaveToJS(ev.Save)

	case *events.CloudSaveDelete:
		obj["requestId"] = ev.RequestID
		obj["error"] = errorToJS(ev.Err)
		obj["uuid"] = ev.UUID

	case *events.CloudSaveGetData:
		obj["requestId"] = ev.RequestID
		obj["error"] = errorToJS(ev.Err)
		obj["data"] = dataToJS(vm, ev.Data)

	case *events.CloudSaveGetCover:
		obj["requestId"] = ev.RequestID
		obj["error"] = errorToJS(ev.Err)
		obj["data"] = dataToJS(vm, ev.Data)
	}

	return obj
}

func stringOrNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func errorToJS(err *errors.Error) any {
	if err == nil {
		return nil
	}
	return map[string]any{
		"code":    int64(err.Code),
		"message": err.Detail,
	}
}

func saveToJS(s *events.SaveInfo) map[string]any {
	return map[string]any{
		"uuid":         s.UUID,
		"fileId":       s.FileID,
		"name":         s.Name,
		"saveSize":     s.SaveSize,
		"coverSize":    s.CoverSize,
		"summary":      s.Summary,
		"extra":        s.Extra,
		"playtime":     s.Playtime,
		"createdTime":  s.CreatedTime,
		"modifiedTime": s.ModifiedTime,
	}
}

func optionalSaveToJS(s *events.SaveInfo) any {
	if s == nil {
		return nil
	}
	return saveToJS(s)
}

func dataToJS(vm *goja.Runtime, data []byte) any {
	if data == nil {
		return nil
	}
	return vm.NewArrayBuffer(data)
}
