package script

import (
	"fmt"
	"time"

	"github.com/dop251/goja"

	"github.com/taptap/tapsdk-go/cloudsave"
	"github.com/taptap/tapsdk-go/errors"
)

// DefaultTimeout bounds a single RunScript call.
const DefaultTimeout = 60 * time.Second

// Engine runs scripts against a Backend. Not safe for concurrent use.
type Engine struct {
	vm       *goja.Runtime
	backend  Backend
	handlers []goja.Callable
	timeout  time.Duration
}

// New creates an engine bound to backend and installs the taptap globals.
func New(backend Backend) *Engine {
	e := &Engine{
		vm:      goja.New(),
		backend: backend,
		timeout: DefaultTimeout,
	}
	e.vm.SetFieldNameMapper(goja.UncapFieldNameMapper())
	e.bind()
	return e
}

// SetTimeout overrides the per-script deadline. Zero disables it.
func (e *Engine) SetTimeout(d time.Duration) {
	e.timeout = d
}

// RunScript executes src on the VM. Execution is interrupted once the
// engine's timeout elapses.
func (e *Engine) RunScript(name, src string) (goja.Value, error) {
	if e.timeout <= 0 {
		val, err := e.vm.RunScript(name, src)
		if err != nil {
			return nil, errors.Script(name, err)
		}
		return val, nil
	}

	timer := time.AfterFunc(e.timeout, func() {
		e.vm.Interrupt("timeout")
	})
	defer timer.Stop()

	val, err := e.vm.RunScript(name, src)
	if err != nil {
		if _, ok := err.(*goja.InterruptedError); ok {
			e.vm.ClearInterrupt()
			return nil, errors.Script(name, fmt.Errorf("timed out after %s", e.timeout))
		}
		return nil, errors.Script(name, err)
	}
	return val, nil
}

// Poll drains the backend's event stream into the script's onEvent handlers,
// exactly as `taptap.poll()` does. Hosts use it to keep pumping events after
// the script body returned.
func (e *Engine) Poll() (int, error) {
	evs := e.backend.Poll()
	for _, ev := range evs {
		val := e.vm.ToValue(eventToJS(e.vm, ev))
		for _, fn := range e.handlers {
			if _, err := fn(goja.Undefined(), val); err != nil {
				return 0, errors.Script("poll", err)
			}
		}
	}
	return len(evs), nil
}

// throw surfaces a Go error into the script as a thrown exception.
func (e *Engine) throw(err error) {
	panic(e.vm.NewGoError(err))
}

// bind installs the taptap object and console helpers.
func (e *Engine) bind() {
	vm := e.vm

	vm.Set("sprintf", fmt.Sprintf)
	vm.Set("printf", fmt.Printf)
	vm.Set("println", fmt.Println)

	taptap := vm.NewObject()

	taptap.Set("clientId", func() goja.Value {
		id, ok := e.backend.ClientID()
		if !ok {
			return goja.Null()
		}
		return vm.ToValue(id)
	})
	taptap.Set("openId", func() goja.Value {
		id, ok := e.backend.OpenID()
		if !ok {
			return goja.Null()
		}
		return vm.ToValue(id)
	})
	taptap.Set("authorize", func(scopes string) {
		if err := e.backend.Authorize(scopes); err != nil {
			e.throw(err)
		}
	})
	taptap.Set("isGameOwned", func() bool {
		return e.backend.GameOwned()
	})
	taptap.Set("isDlcOwned", func(dlcID string) bool {
		return e.backend.DLCOwned(dlcID)
	})
	taptap.Set("showDlcStore", func(dlcID string) bool {
		ok, err := e.backend.ShowDLCStore(dlcID)
		if err != nil {
			e.throw(err)
		}
		return ok
	})

	taptap.Set("onEvent", func(fn goja.Callable) {
		e.handlers = append(e.handlers, fn)
	})
	taptap.Set("poll", func() int {
		evs := e.backend.Poll()
		for _, ev := range evs {
			val := vm.ToValue(eventToJS(vm, ev))
			for _, fn := range e.handlers {
				if _, err := fn(goja.Undefined(), val); err != nil {
					e.throw(err)
				}
			}
		}
		return len(evs)
	})

	taptap.Set("cloudSave", e.bindCloudSave())
	vm.Set("taptap", taptap)
}

// jsCreateRequest mirrors the object shape scripts pass to cloudSave.create:
// field names arrive uncapitalized through the VM's name mapper.
type jsCreateRequest struct {
	Name          string
	Summary       string
	Extra         string
	Playtime      uint32
	DataFilePath  string
	CoverFilePath string
}

func (e *Engine) bindCloudSave() *goja.Object {
	vm := e.vm
	cs := vm.NewObject()

	cs.Set("list", func() int64 {
		id := e.backend.NextRequestID()
		if err := e.backend.CloudSaveList(id); err != nil {
			e.throw(err)
		}
		return id
	})
	cs.Set("create", func(req jsCreateRequest) int64 {
		id := e.backend.NextRequestID()
		err := e.backend.CloudSaveCreate(id, cloudsave.CreateRequest{
			Name:          req.Name,
			Summary:       req.Summary,
			Extra:         req.Extra,
			Playtime:      req.Playtime,
			DataFilePath:  req.DataFilePath,
			CoverFilePath: req.CoverFilePath,
		})
		if err != nil {
			e.throw(err)
		}
		return id
	})
	cs.Set("update", func(uuid string, req jsCreateRequest) int64 {
		id := e.backend.NextRequestID()
		err := e.backend.CloudSaveUpdate(id, cloudsave.UpdateRequest{
			UUID:          uuid,
			Name:          req.Name,
			Summary:       req.Summary,
			Extra:         req.Extra,
			Playtime:      req.Playtime,
			DataFilePath:  req.DataFilePath,
			CoverFilePath: req.CoverFilePath,
		})
		if err != nil {
			e.throw(err)
		}
		return id
	})
	cs.Set("delete", func(uuid string) int64 {
		id := e.backend.NextRequestID()
		if err := e.backend.CloudSaveDelete(id, uuid); err != nil {
			e.throw(err)
		}
		return id
	})
	cs.Set("getData", func(uuid, fileID string) int64 {
		id := e.backend.NextRequestID()
		if err := e.backend.CloudSaveGetData(id, uuid, fileID); err != nil {
			e.throw(err)
		}
		return id
	})
	cs.Set("getCover", func(uuid, fileID string) int64 {
		id := e.backend.NextRequestID()
		if err := e.backend.CloudSaveGetCover(id, uuid, fileID); err != nil {
			e.throw(err)
		}
		return id
	})

	return cs
}
