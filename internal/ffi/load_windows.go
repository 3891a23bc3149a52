//go:build windows && amd64

package ffi

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Load resolves every entry point from the vendor DLL at path (or
// DefaultLibrary if path is empty) and installs them into P. Loading happens
// at most once; later calls return the first result.
func Load(path string) error {
	loadOnce.Do(func() {
		if path == "" {
			path = DefaultLibrary
		}
		handle, err := windows.LoadLibrary(path)
		if err != nil {
			loadErr = err
			return
		}
		lib := uintptr(handle)

		var p Procs
		purego.RegisterLibFunc(&p.RestartAppIfNecessary, lib, "TapSDK_RestartAppIfNecessary")
		purego.RegisterLibFunc(&p.Init, lib, "TapSDK_Init")
		purego.RegisterLibFunc(&p.Shutdown, lib, "TapSDK_Shutdown")
		purego.RegisterLibFunc(&p.GetClientID, lib, "TapSDK_GetClientID")
		purego.RegisterLibFunc(&p.AppsIsOwned, lib, "TapApps_IsOwned")
		purego.RegisterLibFunc(&p.RegisterCallback, lib, "TapSDK_RegisterCallback")
		purego.RegisterLibFunc(&p.UnregisterCallback, lib, "TapSDK_UnregisterCallback")
		purego.RegisterLibFunc(&p.RunCallbacks, lib, "TapSDK_RunCallbacks")
		purego.RegisterLibFunc(&p.UserAsyncAuthorize, lib, "TapUser_AsyncAuthorize")
		purego.RegisterLibFunc(&p.UserGetOpenID, lib, "TapUser_GetOpenID")
		purego.RegisterLibFunc(&p.DLCShowStore, lib, "TapDLC_ShowStore")
		purego.RegisterLibFunc(&p.DLCIsOwned, lib, "TapDLC_IsOwned")
		purego.RegisterLibFunc(&p.CloudSave, lib, "TapCloudSave")
		purego.RegisterLibFunc(&p.CloudSaveList, lib, "TapCloudSave_AsyncList")
		purego.RegisterLibFunc(&p.CloudSaveCreate, lib, "TapCloudSave_AsyncCreate")
		purego.RegisterLibFunc(&p.CloudSaveUpdate, lib, "TapCloudSave_AsyncUpdate")
		purego.RegisterLibFunc(&p.CloudSaveDelete, lib, "TapCloudSave_AsyncDelete")
		purego.RegisterLibFunc(&p.CloudSaveGetData, lib, "TapCloudSave_AsyncGetData")
		purego.RegisterLibFunc(&p.CloudSaveGetCover, lib, "TapCloudSave_AsyncGetCover")
		P = p
	})
	return loadErr
}

var (
	callbackOnce sync.Once
	callbackPtr  uintptr
)

// CallbackPtr returns the C-callable trampoline registered with the vendor
// library for every event ID. The vendor invokes it as
// void(*)(TapEventID, void*); payloads are handed to Dispatch and must be
// fully copied before the trampoline returns.
func CallbackPtr() uintptr {
	callbackOnce.Do(func() {
		callbackPtr = purego.NewCallback(func(eventID uint32, data unsafe.Pointer) {
			Dispatch(eventID, data)
		})
	})
	return callbackPtr
}
