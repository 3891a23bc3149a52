// Package tapsdk provides Go bindings for the TapTap PC SDK.
//
// The TapTap PC SDK is a closed-source native library (a Windows dynamic
// library with a C ABI) that handles platform integration for games shipped
// through TapTap: launch verification, user authorization, game and DLC
// ownership, and cloud saves. This module wraps that library in layers, from
// raw to ergonomic:
//
//	tapsdk/              Root package with event IDs, states, and vendor
//	│                    result/error code constants shared by every layer
//	├── sdk/             Lifecycle, event polling, and request correlation
//	├── events/          Typed event records decoded from native callbacks
//	├── cloudsave/       Asynchronous cloud-save requests
//	├── user/            Authorization and OpenID
//	├── dlc/             Game and DLC ownership, store pages
//	├── script/          JavaScript bindings over the SDK (goja)
//	├── errors/          Structured error types
//	└── internal/ffi/    Raw proc table over the vendor DLL
//
// # Quick Start
//
//	restart, err := sdk.RestartAppIfNecessary("your_client_id")
//	if err != nil || restart {
//	    return // TapTap relaunches the game
//	}
//
//	s, err := sdk.Init("your_public_key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	if !dlc.GameOwned() {
//	    return
//	}
//
//	for _, ev := range s.PollEvents() {
//	    switch ev := ev.(type) {
//	    case *events.AuthorizeFinished:
//	        // ...
//	    case *events.SystemStateChanged:
//	        // ...
//	    }
//	}
//
// All asynchronous operations (authorization, every cloud-save request) report
// their outcome through the event stream: issue the request with a request ID,
// then match the correlated event by that ID when polling.
//
// The vendor library drives its own background threads; this module only moves
// callback payloads across the boundary into safely owned Go values. Polling
// is caller-paced and single-consumer.
package tapsdk
