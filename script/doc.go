// Package script exposes the SDK to JavaScript.
//
// An Engine wraps one goja VM and installs a global `taptap` object whose
// methods mirror the Go API: identity queries, authorization, ownership,
// store pages, and the asynchronous cloud-save operations (request IDs are
// issued automatically and returned to the script). Scripts subscribe to the
// event stream with `taptap.onEvent(fn)` and drive it with `taptap.poll()`;
// each event arrives as a plain object keyed by `eventId`, with binary
// payloads as ArrayBuffers.
//
// The Engine talks to the SDK through the Backend interface, so scripts can
// run against a fake in tests. An Engine is single-threaded, like the VM it
// wraps; scripts are cut off by a deadline interrupt.
package script
