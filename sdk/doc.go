// Package sdk owns the TapTap PC SDK lifecycle and its event stream.
//
// The vendor library reports everything asynchronous through registered C
// callbacks: system state changes, authorization outcomes, playable-status
// updates, and every cloud-save response. This package registers one global
// trampoline for all event IDs, decodes each payload into a typed
// events.Event the moment the callback fires (native payloads are only valid
// for the duration of the callback), and buffers the results in an internal
// queue.
//
// The queue is drained by PollEvents, which first asks the vendor library to
// flush its callbacks and then returns everything buffered, in arrival order.
// Polling is caller-paced and single-consumer: call PollEvents from one
// goroutine (typically the game loop), or hand the loop to Pump.
//
// Asynchronous requests are correlated by caller-supplied request IDs.
// NextRequestID issues them, Track registers them as outstanding, and
// PollEvents retires each one as its response event arrives.
package sdk
