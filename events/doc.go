// Package events defines the typed records delivered by the native callback
// stream and decodes them from raw payloads.
//
// The vendor library reports everything asynchronous through a single
// callback shape: a numeric event ID plus an opaque payload pointer whose
// layout depends on the ID. Decode maps that pair onto one of the record
// types here, copying every string, buffer, and array out of C memory so the
// result is safely owned by Go.
//
// Events carrying a request ID (all cloud-save responses) also implement
// Correlated; the ID is the value the caller passed when issuing the
// asynchronous request, returned verbatim.
package events
