// Package ffi holds the raw surface of the TapTap PC SDK native library.
//
// The vendor header defines a fixed C ABI: packed struct layouts, fixed-size
// character buffers, and a callback registered per event ID. This package
// reproduces that surface exactly and nothing more. Entry points live in a
// proc table (Procs) so the safe layers above never touch symbols directly:
// on windows/amd64 Load fills the table from taptap_api.dll via purego, on
// every other platform the table keeps its stub behavior ("platform not
// found"), and tests may install fakes with SetProcs.
//
// Callback payload pointers are only valid for the duration of the native
// callback; everything reachable from them must be copied out before the
// callback returns. Decoding into owned Go values is the events package's
// job, this package only routes the raw (event ID, payload) pair to the
// registered sink.
package ffi
