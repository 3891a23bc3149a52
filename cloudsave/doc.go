// Package cloudsave issues asynchronous cloud-save requests.
//
// Every operation is fire-and-forget at the native boundary: the vendor
// library either rejects the request immediately (a dispatch error, no
// callback will fire) or accepts it and later reports the outcome as a
// correlated event carrying the caller's request ID. Results are consumed by
// polling the sdk package's event stream.
//
// Limits enforced by the TapTap backend are checked here first, so a request
// that can never succeed fails with an invalid-argument error before
// touching the native library.
package cloudsave
