// Package errors provides structured error types for the TapTap SDK bindings.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the operation name, the vendor error code
// where one exists, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDispatch, errors.KindInvalidArgument).
//		Op("cloudsave.create").
//		Detail("save name exceeds 60 bytes").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotInitialized("user.openid")
//	err := errors.APIError(code, message)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares Phase and Kind, so callers can classify
// failures without caring about detail text:
//
//	if stderrors.Is(err, errors.NotInitialized("")) { ... }
package errors
