package errors

import (
	"fmt"
	"strings"

	tapsdk "github.com/taptap/tapsdk-go"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseInit     Phase = "init"     // SDK initialization and shutdown
	PhaseCall     Phase = "call"     // synchronous native calls
	PhaseDispatch Phase = "dispatch" // submitting asynchronous requests
	PhaseDecode   Phase = "decode"   // marshaling callback payloads
	PhaseScript   Phase = "script"   // JavaScript binding
)

// Kind categorizes the error
type Kind string

const (
	KindNotInitialized     Kind = "not_initialized"
	KindAlreadyInitialized Kind = "already_initialized"
	KindInitFailed         Kind = "init_failed"
	KindClosed             Kind = "closed"
	KindRequestRejected    Kind = "request_rejected"
	KindAuthorizeFailed    Kind = "authorize_failed"
	KindInvalidArgument    Kind = "invalid_argument"
	KindAPIError           Kind = "api_error"
	KindLibraryLoad        Kind = "library_load"
	KindUnsupported        Kind = "unsupported"
	KindScript             Kind = "script"
)

// Error is the structured error type used throughout the SDK
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string
	Detail string
	// Code is the vendor error code for api_error kinds, zero otherwise.
	Code tapsdk.Code
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	if e.Kind == KindAPIError {
		fmt.Fprintf(&b, ": code %d (%s)", int64(e.Code), e.Code)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Op sets the operation name, e.g. "cloudsave.list"
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Code sets the vendor error code
func (b *Builder) Code(code tapsdk.Code) *Builder {
	b.err.Code = code
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotInitialized creates an error for operations attempted before Init
func NotInitialized(op string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindNotInitialized,
		Op:     op,
		Detail: "SDK not initialized",
	}
}

// AlreadyInitialized creates an error for a second Init
func AlreadyInitialized() *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindAlreadyInitialized,
		Detail: "SDK already initialized",
	}
}

// InitFailed creates an error from a failed native initialization
func InitFailed(result tapsdk.InitResult, message string) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindInitFailed,
		Detail: fmt.Sprintf("%s: %s", result, message),
	}
}

// Closed creates an error for operations on a shut-down SDK
func Closed(op string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindClosed,
		Op:     op,
		Detail: "SDK has been shut down",
	}
}

// RequestRejected creates an error from a cloud-save dispatch result
func RequestRejected(op string, result tapsdk.DispatchResult) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindRequestRejected,
		Op:     op,
		Detail: result.String(),
	}
}

// AuthorizeFailed creates an error from an authorization dispatch result
func AuthorizeFailed(result tapsdk.AuthorizeResult) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindAuthorizeFailed,
		Op:     "user.authorize",
		Detail: result.String(),
	}
}

// InvalidArgument creates an error for arguments rejected before the FFI
func InvalidArgument(op, detail string) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindInvalidArgument,
		Op:     op,
		Detail: detail,
	}
}

// APIError creates an error from a vendor code+message pair carried by a
// failed asynchronous response
func APIError(code tapsdk.Code, message string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindAPIError,
		Code:   code,
		Detail: message,
	}
}

// LibraryLoad creates an error for a vendor library that could not be loaded
func LibraryLoad(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindLibraryLoad,
		Detail: detail,
		Cause:  cause,
	}
}

// Unsupported creates an error for platforms without the vendor library
func Unsupported(detail string) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindUnsupported,
		Detail: detail,
	}
}

// Script creates an error from the JavaScript binding
func Script(op string, cause error) *Error {
	return &Error{
		Phase: PhaseScript,
		Kind:  KindScript,
		Op:    op,
		Cause: cause,
	}
}
