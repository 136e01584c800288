// Transport failure classification.
//
// This file defines sentinel errors and the Error wrapper for classifying
// transport failures. These enable callers to use errors.Is/errors.As for
// typed assertions rather than string matching.
package transport

import (
	"errors"
	"fmt"
)

// Sentinel errors for transport failure classification.
// Use errors.Is(err, ErrXxx) for typed assertions.
var (
	// ErrConnection indicates the transport was unreachable, dispatch was
	// rejected, or the timeout elapsed before any reply.
	ErrConnection = errors.New("connection failure")

	// ErrSerialization indicates a payload or response could not be
	// encoded or decoded.
	ErrSerialization = errors.New("serialization failure")

	// ErrUnsupported indicates an adapter was invoked for an operation it
	// does not implement.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrBadRequest indicates Request construction failed validation.
	ErrBadRequest = errors.New("invalid request")

	// ErrProtocol indicates the remote end explicitly reported a failure.
	// Adapters represent these as non-success Responses; higher layers
	// that cannot tolerate the failure surface it under this kind.
	ErrProtocol = errors.New("protocol failure")
)

// Error is the single fatal error kind raised by adapters. Protocol-reported
// failures (4xx/5xx, RPC error status, bus success=false) are represented as
// non-success Responses instead, so callers can branch on status; Error is
// reserved for failures where no protocol-level response was obtainable or
// usable.
type Error struct {
	// Kind is the sentinel error for classification (e.g. ErrConnection).
	Kind error
	// Msg describes the failure.
	Msg string
	// StatusCode is the protocol status, when one was known.
	// 0 means "no protocol status", e.g. a connection failure.
	StatusCode int
	// Resource is the logical collection the failed call targeted.
	Resource string
	// Op is the operation that failed. May be zero for generic
	// connection failures.
	Op Operation
	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	subject := e.Resource
	if e.Op.Valid() {
		subject = fmt.Sprintf("%s %s", e.Op, e.Resource)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v: %v", subject, e.Msg, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", subject, e.Msg, e.Kind)
}

// Unwrap returns the underlying error for errors.Is/As chain traversal.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches the target sentinel.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// IsClientError reports whether the carried status is a client error (400-499).
func (e *Error) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode <= 499
}

// IsServerError reports whether the carried status is a server error (>=500).
func (e *Error) IsServerError() bool {
	return e.StatusCode >= 500
}

// IsNotFound reports whether the carried status is 404.
func (e *Error) IsNotFound() bool {
	return e.StatusCode == 404
}

// NewError creates a classified transport error.
func NewError(kind error, msg string, status int, resource string, op Operation, err error) *Error {
	return &Error{
		Kind:       kind,
		Msg:        msg,
		StatusCode: status,
		Resource:   resource,
		Op:         op,
		Err:        err,
	}
}

// ConnectionFailure wraps err as a connection-level failure. The status code
// is 0: no protocol-level response was obtained.
func ConnectionFailure(msg, resource string, op Operation, err error) *Error {
	return NewError(ErrConnection, msg, 0, resource, op, err)
}

// SerializationFailure wraps err as an encode/decode failure attributable to
// the given resource and operation.
func SerializationFailure(msg, resource string, op Operation, err error) *Error {
	return NewError(ErrSerialization, msg, 0, resource, op, err)
}

// UnsupportedOperation reports that op is not implemented by the invoked
// adapter entry point.
func UnsupportedOperation(resource string, op Operation) *Error {
	return NewError(ErrUnsupported, fmt.Sprintf("operation %s is not supported here", op), 0, resource, op, nil)
}
