package transport

import (
	"context"
	"encoding/json"
)

// Client is the contract every protocol adapter implements. An adapter owns
// exactly one long-lived network resource created at construction and
// released exactly once by Close. All methods are safe for concurrent use by
// many goroutines; adapters hold no mutable per-call state.
//
// Failure semantics: protocol-reported failures (HTTP 4xx/5xx, RPC error
// status, bus success=false) yield a non-success Response. Connection-level
// failures, serialization failures, and unsupported operations raise a
// classified *Error instead.
type Client interface {
	// Execute performs a single-entity operation: FindByID, Save, Delete,
	// Exists, or Count. FindByID, Delete, and Exists require an
	// identifier; Save requires a payload.
	Execute(ctx context.Context, req *Request) (*Response, error)

	// ExecuteForList performs a list-returning operation: FindAll or
	// Query. Any other operation fails fast with an
	// unsupported-operation *Error.
	ExecuteForList(ctx context.Context, req *Request) (*Response, error)

	// Close releases the adapter's network resource. Idempotent.
	Close() error
}

// Execute runs a single-entity operation and decodes the response body into
// T. Interfaces cannot carry type-parameterized methods, so the typed face
// of the contract lives here at package level.
//
// A body that cannot be decoded into T raises a serialization *Error.
func Execute[T any](ctx context.Context, c Client, req *Request) (*Result[T], error) {
	resp, err := c.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return decode[T](resp, req)
}

// ExecuteForList runs a list-returning operation and decodes the response
// body into []T. Operations other than FindAll/Query fail with an
// unsupported-operation *Error before any network activity.
func ExecuteForList[T any](ctx context.Context, c Client, req *Request) (*Result[[]T], error) {
	if !req.Op().IsList() {
		return nil, UnsupportedOperation(req.Resource(), req.Op())
	}
	resp, err := c.ExecuteForList(ctx, req)
	if err != nil {
		return nil, err
	}
	return decode[[]T](resp, req)
}

// decode converts a raw Response into a typed Result. Failure responses
// pass through untyped: the body is only decoded on success.
func decode[T any](resp *Response, req *Request) (*Result[T], error) {
	result := &Result[T]{
		Success:      resp.Success,
		StatusCode:   resp.StatusCode,
		ErrorMessage: resp.ErrorMessage,
		Metadata:     resp.Metadata,
	}
	if !resp.Success || len(resp.Body) == 0 {
		return result, nil
	}

	var body T
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, SerializationFailure("decode response body", req.Resource(), req.Op(), err)
	}
	result.Body = &body
	return result, nil
}
