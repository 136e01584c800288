package transport

import "encoding/json"

// Response is the raw protocol outcome of a single call. The body, when
// present, is the JSON representation of the entity (or entity list, boolean,
// or count) the remote end returned; typed decoding happens in the Execute
// helpers, never in adapters.
//
// By convention ErrorMessage is populated iff Success is false.
type Response struct {
	// Success reports whether the remote end treated the call as successful.
	Success bool
	// StatusCode is protocol-specific: an HTTP status, an RPC status code
	// integer, or an adapter-defined value. Passed through verbatim.
	StatusCode int
	// Body is the JSON-encoded result, nil when the call returned none.
	Body json.RawMessage
	// ErrorMessage describes a protocol-reported failure.
	ErrorMessage string
	// Metadata carries protocol extras: response headers, pagination
	// counts, reply headers. Never nil.
	Metadata map[string]string
}

// OK returns a success Response with status 200 and the given body.
func OK(body json.RawMessage) *Response {
	return &Response{
		Success:    true,
		StatusCode: 200,
		Body:       body,
		Metadata:   make(map[string]string),
	}
}

// NoContent returns an empty success Response with status 204.
// Used for deletes and other bodiless successes.
func NoContent() *Response {
	return &Response{
		Success:    true,
		StatusCode: 204,
		Metadata:   make(map[string]string),
	}
}

// Fail returns a failure Response carrying the protocol status and message.
// Failure responses never carry a body.
func Fail(status int, message string) *Response {
	return &Response{
		StatusCode:   status,
		ErrorMessage: message,
		Metadata:     make(map[string]string),
	}
}

// Meta sets one metadata entry and returns the Response for chaining
// during adapter-side construction.
func (r *Response) Meta(key, value string) *Response {
	if r.Metadata == nil {
		r.Metadata = make(map[string]string)
	}
	r.Metadata[key] = value
	return r
}

// Result is the typed view of a Response, produced by the Execute helpers.
type Result[T any] struct {
	Success      bool
	StatusCode   int
	Body         *T
	ErrorMessage string
	Metadata     map[string]string
}
