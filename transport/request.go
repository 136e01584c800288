package transport

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Request is an immutable description of a single transport call.
// Build one via NewRequest; construction fails if the operation is unknown
// or the resource name is blank, so adapters never see a malformed Request.
type Request struct {
	op       Operation
	resource string
	id       string
	payload  any
	params   map[string]string
}

// Op returns the operation this request performs.
func (r *Request) Op() Operation { return r.op }

// Resource returns the logical collection name the request targets.
func (r *Request) Resource() string { return r.resource }

// ID returns the identifier in text form, or "" when absent.
func (r *Request) ID() string { return r.id }

// HasID reports whether an identifier is attached.
func (r *Request) HasID() bool { return r.id != "" }

// Payload returns the entity payload, or nil when absent.
func (r *Request) Payload() any { return r.payload }

// PayloadJSON marshals the payload to JSON. Returns nil bytes when no
// payload is attached.
func (r *Request) PayloadJSON() ([]byte, error) {
	if r.payload == nil {
		return nil, nil
	}
	data, err := json.Marshal(r.payload)
	if err != nil {
		return nil, SerializationFailure("marshal payload", r.resource, r.op, err)
	}
	return data, nil
}

// Params returns a copy of the parameter bag. Never nil.
func (r *Request) Params() map[string]string {
	out := make(map[string]string, len(r.params))
	for k, v := range r.params {
		out[k] = v
	}
	return out
}

// RequestBuilder accumulates Request fields. Obtain one from NewRequest.
type RequestBuilder struct {
	req Request
}

// NewRequest starts building a Request for the given operation and resource.
func NewRequest(op Operation, resource string) *RequestBuilder {
	return &RequestBuilder{
		req: Request{
			op:       op,
			resource: resource,
			params:   make(map[string]string),
		},
	}
}

// ID attaches an identifier. The value is coerced to its text form;
// nil and empty values leave the identifier absent.
func (b *RequestBuilder) ID(id any) *RequestBuilder {
	b.req.id = FormatValue(id)
	return b
}

// Payload attaches the entity payload. The payload must be JSON
// marshalable; adapters marshal it at call time.
func (b *RequestBuilder) Payload(payload any) *RequestBuilder {
	b.req.payload = payload
	return b
}

// Param adds one parameter, coercing the value to its text form.
func (b *RequestBuilder) Param(key string, value any) *RequestBuilder {
	b.req.params[key] = FormatValue(value)
	return b
}

// Params merges the given parameters into the bag.
func (b *RequestBuilder) Params(params map[string]string) *RequestBuilder {
	for k, v := range params {
		b.req.params[k] = v
	}
	return b
}

// Build validates and returns the immutable Request.
func (b *RequestBuilder) Build() (*Request, error) {
	if !b.req.op.Valid() {
		return nil, NewError(ErrBadRequest, "operation is required", 0, b.req.resource, b.req.op, nil)
	}
	if strings.TrimSpace(b.req.resource) == "" {
		return nil, NewError(ErrBadRequest, "resource name is required", 0, "", b.req.op, nil)
	}
	req := b.req
	return &req, nil
}

// FormatValue coerces an identifier or parameter value to its text form.
// Integers render in decimal, nil renders as "", everything else via its
// default formatting.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
