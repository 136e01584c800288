package wire

import "github.com/vmihailenco/msgpack/v5"

// Per-operation request messages. Identifiers travel in text form
// (decimal/string); entity payloads travel as opaque JSON text. Entity shape
// is adapter-opaque: only the two bus peers need to agree on it.

// GetByID requests a single entity by identifier.
type GetByID struct {
	Resource string            `msgpack:"resource"`
	ID       string            `msgpack:"id"`
	Params   map[string]string `msgpack:"params,omitempty"`
}

// GetAll requests every entity of a resource, optionally filtered by Params.
// Serves both FindAll and Query.
type GetAll struct {
	Resource string            `msgpack:"resource"`
	Params   map[string]string `msgpack:"params,omitempty"`
}

// Save inserts or updates one entity. ID is empty for inserts.
type Save struct {
	Resource   string            `msgpack:"resource"`
	ID         string            `msgpack:"id,omitempty"`
	EntityJSON string            `msgpack:"entity_json"`
	Params     map[string]string `msgpack:"params,omitempty"`
}

// Delete removes one entity by identifier.
type Delete struct {
	Resource string            `msgpack:"resource"`
	ID       string            `msgpack:"id"`
	Params   map[string]string `msgpack:"params,omitempty"`
}

// Exists checks whether an entity with the identifier exists.
type Exists struct {
	Resource string            `msgpack:"resource"`
	ID       string            `msgpack:"id"`
	Params   map[string]string `msgpack:"params,omitempty"`
}

// Count requests the number of entities of a resource.
type Count struct {
	Resource string            `msgpack:"resource"`
	Params   map[string]string `msgpack:"params,omitempty"`
}

// Status is the outcome header shared by every reply message.
type Status struct {
	Success      bool              `msgpack:"success"`
	StatusCode   int               `msgpack:"status_code"`
	ErrorMessage string            `msgpack:"error_message,omitempty"`
	Metadata     map[string]string `msgpack:"metadata,omitempty"`
}

// EntityReply answers GetByID and Save with at most one entity.
type EntityReply struct {
	Status     `msgpack:",inline"`
	EntityJSON string `msgpack:"entity_json,omitempty"`
}

// EntityListReply answers GetAll with zero or more entities.
type EntityListReply struct {
	Status       `msgpack:",inline"`
	EntitiesJSON []string `msgpack:"entities_json"`
}

// DeleteReply answers Delete.
type DeleteReply struct {
	Status `msgpack:",inline"`
}

// ExistsReply answers Exists.
type ExistsReply struct {
	Status `msgpack:",inline"`
	Exists bool `msgpack:"exists"`
}

// CountReply answers Count.
type CountReply struct {
	Status `msgpack:",inline"`
	Count  int64 `msgpack:"count"`
}

// EncodeMessage encodes a per-operation message for an envelope body.
func EncodeMessage(msg any) ([]byte, error) {
	body, err := msgpack.Marshal(msg)
	if err != nil {
		return nil, &FrameError{Kind: FrameErrorDecode, Msg: "failed to encode message", Err: err}
	}
	return body, nil
}

// DecodeMessage decodes an envelope body into a per-operation message.
func DecodeMessage(body []byte, msg any) error {
	if err := msgpack.Unmarshal(body, msg); err != nil {
		return &FrameError{Kind: FrameErrorDecode, Msg: "failed to decode message", Err: err}
	}
	return nil
}
