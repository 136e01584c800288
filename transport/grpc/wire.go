package grpc

// Unary message types for the tram.v1.RemoteData service. Entity payloads
// cross the wire as opaque JSON text inside EntityJSON fields; the wire
// schema never learns entity shape. Identifiers travel in text form.

// GetByIDRequest asks for a single entity by identifier.
type GetByIDRequest struct {
	Resource string            `json:"resource"`
	ID       string            `json:"id"`
	Params   map[string]string `json:"params,omitempty"`
}

// GetAllRequest asks for every entity of a resource, optionally filtered.
// Serves both FindAll and Query.
type GetAllRequest struct {
	Resource string            `json:"resource"`
	Params   map[string]string `json:"params,omitempty"`
}

// SaveRequest inserts or updates one entity. ID is empty for inserts.
type SaveRequest struct {
	Resource   string            `json:"resource"`
	ID         string            `json:"id,omitempty"`
	EntityJSON string            `json:"entity_json"`
	Params     map[string]string `json:"params,omitempty"`
}

// DeleteRequest removes one entity by identifier.
type DeleteRequest struct {
	Resource string            `json:"resource"`
	ID       string            `json:"id"`
	Params   map[string]string `json:"params,omitempty"`
}

// ExistsRequest checks whether an entity with the identifier exists.
type ExistsRequest struct {
	Resource string            `json:"resource"`
	ID       string            `json:"id"`
	Params   map[string]string `json:"params,omitempty"`
}

// CountRequest asks for the number of entities of a resource.
type CountRequest struct {
	Resource string            `json:"resource"`
	Params   map[string]string `json:"params,omitempty"`
}

// EntityResponse answers GetByID and Save with at most one entity.
type EntityResponse struct {
	Success      bool              `json:"success"`
	StatusCode   int               `json:"status_code"`
	EntityJSON   string            `json:"entity_json,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// EntityListResponse answers GetAll with zero or more entities.
type EntityListResponse struct {
	Success      bool              `json:"success"`
	StatusCode   int               `json:"status_code"`
	EntitiesJSON []string          `json:"entities_json"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// DeleteResponse answers Delete.
type DeleteResponse struct {
	Success      bool              `json:"success"`
	StatusCode   int               `json:"status_code"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// ExistsResponse answers Exists.
type ExistsResponse struct {
	Success      bool              `json:"success"`
	StatusCode   int               `json:"status_code"`
	Exists       bool              `json:"exists"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// CountResponse answers Count.
type CountResponse struct {
	Success      bool              `json:"success"`
	StatusCode   int               `json:"status_code"`
	Count        int64             `json:"count"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}
