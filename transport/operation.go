// Package transport defines the protocol-agnostic remote repository
// operation model.
//
// A caller builds an immutable Request, hands it to whichever Client
// implementation is configured (REST, gRPC, or event bus), and receives a
// Response or a classified *Error. The caller never learns which protocol
// executed the call.
package transport

// Operation is one of the seven abstract actions every adapter supports.
// The zero value is invalid; Request construction rejects it.
type Operation int

const (
	// OpFindByID retrieves a single entity by identifier.
	OpFindByID Operation = iota + 1
	// OpFindAll retrieves every entity of a resource.
	OpFindAll
	// OpQuery retrieves entities matching the request parameters.
	// Query rides the same remote route as OpFindAll; the parameter bag
	// carries the filter.
	OpQuery
	// OpSave inserts or updates a single entity. Insert vs. update is
	// adapter-decided by identifier presence.
	OpSave
	// OpDelete removes a single entity by identifier.
	OpDelete
	// OpExists checks whether an entity with the identifier exists.
	OpExists
	// OpCount returns the number of entities of a resource.
	OpCount
)

// operationNames indexes display names by Operation value.
var operationNames = map[Operation]string{
	OpFindByID: "FindByID",
	OpFindAll:  "FindAll",
	OpQuery:    "Query",
	OpSave:     "Save",
	OpDelete:   "Delete",
	OpExists:   "Exists",
	OpCount:    "Count",
}

// operationSlugs indexes kebab-case wire slugs by Operation value.
// Slugs appear in bus addresses and envelope routing fields.
var operationSlugs = map[Operation]string{
	OpFindByID: "get-by-id",
	OpFindAll:  "get-all",
	OpQuery:    "query",
	OpSave:     "save",
	OpDelete:   "delete",
	OpExists:   "exists",
	OpCount:    "count",
}

// String returns the operation's display name, or "Unknown" for
// unrecognized values.
func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "Unknown"
}

// Slug returns the operation's kebab-case wire form (e.g. "get-by-id").
func (o Operation) Slug() string {
	if slug, ok := operationSlugs[o]; ok {
		return slug
	}
	return "unknown"
}

// Valid reports whether o is one of the seven defined operations.
func (o Operation) Valid() bool {
	_, ok := operationNames[o]
	return ok
}

// IsList reports whether o is a list-returning operation.
// Only list operations may be passed to ExecuteForList.
func (o Operation) IsList() bool {
	return o == OpFindAll || o == OpQuery
}
