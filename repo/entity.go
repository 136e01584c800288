// Package repo provides a generic repository surface over any transport
// adapter.
//
// Entity metadata is registered explicitly: callers supply the resource name
// and an identifier accessor per entity type, making identifier extraction a
// compile-time-checked contract instead of runtime field introspection.
package repo

import (
	"errors"
	"strings"
)

// Entity describes how one entity type maps onto a remote resource.
type Entity[T any, ID comparable] struct {
	// Resource is the logical collection name (e.g. "users"). Required.
	Resource string
	// BaseURL optionally overrides the adapter's base URL for this entity.
	// The transport layer itself consumes only Resource; callers that
	// route per entity read this field.
	BaseURL string
	// ID extracts the identifier from an entity. Required.
	ID func(T) ID
}

// NewEntity registers entity metadata with the given resource name and
// identifier accessor.
func NewEntity[T any, ID comparable](resource string, id func(T) ID) Entity[T, ID] {
	return Entity[T, ID]{Resource: resource, ID: id}
}

// WithBaseURL returns a copy of the metadata with a base-URL override.
func (e Entity[T, ID]) WithBaseURL(baseURL string) Entity[T, ID] {
	e.BaseURL = baseURL
	return e
}

// Validate checks that required metadata is present.
func (e Entity[T, ID]) Validate() error {
	if strings.TrimSpace(e.Resource) == "" {
		return errors.New("entity metadata requires a resource name")
	}
	if e.ID == nil {
		return errors.New("entity metadata requires an identifier accessor")
	}
	return nil
}

// ResourceFor derives a default resource name from a type name:
// lowercase plus a plural "s" ("User" -> "users"). Used only when callers
// register metadata without an explicit resource name.
func ResourceFor(typeName string) string {
	name := strings.ToLower(strings.TrimSpace(typeName))
	if name == "" {
		return ""
	}
	if strings.HasSuffix(name, "s") {
		return name + "es"
	}
	return name + "s"
}
