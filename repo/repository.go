package repo

import (
	"context"

	"github.com/justapithecus/tram/transport"
)

// Repository exposes CRUD operations for one entity type over a transport
// client. It is protocol-agnostic: the same repository works unchanged over
// the REST, gRPC, and event-bus adapters.
//
// Protocol failures the contract does not tolerate (anything but 404 on
// lookups and deletes) surface as *transport.Error carrying the remote
// status code.
type Repository[T any, ID comparable] struct {
	entity Entity[T, ID]
	client transport.Client
}

// New creates a repository for the given entity metadata and client.
func New[T any, ID comparable](client transport.Client, entity Entity[T, ID]) (*Repository[T, ID], error) {
	if err := entity.Validate(); err != nil {
		return nil, err
	}
	return &Repository[T, ID]{entity: entity, client: client}, nil
}

// Save inserts or updates one entity. A zero identifier means insert (the
// server assigns one); a non-zero identifier means update. The returned
// entity is the server's version when a body came back, the input otherwise.
func (r *Repository[T, ID]) Save(ctx context.Context, entity T) (T, error) {
	var zero T

	builder := transport.NewRequest(transport.OpSave, r.entity.Resource).Payload(entity)
	id := r.entity.ID(entity)
	if !isZero(id) {
		builder = builder.ID(id)
	}
	req, err := builder.Build()
	if err != nil {
		return zero, err
	}

	result, err := transport.Execute[T](ctx, r.client, req)
	if err != nil {
		return zero, err
	}
	if !result.Success {
		return zero, r.protocolError(req, result.StatusCode, result.ErrorMessage)
	}
	if result.Body == nil {
		return entity, nil
	}
	return *result.Body, nil
}

// SaveAll saves entities in order, stopping at the first failure.
func (r *Repository[T, ID]) SaveAll(ctx context.Context, entities []T) ([]T, error) {
	saved := make([]T, 0, len(entities))
	for _, entity := range entities {
		out, err := r.Save(ctx, entity)
		if err != nil {
			return saved, err
		}
		saved = append(saved, out)
	}
	return saved, nil
}

// FindByID looks one entity up. An absent entity (remote 404) reports
// ok=false with no error; callers branch instead of handling a failure.
func (r *Repository[T, ID]) FindByID(ctx context.Context, id ID) (T, bool, error) {
	var zero T

	req, err := transport.NewRequest(transport.OpFindByID, r.entity.Resource).ID(id).Build()
	if err != nil {
		return zero, false, err
	}

	result, err := transport.Execute[T](ctx, r.client, req)
	if err != nil {
		return zero, false, err
	}
	if !result.Success {
		if result.StatusCode == 404 {
			return zero, false, nil
		}
		return zero, false, r.protocolError(req, result.StatusCode, result.ErrorMessage)
	}
	if result.Body == nil {
		return zero, false, nil
	}
	return *result.Body, true, nil
}

// FindAll retrieves every entity of the resource.
func (r *Repository[T, ID]) FindAll(ctx context.Context) ([]T, error) {
	req, err := transport.NewRequest(transport.OpFindAll, r.entity.Resource).Build()
	if err != nil {
		return nil, err
	}
	return r.list(ctx, req)
}

// FindAllByID looks entities up one by one, skipping absent identifiers.
func (r *Repository[T, ID]) FindAllByID(ctx context.Context, ids []ID) ([]T, error) {
	found := make([]T, 0, len(ids))
	for _, id := range ids {
		entity, ok, err := r.FindByID(ctx, id)
		if err != nil {
			return found, err
		}
		if ok {
			found = append(found, entity)
		}
	}
	return found, nil
}

// Query retrieves entities matching the given parameters.
func (r *Repository[T, ID]) Query(ctx context.Context, params map[string]string) ([]T, error) {
	req, err := transport.NewRequest(transport.OpQuery, r.entity.Resource).Params(params).Build()
	if err != nil {
		return nil, err
	}
	return r.list(ctx, req)
}

func (r *Repository[T, ID]) list(ctx context.Context, req *transport.Request) ([]T, error) {
	result, err := transport.ExecuteForList[T](ctx, r.client, req)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, r.protocolError(req, result.StatusCode, result.ErrorMessage)
	}
	if result.Body == nil {
		return []T{}, nil
	}
	return *result.Body, nil
}

// ExistsByID checks whether an entity with the identifier exists.
func (r *Repository[T, ID]) ExistsByID(ctx context.Context, id ID) (bool, error) {
	req, err := transport.NewRequest(transport.OpExists, r.entity.Resource).ID(id).Build()
	if err != nil {
		return false, err
	}

	result, err := transport.Execute[bool](ctx, r.client, req)
	if err != nil {
		return false, err
	}
	if !result.Success {
		return false, r.protocolError(req, result.StatusCode, result.ErrorMessage)
	}
	return result.Body != nil && *result.Body, nil
}

// Count returns the number of entities of the resource.
func (r *Repository[T, ID]) Count(ctx context.Context) (int64, error) {
	req, err := transport.NewRequest(transport.OpCount, r.entity.Resource).Build()
	if err != nil {
		return 0, err
	}

	result, err := transport.Execute[int64](ctx, r.client, req)
	if err != nil {
		return 0, err
	}
	if !result.Success {
		return 0, r.protocolError(req, result.StatusCode, result.ErrorMessage)
	}
	if result.Body == nil {
		return 0, nil
	}
	return *result.Body, nil
}

// DeleteByID removes one entity. Deleting an absent entity is a successful
// no-op: adapters already tolerate remote 404s, and a non-success 404
// reaching this layer is tolerated the same way.
func (r *Repository[T, ID]) DeleteByID(ctx context.Context, id ID) error {
	req, err := transport.NewRequest(transport.OpDelete, r.entity.Resource).ID(id).Build()
	if err != nil {
		return err
	}

	resp, err := r.client.Execute(ctx, req)
	if err != nil {
		return err
	}
	if !resp.Success && resp.StatusCode != 404 {
		return r.protocolError(req, resp.StatusCode, resp.ErrorMessage)
	}
	return nil
}

// Delete removes the given entity by its extracted identifier.
func (r *Repository[T, ID]) Delete(ctx context.Context, entity T) error {
	return r.DeleteByID(ctx, r.entity.ID(entity))
}

// DeleteAllOf removes the given entities in order, stopping at the first
// failure.
func (r *Repository[T, ID]) DeleteAllOf(ctx context.Context, entities []T) error {
	for _, entity := range entities {
		if err := r.Delete(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAll removes every entity of the resource.
func (r *Repository[T, ID]) DeleteAll(ctx context.Context) error {
	entities, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	return r.DeleteAllOf(ctx, entities)
}

// Refresh re-reads the given entity from the remote end. An absent entity
// is a not-found error here, unlike FindByID: the caller asserted the
// entity exists by holding it.
func (r *Repository[T, ID]) Refresh(ctx context.Context, entity T) (T, error) {
	var zero T

	fresh, ok, err := r.FindByID(ctx, r.entity.ID(entity))
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, transport.NewError(transport.ErrProtocol,
			"entity no longer exists", 404, r.entity.Resource, transport.OpFindByID, nil)
	}
	return fresh, nil
}

// protocolError converts an intolerable non-success Response into a
// *transport.Error carrying the remote status.
func (r *Repository[T, ID]) protocolError(req *transport.Request, status int, message string) error {
	if message == "" {
		message = "remote call failed"
	}
	return transport.NewError(transport.ErrProtocol, message, status, req.Resource(), req.Op(), nil)
}

// isZero reports whether id is its type's zero value.
func isZero[ID comparable](id ID) bool {
	var zero ID
	return id == zero
}
