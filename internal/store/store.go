// Package store holds the authoritative collection of todo records.
// Two implementations satisfy the same contract: a mutex-guarded
// in-process map and a Postgres table.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/psilva-leo/ai-todo/internal/models"
)

// ErrNotFound reports that an id names no current record. Absence is
// part of the contract, not a store fault; the service layer decides
// how to surface it.
var ErrNotFound = errors.New("todo not found")

// ErrDuplicateID reports an id collision on insert. Ids are random
// uuids generated immediately before Create, so a collision is an
// internal fault, not a caller error.
var ErrDuplicateID = errors.New("duplicate todo id")

// Store operations are atomic with respect to each other. Update holds
// exclusive access across the whole read-modify-write so concurrent
// merges against the same id never lose a write. Operations run to
// completion even if the caller has gone away; ctx bounds only the
// backing I/O.
type Store interface {
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)
	Get(ctx context.Context, id uuid.UUID) (models.Todo, error)

	// List returns a snapshot of all records ordered by created_at
	// descending, most recent first.
	List(ctx context.Context) ([]models.Todo, error)

	// Update applies mutate to the current value of id and persists
	// the result, returning the new value.
	Update(ctx context.Context, id uuid.UUID, mutate func(*models.Todo)) (models.Todo, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
