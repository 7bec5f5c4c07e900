package store

import (
	"context"

	"autokomis/backoffice/internal/models/dtos"
	"autokomis/backoffice/internal/models/entities"
)

// CarStore is the persistence seam for the listing collection. Two
// implementations exist: the GORM-backed Postgres repository and the
// flat-file JSON store. The backend is chosen once at startup, never per
// request.
//
// All methods speak the canonical entity shape; the backend row shape is an
// implementation detail behind the mapper. Concurrent edits to the same
// record resolve last-write-wins; no optimistic concurrency token exists.
type CarStore interface {
	// List returns every record ordered by created_at descending.
	List(ctx context.Context) ([]entities.Car, error)

	// GetByID returns the record or a NotFoundError.
	GetByID(ctx context.Context, id string) (*entities.Car, error)

	// Insert stores a new record. A colliding id yields a ConflictError.
	Insert(ctx context.Context, car *entities.Car) (*entities.Car, error)

	// UpdateByID merges the patch onto the existing record and returns the
	// result, or a NotFoundError when id is absent.
	UpdateByID(ctx context.Context, id string, patch *dtos.CarPatch) (*entities.Car, error)

	// DeleteByID removes the record, or returns a NotFoundError.
	DeleteByID(ctx context.Context, id string) error
}
