package types

import "errors"

// ActivityRepository provides CRUD operations over stored activities.
// Every call round-trips to storage and commits on success.
type ActivityRepository interface {
	// Create inserts the activity and returns the id assigned by storage.
	Create(a Activity) (int64, error)

	// List returns every stored record in storage order. An empty store
	// yields an empty slice and no error.
	List() ([]Record, error)

	// Update rewrites the fields present in the patch on the record with the
	// given id and returns the number of rows affected. A missing id is not
	// an error.
	Update(id int64, patch ActivityPatch) (int64, error)

	// Delete removes the record with the given id and returns the number of
	// rows affected. A missing id is not an error.
	Delete(id int64) (int64, error)

	// Close releases the underlying storage connection. Idempotent.
	Close() error
}

// Storage lifecycle errors.
var (
	ErrConnection  = errors.New("cannot connect to database")
	ErrSchema      = errors.New("cannot create schema")
	ErrStoreClosed = errors.New("store is closed")
)

// ErrInvalidKind is returned by ParseKind for an unrecognized label.
var ErrInvalidKind = errors.New("invalid activity kind")
