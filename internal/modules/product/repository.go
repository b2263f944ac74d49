package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound signals that no product with the requested identity exists.
// Reads report absence through their found flag instead; only Update uses
// this sentinel.
var ErrNotFound = errors.New("product not found")

// ErrDuplicateID signals an insert with an identity that already exists.
var ErrDuplicateID = errors.New("product id already exists")

// PersistenceError wraps a backing-store failure that is not the
// caller's fault, such as a constraint violation or lost connectivity.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Repository is the persistence port for products. Implementations decide
// their own consistency model; concurrent updates against the same
// identity resolve last-writer-wins.
type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (Product, bool, error)
	Add(ctx context.Context, product Product) (uuid.UUID, error)
	Update(ctx context.Context, product Product) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
