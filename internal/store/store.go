// Package store provides generic, collection-scoped persistence for the
// CMS record types. Every resource is one MongoDB collection; handlers
// depend only on the Collection and Keyed interfaces so tests can swap
// in fakes.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrNotFound means the id or key has no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique-field constraint was violated.
	ErrDuplicate = errors.New("duplicate value for unique field")
)

// Collection is the store for id-addressed records of one shape.
type Collection[T any] interface {
	// ListPublished returns records with published=true, newest first.
	ListPublished(ctx context.Context) ([]T, error)
	// ListAll returns every record, newest first.
	ListAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	// Create inserts doc, stamping id and timestamps, and returns the
	// stored record.
	Create(ctx context.Context, doc T) (T, error)
	// UpdateByID applies fields as a partial update and returns the
	// post-update record. Fields not supplied are left unchanged.
	UpdateByID(ctx context.Context, id string, fields bson.M) (T, error)
	DeleteByID(ctx context.Context, id string) error
}

// Keyed is the store for documents addressed by a caller-supplied key:
// singletons (constant key) and page sections (per-request key). Records
// are created lazily by the first Upsert and never deleted.
type Keyed[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Upsert(ctx context.Context, key string, fields bson.M) (T, error)
}
