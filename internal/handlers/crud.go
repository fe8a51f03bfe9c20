// Package handlers maps HTTP requests onto store operations. Resource
// and Document are generic controllers; every concrete resource type is
// an instantiation of one of them.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rdmitr/portfolio-cms/internal/store"
)

// storeError translates store failures into responses. Anything outside
// the known taxonomy surfaces as a 500 with the raw message; this is an
// internal single-tenant tool, masking would only hide problems.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Record not found"})
	case errors.Is(err, store.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}

// Resource is the CRUD controller for an id-addressed record type.
type Resource[T any] struct {
	store store.Collection[T]
}

func NewResource[T any](s store.Collection[T]) *Resource[T] {
	return &Resource[T]{store: s}
}

// GetPublic lists published records only.
func (r *Resource[T]) GetPublic(c *fiber.Ctx) error {
	records, err := r.store.ListPublished(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(records)
}

// GetAll lists every record, including unpublished ones.
func (r *Resource[T]) GetAll(c *fiber.Ctx) error {
	records, err := r.store.ListAll(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(records)
}

func (r *Resource[T]) Create(c *fiber.Ctx) error {
	var doc T
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	created, err := r.store.Create(c.Context(), doc)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update applies a partial update: only the fields present in the body
// are changed.
func (r *Resource[T]) Update(c *fiber.Ctx) error {
	fields := bson.M{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	updated, err := r.store.UpdateByID(c.Context(), c.Params("id"), fields)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(updated)
}

func (r *Resource[T]) Delete(c *fiber.Ctx) error {
	if err := r.store.DeleteByID(c.Context(), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Record deleted"})
}

// Document is the controller for key-addressed documents: the singletons
// (fixed key) and page sections (key from the route).
type Document[T any] struct {
	store store.Keyed[T]
	key   func(c *fiber.Ctx) string
}

// NewSingleton builds a Document controller bound to the fixed
// singleton key.
func NewSingleton[T any](s store.Keyed[T]) *Document[T] {
	return &Document[T]{store: s, key: func(*fiber.Ctx) string { return store.SingletonKey }}
}

// NewKeyedDocument builds a Document controller whose key comes from the
// named route parameter.
func NewKeyedDocument[T any](s store.Keyed[T], param string) *Document[T] {
	return &Document[T]{store: s, key: func(c *fiber.Ctx) string { return c.Params(param) }}
}

// Get returns the document, or an empty object when nothing has been
// written yet. A missing document is not an error here.
func (d *Document[T]) Get(c *fiber.Ctx) error {
	doc, err := d.store.Get(c.Context(), d.key(c))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(fiber.Map{})
	}
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(doc)
}

// Put upserts the document: the first write creates it, later writes
// update it in place.
func (d *Document[T]) Put(c *fiber.Ctx) error {
	fields := bson.M{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	doc, err := d.store.Upsert(c.Context(), d.key(c), fields)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(doc)
}
