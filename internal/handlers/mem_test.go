package handlers

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rdmitr/portfolio-cms/internal/store"
)

// memCollection is an in-memory Collection implementation with the same
// observable semantics as the Mongo one: generated ids, timestamps,
// partial updates, unique-field checks.
type memCollection[T any] struct {
	mu       sync.Mutex
	records  map[string]bson.M
	order    []string
	uniques  []string
	failWith error
}

func newMemCollection[T any](uniqueFields ...string) *memCollection[T] {
	return &memCollection[T]{
		records: map[string]bson.M{},
		uniques: uniqueFields,
	}
}

func toFields(doc any) bson.M {
	raw, _ := bson.Marshal(doc)
	fields := bson.M{}
	_ = bson.Unmarshal(raw, &fields)
	return fields
}

func decode[T any](fields bson.M) T {
	raw, _ := bson.Marshal(fields)
	var doc T
	_ = bson.Unmarshal(raw, &doc)
	return doc
}

func (m *memCollection[T]) violatesUnique(fields bson.M, selfID string) bool {
	for _, field := range m.uniques {
		value, ok := fields[field].(string)
		if !ok {
			continue
		}
		for id, existing := range m.records {
			if id == selfID {
				continue
			}
			if other, ok := existing[field].(string); ok && strings.EqualFold(other, value) {
				return true
			}
		}
	}
	return false
}

func (m *memCollection[T]) ListPublished(context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []T{}
	for i := len(m.order) - 1; i >= 0; i-- {
		fields := m.records[m.order[i]]
		if published, _ := fields["published"].(bool); published {
			out = append(out, decode[T](fields))
		}
	}
	return out, nil
}

func (m *memCollection[T]) ListAll(context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []T{}
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, decode[T](m.records[m.order[i]]))
	}
	return out, nil
}

func (m *memCollection[T]) GetByID(_ context.Context, id string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	fields, ok := m.records[id]
	if !ok {
		return zero, store.ErrNotFound
	}
	return decode[T](fields), nil
}

func (m *memCollection[T]) Create(_ context.Context, doc T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if m.failWith != nil {
		return zero, m.failWith
	}
	fields := toFields(doc)
	if m.violatesUnique(fields, "") {
		return zero, store.ErrDuplicate
	}
	id := primitive.NewObjectID()
	fields["_id"] = id
	now := time.Now().UTC()
	fields["created_at"] = now
	fields["updated_at"] = now
	m.records[id.Hex()] = fields
	m.order = append(m.order, id.Hex())
	return decode[T](fields), nil
}

func (m *memCollection[T]) UpdateByID(_ context.Context, id string, update bson.M) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	fields, ok := m.records[id]
	if !ok {
		return zero, store.ErrNotFound
	}
	merged := bson.M{}
	for k, v := range fields {
		merged[k] = v
	}
	for k, v := range update {
		if k == "_id" || k == "id" || k == "created_at" {
			continue
		}
		merged[k] = v
	}
	if m.violatesUnique(merged, id) {
		return zero, store.ErrDuplicate
	}
	merged["updated_at"] = time.Now().UTC()
	m.records[id] = merged
	return decode[T](merged), nil
}

func (m *memCollection[T]) DeleteByID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.records, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// stored returns the raw field map for assertions on persisted state.
func (m *memCollection[T]) stored(id string) bson.M {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[id]
}

// memKeyed is an in-memory Keyed implementation.
type memKeyed[T any] struct {
	mu   sync.Mutex
	docs map[string]bson.M
}

func newMemKeyed[T any]() *memKeyed[T] {
	return &memKeyed[T]{docs: map[string]bson.M{}}
}

func (m *memKeyed[T]) Get(_ context.Context, key string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	fields, ok := m.docs[key]
	if !ok {
		return zero, store.ErrNotFound
	}
	return decode[T](fields), nil
}

func (m *memKeyed[T]) Upsert(_ context.Context, key string, update bson.M) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	merged, ok := m.docs[key]
	if !ok {
		merged = bson.M{"key": key}
	}
	for k, v := range update {
		if k == "_id" || k == "id" || k == "key" || k == "section_id" {
			continue
		}
		merged[k] = v
	}
	merged["updated_at"] = time.Now().UTC()
	m.docs[key] = merged
	return decode[T](merged), nil
}
