package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Singleton documents are stored as key-addressed records with one fixed
// key per collection.
const SingletonKey = "default"

// MongoKeyed implements Keyed[T] on one MongoDB collection with a unique
// "key" field.
type MongoKeyed[T any] struct {
	col *mongo.Collection
}

func NewMongoKeyed[T any](db *mongo.Database, name string) *MongoKeyed[T] {
	return &MongoKeyed[T]{col: db.Collection(name)}
}

func (k *MongoKeyed[T]) Get(ctx context.Context, key string) (T, error) {
	var doc T
	err := k.col.FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		var zero T
		return zero, ErrNotFound
	}
	return doc, err
}

func (k *MongoKeyed[T]) Upsert(ctx context.Context, key string, fields bson.M) (T, error) {
	var zero T

	delete(fields, "_id")
	delete(fields, "id")
	delete(fields, "key")
	delete(fields, "section_id")
	fields["updated_at"] = time.Now().UTC()

	update := bson.M{
		"$set":         fields,
		"$setOnInsert": bson.M{"key": key},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc T
	err := k.col.FindOneAndUpdate(ctx, bson.M{"key": key}, update, opts).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		// A concurrent first-time upsert won the insert; rerun so this
		// write lands on the now-existing document.
		err = k.col.FindOneAndUpdate(ctx, bson.M{"key": key}, update, opts).Decode(&doc)
	}
	if err != nil {
		return zero, err
	}
	return doc, nil
}
