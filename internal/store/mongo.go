package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection implements Collection[T] on one MongoDB collection.
type MongoCollection[T any] struct {
	col *mongo.Collection
}

func NewMongoCollection[T any](db *mongo.Database, name string) *MongoCollection[T] {
	return &MongoCollection[T]{col: db.Collection(name)}
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

func (c *MongoCollection[T]) find(ctx context.Context, filter bson.M) ([]T, error) {
	cursor, err := c.col.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []T{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *MongoCollection[T]) ListPublished(ctx context.Context) ([]T, error) {
	return c.find(ctx, bson.M{"published": true})
}

func (c *MongoCollection[T]) ListAll(ctx context.Context) ([]T, error) {
	return c.find(ctx, bson.M{})
}

func (c *MongoCollection[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, ErrNotFound
	}
	var doc T
	err = c.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, err
	}
	return doc, nil
}

func (c *MongoCollection[T]) Create(ctx context.Context, doc T) (T, error) {
	var zero T
	fields, err := toFields(doc)
	if err != nil {
		return zero, err
	}
	delete(fields, "_id")
	now := time.Now().UTC()
	fields["created_at"] = now
	fields["updated_at"] = now

	res, err := c.col.InsertOne(ctx, fields)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return zero, ErrDuplicate
		}
		return zero, err
	}

	var created T
	err = c.col.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&created)
	return created, err
}

func (c *MongoCollection[T]) UpdateByID(ctx context.Context, id string, fields bson.M) (T, error) {
	var zero T
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, ErrNotFound
	}

	// Never allow the identifier or creation time to be rewritten.
	delete(fields, "_id")
	delete(fields, "id")
	delete(fields, "created_at")
	fields["updated_at"] = time.Now().UTC()

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated T
	err = c.col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": fields}, after).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return zero, ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return zero, ErrDuplicate
	}
	if err != nil {
		return zero, err
	}
	return updated, nil
}

func (c *MongoCollection[T]) DeleteByID(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := c.col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// toFields flattens a record into its bson field map so inserts and
// updates share one representation.
func toFields(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	fields := bson.M{}
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
