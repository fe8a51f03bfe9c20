package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens a MongoDB connection and verifies it with a ping.
func Connect(uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}
	return client.Database(dbName), nil
}

// EnsureIndexes creates the unique indexes the service relies on:
// case-insensitive email uniqueness on users and key uniqueness on the
// keyed-document collections.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	caseInsensitive := options.Collation{Locale: "en", Strength: 2}

	_, err := database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&caseInsensitive),
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	for _, name := range []string{"personal_info", "skills", "sections"} {
		_, err := database.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("%s key index: %w", name, err)
		}
	}
	return nil
}
