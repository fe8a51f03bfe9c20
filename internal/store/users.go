package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rdmitr/portfolio-cms/internal/models"
)

// MongoUsers provides the user lookup the login flow depends on.
type MongoUsers struct {
	col *mongo.Collection
}

func NewMongoUsers(db *mongo.Database) *MongoUsers {
	return &MongoUsers{col: db.Collection("users")}
}

// FindByEmail matches the address case-insensitively, mirroring the
// unique index on the collection.
func (u *MongoUsers) FindByEmail(ctx context.Context, email string) (models.User, error) {
	caseInsensitive := options.Collation{Locale: "en", Strength: 2}

	var user models.User
	err := u.col.FindOne(ctx, bson.M{"email": email},
		options.FindOne().SetCollation(&caseInsensitive)).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
