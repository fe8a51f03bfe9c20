package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media is an uploaded asset stored in the object store, referenced from
// content records by URL.
type Media struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Filename    string             `bson:"filename" json:"filename"`
	ObjectName  string             `bson:"object_name" json:"-"`
	URL         string             `bson:"url" json:"url"`
	Size        int64              `bson:"size" json:"size"`
	ContentType string             `bson:"content_type,omitempty" json:"content_type,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
