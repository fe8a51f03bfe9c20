package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PersonalInfo is the site owner's profile. At most one instance exists;
// it is addressed by a fixed key, not an identifier.
type PersonalInfo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Key       string             `bson:"key" json:"-"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Headline  string             `bson:"headline,omitempty" json:"headline,omitempty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Socials   map[string]string  `bson:"socials,omitempty" json:"socials,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type SkillGroup struct {
	Name  string   `bson:"name" json:"name"`
	Items []string `bson:"items,omitempty" json:"items,omitempty"`
}

// Skills is the singleton skill matrix.
type Skills struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Key       string             `bson:"key" json:"-"`
	Groups    []SkillGroup       `bson:"groups,omitempty" json:"groups,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Section is a free-form page fragment addressed by a caller-chosen key.
type Section struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Key       string             `bson:"key" json:"section_id"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Content   bson.M             `bson:"content,omitempty" json:"content,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
