package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role determines what an authenticated user is allowed to do.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleEditor        Role = "Editor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleEditor:
		return true
	}
	return false
}

// Status gates whether a user may authenticate.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      Role               `bson:"role" json:"role"`
	Status    Status             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
