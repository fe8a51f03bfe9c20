package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a portfolio project entry.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Tech        []string           `bson:"tech,omitempty" json:"tech,omitempty"`
	RepoURL     string             `bson:"repo_url,omitempty" json:"repo_url,omitempty"`
	LiveURL     string             `bson:"live_url,omitempty" json:"live_url,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Published   bool               `bson:"published" json:"published"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Experience is a single work-history entry.
type Experience struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Company   string             `bson:"company" json:"company"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	StartDate string             `bson:"start_date" json:"start_date"`
	EndDate   string             `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Summary   string             `bson:"summary,omitempty" json:"summary,omitempty"`
	Published bool               `bson:"published" json:"published"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Expertise is a named competency shown on the site.
type Expertise struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Level     string             `bson:"level,omitempty" json:"level,omitempty"`
	Icon      string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Published bool               `bson:"published" json:"published"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// EngineeringLog is a dated note or short article.
type EngineeringLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Tags      []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Date      string             `bson:"date,omitempty" json:"date,omitempty"`
	Published bool               `bson:"published" json:"published"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
