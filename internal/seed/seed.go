// Package seed loads the initial fixture data on first start.
package seed

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rdmitr/portfolio-cms/internal/config"
	"github.com/rdmitr/portfolio-cms/internal/models"
	"github.com/rdmitr/portfolio-cms/internal/services"
	"github.com/rdmitr/portfolio-cms/internal/store"
)

// Run seeds the database if no user exists yet. It never fails the
// process: duplicate-key errors from a concurrent seeding race are
// swallowed, anything else is logged and skipped.
func Run(ctx context.Context, database *mongo.Database, cfg *config.Config) {
	count, err := database.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		logrus.WithError(err).Error("seed: counting users")
		return
	}
	if count > 0 {
		return
	}
	logrus.Info("seed: user collection empty, loading fixtures")

	hash, err := services.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		logrus.WithError(err).Error("seed: hashing admin password")
		return
	}

	now := time.Now().UTC()
	insert(ctx, database, "users", models.User{
		Name:      cfg.SeedAdminName,
		Email:     cfg.SeedAdminEmail,
		Password:  hash,
		Role:      models.RoleAdministrator,
		Status:    models.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})

	insert(ctx, database, "personal_info", models.PersonalInfo{
		Key:      store.SingletonKey,
		Name:     cfg.SeedAdminName,
		Headline: "Software Engineer",
		Bio:      "This profile was created by the initial data load. Edit it in the CMS.",
		Email:    cfg.SeedAdminEmail,
		Socials: map[string]string{
			"github": "https://github.com",
		},
		UpdatedAt: now,
	})

	insert(ctx, database, "skills", models.Skills{
		Key: store.SingletonKey,
		Groups: []models.SkillGroup{
			{Name: "Languages", Items: []string{"Go", "TypeScript", "SQL"}},
			{Name: "Infrastructure", Items: []string{"Docker", "MongoDB", "Linux"}},
		},
		UpdatedAt: now,
	})

	insert(ctx, database, "experience",
		models.Experience{Title: "Senior Software Engineer", Company: "Example Corp", Location: "Remote", StartDate: "2022-01", Summary: "Backend services and infrastructure.", Published: true, CreatedAt: now, UpdatedAt: now},
		models.Experience{Title: "Software Engineer", Company: "Startup Inc", Location: "Berlin", StartDate: "2019-03", EndDate: "2021-12", Summary: "Full-stack product work.", Published: true, CreatedAt: now.Add(-time.Second), UpdatedAt: now},
		models.Experience{Title: "Junior Developer", Company: "Agency GmbH", Location: "Berlin", StartDate: "2017-06", EndDate: "2019-02", Summary: "Client web projects.", Published: true, CreatedAt: now.Add(-2 * time.Second), UpdatedAt: now},
	)

	insert(ctx, database, "projects", models.Project{
		Title:       "Portfolio CMS",
		Description: "The backend serving this site.",
		Tech:        []string{"Go", "Fiber", "MongoDB"},
		Published:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	insert(ctx, database, "expertise",
		models.Expertise{Name: "Distributed Systems", Category: "Backend", Level: "Advanced", Published: true, CreatedAt: now, UpdatedAt: now},
		models.Expertise{Name: "API Design", Category: "Backend", Level: "Advanced", Published: true, CreatedAt: now.Add(-time.Second), UpdatedAt: now},
	)

	insert(ctx, database, "logs",
		models.EngineeringLog{Title: "Hello, world", Body: "First entry.", Tags: []string{"meta"}, Date: now.Format("2006-01-02"), Published: true, CreatedAt: now, UpdatedAt: now},
		models.EngineeringLog{Title: "Why this stack", Body: "Notes on the choice of Go, Fiber and MongoDB.", Tags: []string{"go"}, Date: now.Format("2006-01-02"), Published: true, CreatedAt: now.Add(-time.Second), UpdatedAt: now},
	)

	insert(ctx, database, "sections",
		models.Section{Key: "hero", Title: "Welcome", Content: bson.M{"text": "Welcome to my site."}, UpdatedAt: now},
		models.Section{Key: "about", Title: "About", Content: bson.M{"text": "A few words about me."}, UpdatedAt: now},
		models.Section{Key: "contact", Title: "Contact", Content: bson.M{"text": "Get in touch."}, UpdatedAt: now},
	)
}

func insert(ctx context.Context, database *mongo.Database, collection string, docs ...interface{}) {
	_, err := database.Collection(collection).InsertMany(ctx, docs)
	if mongo.IsDuplicateKeyError(err) {
		// Another instance seeded first; idempotency is the point.
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("collection", collection).Warn("seed: insert failed")
	}
}
