// Package routes binds controllers to paths and attaches the right
// authorization gate to each operation.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rdmitr/portfolio-cms/internal/config"
	"github.com/rdmitr/portfolio-cms/internal/handlers"
	"github.com/rdmitr/portfolio-cms/internal/middleware"
	"github.com/rdmitr/portfolio-cms/internal/models"
	"github.com/rdmitr/portfolio-cms/internal/services"
	"github.com/rdmitr/portfolio-cms/internal/storage"
	"github.com/rdmitr/portfolio-cms/internal/store"
)

// Register wires every endpoint under /api.
func Register(app *fiber.App, database *mongo.Database, objects *storage.ObjectStore, cfg *config.Config) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := handlers.NewAuth(services.NewAuth(store.NewMongoUsers(database), cfg.JWTSecret))
	api.Post("/auth/login", auth.Login)

	protected := middleware.Protected(cfg.JWTSecret)
	adminOnly := middleware.AdminOnly(cfg.JWTSecret)

	// The four content resources share one wiring: public list, gated
	// admin list/create/update, administrator-only delete.
	content[models.Project](api, "/projects", store.NewMongoCollection[models.Project](database, "projects"), protected, adminOnly)
	content[models.Experience](api, "/experience", store.NewMongoCollection[models.Experience](database, "experience"), protected, adminOnly)
	content[models.Expertise](api, "/expertise", store.NewMongoCollection[models.Expertise](database, "expertise"), protected, adminOnly)
	content[models.EngineeringLog](api, "/logs", store.NewMongoCollection[models.EngineeringLog](database, "logs"), protected, adminOnly)

	users := handlers.NewUsers(store.NewMongoCollection[models.User](database, "users"))
	u := api.Group("/users", adminOnly)
	u.Get("/", users.List)
	u.Post("/", users.Create)
	u.Put("/:id", users.Update)
	u.Delete("/:id", users.Delete)

	personalInfo := handlers.NewSingleton[models.PersonalInfo](store.NewMongoKeyed[models.PersonalInfo](database, "personal_info"))
	api.Get("/personal-info", personalInfo.Get)
	api.Put("/personal-info", protected, personalInfo.Put)

	skills := handlers.NewSingleton[models.Skills](store.NewMongoKeyed[models.Skills](database, "skills"))
	api.Get("/skills", skills.Get)
	api.Put("/skills", protected, skills.Put)

	sections := handlers.NewKeyedDocument[models.Section](store.NewMongoKeyed[models.Section](database, "sections"), "sectionId")
	api.Get("/sections/:sectionId", sections.Get)
	api.Put("/sections/:sectionId", protected, sections.Put)

	media := handlers.NewMedia(store.NewMongoCollection[models.Media](database, "media"), objects)
	m := api.Group("/media")
	m.Get("/", protected, media.List)
	m.Post("/", protected, media.Upload)
	m.Delete("/:id", adminOnly, media.Delete)
}

func content[T any](api fiber.Router, path string, s store.Collection[T], protected, adminOnly fiber.Handler) {
	ctrl := handlers.NewResource(s)
	g := api.Group(path)
	g.Get("/", ctrl.GetPublic)
	g.Get("/all", protected, ctrl.GetAll)
	g.Post("/", protected, ctrl.Create)
	g.Put("/:id", protected, ctrl.Update)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
