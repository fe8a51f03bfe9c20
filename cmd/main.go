package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/rdmitr/portfolio-cms/internal/config"
	"github.com/rdmitr/portfolio-cms/internal/db"
	"github.com/rdmitr/portfolio-cms/internal/routes"
	"github.com/rdmitr/portfolio-cms/internal/seed"
	"github.com/rdmitr/portfolio-cms/internal/storage"
)

func main() {
	// Load .env if present; real deployments use plain environment
	// variables.
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	formatter := new(logrus.TextFormatter)
	formatter.FullTimestamp = true
	logrus.SetFormatter(formatter)

	database, err := db.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	logrus.WithField("db", cfg.MongoDB).Info("connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(ctx, database); err != nil {
		logrus.WithError(err).Fatal("creating indexes failed")
	}
	seed.Run(ctx, database, cfg)

	objects, err := storage.NewObjectStore(cfg.MinioEndpoint, cfg.MinioAccessKey,
		cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		logrus.WithError(err).Fatal("object storage connection failed")
	}
	logrus.WithField("bucket", cfg.MinioBucket).Info("connected to MinIO")

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	routes.Register(app, database, objects, cfg)

	logrus.WithField("addr", cfg.Addr()).Info("starting server")
	logrus.Fatal(app.Listen(cfg.Addr()))
}
