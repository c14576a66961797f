package main

import (
	"fmt"
	"os"
	"time"

	"github.com/DHANUSH-web/commercial-catalog/configs"
	"github.com/DHANUSH-web/commercial-catalog/docstore"
	"github.com/DHANUSH-web/commercial-catalog/middlewares"
	"github.com/DHANUSH-web/commercial-catalog/repository"
	"github.com/DHANUSH-web/commercial-catalog/routes"
	"github.com/DHANUSH-web/commercial-catalog/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := configs.LoadConfig()
	initLogger(cfg.Env)

	// Store: relational or document, one flag
	var store repository.Store
	switch cfg.StoreBackend {
	case configs.BackendRedis:
		rdb, err := configs.NewRedisClient(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		store = docstore.New(rdb)
	default:
		db, err := configs.ConnectDB(cfg.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("database connect failed")
		}
		store = repository.NewGormStore(db)
	}

	// Blob storage: Cloudinary when configured, local disk otherwise
	var blobs storage.BlobStorage
	if cfg.CloudinaryURL != "" {
		cld, err := storage.NewCloudinaryStorage(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal().Err(err).Msg("cloudinary init failed")
		}
		blobs = cld
	} else {
		blobs = storage.NewLocalStorage(cfg.UploadDir)
	}

	if cfg.SeedDemo {
		if err := configs.SeedDemo(store); err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.CORSMiddleware())

	// Serve locally stored attachment blobs
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, cfg, store, blobs)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().
		Str("addr", addr).
		Str("store", cfg.StoreBackend).
		Msg("server starting")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func initLogger(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
