package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/cloud"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/config"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/database"
	httpHandlers "github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/http"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/repository"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/service"
	"github.com/ANIKETSHETTY47/industrial-automation-toolkit/internal/tables"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	config.SetupLogging()
	ctx := context.Background()

	set := loadTables(ctx)
	log.Info().Str("version", set.Version).Msg("reference tables loaded")

	var store service.SheetStore
	if config.UseCloudServices() {
		s3, err := cloud.NewS3Store(ctx, config.AWSRegion(), config.S3Bucket())
		if err != nil {
			log.Fatal().Err(err).Msg("s3 init failed")
		}
		store = s3
		log.Info().Str("bucket", config.S3Bucket()).Msg("sheet export enabled")
	}

	svcs := service.New(set, store)
	app := fiber.New()
	app.Use(httpHandlers.RequestLogger())
	httpHandlers.Register(app, svcs)

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}

// loadTables serves the built-in tables unless a database is configured.
func loadTables(ctx context.Context) *tables.Set {
	if config.DatabaseDSN() == "" {
		return tables.Default()
	}
	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	set, err := repository.New(db).LoadTableSet(ctx, config.TableVersion())
	if err != nil {
		log.Fatal().Err(err).Str("version", config.TableVersion()).Msg("table load failed")
	}
	return set
}
