package main

import (
	"context"
	"fmt"

	"studio/config"
	"studio/di"
	"studio/helper"
	"studio/infras/metrics"
	"studio/shared/constant"
	"studio/shared/logger"
	"studio/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Studio API
// @version 1.0
// @description Bookings, gallery and admin session API of the studio website.
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Service stopped")
	}
}

func run() error {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg)
	timezone.Init(cfg.App.Timezone)
	metrics.Register()

	app, err := di.InitializeService()
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer app.Close(context.Background())

	if err := initializeDatabase(context.Background(), cfg, app); err != nil {
		return err
	}

	app.HTTP.Serve()

	return nil
}

// initializeDatabase runs once before serving. With auto migration disabled the schema is
// expected to come from cmd/migrate and only the admin seed runs here.
func initializeDatabase(ctx context.Context, cfg *config.Config, app *di.Application) error {
	if cfg.DB.Postgres.AutoMigrate || cfg.DB.Driver == constant.DriverSQLite {
		return helper.Initialize(ctx, cfg, app.Admins) //nolint:wrapcheck
	}

	if _, err := app.Admins.Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	return nil
}
