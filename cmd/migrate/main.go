package main

import (
	"context"
	"os"

	"studio/config"
	"studio/helper"
	"studio/infras/database"
	"studio/infras/otel"
	adminRepository "studio/internal/domains/admin/repository"
	adminService "studio/internal/domains/admin/service"
	"studio/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength  = 2
	actionInit = "init"
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	action := os.Args[1]

	if action == actionInit {
		if err := initialize(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize database")
		}

		return
	}

	switch action {
	case helper.ActionUp, helper.ActionDown, helper.ActionDrop, helper.ActionStepUp:
		if err := helper.Runner(cfg, action); err != nil {
			log.Fatal().Err(err).Str("action", action).Msg("Migration failed")
		}
	default:
		log.Fatal().Str("action", action).Msg("Invalid direction. Use 'up', 'down', 'drop', 'step-up' or 'init'")
	}
}

// initialize migrates the schema and seeds the admin account.
func initialize(cfg *config.Config) error {
	conn, err := database.New(cfg)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer conn.Close()

	tracer := otel.New(cfg)
	admins := adminService.New(adminRepository.New(conn, tracer), cfg, tracer)

	return helper.Initialize(context.Background(), cfg, admins) //nolint:wrapcheck
}
