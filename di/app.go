package di

import (
	"context"

	"studio/infras/database"
	"studio/infras/kafka"
	"studio/infras/otel"
	adminService "studio/internal/domains/admin/service"
	"studio/transport/http"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Application holds the server and the infrastructure it was built on.
type Application struct {
	HTTP   *http.HTTP
	DB     *database.Connection
	Redis  *goRedis.Client
	Kafka  kafka.Client
	Otel   otel.Otel
	Admins adminService.Admin
}

// Close releases every connection opened by InitializeService.
func (a *Application) Close(ctx context.Context) {
	if err := a.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka writer")
	}

	if err := a.Redis.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close redis client")
	}

	if err := a.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}

	a.DB.Close()
}
