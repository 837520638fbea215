//go:build wireinject
// +build wireinject

package di

import (
	"studio/config"
	"studio/infras/database"
	"studio/infras/jwt"
	"studio/infras/kafka"
	"studio/infras/otel"
	"studio/infras/redis"
	"studio/infras/s3"
	bookingHandler "studio/internal/handlers/booking"
	galleryHandler "studio/internal/handlers/gallery"
	healthHandler "studio/internal/handlers/health"
	pageHandler "studio/internal/handlers/page"
	"studio/shared/cache"
	"studio/transport/http"
	"studio/transport/http/middleware"
	"studio/transport/http/router"

	adminRepository "studio/internal/domains/admin/repository"
	adminService "studio/internal/domains/admin/service"
	assetRepository "studio/internal/domains/asset/repository"
	assetService "studio/internal/domains/asset/service"
	authService "studio/internal/domains/auth/service"
	bookingRepository "studio/internal/domains/booking/repository"
	bookingService "studio/internal/domains/booking/service"
	galleryRepository "studio/internal/domains/gallery/repository"
	galleryService "studio/internal/domains/gallery/service"
	homeRepository "studio/internal/domains/home/repository"
	homeService "studio/internal/domains/home/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSessionMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var homeDomain = wire.NewSet(
	homeRepository.New,
	homeService.New,
)

var assetDomain = wire.NewSet(
	assetRepository.New,
	assetService.New,
)

var domains = wire.NewSet(
	adminDomain,
	authDomain,
	bookingDomain,
	galleryDomain,
	homeDomain,
	assetDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	pageHandler.New,
	bookingHandler.New,
	galleryHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() (*Application, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}
