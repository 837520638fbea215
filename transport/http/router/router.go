package router

import (
	"studio/internal/handlers/booking"
	"studio/internal/handlers/gallery"
	"studio/internal/handlers/health"
	"studio/internal/handlers/page"
	"studio/transport/http/middleware"

	_ "studio/docs" //nolint:revive

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Page    page.Handler
	Booking booking.Handler
	Gallery gallery.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.RequestID,
		r.App.RealIP,
		chiMiddleware.Recoverer,
		r.App.Tracing,
		r.App.Metrics,
		r.App.Logging,
	)

	r.DomainHandlers.Page.Router(router)

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.App.CORS())

		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Health.Router(routerGroup)
	})

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
	}
}
