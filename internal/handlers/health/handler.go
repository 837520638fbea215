package health

import (
	"net/http"

	"studio/config"
	"studio/infras/database"
	"studio/infras/otel"
	bookingService "studio/internal/domains/booking/service"
	"studio/shared/constant"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Response struct {
	Status   string `json:"status"`
	WhatsApp string `json:"whatsapp"`
	Database string `json:"database"`
	DBReady  bool   `json:"db_ready"`
}

type Handler struct {
	db   *database.Connection
	cfg  *config.Config
	otel otel.Otel
}

func New(db *database.Connection, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		db:   db,
		cfg:  cfg,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

func (handler *Handler) databaseName() string {
	if handler.cfg.DB.Driver == constant.DriverSQLite {
		return handler.cfg.DB.SQLite.Path
	}

	return handler.cfg.DB.Postgres.Prefix + handler.cfg.DB.Postgres.Write.Name
}

// Health reports the configured admin number and whether the database answers.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Router /api/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	whatsapp, ok := bookingService.AdminNumber(handler.cfg.App.WhatsApp.AdminNumber, handler.cfg.App.WhatsApp.CountryCode)
	if !ok {
		whatsapp = constant.DefaultAdminWhatsApp
	}

	ready := true

	if err := handler.db.Ping(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("database health check failed")

		ready = false
	}

	response.WithRaw(w, http.StatusOK, Response{
		Status:   constant.HealthStatusOK,
		WhatsApp: whatsapp,
		Database: handler.databaseName(),
		DBReady:  ready,
	})
}
