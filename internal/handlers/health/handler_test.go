package health_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio/config"
	"studio/infras/database"
	otelMocks "studio/infras/otel/mocks"
	"studio/internal/handlers/health"
	"studio/shared/constant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, cfg *config.Config) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	conn := &database.Connection{Read: sqlxDB, Write: sqlxDB, Driver: cfg.DB.Driver}

	handler := health.New(conn, cfg, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router, mock
}

func TestHealth(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Driver = constant.DriverSQLite
	cfg.DB.SQLite.Path = "booking.db"
	cfg.App.WhatsApp.AdminNumber = "8149003738"

	router, mock := newRouter(t, cfg)
	mock.ExpectPing()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t,
		`{"status":"ok","whatsapp":"918149003738","database":"booking.db","db_ready":true}`,
		recorder.Body.String(),
	)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealth_DatabaseDown(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Driver = constant.DriverPostgres
	cfg.DB.Postgres.Write.Name = "studio"

	router, mock := newRouter(t, cfg)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t,
		`{"status":"ok","whatsapp":"918149003738","database":"studio","db_ready":false}`,
		recorder.Body.String(),
	)
}
