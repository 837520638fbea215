package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"studio/config"
	"studio/helper"
	"studio/infras/database"
	"studio/infras/kafka"
	otelMocks "studio/infras/otel/mocks"
	"studio/internal/domains/booking/model"
	"studio/internal/domains/booking/repository"
	"studio/internal/domains/booking/service"
	"studio/shared/constant"
	gModel "studio/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingService_ListFromSQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Driver = constant.DriverSQLite
	cfg.DB.SQLite.Path = filepath.Join(t.TempDir(), "booking.db")
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.App.WhatsApp.CountryCode = "91"

	require.NoError(t, helper.Up(cfg))

	conn, err := database.New(cfg)
	require.NoError(t, err)
	defer conn.Close()

	tracer := otelMocks.NewOtel()
	repo := repository.New(conn, tracer)

	const inserted = 105

	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	for i := range inserted {
		createdAt := base.Add(time.Duration(i) * time.Minute)
		if i == inserted-1 {
			// same instant as the previous booking, the later id must still come first
			createdAt = base.Add(time.Duration(i-1) * time.Minute)
		}

		_, err := repo.Insert(context.Background(), model.Booking{
			Name:     "Guest",
			Phone:    "919876543210",
			Package:  "Gold",
			Date:     "soon",
			Metadata: gModel.Metadata{CreatedAt: createdAt},
		})
		require.NoError(t, err)
	}

	svc := service.New(repo, cfg, kafka.New(cfg), tracer)

	res, err := svc.List(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, inserted, res.Total)
	require.Len(t, res.Bookings, 100)

	assert.Equal(t, int64(inserted), res.Bookings[0].ID)
	assert.Equal(t, int64(inserted-1), res.Bookings[1].ID)
	assert.Equal(t, int64(inserted-99), res.Bookings[99].ID)

	for i := 1; i < len(res.Bookings); i++ {
		assert.Greater(t, res.Bookings[i-1].ID, res.Bookings[i].ID)
	}

	res, err = svc.List(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, res.Bookings, 3)
	assert.Equal(t, int64(inserted), res.Bookings[0].ID)
}
