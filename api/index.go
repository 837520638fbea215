package handler

import (
	"context"
	"net/http"
	"sync"

	"studio/config"
	"studio/di"
	"studio/helper"
	"studio/infras/metrics"
	"studio/shared/logger"
	"studio/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	app     *di.Application
	initErr error
)

func setup() {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg)
	timezone.Init(cfg.App.Timezone)
	metrics.Register()

	app, initErr = di.InitializeService()
	if initErr != nil {
		return
	}

	initErr = helper.Initialize(context.Background(), cfg, app.Admins)
}

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(setup)

	if initErr != nil {
		log.Error().Err(initErr).Msg("service is not initialized")
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)

		return
	}

	app.HTTP.ServeHTTP(w, r)
}
