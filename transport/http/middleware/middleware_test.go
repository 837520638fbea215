package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio/config"
	otelMocks "studio/infras/otel/mocks"
	authMocks "studio/internal/domains/auth/mocks"
	"studio/internal/domains/auth/model"
	authService "studio/internal/domains/auth/service"
	"studio/shared/cache"
	"studio/shared/constant"
	"studio/transport/http/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "studio"
	cfg.Session.CookieName = "studio_session"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.App.CORS.AllowedHeaders = []string{"Content-Type", "Accept"}

	return cfg
}

func newCache(t *testing.T) cache.RedisCache {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, otelMocks.NewOtel())
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequirePage_NoCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authMocks.NewMockAuth(ctrl)
	cfg := newConfig()

	gate := middleware.NewSessionMiddleware(auth, otelMocks.NewOtel(), cfg)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, constant.RoutePathDashboard, nil)

	gate.RequirePage(http.HandlerFunc(okHandler)).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, constant.RoutePathAdminLogin, recorder.Header().Get("Location"))

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cfg.Session.CookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestRequireAPI_RevokedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authMocks.NewMockAuth(ctrl)
	cfg := newConfig()

	auth.EXPECT().Resolve(gomock.Any(), "revoked").Return(nil, authService.ErrNotLoggedIn)

	gate := middleware.NewSessionMiddleware(auth, otelMocks.NewOtel(), cfg)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	request.AddCookie(&http.Cookie{Name: cfg.Session.CookieName, Value: "revoked"})

	gate.RequireAPI(http.HandlerFunc(okHandler)).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"error":"login required"}`, recorder.Body.String())
}

func TestRequirePage_ValidSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authMocks.NewMockAuth(ctrl)
	cfg := newConfig()

	session := &model.Session{
		TokenID:   "jti-1",
		Username:  "admin",
		LoggedIn:  true,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	auth.EXPECT().Resolve(gomock.Any(), "valid").Return(session, nil)

	gate := middleware.NewSessionMiddleware(auth, otelMocks.NewOtel(), cfg)

	var got *model.Session

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = model.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, constant.RoutePathDashboard, nil)
	request.AddCookie(&http.Cookie{Name: cfg.Session.CookieName, Value: "valid"})

	gate.RequirePage(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, got)
	assert.Equal(t, "admin", got.Username)
	assert.Empty(t, recorder.Result().Cookies())
}

func TestRateLimit(t *testing.T) {
	cfg := newConfig()
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, newCache(t))
	handler := app.RateLimit()(http.HandlerFunc(okHandler))

	codes := make([]int, 0, 3)

	for range 3 {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/book", nil)
		request.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")

		handler.ServeHTTP(recorder, request)
		codes = append(codes, recorder.Code)

		if recorder.Code == http.StatusOK {
			assert.Equal(t, "2", recorder.Header().Get(constant.RequestHeaderRateLimit))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_Disabled(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), newConfig(), nil)

	recorder := httptest.NewRecorder()
	app.RateLimit()(http.HandlerFunc(okHandler)).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/book", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get(constant.RequestHeaderRateLimit))
}

func TestLoginThrottle(t *testing.T) {
	cfg := newConfig()
	cfg.App.LoginThrottle.RPS = 0.001
	cfg.App.LoginThrottle.Burst = 1

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil)
	handler := app.LoginThrottle()(http.HandlerFunc(okHandler))

	send := func(ip string) int {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, constant.RoutePathAdminLogin, nil)
		request.RemoteAddr = ip + ":5555"

		handler.ServeHTTP(recorder, request)

		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, send("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.1"))
	assert.Equal(t, http.StatusOK, send("198.51.100.2"))
}

func TestLoginThrottle_IgnoresForwardedHeaders(t *testing.T) {
	cfg := newConfig()
	cfg.App.LoginThrottle.RPS = 0.001
	cfg.App.LoginThrottle.Burst = 2

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil)
	handler := app.RealIP(app.LoginThrottle()(http.HandlerFunc(okHandler)))

	codes := make([]int, 0, 6)

	for i := range 6 {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, constant.RoutePathAdminLogin, nil)
		request.RemoteAddr = "198.51.100.9:5555"
		request.Header.Set(constant.RequestHeaderForwardedFor, fmt.Sprintf("203.0.113.%d", i))
		request.Header.Set(constant.RequestHeaderRealIP, fmt.Sprintf("192.0.2.%d", i))

		handler.ServeHTTP(recorder, request)
		codes = append(codes, recorder.Code)
	}

	assert.Equal(t, []int{
		http.StatusOK, http.StatusOK,
		http.StatusTooManyRequests, http.StatusTooManyRequests, http.StatusTooManyRequests, http.StatusTooManyRequests,
	}, codes)
	assert.Equal(t, 1, middleware.LoginClients(app))
}

func TestLoginThrottle_TrustedProxy(t *testing.T) {
	cfg := newConfig()
	cfg.App.LoginThrottle.RPS = 0.001
	cfg.App.LoginThrottle.Burst = 1
	cfg.App.TrustProxy = true

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil)
	handler := app.RealIP(app.LoginThrottle()(http.HandlerFunc(okHandler)))

	send := func(forwardedFor string) int {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, constant.RoutePathAdminLogin, nil)
		request.RemoteAddr = "10.0.0.2:5555"
		request.Header.Set(constant.RequestHeaderForwardedFor, forwardedFor)

		handler.ServeHTTP(recorder, request)

		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.1"))
	assert.Equal(t, http.StatusOK, send("203.0.113.2"))
}

func TestLoginThrottle_BoundedClients(t *testing.T) {
	cfg := newConfig()
	cfg.App.LoginThrottle.RPS = 0.001
	cfg.App.LoginThrottle.Burst = 1
	cfg.App.LoginThrottle.MaxClients = 3

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil)
	handler := app.LoginThrottle()(http.HandlerFunc(okHandler))

	codes := make([]int, 0, 10)

	for i := range 10 {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, constant.RoutePathAdminLogin, nil)
		request.RemoteAddr = fmt.Sprintf("198.51.100.%d:5555", i)

		handler.ServeHTTP(recorder, request)
		codes = append(codes, recorder.Code)
	}

	assert.Equal(t, 3, middleware.LoginClients(app))
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusOK, http.StatusOK}, codes[:4])

	for _, code := range codes[4:] {
		assert.Equal(t, http.StatusTooManyRequests, code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), newConfig(), nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodOptions, "/api/book", nil)
	request.Header.Set("Origin", "https://studio.example.com")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)

	app.CORS()(http.HandlerFunc(okHandler)).ServeHTTP(recorder, request)

	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestTracing_RecordsSpan(t *testing.T) {
	tracer := otelMocks.NewOtel()
	app := middleware.NewAppMiddleware(tracer, newConfig(), nil)

	recorder := httptest.NewRecorder()
	app.Tracing(http.HandlerFunc(okHandler)).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, tracer.Spans(), "GET /api/health")
}
