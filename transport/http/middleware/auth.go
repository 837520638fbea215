package middleware

import (
	"net/http"

	"studio/config"
	"studio/infras/otel"
	"studio/internal/domains/auth/model"
	authService "studio/internal/domains/auth/service"
	"studio/shared/constant"
	"studio/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Session gates routes behind a logged in admin session.
type Session interface {
	// RequirePage redirects visitors without a session to the login page.
	RequirePage(next http.Handler) http.Handler
	// RequireAPI answers 401 to callers without a session.
	RequireAPI(next http.Handler) http.Handler
}

type sessionImpl struct {
	auth authService.Auth
	otel otel.Otel
	cfg  *config.Config
}

func NewSessionMiddleware(auth authService.Auth, otel otel.Otel, cfg *config.Config) Session {
	return &sessionImpl{
		auth: auth,
		otel: otel,
		cfg:  cfg,
	}
}

func (m *sessionImpl) RequirePage(next http.Handler) http.Handler {
	return m.require(next, func(w http.ResponseWriter, r *http.Request, _ error) {
		http.Redirect(w, r, constant.RoutePathAdminLogin, http.StatusFound)
	})
}

func (m *sessionImpl) RequireAPI(next http.Handler) http.Handler {
	return m.require(next, func(w http.ResponseWriter, _ *http.Request, err error) {
		response.WithError(w, err)
	})
}

// require resolves the session cookie and fails closed: a missing, invalid, expired or
// revoked token clears the cookie and hands over to deny.
func (m *sessionImpl) require(next http.Handler, deny func(http.ResponseWriter, *http.Request, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "session.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "session",
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
		})

		cookie, err := r.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == "" {
			scope.TraceError(authService.ErrNotLoggedIn)
			scope.End()

			response.ClearSessionCookie(w, m.cfg)
			deny(w, r, authService.ErrNotLoggedIn)

			return
		}

		session, err := m.auth.Resolve(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Str("path", r.URL.Path).Msg("session rejected")

			scope.TraceError(err)
			scope.End()

			response.ClearSessionCookie(w, m.cfg)
			deny(w, r, authService.ErrNotLoggedIn)

			return
		}

		scope.SetAttribute("session.username", session.Username)
		scope.End()

		next.ServeHTTP(w, r.WithContext(model.WithSession(r.Context(), session)))
	})
}
