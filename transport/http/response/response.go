package response

import (
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"studio/config"
	"studio/shared/constant"
	"studio/shared/failure"
	"studio/shared/logger"

	"github.com/rs/zerolog/log"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithRaw sends the payload as the whole response body, without the data envelope.
func WithRaw(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := failure.GetMessage(err)

	response(writer, code, Error{Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

// WithHTML renders the named template.
func WithHTML(writer http.ResponseWriter, code int, templates *template.Template, name string, data any) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(code)

	if err := templates.ExecuteTemplate(writer, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to render template")
	}
}

// WithSessionCookie stores the session token on the client.
func WithSessionCookie(writer http.ResponseWriter, cfg *config.Config, token string, expiresAt time.Time) {
	http.SetCookie(writer, &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    token,
		Path:     constant.RoutePathIndex,
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   cfg.Session.SecureOnly,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the session token from the client.
func ClearSessionCookie(writer http.ResponseWriter, cfg *config.Config) {
	http.SetCookie(writer, &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    "",
		Path:     constant.RoutePathIndex,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Session.SecureOnly,
		SameSite: http.SameSiteLaxMode,
	})
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
