package response_test

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio/config"
	"studio/shared/constant"
	"studio/shared/failure"
	"studio/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithError(recorder, fmt.Errorf("failed to change password: %w", failure.BadRequestFromString("Current password is incorrect")))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))
	assert.JSONEq(t, `{"error":"Current password is incorrect"}`, recorder.Body.String())
}

func TestWithError_PlainError(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithError(recorder, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"boom"}`, recorder.Body.String())
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, map[string]int{"total": 2})

	assert.JSONEq(t, `{"data":{"total":2}}`, recorder.Body.String())
}

func TestWithRaw(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithRaw(recorder, http.StatusCreated, []map[string]string{{"url": "u"}})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `[{"url":"u"}]`, recorder.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithRequestLimitExceeded(recorder)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, recorder.Body.String())
}

func TestWithHTML(t *testing.T) {
	recorder := httptest.NewRecorder()
	templates := template.Must(template.New("hello.html").Parse(`<p>{{.}}</p>`))

	response.WithHTML(recorder, http.StatusOK, templates, "hello.html", "<b>")

	assert.Equal(t, constant.ContentTypeHTML, recorder.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, "<p>&lt;b&gt;</p>", recorder.Body.String())
}

func TestSessionCookie(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.CookieName = "studio_session"

	recorder := httptest.NewRecorder()
	response.WithSessionCookie(recorder, cfg, "token", time.Now().Add(time.Hour))

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "studio_session", cookies[0].Name)
	assert.Equal(t, "token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	recorder = httptest.NewRecorder()
	response.ClearSessionCookie(recorder, cfg)

	cookies = recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
