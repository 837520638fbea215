package page

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"studio/config"
	"studio/infras/otel"
	"studio/internal/domains/auth/model"
	"studio/internal/domains/auth/model/dto"
	authService "studio/internal/domains/auth/service"
	bookingDto "studio/internal/domains/booking/model/dto"
	bookingService "studio/internal/domains/booking/service"
	"studio/shared/constant"
	"studio/shared/failure"
	"studio/shared/validator"
	"studio/transport/http/middleware"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	templateIndex          = "index.html"
	templateAdminLogin     = "admin_login.html"
	templateDashboard      = "dashboard.html"
	templateChangePassword = "change_password.html"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type indexView struct {
	AppName string
}

type loginView struct {
	Username string
	Error    string
}

type dashboardView struct {
	Username string
	Bookings bookingDto.BookingsResponse
	Error    string
}

type changePasswordView struct {
	Message string
	Error   string
}

type Handler struct {
	auth    authService.Auth
	booking bookingService.Booking
	cfg     *config.Config
	otel    otel.Otel
	app     middleware.AppMiddleware
	session middleware.Session
}

func New(
	auth authService.Auth,
	booking bookingService.Booking,
	cfg *config.Config,
	otel otel.Otel,
	app middleware.AppMiddleware,
	session middleware.Session,
) Handler {
	return Handler{
		auth:    auth,
		booking: booking,
		cfg:     cfg,
		otel:    otel,
		app:     app,
		session: session,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(constant.RoutePathIndex, handler.Index)
	router.Get(constant.RoutePathAdminLogin, handler.LoginForm)
	router.With(handler.app.LoginThrottle()).Post(constant.RoutePathAdminLogin, handler.Login)
	router.Get(constant.RoutePathLogout, handler.Logout)

	router.Group(func(protected chi.Router) {
		protected.Use(handler.session.RequirePage)

		protected.Get(constant.RoutePathDashboard, handler.Dashboard)
		protected.Get(constant.RoutePathChangePassword, handler.ChangePasswordForm)
		protected.Post(constant.RoutePathChangePassword, handler.ChangePassword)
	})
}

func (handler *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	response.WithHTML(w, http.StatusOK, templates, templateIndex, indexView{AppName: handler.cfg.App.Name})
}

func (handler *Handler) LoginForm(w http.ResponseWriter, _ *http.Request) {
	response.WithHTML(w, http.StatusOK, templates, templateAdminLogin, loginView{})
}

// Login checks the submitted credentials and starts a session.
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)

		response.WithHTML(w, http.StatusBadRequest, templates, templateAdminLogin, loginView{Error: constant.ResponseErrorCredentialsRequired})

		return
	}

	req := dto.LoginRequest{
		Username: r.PostFormValue(constant.FormFieldUsername),
		Password: r.PostFormValue(constant.FormFieldPassword),
	}
	req.Trim()

	if req.Username == "" || strings.TrimSpace(req.Password) == "" {
		response.WithHTML(w, http.StatusBadRequest, templates, templateAdminLogin, loginView{
			Username: req.Username,
			Error:    constant.ResponseErrorCredentialsRequired,
		})

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		response.WithHTML(w, http.StatusBadRequest, templates, templateAdminLogin, loginView{
			Username: req.Username,
			Error:    failure.GetMessage(err),
		})

		return
	}

	res, err := handler.auth.Authenticate(ctx, req)
	if err != nil {
		scope.TraceError(err)

		code := failure.GetCode(err)
		message := failure.GetMessage(err)

		if code != http.StatusUnauthorized {
			log.Error().Err(err).Msg("failed to authenticate admin")

			message = constant.ResponseErrorLoginFailed
		}

		response.WithHTML(w, code, templates, templateAdminLogin, loginView{Username: req.Username, Error: message})

		return
	}

	response.WithSessionCookie(w, handler.cfg, res.Token, res.Session.ExpiresAt)

	http.Redirect(w, r, constant.RoutePathDashboard, http.StatusSeeOther)
}

// Logout revokes the current session, if any, and always clears the cookie.
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if cookie, err := r.Cookie(handler.cfg.Session.CookieName); err == nil && cookie.Value != "" {
		session, err := handler.auth.Resolve(ctx, cookie.Value)
		if err == nil {
			if err := handler.auth.Logout(ctx, session); err != nil {
				scope.TraceError(err)
				log.Error().Err(err).Msg("failed to revoke session")
			}
		}
	}

	response.ClearSessionCookie(w, handler.cfg)

	http.Redirect(w, r, constant.RoutePathAdminLogin, http.StatusFound)
}

func (handler *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	view := dashboardView{}
	if session, ok := model.FromContext(ctx); ok {
		view.Username = session.Username
	}

	bookings, err := handler.booking.List(ctx, constant.BookingListLimit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		view.Error = "Bookings are unavailable right now"
		response.WithHTML(w, http.StatusInternalServerError, templates, templateDashboard, view)

		return
	}

	view.Bookings = bookings

	response.WithHTML(w, http.StatusOK, templates, templateDashboard, view)
}

func (handler *Handler) ChangePasswordForm(w http.ResponseWriter, _ *http.Request) {
	response.WithHTML(w, http.StatusOK, templates, templateChangePassword, changePasswordView{})
}

// ChangePassword replaces the password of the logged in admin.
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)

		response.WithHTML(w, http.StatusBadRequest, templates, templateChangePassword, changePasswordView{Error: err.Error()})

		return
	}

	req := dto.ChangePasswordRequest{
		CurrentPassword: r.PostFormValue(constant.FormFieldCurrentPassword),
		NewPassword:     r.PostFormValue(constant.FormFieldNewPassword),
		ConfirmPassword: r.PostFormValue(constant.FormFieldConfirmPassword),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		response.WithHTML(w, http.StatusBadRequest, templates, templateChangePassword, changePasswordView{Error: failure.GetMessage(err)})

		return
	}

	session, _ := model.FromContext(ctx)

	if err := handler.auth.ChangePassword(ctx, session, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		code := failure.GetCode(err)
		message := failure.GetMessage(err)

		if code >= http.StatusInternalServerError {
			message = "Password could not be changed"
		}

		response.WithHTML(w, code, templates, templateChangePassword, changePasswordView{Error: message})

		return
	}

	response.WithHTML(w, http.StatusOK, templates, templateChangePassword, changePasswordView{Message: constant.ResponseMessagePasswordChanged})
}
