package booking

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"studio/infras/otel"
	"studio/internal/domains/booking/model/dto"
	"studio/internal/domains/booking/service"
	"studio/shared"
	"studio/shared/constant"
	"studio/shared/failure"
	"studio/transport/http/middleware"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
	app     middleware.AppMiddleware
	session middleware.Session
}

func New(service service.Booking, otel otel.Otel, app middleware.AppMiddleware, session middleware.Session) Handler {
	return Handler{
		service: service,
		otel:    otel,
		app:     app,
		session: session,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.With(handler.app.RateLimit()).Post("/book", handler.Submit)
	router.Options("/book", handler.Preflight)
	router.With(handler.session.RequireAPI).Get("/bookings", handler.List)
}

// Submit handles a booking request from the public form.
// @Summary Submit a booking
// @Description Store a booking and return the WhatsApp link that notifies the studio.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookingRequest true "Booking Request"
// @Success 200 {object} dto.SubmitResponse "Booking confirmed"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/book [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	mediaType, _, err := mime.ParseMediaType(r.Header.Get(constant.RequestHeaderContentType))
	if err != nil || mediaType != constant.ContentTypeJSON {
		log.Warn().Str("content_type", r.Header.Get(constant.RequestHeaderContentType)).Msg("booking request is not JSON")

		response.WithRaw(w, http.StatusBadRequest, dto.ErrorResponse{Error: constant.ResponseErrorJSONRequired})

		return
	}

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var data map[string]any
	if err := decoder.Decode(&data); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode booking request")

		response.WithRaw(w, http.StatusBadRequest, dto.ErrorResponse{Error: constant.ResponseErrorInvalidJSON})

		return
	}

	if len(data) == 0 {
		response.WithRaw(w, http.StatusBadRequest, dto.ErrorResponse{Error: constant.ResponseErrorNoData})

		return
	}

	res, err := handler.service.Submit(ctx, dto.BookingRequestFromMap(data))
	if err != nil {
		scope.TraceError(err)

		if failure.GetCode(err) == http.StatusBadRequest {
			response.WithRaw(w, http.StatusBadRequest, dto.ErrorResponse{Error: failure.GetMessage(err)})

			return
		}

		log.Error().Err(err).Msg("failed to submit booking")

		response.WithRaw(w, http.StatusInternalServerError, dto.ErrorResponse{
			Error: constant.ResponseErrorBookingFailed,
			Debug: shared.Truncate(failure.GetDetail(err), constant.DebugMessageMaxRune),
		})

		return
	}

	scope.AddEvent("Booking submitted " + strconv.FormatInt(res.BookingID, 10))

	response.WithRaw(w, http.StatusOK, dto.SubmitResponse{
		Success:   true,
		WaLink:    res.WaLink,
		BookingID: res.BookingID,
		Message:   constant.ResponseMessageBookingConfirmed,
	})
}

// Preflight answers a bare OPTIONS request on the booking endpoint.
func (handler *Handler) Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// List returns the newest bookings for the logged in admin.
// @Summary List bookings
// @Description Retrieve the newest bookings, newest first.
// @Tags Booking
// @Produce json
// @Param limit query int false "Maximum number of bookings (1-100)"
// @Success 200 {object} dto.BookingsResponse "Bookings"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [get]
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListBookings")
	defer scope.End()

	limit := constant.BookingListLimit

	if raw := r.URL.Query().Get(constant.RequestParamLimit); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			scope.TraceError(err)

			response.WithError(w, failure.InvalidLimitParam)

			return
		}

		limit = parsed
	}

	bookings, err := handler.service.List(ctx, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, bookings)
}
