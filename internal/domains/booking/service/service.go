package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"strconv"
	"unicode/utf8"

	"studio/config"
	"studio/infras/kafka"
	"studio/infras/metrics"
	"studio/infras/otel"
	"studio/internal/domains/booking/model"
	"studio/internal/domains/booking/model/dto"
	"studio/internal/domains/booking/repository"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	"studio/shared/phone"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Submit(ctx context.Context, req dto.BookingRequest) (dto.SubmitResult, error)
	List(ctx context.Context, limit int) (dto.BookingsResponse, error)
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, kafka kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		kafka: kafka,
		otel:  otel,
	}
}

func (s *serviceImpl) countryCode() string {
	if !phone.IsDigits(s.cfg.App.WhatsApp.CountryCode) {
		return constant.DefaultCountryCode
	}

	return s.cfg.App.WhatsApp.CountryCode
}

// validate applies the booking rules in order and returns the normalized phone.
func (s *serviceImpl) validate(req dto.BookingRequest) (string, error) {
	switch {
	case utf8.RuneCountInString(req.Name) < constant.BookingNameMinLength:
		return "", failure.Validation(failure.KindInvalidName, "Valid name required")
	case utf8.RuneCountInString(req.Phone) < constant.BookingPhoneMinLength:
		return "", failure.Validation(failure.KindInvalidPhone, "Valid phone required")
	case req.Package == "":
		return "", failure.Validation(failure.KindMissingPackage, "Package required")
	case req.Date == "":
		return "", failure.Validation(failure.KindMissingDate, "Date required")
	}

	normalized, ok := phone.Normalize(req.Phone, s.countryCode())
	if !ok {
		return "", failure.Validation(failure.KindInvalidPhoneFormat, "Invalid phone format")
	}

	return normalized, nil
}

// Submit validates and stores a booking, then builds the admin WhatsApp link for it.
func (s *serviceImpl) Submit(ctx context.Context, req dto.BookingRequest) (res dto.SubmitResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Trim()

	normalized, err := s.validate(req)
	if err != nil {
		metrics.IncBooking(metrics.OutcomeRejected)
		log.Info().Str("kind", failure.GetKind(err)).Msg("booking rejected")

		return res, err
	}

	booking := req.ToModel(normalized)

	booking.ID, err = s.repo.Insert(ctx, booking)
	if err != nil {
		metrics.IncBooking(metrics.OutcomeFailed)
		log.Error().Err(err).Str("phone", normalized).Msg("failed to store booking")

		return res, fmt.Errorf("failed to store booking: %w", failure.Storage(err))
	}

	metrics.IncBooking(metrics.OutcomeCreated)
	log.Info().Int64("booking_id", booking.ID).Msg("booking stored")

	waLink := BuildLink(s.cfg.App.WhatsApp.AdminNumber, s.countryCode(), BuildMessage(booking))

	var event dto.BookingCreatedEvent
	event.FromModel(booking, waLink)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publish(c, event)
	}()

	return dto.SubmitResult{
		BookingID: booking.ID,
		WaLink:    waLink,
	}, nil
}

func (s *serviceImpl) publish(ctx context.Context, event dto.BookingCreatedEvent) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingCreated")
	defer scope.End()

	message := kafka.Message{Key: strconv.FormatInt(event.BookingID, 10), Value: event}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic, message); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("booking_id", event.BookingID).Msg("failed to publish booking event")
	}
}

// List returns up to limit bookings, newest first.
func (s *serviceImpl) List(ctx context.Context, limit int) (res dto.BookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if limit <= 0 || limit > constant.BookingListLimit {
		limit = constant.BookingListLimit
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", failure.Storage(err))
	}

	models, err := s.repo.GetAll(ctx, gDto.Newest(model.FieldCreatedAt, limit), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", failure.Storage(err))
	}

	res.FromModels(models, total)

	return res, nil
}
