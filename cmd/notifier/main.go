package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"studio/config"
	"studio/infras/kafka"
	"studio/internal/domains/booking/model/dto"
	"studio/shared/logger"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// notifier follows the booking.created topic and logs every booking it sees.
func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.Configure(cfg)

	client := kafka.New(cfg)
	defer func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("topic", cfg.Kafka.Topic).Str("group", cfg.Kafka.ConsumerGroup).Msg("Waiting for booking events.")

	err := client.Consume(ctx, cfg.Kafka.Topic, handleBookingCreated)
	if errors.Is(err, kafka.ErrDisabled) {
		log.Warn().Msg("Kafka is disabled, nothing to consume.")

		return
	}

	if err != nil {
		log.Error().Err(err).Msg("Consumer stopped")
	}
}

func handleBookingCreated(message kafkaGo.Message) {
	event, err := kafka.DecodeKafkaMessage[dto.BookingCreatedEvent](message)
	if err != nil {
		log.Error().Err(err).Str("key", string(message.Key)).Msg("failed to decode booking event")

		return
	}

	log.Info().
		Int64("booking_id", event.BookingID).
		Str("name", event.Name).
		Str("phone", event.Phone).
		Str("package", event.Package).
		Str("date", event.Date).
		Str("wa_link", event.WaLink).
		Time("created_at", event.CreatedAt).
		Msg("booking received")
}
