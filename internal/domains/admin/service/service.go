package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Admin=MockAdminService

import (
	"context"
	"errors"
	"fmt"

	"studio/config"
	"studio/infras/otel"
	"studio/internal/domains/admin/model"
	"studio/internal/domains/admin/repository"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	gModel "studio/shared/model"
	"studio/shared/password"
	"studio/shared/timezone"

	"github.com/rs/zerolog/log"
)

var ErrSeedCredentials = errors.New("admin seed credentials are not configured")

type Admin interface {
	Seed(ctx context.Context) (bool, error)
	Find(ctx context.Context, username string) (model.Admin, bool, error)
	SetPassword(ctx context.Context, username, passwordHash string) error
}

type serviceImpl struct {
	repo repository.Admin
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Admin, cfg *config.Config, otel otel.Otel) Admin {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Seed creates the configured admin unless one with the same username exists.
// It reports whether a row was written.
func (s *serviceImpl) Seed(ctx context.Context) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	username := s.cfg.Admin.Seed.Username
	if username == "" || s.cfg.Admin.Seed.Password == "" {
		return false, ErrSeedCredentials
	}

	hash, err := password.Hash(s.cfg.Admin.Seed.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash seed password")

		return false, fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin := model.Admin{
		Username:     username,
		PasswordHash: hash,
		Metadata:     gModel.Metadata{CreatedAt: timezone.Now()},
	}

	created, err = s.repo.InsertIgnoreConflict(ctx, admin, model.FieldUsername)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("failed to seed admin")

		return false, fmt.Errorf("failed to seed admin: %w", failure.Storage(err))
	}

	if created {
		log.Info().Str("username", username).Msg("Seeded admin account")
	}

	return created, nil
}

func (s *serviceImpl) Find(ctx context.Context, username string) (admin model.Admin, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Find")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin, found, err = s.repo.Get(ctx, gDto.Eq(model.FieldUsername, username))
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("failed to find admin")

		return admin, false, fmt.Errorf("failed to find admin: %w", failure.Storage(err))
	}

	return admin, found, nil
}

func (s *serviceImpl) SetPassword(ctx context.Context, username, passwordHash string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetPassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Update(ctx, map[string]any{model.FieldPasswordHash: passwordHash}, gDto.Eq(model.FieldUsername, username))
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("failed to update admin password")

		return fmt.Errorf("failed to update admin password: %w", failure.Storage(err))
	}

	if affected == 0 {
		return failure.NotFound("admin not found")
	}

	return nil
}
