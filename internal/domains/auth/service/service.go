package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"studio/config"
	"studio/infras/jwt"
	"studio/infras/otel"
	adminService "studio/internal/domains/admin/service"
	"studio/internal/domains/auth/model"
	"studio/internal/domains/auth/model/dto"
	"studio/shared/cache"
	"studio/shared/constant"
	"studio/shared/failure"
	"studio/shared/password"
	"studio/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotLoggedIn      = failure.Unauthorized("login required")
	ErrWrongOldPassword = failure.BadRequestFromString("Current password is incorrect")
)

type Auth interface {
	Authenticate(ctx context.Context, req dto.LoginRequest) (dto.LoginResult, error)
	Resolve(ctx context.Context, token string) (*model.Session, error)
	Logout(ctx context.Context, session *model.Session) error
	ChangePassword(ctx context.Context, session *model.Session, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	admins     adminService.Admin
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(admins adminService.Admin, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		admins:     admins,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		jwtService: jwt,
	}
}

// Authenticate checks the credentials and issues a new session. An unknown username and a
// wrong password produce the same failure after the same bcrypt work.
func (s *serviceImpl) Authenticate(ctx context.Context, req dto.LoginRequest) (res dto.LoginResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Trim()

	admin, found, err := s.admins.Find(ctx, req.Username)
	if err != nil {
		return res, fmt.Errorf("failed to find admin: %w", err)
	}

	if !found {
		_ = password.VerifyDummy(req.Password)

		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.InvalidCredentials
	}

	if err := password.Verify(req.Password, admin.PasswordHash); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Str("username", req.Username).Msg("failed to verify password")
		}

		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.InvalidCredentials
	}

	token, err := s.jwtService.GenerateSessionToken(admin.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session token")

		return res, fmt.Errorf("failed to generate session token: %w", err)
	}

	log.Info().Str("username", admin.Username).Str("token_id", token.ID).Msg("admin logged in")

	return dto.LoginResult{
		Session: &model.Session{
			TokenID:   token.ID,
			Username:  admin.Username,
			LoggedIn:  true,
			IssuedAt:  token.IssuedAt,
			ExpiresAt: token.ExpiresAt,
		},
		Token: token.Value,
	}, nil
}

// Resolve turns a session token into a session. Any doubt, including an unreachable
// revocation store, is reported as not logged in.
func (s *serviceImpl) Resolve(ctx context.Context, token string) (session *model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("rejected session token")

		return nil, ErrNotLoggedIn
	}

	revoked, err := s.cache.Exists(ctx, constant.CacheKeyRevokedJTI+claims.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("token_id", claims.ID).Msg("failed to check session revocation")

		return nil, ErrNotLoggedIn
	}

	if revoked {
		log.Debug().Str("token_id", claims.ID).Msg("rejected revoked session token")

		return nil, ErrNotLoggedIn
	}

	return &model.Session{
		TokenID:   claims.ID,
		Username:  claims.Username,
		LoggedIn:  true,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes the session until it would have expired. Logging out twice, or without a
// session, is not an error.
func (s *serviceImpl) Logout(ctx context.Context, session *model.Session) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if session == nil || session.TokenID == "" {
		return nil
	}

	ttl := int(session.Remaining(timezone.Now()).Seconds())
	if ttl <= 0 {
		return nil
	}

	if err = s.cache.Save(ctx, constant.CacheKeyRevokedJTI+session.TokenID, session.Username, ttl); err != nil {
		log.Error().Err(err).Str("token_id", session.TokenID).Msg("failed to revoke session")

		return fmt.Errorf("failed to revoke session: %w", err)
	}

	log.Info().Str("username", session.Username).Str("token_id", session.TokenID).Msg("admin logged out")

	return nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, session *model.Session, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if session == nil || !session.LoggedIn {
		return ErrNotLoggedIn
	}

	if err = password.CheckLength(req.NewPassword, constant.PasswordMinLength); err != nil {
		return failure.BadRequest(err)
	}

	admin, found, err := s.admins.Find(ctx, session.Username)
	if err != nil {
		return fmt.Errorf("failed to find admin: %w", err)
	}

	if !found {
		log.Warn().Str("username", session.Username).Msg("password change for missing admin")

		return ErrNotLoggedIn
	}

	if err = password.Verify(req.CurrentPassword, admin.PasswordHash); err != nil {
		log.Warn().Str("username", session.Username).Msg("password change with wrong current password")

		return ErrWrongOldPassword
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.admins.SetPassword(ctx, admin.Username, hash); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	log.Info().Str("username", admin.Username).Msg("admin password changed")

	return nil
}
