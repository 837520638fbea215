package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Home=MockHomeService

import (
	"context"
	"errors"
	"fmt"

	"studio/config"
	"studio/infras/otel"
	"studio/infras/s3"
	"studio/internal/domains/home/model"
	"studio/internal/domains/home/model/dto"
	"studio/internal/domains/home/repository"
	"studio/shared"
	"studio/shared/cache"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	"studio/shared/validator"

	"github.com/rs/zerolog/log"
)

type Home interface {
	List(ctx context.Context) ([]dto.ImageItem, error)
	Add(ctx context.Context, req dto.AddImageRequest) (dto.AddImageResponse, error)
	Deactivate(ctx context.Context, id int64) error
	Reorder(ctx context.Context, id int64, req dto.ReorderRequest) error
}

type serviceImpl struct {
	repo  repository.Home
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Home, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Home {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

// List returns the active images by display order, newest first within the same order.
func (s *serviceImpl) List(ctx context.Context) (res []dto.ImageItem, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HomeList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, constant.CacheKeyHomeImages, &res)
	if err == nil {
		return res, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("home images cache unavailable, reading from database")
	}

	models, err := s.repo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: model.FieldDisplayOrder, SortDir: gDto.SortDirAsc, TieDir: gDto.SortDirDesc},
		gDto.Eq(model.FieldIsActive, true),
		model.FieldID, model.FieldImageURL, model.FieldCaption, model.FieldDisplayOrder,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to list home images")

		return nil, fmt.Errorf("failed to list home images: %w", failure.Storage(err))
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, constant.CacheKeyHomeImages, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save home images to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddImageRequest) (res dto.AddImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HomeAdd")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Trim()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	uploadCtx, cancel := context.WithTimeout(ctx, s3.UploadTimeout(s.cfg))
	defer cancel()

	obj, err := s.s3.UploadFile(uploadCtx, model.Directory, req.ImageFile, req.Image, s3.ObjectName(req.Image))
	if err != nil {
		log.Error().Err(err).Str("file_name", req.Image.Filename).Msg("failed to upload home image")

		return res, fmt.Errorf("failed to upload home image: %w", failure.Upload(err))
	}

	image := req.ToModel(obj)

	image.ID, err = s.repo.Insert(ctx, image)
	if err != nil {
		log.Error().Err(err).Str("public_id", obj.Key).Msg("failed to record home image")

		if delErr := s.s3.DeleteFile(context.WithoutCancel(ctx), obj.Key); delErr != nil {
			log.Warn().Err(delErr).Str("public_id", obj.Key).Msg("failed to remove orphaned image")
		}

		return res, fmt.Errorf("failed to record home image: %w", failure.Storage(err))
	}

	log.Info().Int64("id", image.ID).Str("public_id", obj.Key).Msg("home image added")
	s.invalidate(ctx)

	res.FromModel(image)

	return res, nil
}

// Deactivate hides the image from the landing page. The stored object is kept.
func (s *serviceImpl) Deactivate(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HomeDeactivate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.update(ctx, id, map[string]any{model.FieldIsActive: false})
}

func (s *serviceImpl) Reorder(ctx context.Context, id int64, req dto.ReorderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HomeReorder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return failure.BadRequestFromString(constant.ResponseErrorInvalidDisplayOrder)
	}

	return s.update(ctx, id, map[string]any{model.FieldDisplayOrder: *req.DisplayOrder})
}

func (s *serviceImpl) update(ctx context.Context, id int64, fields map[string]any) error {
	affected, err := s.repo.Update(ctx, fields, gDto.Eq(model.FieldID, id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update home image")

		return fmt.Errorf("failed to update home image: %w", failure.Storage(err))
	}

	if affected == 0 {
		return failure.NotFound(constant.ResponseErrorImageNotFound)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheKeyHomeImages)
	}()
}
