package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Gallery=MockGalleryService

import (
	"context"
	"errors"
	"fmt"

	"studio/config"
	"studio/infras/metrics"
	"studio/infras/otel"
	"studio/infras/s3"
	"studio/internal/domains/gallery/model"
	"studio/internal/domains/gallery/model/dto"
	"studio/internal/domains/gallery/repository"
	"studio/shared"
	"studio/shared/cache"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	"studio/shared/validator"

	"github.com/rs/zerolog/log"
)

type Gallery interface {
	Upload(ctx context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	List(ctx context.Context) ([]dto.GalleryItem, error)
	Delete(ctx context.Context, publicID string) error
}

type serviceImpl struct {
	repo  repository.Gallery
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Gallery, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Gallery {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

// Upload stores the image on the host and records it. Nothing is recorded when the host
// rejects the upload, and the stored object is removed again when recording fails.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Trim()

	if err = validator.ValidateStruct(&req); err != nil {
		metrics.IncGalleryUpload(metrics.OutcomeRejected)

		return res, err
	}

	uploadCtx, cancel := context.WithTimeout(ctx, s3.UploadTimeout(s.cfg))
	defer cancel()

	obj, err := s.s3.UploadFile(uploadCtx, model.Directory, req.ImageFile, req.Image, req.ObjectName())
	if err != nil {
		metrics.IncGalleryUpload(metrics.OutcomeFailed)
		log.Error().Err(err).Str("file_name", req.Image.Filename).Msg("failed to upload image")

		return res, fmt.Errorf("failed to upload image: %w", failure.Upload(err))
	}

	entry := req.ToModel(obj)

	entry.ID, err = s.repo.Insert(ctx, entry)
	if err != nil {
		metrics.IncGalleryUpload(metrics.OutcomeFailed)
		log.Error().Err(err).Str("public_id", obj.Key).Msg("failed to record gallery image")

		if delErr := s.s3.DeleteFile(context.WithoutCancel(ctx), obj.Key); delErr != nil {
			log.Warn().Err(delErr).Str("public_id", obj.Key).Msg("failed to remove orphaned image")
		}

		return res, fmt.Errorf("failed to record gallery image: %w", failure.Storage(err))
	}

	metrics.IncGalleryUpload(metrics.OutcomeCreated)
	log.Info().Int64("id", entry.ID).Str("public_id", obj.Key).Msg("image uploaded")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheKeyGalleryList)
	}()

	res.FromModel(entry)

	return res, nil
}

// List returns the newest images, served from cache when possible.
func (s *serviceImpl) List(ctx context.Context) (res []dto.GalleryItem, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, constant.CacheKeyGalleryList, &res)
	if err == nil {
		log.Debug().Str("cacheKey", constant.CacheKeyGalleryList).Msg("cache hit for gallery")

		return res, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("gallery cache unavailable, reading from database")
	}

	models, err := s.repo.GetAll(
		ctx,
		gDto.Newest(model.FieldID, constant.GalleryListLimit),
		gDto.FilterGroup{},
		model.FieldImageURL, model.FieldCaption,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to list gallery")

		return nil, fmt.Errorf("failed to list gallery: %w", failure.Storage(err))
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, constant.CacheKeyGalleryList, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery to cache")
		}
	}()

	return res, nil
}

// Delete removes the image from the host and then its record. The record stays when the
// host refuses the delete.
func (s *serviceImpl) Delete(ctx context.Context, publicID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.Eq(model.FieldPublicID, publicID)

	_, found, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldPublicID)
	if err != nil {
		return fmt.Errorf("failed to find gallery image: %w", failure.Storage(err))
	}

	if !found {
		return failure.NotFound(constant.ResponseErrorImageNotFound)
	}

	if err = s.s3.DeleteFile(ctx, publicID); err != nil {
		return fmt.Errorf("failed to delete gallery image from host: %w", failure.Upload(err))
	}

	if _, err = s.repo.Delete(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", failure.Storage(err))
	}

	log.Info().Str("public_id", publicID).Msg("gallery image deleted")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheKeyGalleryList)
	}()

	return nil
}
