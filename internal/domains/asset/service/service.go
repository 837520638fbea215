package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Asset=MockAssetService

import (
	"context"
	"errors"
	"fmt"

	"studio/config"
	"studio/infras/otel"
	"studio/infras/s3"
	"studio/internal/domains/asset/model"
	"studio/internal/domains/asset/model/dto"
	"studio/internal/domains/asset/repository"
	"studio/shared"
	"studio/shared/cache"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	"studio/shared/validator"

	"github.com/rs/zerolog/log"
)

type Asset interface {
	List(ctx context.Context) (map[string]dto.AssetItem, error)
	Save(ctx context.Context, req dto.SaveAssetRequest) (dto.SaveAssetResponse, error)
}

type serviceImpl struct {
	repo  repository.Asset
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Asset, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Asset {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res map[string]dto.AssetItem, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssetList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, constant.CacheKeySiteAssets, &res)
	if err == nil {
		return res, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("site assets cache unavailable, reading from database")
	}

	models, err := s.repo.GetAll(
		ctx,
		gDto.Newest(model.FieldUpdatedAt, 0),
		gDto.FilterGroup{},
		model.FieldAssetType, model.FieldImageURL, model.FieldAltText,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to list site assets")

		return nil, fmt.Errorf("failed to list site assets: %w", failure.Storage(err))
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, constant.CacheKeySiteAssets, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save site assets to cache")
		}
	}()

	return res, nil
}

// Save uploads the image and makes it the current asset of its type.
func (s *serviceImpl) Save(ctx context.Context, req dto.SaveAssetRequest) (res dto.SaveAssetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssetSave")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Trim()

	if req.AssetType == "" {
		return res, failure.BadRequestFromString(constant.ResponseErrorAssetTypeRequired)
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	uploadCtx, cancel := context.WithTimeout(ctx, s3.UploadTimeout(s.cfg))
	defer cancel()

	obj, err := s.s3.UploadFile(uploadCtx, model.Directory, req.ImageFile, req.Image, s3.ObjectName(req.Image))
	if err != nil {
		log.Error().Err(err).Str("asset_type", req.AssetType).Msg("failed to upload site asset")

		return res, fmt.Errorf("failed to upload site asset: %w", failure.Upload(err))
	}

	if err = s.repo.Upsert(ctx, req.ToModel(obj), model.FieldAssetType); err != nil {
		log.Error().Err(err).Str("public_id", obj.Key).Msg("failed to record site asset")

		if delErr := s.s3.DeleteFile(context.WithoutCancel(ctx), obj.Key); delErr != nil {
			log.Warn().Err(delErr).Str("public_id", obj.Key).Msg("failed to remove orphaned image")
		}

		return res, fmt.Errorf("failed to record site asset: %w", failure.Storage(err))
	}

	log.Info().Str("asset_type", req.AssetType).Str("public_id", obj.Key).Msg("site asset updated")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheKeySiteAssets)
	}()

	return dto.SaveAssetResponse{OK: true, URL: obj.URL, PublicID: obj.Key}, nil
}
