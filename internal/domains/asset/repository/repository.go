package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"studio/infras/database"
	"studio/infras/otel"
	"studio/internal/domains/asset/model"
	gDto "studio/shared/dto"
	gRepo "studio/shared/repository"
)

type Asset interface {
	Upsert(ctx context.Context, model model.SiteAsset, conflictColumn string) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SiteAsset, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.SiteAsset]
}

func New(db *database.Connection, otel otel.Otel) Asset {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SiteAsset](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
