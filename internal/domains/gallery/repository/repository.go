package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"studio/infras/database"
	"studio/infras/otel"
	"studio/internal/domains/gallery/model"
	gDto "studio/shared/dto"
	gRepo "studio/shared/repository"
)

type Gallery interface {
	Insert(ctx context.Context, model model.Entry) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Entry, bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Entry, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Entry]
}

func New(db *database.Connection, otel otel.Otel) Gallery {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Entry](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
