package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"studio/infras/database"
	"studio/infras/otel"
	"studio/internal/domains/home/model"
	gDto "studio/shared/dto"
	gRepo "studio/shared/repository"
)

type Home interface {
	Insert(ctx context.Context, model model.Image) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Image, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Image]
}

func New(db *database.Connection, otel otel.Otel) Home {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Image](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
