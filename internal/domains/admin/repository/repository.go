package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"studio/infras/database"
	"studio/infras/otel"
	"studio/internal/domains/admin/model"
	gDto "studio/shared/dto"
	gRepo "studio/shared/repository"
)

type Admin interface {
	InsertIgnoreConflict(ctx context.Context, model model.Admin, conflictColumn string) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Admin, bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Admin]
}

func New(db *database.Connection, otel otel.Otel) Admin {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Admin](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
