package repository

import (
	"context"

	"shopadmin/internal/domain/model"
)

type CategoryListQuery struct {
	Page  int
	Limit int
	Q     string
}

type CategoryRepository interface {
	List(ctx context.Context, q CategoryListQuery) ([]model.Category, int64, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.Category, error)

	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	SoftDelete(ctx context.Context, id int64) error
	SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error)
}
