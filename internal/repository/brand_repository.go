package repository

import (
	"context"

	"shopadmin/internal/domain/model"
)

type BrandListQuery struct {
	Page  int
	Limit int
	Q     string
	Sort  string
}

type BrandRepository interface {
	List(ctx context.Context, q BrandListQuery) ([]model.Brand, int64, error)
	FindByID(ctx context.Context, id int64) (model.Brand, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	Create(ctx context.Context, b model.Brand) (model.Brand, error)
	Update(ctx context.Context, b model.Brand) error
	SoftDelete(ctx context.Context, id int64) error
	SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error)

	// Search backs the global search box (name / slug / description).
	Search(ctx context.Context, q string, limit int) ([]model.Brand, error)
}
