package repository

import (
	"context"

	"shopadmin/internal/domain/model"
)

type CustomerListQuery struct {
	Page  int
	Limit int
	Q     string
	Sort  string
}

type CustomerRepository interface {
	List(ctx context.Context, q CustomerListQuery) ([]model.Customer, int64, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)
	ExistsByEmail(ctx context.Context, email string, ignoreID int64) (bool, error)

	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
	SoftDelete(ctx context.Context, id int64) error
	SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error)

	Search(ctx context.Context, q string, limit int) ([]model.Customer, error)
}
