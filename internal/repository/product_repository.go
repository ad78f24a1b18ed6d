package repository

import (
	"context"

	"shopadmin/internal/domain/model"

	"github.com/shopspring/decimal"
)

type ProductListQuery struct {
	Page    int
	Limit   int
	Q       string
	Sort    string
	BrandID *int64
	Visible *bool
}

// ProductOption feeds the product dropdown on the order item form. Price is
// included so the panel can show what the server will snapshot.
type ProductOption struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	ListByBrandID(ctx context.Context, brandID int64, page int, limit int) ([]model.Product, int64, error)
	ListOptions(ctx context.Context) ([]ProductOption, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)

	Create(ctx context.Context, p model.Product, categoryIDs []int64) (model.Product, error)
	Update(ctx context.Context, p model.Product, categoryIDs []int64) error
	UpdateImage(ctx context.Context, id int64, image string) error
	SoftDelete(ctx context.Context, id int64) error
	SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error)

	Search(ctx context.Context, q string, limit int) ([]model.Product, error)
}
