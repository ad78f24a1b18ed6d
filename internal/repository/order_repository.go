package repository

import (
	"context"
	"time"

	"shopadmin/internal/domain/model"

	"github.com/shopspring/decimal"
)

type OrderListQuery struct {
	Page       int
	Limit      int
	Q          string
	Sort       string
	Status     string
	CustomerID *int64
	From       *time.Time
	To         *time.Time
}

type OrderRepository interface {
	List(ctx context.Context, q OrderListQuery) ([]model.Order, int64, error)
	FindByID(ctx context.Context, id int64) (model.Order, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)

	Create(ctx context.Context, o model.Order) (int64, error)
	// Update changes the editable header fields (customer, status, notes).
	// Number and TotalPrice are never touched here.
	Update(ctx context.Context, o model.Order) error
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
	// UpdateTotal persists the recomputed derived total. Must run in the
	// same transaction as the item change that invalidated it.
	UpdateTotal(ctx context.Context, id int64, total decimal.Decimal) error
	SoftDelete(ctx context.Context, id int64) error
	SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error)

	Search(ctx context.Context, q string, limit int) ([]model.Order, error)
}
