package repository

import (
	"context"

	"shopadmin/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	Create(ctx context.Context, item model.OrderItem) (model.OrderItem, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	FindByID(ctx context.Context, id int64) (model.OrderItem, error)
	CountByOrderID(ctx context.Context, orderID int64) (int64, error)

	// UpdateQuantity is the only permitted item edit; product reference and
	// unit price are frozen at add time.
	UpdateQuantity(ctx context.Context, id int64, quantity int64) error
	Delete(ctx context.Context, id int64) error
}
