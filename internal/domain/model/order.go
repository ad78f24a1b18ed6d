package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusDeclined   OrderStatus = "declined"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusDeclined:
		return true
	}
	return false
}

// CanTransitionTo reports whether an order may move from s to next.
// completed and declined are terminal. A same-status update is allowed
// (treated as a no-op by the caller).
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusCompleted || next == OrderStatusDeclined
	case OrderStatusProcessing:
		return next == OrderStatusCompleted || next == OrderStatusDeclined
	}
	return false
}

type Order struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Number     string          `gorm:"type:varchar(20);not null;uniqueIndex" json:"number"`
	CustomerID int64           `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Status     OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	Notes      string          `gorm:"type:text" json:"notes"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

// OrderTotal is the derived order total: sum of quantity * unit_price over
// all items, in fixed-point decimal with two fraction digits. The stored
// Order.TotalPrice must always equal this for the order's current items.
func OrderTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total.Round(2)
}
