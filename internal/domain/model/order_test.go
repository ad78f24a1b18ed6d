package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestOrderTotal_Empty(t *testing.T) {
	assert.True(t, OrderTotal(nil).Equal(decimal.Zero))
	assert.True(t, OrderTotal([]OrderItem{}).Equal(decimal.Zero))
}

func TestOrderTotal_SingleItem(t *testing.T) {
	items := []OrderItem{
		{Quantity: 3, UnitPrice: dec("19.99")},
	}
	assert.True(t, OrderTotal(items).Equal(dec("59.97")), "got %s", OrderTotal(items))
}

func TestOrderTotal_MultipleItems(t *testing.T) {
	items := []OrderItem{
		{Quantity: 2, UnitPrice: dec("10.50")},
		{Quantity: 1, UnitPrice: dec("0.99")},
		{Quantity: 5, UnitPrice: dec("3.00")},
	}
	// 21.00 + 0.99 + 15.00
	assert.True(t, OrderTotal(items).Equal(dec("36.99")), "got %s", OrderTotal(items))
}

func TestOrderTotal_TwoFractionDigits(t *testing.T) {
	items := []OrderItem{
		{Quantity: 7, UnitPrice: dec("1.11")},
	}
	got := OrderTotal(items)
	assert.Equal(t, "7.77", got.StringFixed(2))
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusDeclined} {
		assert.True(t, ValidOrderStatus(s), string(s))
	}
	assert.False(t, ValidOrderStatus("shipped"))
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("Pending"))
}

func TestCanTransitionTo_FromPending(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusProcessing))
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusCompleted))
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusDeclined))
}

func TestCanTransitionTo_FromProcessing(t *testing.T) {
	assert.True(t, OrderStatusProcessing.CanTransitionTo(OrderStatusCompleted))
	assert.True(t, OrderStatusProcessing.CanTransitionTo(OrderStatusDeclined))
	assert.False(t, OrderStatusProcessing.CanTransitionTo(OrderStatusPending))
}

func TestCanTransitionTo_TerminalStates(t *testing.T) {
	for _, terminal := range []OrderStatus{OrderStatusCompleted, OrderStatusDeclined} {
		assert.False(t, terminal.CanTransitionTo(OrderStatusPending), string(terminal))
		assert.False(t, terminal.CanTransitionTo(OrderStatusProcessing), string(terminal))
	}
	assert.False(t, OrderStatusCompleted.CanTransitionTo(OrderStatusDeclined))
	assert.False(t, OrderStatusDeclined.CanTransitionTo(OrderStatusCompleted))
}

func TestCanTransitionTo_SameStatus(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusDeclined} {
		assert.True(t, s.CanTransitionTo(s), string(s))
	}
}
