package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"
	"shopadmin/internal/validator"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx        repo.TransactionManager
	orderRepo repo.OrderRepository
	auditRepo repo.AuditLogRepository
}

// DI
func NewOrderUsecase(
	tx repo.TransactionManager,
	orderRepo repo.OrderRepository,
	auditRepo repo.AuditLogRepository,
) *OrderUsecase {
	return &OrderUsecase{tx: tx, orderRepo: orderRepo, auditRepo: auditRepo}
}

// NewOrderNumber generates the human-readable order number, OR- plus seven
// random digits. Collisions are rare; Create retries on one.
func NewOrderNumber() string {
	return fmt.Sprintf("OR-%d", 1000000+rand.Intn(9000000))
}

type OrderItemOutput struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderOutput struct {
	ID           int64             `json:"id"`
	Number       string            `json:"number"`
	CustomerID   int64             `json:"customer_id"`
	CustomerName string            `json:"customer_name,omitempty"`
	Status       string            `json:"status"`
	Notes        string            `json:"notes"`
	TotalPrice   decimal.Decimal   `json:"total_price"`
	CreatedAt    time.Time         `json:"created_at"`
	Items        []OrderItemOutput `json:"items"`
}

func toOrderOutput(o model.Order) OrderOutput {
	out := OrderOutput{
		ID:         o.ID,
		Number:     o.Number,
		CustomerID: o.CustomerID,
		Status:     string(o.Status),
		Notes:      o.Notes,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
		Items:      make([]OrderItemOutput, 0, len(o.Items)),
	}
	if o.Customer != nil {
		out.CustomerName = o.Customer.Name
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, OrderItemOutput{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return out
}

type ListOrdersInput struct {
	Page       int
	Limit      int
	Q          string
	Sort       string
	Status     string
	CustomerID *int64
	From       *time.Time
	To         *time.Time
}

type OrderListOutput struct {
	Items []OrderOutput `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (u *OrderUsecase) List(ctx context.Context, in ListOrdersInput) (OrderListOutput, error) {
	if in.Page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if in.Status != "" && !model.ValidOrderStatus(model.OrderStatus(in.Status)) {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	switch in.Sort {
	case "", "number", "total_asc", "total_desc", "date":
	default:
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	orders, total, err := u.orderRepo.List(ctx, repo.OrderListQuery{
		Page:       in.Page,
		Limit:      in.Limit,
		Q:          strings.TrimSpace(in.Q),
		Sort:       in.Sort,
		Status:     in.Status,
		CustomerID: in.CustomerID,
		From:       in.From,
		To:         in.To,
	})
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, toOrderOutput(o))
	}
	return OrderListOutput{Items: outs, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *OrderUsecase) Get(ctx context.Context, id int64) (OrderOutput, error) {
	if id <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	o, err := u.orderRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutput(o), nil
}

type OrderItemInput struct {
	ProductID int64
	Quantity  int64
}

type CreateOrderInput struct {
	CustomerID int64
	Status     string // empty means pending
	Notes      string
	Items      []OrderItemInput
}

// Create persists the order header and its items in one transaction: either
// everything lands or nothing does. Each item's unit price is copied from
// the product at this moment and never synchronized again.
func (u *OrderUsecase) Create(ctx context.Context, actor string, in CreateOrderInput) (OrderOutput, error) {
	var fe validator.FieldErrors
	if in.CustomerID <= 0 {
		fe.Add("customer_id", "required")
	}
	status := model.OrderStatusPending
	if in.Status != "" {
		status = model.OrderStatus(in.Status)
		if !model.ValidOrderStatus(status) {
			fe.Add("status", "must be pending, processing, completed or declined")
		}
	}
	if len(in.Items) == 0 {
		fe.Add("items", "at least one item is required")
	}
	for i, it := range in.Items {
		if it.ProductID <= 0 {
			fe.Add(fmt.Sprintf("items.%d.product_id", i), "required")
		}
		if it.Quantity < 1 {
			fe.Add(fmt.Sprintf("items.%d.quantity", i), "must be at least 1")
		}
	}
	if len(fe) > 0 {
		return OrderOutput{}, NewValidationError(fe)
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Customers().FindByID(ctx, in.CustomerID); err != nil {
			if err == repo.ErrNotFound {
				return NewFieldError("customer_id", "unknown customer")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		number, err := u.freshNumber(ctx, r.Orders())
		if err != nil {
			return err
		}

		// snapshot prices at selection time
		items := make([]model.OrderItem, 0, len(in.Items))
		for i, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if err == repo.ErrNotFound {
				return NewFieldError(fmt.Sprintf("items.%d.product_id", i), "unknown product")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			items = append(items, model.OrderItem{
				ProductID: p.ID,
				Quantity:  it.Quantity,
				UnitPrice: p.Price,
			})
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			Number:     number,
			CustomerID: in.CustomerID,
			Status:     status,
			Notes:      in.Notes,
			TotalPrice: model.OrderTotal(items),
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderOutput(created)

		return writeAudit(ctx, r.AuditLogs(), actor, model.AuditActionCreate, model.AuditResourceOrder, orderID, nil, created)
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) freshNumber(ctx context.Context, orders repo.OrderRepository) (string, error) {
	for i := 0; i < 5; i++ {
		number := NewOrderNumber()
		taken, err := orders.ExistsByNumber(ctx, number)
		if err != nil {
			return "", NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !taken {
			return number, nil
		}
	}
	return "", NewHTTPError(http.StatusInternalServerError, "could not allocate order number")
}

type UpdateOrderInput struct {
	CustomerID int64
	Status     string
	Notes      string
}

// Update edits the order header. Number and total are never client-writable;
// status changes go through the transition rules.
func (u *OrderUsecase) Update(ctx context.Context, actor string, id int64, in UpdateOrderInput) (OrderOutput, error) {
	if id <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var fe validator.FieldErrors
	if in.CustomerID <= 0 {
		fe.Add("customer_id", "required")
	}
	next := model.OrderStatus(in.Status)
	if !model.ValidOrderStatus(next) {
		fe.Add("status", "must be pending, processing, completed or declined")
	}
	if len(fe) > 0 {
		return OrderOutput{}, NewValidationError(fe)
	}

	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		before, err := r.Orders().FindByID(ctx, id)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if !before.Status.CanTransitionTo(next) {
			return NewFieldError("status", fmt.Sprintf("cannot change a %s order to %s", before.Status, next))
		}
		if _, err := r.Customers().FindByID(ctx, in.CustomerID); err != nil {
			if err == repo.ErrNotFound {
				return NewFieldError("customer_id", "unknown customer")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		after := before
		after.CustomerID = in.CustomerID
		after.Status = next
		after.Notes = in.Notes
		if err := r.Orders().Update(ctx, after); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		updated, err := r.Orders().FindByID(ctx, id)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderOutput(updated)

		return writeAudit(ctx, r.AuditLogs(), actor, model.AuditActionUpdate, model.AuditResourceOrder, id, before, after)
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// UpdateStatus moves the order through its lifecycle. A same-status update
// is a no-op; completed and declined are terminal.
func (u *OrderUsecase) UpdateStatus(ctx context.Context, actor string, id int64, status string) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	next := model.OrderStatus(strings.TrimSpace(status))
	if !model.ValidOrderStatus(next) {
		return NewFieldError("status", "must be pending, processing, completed or declined")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, id)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if o.Status == next {
			return nil
		}
		if !o.Status.CanTransitionTo(next) {
			return NewFieldError("status", fmt.Sprintf("cannot change a %s order to %s", o.Status, next))
		}

		if err := r.Orders().UpdateStatus(ctx, id, next); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return writeAudit(ctx, r.AuditLogs(), actor, model.AuditActionUpdateOrderStatus, model.AuditResourceOrder, id,
			map[string]string{"status": string(o.Status)},
			map[string]string{"status": string(next)},
		)
	})
}

// AddItem appends a line to an existing order, snapshotting the product's
// current price, and recomputes the stored total in the same transaction.
func (u *OrderUsecase) AddItem(ctx context.Context, actor string, orderID int64, in OrderItemInput) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var fe validator.FieldErrors
	if in.ProductID <= 0 {
		fe.Add("product_id", "required")
	}
	if in.Quantity < 1 {
		fe.Add("quantity", "must be at least 1")
	}
	if len(fe) > 0 {
		return OrderOutput{}, NewValidationError(fe)
	}

	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		p, err := r.Products().FindByID(ctx, in.ProductID)
		if err == repo.ErrNotFound {
			return NewFieldError("product_id", "unknown product")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		item, err := r.OrderItems().Create(ctx, model.OrderItem{
			OrderID:   o.ID,
			ProductID: p.ID,
			Quantity:  in.Quantity,
			UnitPrice: p.Price,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := u.recomputeTotal(ctx, r, o.ID); err != nil {
			return err
		}

		updated, err := r.Orders().FindByID(ctx, o.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderOutput(updated)

		return writeAudit(ctx, r.AuditLogs(), actor, model.AuditActionUpdate, model.AuditResourceOrder, o.ID, nil, item)
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// UpdateItemQuantity changes an item's quantity. Quantity is the only
// editable item field: unit price and product reference stay frozen.
func (u *OrderUsecase) UpdateItemQuantity(ctx context.Context, actor string, orderID int64, itemID int64, quantity int64) (OrderOutput, error) {
	if orderID <= 0 || itemID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if quantity < 1 {
		return OrderOutput{}, NewFieldError("quantity", "must be at least 1")
	}

	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := r.OrderItems().FindByID(ctx, itemID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if item.OrderID != orderID {
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		if err := r.OrderItems().UpdateQuantity(ctx, itemID, quantity); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := u.recomputeTotal(ctx, r, orderID); err != nil {
			return err
		}

		updated, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderOutput(updated)

		after := item
		after.Quantity = quantity
		return writeAudit(ctx, r.AuditLogs(), actor, model.AuditActionUpdate, model.AuditResourceOrder, orderID, item, after)
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// RemoveItem deletes a line. The last remaining item cannot be removed: a
// persisted order always has at least one.
func (u *OrderUsecase) RemoveItem(ctx context.Context, actor string, orderID int64, itemID int64) (OrderOutput, error) {
	if orderID <= 0 || itemID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := r.OrderItems().FindByID(ctx, itemID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if item.OrderID != orderID {
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		n, err := r.OrderItems().CountByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if n <= 1 {
			return NewFieldError("items", "an order must keep at least one item")
		}

		if err := r.OrderItems().Delete(ctx, itemID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := u.recomputeTotal(ctx, r, orderID); err != nil {
			return err
		}

		updated, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderOutput(updated)

		return writeAudit(ctx, r.AuditLogs(), actor, model.AuditActionUpdate, model.AuditResourceOrder, orderID, item, nil)
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// recomputeTotal re-derives the stored total from the current items. Runs
// inside the same transaction as whatever item change invalidated it.
func (u *OrderUsecase) recomputeTotal(ctx context.Context, r repo.TxRepos, orderID int64) error {
	items, err := r.OrderItems().ListByOrderID(ctx, orderID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := r.Orders().UpdateTotal(ctx, orderID, model.OrderTotal(items)); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *OrderUsecase) Delete(ctx context.Context, actor string, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.orderRepo.SoftDelete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return writeAudit(ctx, u.auditRepo, actor, model.AuditActionDelete, model.AuditResourceOrder, id, nil, nil)
}

func (u *OrderUsecase) BulkDelete(ctx context.Context, actor string, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "ids required")
	}
	deleted, err := u.orderRepo.SoftDeleteBulk(ctx, ids)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	for _, id := range ids {
		if err := writeAudit(ctx, u.auditRepo, actor, model.AuditActionDelete, model.AuditResourceOrder, id, nil, nil); err != nil {
			return deleted, err
		}
	}
	return deleted, nil
}
