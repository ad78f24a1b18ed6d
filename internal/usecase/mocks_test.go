package usecase_test

import (
	"context"
	"strings"
	"testing"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock runs fn against a fixed set of repos so unit tests can
// exercise transactional usecases without a database.
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	brands     repo.BrandRepository
	categories repo.CategoryRepository
	products   repo.ProductRepository
	customers  repo.CustomerRepository
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	auditLogs  repo.AuditLogRepository
}

func (r *TxReposMock) Brands() repo.BrandRepository        { return r.brands }
func (r *TxReposMock) Categories() repo.CategoryRepository { return r.categories }
func (r *TxReposMock) Products() repo.ProductRepository    { return r.products }
func (r *TxReposMock) Customers() repo.CustomerRepository  { return r.customers }
func (r *TxReposMock) Orders() repo.OrderRepository        { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository {
	return r.orderItems
}
func (r *TxReposMock) AuditLogs() repo.AuditLogRepository { return r.auditLogs }

// =====================
// Repository mocks
// =====================

type BrandRepoMock struct{ mock.Mock }

func (m *BrandRepoMock) List(ctx context.Context, q repo.BrandListQuery) ([]model.Brand, int64, error) {
	args := m.Called(ctx, q)
	brands, _ := args.Get(0).([]model.Brand)
	return brands, args.Get(1).(int64), args.Error(2)
}

func (m *BrandRepoMock) FindByID(ctx context.Context, id int64) (model.Brand, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Brand)
	return b, args.Error(1)
}

func (m *BrandRepoMock) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *BrandRepoMock) Create(ctx context.Context, b model.Brand) (model.Brand, error) {
	args := m.Called(ctx, b)
	out, _ := args.Get(0).(model.Brand)
	return out, args.Error(1)
}

func (m *BrandRepoMock) Update(ctx context.Context, b model.Brand) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BrandRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BrandRepoMock) SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BrandRepoMock) Search(ctx context.Context, q string, limit int) ([]model.Brand, error) {
	args := m.Called(ctx, q, limit)
	brands, _ := args.Get(0).([]model.Brand)
	return brands, args.Error(1)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) List(ctx context.Context, q repo.CategoryListQuery) ([]model.Category, int64, error) {
	args := m.Called(ctx, q)
	categories, _ := args.Get(0).([]model.Category)
	return categories, args.Get(1).(int64), args.Error(2)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) FindByIDs(ctx context.Context, ids []int64) ([]model.Category, error) {
	args := m.Called(ctx, ids)
	categories, _ := args.Get(0).([]model.Category)
	return categories, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(model.Category)
	return out, args.Error(1)
}

func (m *CategoryRepoMock) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CategoryRepoMock) SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) ListByBrandID(ctx context.Context, brandID int64, page int, limit int) ([]model.Product, int64, error) {
	args := m.Called(ctx, brandID, page, limit)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) ListOptions(ctx context.Context) ([]repo.ProductOption, error) {
	args := m.Called(ctx)
	options, _ := args.Get(0).([]repo.ProductOption)
	return options, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *ProductRepoMock) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product, categoryIDs []int64) (model.Product, error) {
	args := m.Called(ctx, p, categoryIDs)
	out, _ := args.Get(0).(model.Product)
	return out, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product, categoryIDs []int64) error {
	args := m.Called(ctx, p, categoryIDs)
	return args.Error(0)
}

func (m *ProductRepoMock) UpdateImage(ctx context.Context, id int64, image string) error {
	args := m.Called(ctx, id, image)
	return args.Error(0)
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) Search(ctx context.Context, q string, limit int) ([]model.Product, error) {
	args := m.Called(ctx, q, limit)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) List(ctx context.Context, q repo.CustomerListQuery) ([]model.Customer, int64, error) {
	args := m.Called(ctx, q)
	customers, _ := args.Get(0).([]model.Customer)
	return customers, args.Get(1).(int64), args.Error(2)
}

func (m *CustomerRepoMock) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) ExistsByEmail(ctx context.Context, email string, ignoreID int64) (bool, error) {
	args := m.Called(ctx, email, ignoreID)
	return args.Bool(0), args.Error(1)
}

func (m *CustomerRepoMock) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(model.Customer)
	return out, args.Error(1)
}

func (m *CustomerRepoMock) Update(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CustomerRepoMock) SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CustomerRepoMock) Search(ctx context.Context, q string, limit int) ([]model.Customer, error) {
	args := m.Called(ctx, q, limit)
	customers, _ := args.Get(0).([]model.Customer)
	return customers, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, int64, error) {
	args := m.Called(ctx, q)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id int64) (model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, o model.Order) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) Update(ctx context.Context, o model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateTotal(ctx context.Context, id int64, total decimal.Decimal) error {
	args := m.Called(ctx, id, total)
	return args.Error(0)
}

func (m *OrderRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OrderRepoMock) SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) Search(ctx context.Context, q string, limit int) ([]model.Order, error) {
	args := m.Called(ctx, q, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) Create(ctx context.Context, item model.OrderItem) (model.OrderItem, error) {
	args := m.Called(ctx, item)
	out, _ := args.Get(0).(model.OrderItem)
	return out, args.Error(1)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) FindByID(ctx context.Context, id int64) (model.OrderItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.OrderItem)
	return item, args.Error(1)
}

func (m *OrderItemRepoMock) CountByOrderID(ctx context.Context, orderID int64) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderItemRepoMock) UpdateQuantity(ctx context.Context, id int64, quantity int64) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *OrderItemRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditRepoMock) List(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, int64, error) {
	args := m.Called(ctx, f)
	logs, _ := args.Get(0).([]model.AuditLog)
	return logs, args.Get(1).(int64), args.Error(2)
}

// =====================
// Helpers
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

// acceptAudit lets any audit write through.
func acceptAudit(audit *AuditRepoMock) {
	audit.On("Create", mock.Anything, mock.Anything).Return(nil)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
