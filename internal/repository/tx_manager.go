package repository

import "context"

// TxRepos are the repositories rebound to one transaction.
type TxRepos interface {
	Brands() BrandRepository
	Categories() CategoryRepository
	Products() ProductRepository
	Customers() CustomerRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	AuditLogs() AuditLogRepository
}

// TransactionManager hides begin/commit/rollback from the usecases. If fn
// returns an error the whole unit of work rolls back.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
