package usecase

import (
	"context"

	"github.com/moharam/debtbook/internal/domain"
)

// CustomerRepository defines data access for customers and their owned debt
// aggregates. Reads return the full aggregate: debts with installments,
// ledger records and image references.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	// GetByIDForUpdate locks the customer row for the duration of the
	// transaction. Engine operations are serialized per customer through
	// this lock.
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Customer, error)
	Update(ctx context.Context, id, name, phone string) error
	List(ctx context.Context, limit, offset int, includeArchived bool) ([]*domain.Customer, error)
	// ListAll returns every customer with full aggregates, for shop-wide
	// reporting.
	ListAll(ctx context.Context) ([]*domain.Customer, error)
	SetArchived(ctx context.Context, id string, archived bool) error
	Delete(ctx context.Context, id string) error
}

// DebtRepository defines data access for debts within a customer aggregate.
type DebtRepository interface {
	Create(ctx context.Context, tx Transaction, customerID string, debt *domain.Debt) error
	// Replace persists a debt copy-on-write: child rows are rewritten from
	// the given value inside the transaction.
	Replace(ctx context.Context, tx Transaction, customerID string, debt *domain.Debt) error
	Delete(ctx context.Context, tx Transaction, debtID string) error
	AddImage(ctx context.Context, tx Transaction, debtID string, image domain.DebtImage) error
}

// GoldPriceSource supplies the current daily gold rate. Implementations may
// cache per daily cycle and serve stale quotes when refresh fails; whatever
// rate comes back is treated as authoritative.
type GoldPriceSource interface {
	Current(ctx context.Context, forceRefresh bool) (domain.GoldPrice, error)
}

// ChangePublisher notifies subscribers after a customer's book changed.
type ChangePublisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxRetryer re-runs transactional work the database aborted, typically on
// deadlock or serialization failure.
type TxRetryer interface {
	Retry(ctx context.Context, op func() error) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
