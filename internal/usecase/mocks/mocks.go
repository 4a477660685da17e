package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/usecase"
)

// MockCustomerRepository is a mock implementation of CustomerRepository.
// Func fields override individual methods; otherwise an in-memory map backs
// the calls.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer

	CreateFunc           func(ctx context.Context, customer *domain.Customer) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Customer, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Customer, error)
	UpdateFunc           func(ctx context.Context, id, name, phone string) error
	ListFunc             func(ctx context.Context, limit, offset int, includeArchived bool) ([]*domain.Customer, error)
	ListAllFunc          func(ctx context.Context) ([]*domain.Customer, error)
	SetArchivedFunc      func(ctx context.Context, id string, archived bool) error
	DeleteFunc           func(ctx context.Context, id string) error
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

// Seed stores a customer directly in the backing map.
func (m *MockCustomerRepository) Seed(customer *domain.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[customer.ID] = customer
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[customer.ID] = customer
	return nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.customers[id]; ok {
		return c.Clone(), nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Customer, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockCustomerRepository) Update(ctx context.Context, id, name, phone string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, name, phone)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	c.Name = name
	c.Phone = phone
	return nil
}

func (m *MockCustomerRepository) List(ctx context.Context, limit, offset int, includeArchived bool) ([]*domain.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset, includeArchived)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Customer
	for _, c := range m.customers {
		if c.Archived && !includeArchived {
			continue
		}
		out = append(out, c.Clone())
	}
	return out, nil
}

func (m *MockCustomerRepository) ListAll(ctx context.Context) ([]*domain.Customer, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Customer
	for _, c := range m.customers {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (m *MockCustomerRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	if m.SetArchivedFunc != nil {
		return m.SetArchivedFunc(ctx, id, archived)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	c.Archived = archived
	return nil
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(m.customers, id)
	return nil
}

// MockDebtRepository is a mock implementation of DebtRepository. It records
// the last written debt for assertions.
type MockDebtRepository struct {
	mu sync.Mutex

	CreateFunc   func(ctx context.Context, tx usecase.Transaction, customerID string, debt *domain.Debt) error
	ReplaceFunc  func(ctx context.Context, tx usecase.Transaction, customerID string, debt *domain.Debt) error
	DeleteFunc   func(ctx context.Context, tx usecase.Transaction, debtID string) error
	AddImageFunc func(ctx context.Context, tx usecase.Transaction, debtID string, image domain.DebtImage) error

	Created  []*domain.Debt
	Replaced []*domain.Debt
	Deleted  []string
	Images   []domain.DebtImage
}

func NewMockDebtRepository() *MockDebtRepository {
	return &MockDebtRepository{}
}

func (m *MockDebtRepository) Create(ctx context.Context, tx usecase.Transaction, customerID string, debt *domain.Debt) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, customerID, debt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created = append(m.Created, debt)
	return nil
}

func (m *MockDebtRepository) Replace(ctx context.Context, tx usecase.Transaction, customerID string, debt *domain.Debt) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, tx, customerID, debt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Replaced = append(m.Replaced, debt)
	return nil
}

func (m *MockDebtRepository) Delete(ctx context.Context, tx usecase.Transaction, debtID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, debtID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, debtID)
	return nil
}

func (m *MockDebtRepository) AddImage(ctx context.Context, tx usecase.Transaction, debtID string, image domain.DebtImage) error {
	if m.AddImageFunc != nil {
		return m.AddImageFunc(ctx, tx, debtID, image)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Images = append(m.Images, image)
	return nil
}

// MockTransaction is a no-op transaction recording commit/rollback calls.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.RolledBack = true
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	Last *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.Last = &MockTransaction{}
	return m.Last, nil
}

// MockIDGenerator returns sequential ids, or whatever GenerateFunc says.
type MockIDGenerator struct {
	mu sync.Mutex
	n  int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	return fmt.Sprintf("mock-id-%03d", m.n)
}

// MockGoldPriceSource serves a fixed quote.
type MockGoldPriceSource struct {
	Quote domain.GoldPrice
	Err   error

	CurrentFunc func(ctx context.Context, forceRefresh bool) (domain.GoldPrice, error)
}

func (m *MockGoldPriceSource) Current(ctx context.Context, forceRefresh bool) (domain.GoldPrice, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx, forceRefresh)
	}
	return m.Quote, m.Err
}

// MockChangePublisher records published events.
type MockChangePublisher struct {
	mu     sync.Mutex
	Events []domain.ChangeEvent

	PublishFunc func(ctx context.Context, event domain.ChangeEvent) error
}

func NewMockChangePublisher() *MockChangePublisher {
	return &MockChangePublisher{}
}

func (m *MockChangePublisher) Publish(ctx context.Context, event domain.ChangeEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	return nil
}
