package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/infrastructure/metrics"
)

// CustomerUseCase handles customer lifecycle.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	idGen        IDGenerator
	publisher    ChangePublisher
	metrics      *metrics.Metrics
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(customerRepo CustomerRepository, idGen IDGenerator, publisher ChangePublisher) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		idGen:        idGen,
		publisher:    publisher,
	}
}

// WithMetrics enables counter updates on customer operations.
func (uc *CustomerUseCase) WithMetrics(m *metrics.Metrics) *CustomerUseCase {
	uc.metrics = m
	return uc
}

// CreateCustomerInput represents input for registering a customer.
type CreateCustomerInput struct {
	Name  string
	Phone string
}

// CreateCustomer registers a new customer with an empty book.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	if err := domain.ValidateCustomerName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidatePhone(input.Phone); err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		ID:        uc.idGen.Generate(),
		Name:      strings.TrimSpace(input.Name),
		Phone:     strings.TrimSpace(input.Phone),
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.CustomersCreated.Inc()
	}
	uc.publish(ctx, domain.EventTypeCustomerCreated, customer.ID, "")

	return customer, nil
}

// UpdateCustomerInput represents input for editing customer details.
type UpdateCustomerInput struct {
	Name  string
	Phone string
}

// UpdateCustomer rewrites a customer's name and phone.
func (uc *CustomerUseCase) UpdateCustomer(ctx context.Context, id string, input UpdateCustomerInput) (*domain.Customer, error) {
	if err := domain.ValidateCustomerName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidatePhone(input.Phone); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)

	if err := uc.customerRepo.Update(ctx, id, name, phone); err != nil {
		return nil, err
	}

	uc.publish(ctx, domain.EventTypeCustomerUpdated, id, "")

	return uc.customerRepo.GetByID(ctx, id)
}

// GetCustomer retrieves a customer with the full debt aggregate.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return uc.customerRepo.GetByID(ctx, id)
}

// ListCustomersInput represents input for listing customers.
type ListCustomersInput struct {
	Limit           int
	Offset          int
	IncludeArchived bool
}

// ListCustomers lists customers with pagination.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, input ListCustomersInput) ([]*domain.Customer, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.customerRepo.List(ctx, limit, offset, input.IncludeArchived)
}

// SetArchived archives or unarchives a customer. Archived customers drop out
// of dashboard aggregation but keep their full book.
func (uc *CustomerUseCase) SetArchived(ctx context.Context, id string, archived bool) error {
	if err := uc.customerRepo.SetArchived(ctx, id, archived); err != nil {
		return err
	}

	eventType := domain.EventTypeCustomerArchived
	if !archived {
		eventType = domain.EventTypeCustomerUnarchived
	}
	uc.publish(ctx, eventType, id, "")

	return nil
}

// DeleteCustomer removes a customer and everything the customer owns.
func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	return uc.customerRepo.Delete(ctx, id)
}

func (uc *CustomerUseCase) publish(ctx context.Context, eventType, customerID, debtID string) {
	if uc.publisher == nil {
		return
	}

	// Best effort; change notification must never fail the operation.
	_ = uc.publisher.Publish(ctx, domain.ChangeEvent{
		ID:         uc.idGen.Generate(),
		Type:       eventType,
		CustomerID: customerID,
		DebtID:     debtID,
		OccurredAt: time.Now().UTC(),
	})
}
