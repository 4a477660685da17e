package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/usecase"
	"github.com/moharam/debtbook/internal/usecase/mocks"
)

func TestCustomerUseCase_CreateCustomer(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateCustomerInput
		setupMocks  func(*mocks.MockCustomerRepository)
		expectError bool
	}{
		{
			name: "successful creation",
			input: usecase.CreateCustomerInput{
				Name:  "Ahmed Hassan",
				Phone: "01012345678",
			},
			setupMocks:  func(repo *mocks.MockCustomerRepository) {},
			expectError: false,
		},
		{
			name: "invalid name",
			input: usecase.CreateCustomerInput{
				Name:  "   ",
				Phone: "01012345678",
			},
			setupMocks:  func(repo *mocks.MockCustomerRepository) {},
			expectError: true,
		},
		{
			name: "invalid phone",
			input: usecase.CreateCustomerInput{
				Name:  "Ahmed Hassan",
				Phone: "not a phone",
			},
			setupMocks:  func(repo *mocks.MockCustomerRepository) {},
			expectError: true,
		},
		{
			name: "repository error",
			input: usecase.CreateCustomerInput{
				Name:  "Ahmed Hassan",
				Phone: "01012345678",
			},
			setupMocks: func(repo *mocks.MockCustomerRepository) {
				repo.CreateFunc = func(ctx context.Context, customer *domain.Customer) error {
					return errors.New("connection lost")
				}
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCustomerRepository()
			publisher := mocks.NewMockChangePublisher()
			tt.setupMocks(repo)

			uc := usecase.NewCustomerUseCase(repo, mocks.NewMockIDGenerator(), publisher)
			customer, err := uc.CreateCustomer(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if len(publisher.Events) != 0 {
					t.Error("no event should be published on failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if customer.ID == "" {
				t.Error("expected generated id")
			}
			if len(customer.Debts) != 0 {
				t.Error("new customer should have an empty book")
			}
			if len(publisher.Events) != 1 || publisher.Events[0].Type != domain.EventTypeCustomerCreated {
				t.Errorf("expected one customer.created event, got %v", publisher.Events)
			}
		})
	}
}

func TestCustomerUseCase_UpdateCustomer(t *testing.T) {
	repo := mocks.NewMockCustomerRepository()
	publisher := mocks.NewMockChangePublisher()
	repo.Seed(&domain.Customer{ID: "c-1", Name: "Ahmed", Phone: "01012345678"})

	uc := usecase.NewCustomerUseCase(repo, mocks.NewMockIDGenerator(), publisher)

	got, err := uc.UpdateCustomer(context.Background(), "c-1", usecase.UpdateCustomerInput{
		Name:  "  Ahmed Hassan  ",
		Phone: "01098765432",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Ahmed Hassan" {
		t.Errorf("expected trimmed name, got %q", got.Name)
	}
	if got.Phone != "01098765432" {
		t.Errorf("expected new phone, got %q", got.Phone)
	}

	if len(publisher.Events) != 1 || publisher.Events[0].Type != domain.EventTypeCustomerUpdated {
		t.Errorf("expected one customer.updated event, got %v", publisher.Events)
	}

	if _, err := uc.UpdateCustomer(context.Background(), "c-1", usecase.UpdateCustomerInput{Name: " "}); err == nil {
		t.Error("expected validation error for blank name")
	}

	if _, err := uc.UpdateCustomer(context.Background(), "missing", usecase.UpdateCustomerInput{
		Name:  "Mona",
		Phone: "01011111111",
	}); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerUseCase_SetArchived(t *testing.T) {
	repo := mocks.NewMockCustomerRepository()
	publisher := mocks.NewMockChangePublisher()
	repo.Seed(&domain.Customer{ID: "c-1", Name: "Ahmed"})

	uc := usecase.NewCustomerUseCase(repo, mocks.NewMockIDGenerator(), publisher)

	if err := uc.SetArchived(context.Background(), "c-1", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := uc.GetCustomer(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Archived {
		t.Error("customer should be archived")
	}

	if err := uc.SetArchived(context.Background(), "c-1", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(publisher.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(publisher.Events))
	}
	if publisher.Events[0].Type != domain.EventTypeCustomerArchived ||
		publisher.Events[1].Type != domain.EventTypeCustomerUnarchived {
		t.Errorf("unexpected event types: %s, %s", publisher.Events[0].Type, publisher.Events[1].Type)
	}

	if err := uc.SetArchived(context.Background(), "missing", true); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerUseCase_ListCustomers(t *testing.T) {
	repo := mocks.NewMockCustomerRepository()
	repo.Seed(&domain.Customer{ID: "c-1", Name: "Ahmed"})
	repo.Seed(&domain.Customer{ID: "c-2", Name: "Mona", Archived: true})

	uc := usecase.NewCustomerUseCase(repo, mocks.NewMockIDGenerator(), nil)

	active, err := uc.ListCustomers(context.Background(), usecase.ListCustomersInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active customer, got %d", len(active))
	}

	all, err := uc.ListCustomers(context.Background(), usecase.ListCustomersInput{IncludeArchived: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(all))
	}
}
