package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moharam/debtbook/internal/adapter/http/dto"
	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/usecase"
)

// CustomerService defines the behavior needed by CustomerHandler.
type CustomerService interface {
	CreateCustomer(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, input usecase.UpdateCustomerInput) (*domain.Customer, error)
	ListCustomers(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, error)
	SetArchived(ctx context.Context, id string, archived bool) error
	DeleteCustomer(ctx context.Context, id string) error
}

// CustomerHandler handles customer-related HTTP requests.
type CustomerHandler struct {
	customerUC CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerUC CustomerService) *CustomerHandler {
	return &CustomerHandler{customerUC: customerUC}
}

// Create creates a new customer.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customer, err := h.customerUC.CreateCustomer(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create customer", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CustomerFromDomain(customer))
}

// Get retrieves a customer with their full book.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	customer, err := h.customerUC.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get customer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerFromDomain(customer))
}

// Update edits a customer's name and phone.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customer, err := h.customerUC.UpdateCustomer(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update customer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerFromDomain(customer))
}

// List lists customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)
	includeArchived := r.URL.Query().Get("include_archived") == "true"

	customers, err := h.customerUC.ListCustomers(r.Context(), usecase.ListCustomersInput{
		Limit:           limit,
		Offset:          offset,
		IncludeArchived: includeArchived,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list customers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListCustomersResponse{
		Customers: dto.CustomersFromDomain(customers),
		Total:     int64(len(customers)),
	})
}

// Archive flips a customer's archived flag.
func (h *CustomerHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.ArchiveCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.customerUC.SetArchived(r.Context(), id, req.Archived); err != nil {
		writeError(w, mapDomainError(err), "failed to archive customer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"archived": req.Archived})
}

// Delete removes a customer and their entire book.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.customerUC.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete customer", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
