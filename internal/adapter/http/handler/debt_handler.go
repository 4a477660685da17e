package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/adapter/http/dto"
	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/usecase"
)

// DebtService defines the behavior needed by DebtHandler.
type DebtService interface {
	CreateDebt(ctx context.Context, customerID string, input usecase.CreateDebtInput) (*domain.Debt, error)
	GetDebt(ctx context.Context, customerID, debtID string) (*domain.Debt, error)
	RecordPayment(ctx context.Context, customerID, debtID string, cashAmount decimal.Decimal) (*domain.Debt, error)
	IncreaseDebt(ctx context.Context, customerID, debtID string, cashAmount decimal.Decimal, reason string) (*domain.Debt, error)
	ToggleInstallment(ctx context.Context, customerID, debtID, installmentID string) (*domain.Debt, error)
	AttachImage(ctx context.Context, customerID, debtID, ref string) (*domain.DebtImage, error)
	DeleteDebt(ctx context.Context, customerID, debtID string) error
}

// DebtHandler handles debt-related HTTP requests.
type DebtHandler struct {
	debtUC DebtService
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtUC DebtService) *DebtHandler {
	return &DebtHandler{debtUC: debtUC}
}

// Create registers a new debt under a customer.
func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	var req dto.CreateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	debt, err := h.debtUC.CreateDebt(r.Context(), customerID, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create debt", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DebtFromDomain(debt))
}

// Get retrieves one debt.
func (h *DebtHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	debtID := chi.URLParam(r, "debtID")

	debt, err := h.debtUC.GetDebt(r.Context(), customerID, debtID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get debt", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DebtFromDomain(debt))
}

// RecordPayment applies a cash payment to the debt's schedule.
func (h *DebtHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	debtID := chi.URLParam(r, "debtID")

	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	debt, err := h.debtUC.RecordPayment(r.Context(), customerID, debtID, req.Amount)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record payment", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DebtFromDomain(debt))
}

// Increase raises the debt's obligation.
func (h *DebtHandler) Increase(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	debtID := chi.URLParam(r, "debtID")

	var req dto.IncreaseDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	debt, err := h.debtUC.IncreaseDebt(r.Context(), customerID, debtID, req.Amount, req.Reason)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to increase debt", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DebtFromDomain(debt))
}

// ToggleInstallment flips an installment's paid state.
func (h *DebtHandler) ToggleInstallment(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	debtID := chi.URLParam(r, "debtID")
	installmentID := chi.URLParam(r, "installmentID")

	debt, err := h.debtUC.ToggleInstallment(r.Context(), customerID, debtID, installmentID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to toggle installment", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DebtFromDomain(debt))
}

// AttachImage records a reference to a document image.
func (h *DebtHandler) AttachImage(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	debtID := chi.URLParam(r, "debtID")

	var req dto.AttachImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Ref == "" {
		writeError(w, http.StatusBadRequest, "missing image ref", "")
		return
	}

	image, err := h.debtUC.AttachImage(r.Context(), customerID, debtID, req.Ref)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to attach image", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DebtImageResponse{
		ID:      image.ID,
		Ref:     image.Ref,
		AddedAt: image.AddedAt,
	})
}

// Delete removes a debt and everything it owns.
func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	debtID := chi.URLParam(r, "debtID")

	if err := h.debtUC.DeleteDebt(r.Context(), customerID, debtID); err != nil {
		writeError(w, mapDomainError(err), "failed to delete debt", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
