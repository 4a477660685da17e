package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/usecase"
)

// CreateCustomerRequest represents a request to create a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCustomerRequest) ToUseCaseInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name:  r.Name,
		Phone: r.Phone,
	}
}

// UpdateCustomerRequest represents a request to edit customer details.
type UpdateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateCustomerRequest) ToUseCaseInput() usecase.UpdateCustomerInput {
	return usecase.UpdateCustomerInput{
		Name:  r.Name,
		Phone: r.Phone,
	}
}

// CreateDebtRequest represents a request to register a debt.
type CreateDebtRequest struct {
	Label         string          `json:"label"`
	Unit          string          `json:"unit"`
	PrincipalCash decimal.Decimal `json:"principal_cash"`
	GoldRate      decimal.Decimal `json:"gold_rate,omitempty"`
	TermMonths    int             `json:"term_months"`
	StartDate     *time.Time      `json:"start_date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDebtRequest) ToUseCaseInput() usecase.CreateDebtInput {
	return usecase.CreateDebtInput{
		Label:         r.Label,
		Unit:          domain.Unit(r.Unit),
		PrincipalCash: r.PrincipalCash,
		GoldRate:      r.GoldRate,
		TermMonths:    r.TermMonths,
		StartDate:     r.StartDate,
	}
}

// RecordPaymentRequest represents an incoming cash payment.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// IncreaseDebtRequest represents a request to raise a debt's obligation.
type IncreaseDebtRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// AttachImageRequest represents a request to attach a document image.
type AttachImageRequest struct {
	Ref string `json:"ref"`
}

// ArchiveCustomerRequest represents a request to archive or restore a customer.
type ArchiveCustomerRequest struct {
	Archived bool `json:"archived"`
}
