package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/engine"
	"github.com/moharam/debtbook/internal/usecase"
)

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Archived  bool            `json:"archived"`
	Debts     []*DebtResponse `json:"debts"`
}

// CustomerFromDomain converts a domain customer to a response.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	debts := make([]*DebtResponse, len(c.Debts))
	for i := range c.Debts {
		debts[i] = DebtFromDomain(&c.Debts[i])
	}

	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		Archived:  c.Archived,
		Debts:     debts,
	}
}

// CustomersFromDomain converts domain customers to responses.
func CustomersFromDomain(customers []*domain.Customer) []*CustomerResponse {
	result := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		result[i] = CustomerFromDomain(c)
	}
	return result
}

// DebtResponse represents a debt in API responses. Derived balance figures
// are included so clients never recompute them.
type DebtResponse struct {
	ID                      string                  `json:"id"`
	Label                   string                  `json:"label"`
	Unit                    string                  `json:"unit"`
	PrincipalCash           decimal.Decimal         `json:"principal_cash"`
	GoldPriceAtRegistration decimal.Decimal         `json:"gold_price_at_registration,omitempty"`
	GoldGrams               decimal.Decimal         `json:"gold_grams,omitempty"`
	TermMonths              int                     `json:"term_months"`
	StartDate               time.Time               `json:"start_date"`
	Installments            []*InstallmentResponse  `json:"installments"`
	History                 []*LedgerRecordResponse `json:"history"`
	Images                  []*DebtImageResponse    `json:"images,omitempty"`
	PaidTotal               decimal.Decimal         `json:"paid_total"`
	Remaining               decimal.Decimal         `json:"remaining"`
	PercentPaid             int                     `json:"percent_paid"`
}

// DebtFromDomain converts a domain debt to a response.
func DebtFromDomain(d *domain.Debt) *DebtResponse {
	installments := make([]*InstallmentResponse, len(d.Installments))
	for i := range d.Installments {
		installments[i] = InstallmentFromDomain(&d.Installments[i])
	}

	history := make([]*LedgerRecordResponse, len(d.History))
	for i := range d.History {
		history[i] = LedgerRecordFromDomain(&d.History[i])
	}

	var images []*DebtImageResponse
	for i := range d.Images {
		images = append(images, &DebtImageResponse{
			ID:      d.Images[i].ID,
			Ref:     d.Images[i].Ref,
			AddedAt: d.Images[i].AddedAt,
		})
	}

	return &DebtResponse{
		ID:                      d.ID,
		Label:                   d.Label,
		Unit:                    string(d.Unit),
		PrincipalCash:           d.PrincipalCash,
		GoldPriceAtRegistration: d.GoldPriceAtRegistration,
		GoldGrams:               d.GoldGrams,
		TermMonths:              d.TermMonths,
		StartDate:               d.StartDate,
		Installments:            installments,
		History:                 history,
		Images:                  images,
		PaidTotal:               engine.PaidTotal(d),
		Remaining:               engine.Remaining(d),
		PercentPaid:             engine.PercentPaid(d),
	}
}

// InstallmentResponse represents an installment in API responses.
type InstallmentResponse struct {
	ID          string          `json:"id"`
	DueDate     time.Time       `json:"due_date"`
	Amount      decimal.Decimal `json:"amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	Paid        bool            `json:"paid"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
}

// InstallmentFromDomain converts a domain installment to a response.
func InstallmentFromDomain(i *domain.Installment) *InstallmentResponse {
	return &InstallmentResponse{
		ID:          i.ID,
		DueDate:     i.DueDate,
		Amount:      i.Amount,
		PaidAmount:  i.PaidAmount,
		Paid:        i.Paid,
		PaymentDate: i.PaymentDate,
	}
}

// LedgerRecordResponse represents a ledger record in API responses.
type LedgerRecordResponse struct {
	ID        string          `json:"id"`
	At        time.Time       `json:"at"`
	Amount    decimal.Decimal `json:"amount"`
	Kind      string          `json:"kind"`
	Note      string          `json:"note,omitempty"`
	RelatedID string          `json:"related_id,omitempty"`
}

// LedgerRecordFromDomain converts a domain ledger record to a response.
func LedgerRecordFromDomain(r *domain.LedgerRecord) *LedgerRecordResponse {
	return &LedgerRecordResponse{
		ID:        r.ID,
		At:        r.At,
		Amount:    r.Amount,
		Kind:      string(r.Kind),
		Note:      r.Note,
		RelatedID: r.RelatedID,
	}
}

// DebtImageResponse represents an attached document image.
type DebtImageResponse struct {
	ID      string    `json:"id"`
	Ref     string    `json:"ref"`
	AddedAt time.Time `json:"added_at"`
}

// GoldPriceResponse represents the daily gold price.
type GoldPriceResponse struct {
	Price     decimal.Decimal `json:"price"`
	SourceURL string          `json:"source_url,omitempty"`
	FetchedAt time.Time       `json:"fetched_at"`
	FromCache bool            `json:"from_cache"`
}

// GoldPriceFromDomain converts a domain gold price to a response.
func GoldPriceFromDomain(p domain.GoldPrice) *GoldPriceResponse {
	return &GoldPriceResponse{
		Price:     p.Price,
		SourceURL: p.SourceURL,
		FetchedAt: p.FetchedAt,
		FromCache: p.FromCache,
	}
}

// ShopSummaryResponse represents the dashboard summary.
type ShopSummaryResponse struct {
	CashRemaining      decimal.Decimal    `json:"cash_remaining"`
	GoldGramsRemaining decimal.Decimal    `json:"gold_grams_remaining"`
	GoldValue          decimal.Decimal    `json:"gold_value"`
	TotalValue         decimal.Decimal    `json:"total_value"`
	GoldPrice          *GoldPriceResponse `json:"gold_price"`
	OverdueCount       int                `json:"overdue_count"`
	CustomerCount      int                `json:"customer_count"`
	ActiveDebts        int                `json:"active_debts"`
	FullyPaidDebts     int                `json:"fully_paid_debts"`
}

// ShopSummaryFromUseCase converts a usecase summary to a response.
func ShopSummaryFromUseCase(s *usecase.ShopSummary) *ShopSummaryResponse {
	return &ShopSummaryResponse{
		CashRemaining:      s.Totals.CashRemaining,
		GoldGramsRemaining: s.Totals.GoldGramsRemaining,
		GoldValue:          s.Totals.GoldValue,
		TotalValue:         s.Totals.TotalValue,
		GoldPrice:          GoldPriceFromDomain(s.GoldPrice),
		OverdueCount:       s.OverdueCount,
		CustomerCount:      s.CustomerCount,
		ActiveDebts:        s.ActiveDebts,
		FullyPaidDebts:     s.FullyPaidDebts,
	}
}

// OverdueItemResponse represents one overdue installment.
type OverdueItemResponse struct {
	CustomerID   string               `json:"customer_id"`
	CustomerName string               `json:"customer_name"`
	DebtID       string               `json:"debt_id"`
	DebtLabel    string               `json:"debt_label"`
	Installment  *InstallmentResponse `json:"installment"`
}

// OverdueItemsFromEngine converts engine overdue items to responses.
func OverdueItemsFromEngine(items []engine.OverdueItem) []*OverdueItemResponse {
	result := make([]*OverdueItemResponse, len(items))
	for i := range items {
		inst := items[i].Installment
		result[i] = &OverdueItemResponse{
			CustomerID:   items[i].CustomerID,
			CustomerName: items[i].CustomerName,
			DebtID:       items[i].DebtID,
			DebtLabel:    items[i].DebtLabel,
			Installment:  InstallmentFromDomain(&inst),
		}
	}
	return result
}

// StatementRowResponse represents one debt on a customer statement.
type StatementRowResponse struct {
	DebtID        string          `json:"debt_id"`
	Label         string          `json:"label"`
	Unit          string          `json:"unit"`
	PrincipalCash decimal.Decimal `json:"principal_cash"`
	GoldGrams     decimal.Decimal `json:"gold_grams,omitempty"`
	Paid          decimal.Decimal `json:"paid"`
	Remaining     decimal.Decimal `json:"remaining"`
	PercentPaid   int             `json:"percent_paid"`
	OverdueCount  int             `json:"overdue_count"`
}

// StatementResponse represents a customer's full position.
type StatementResponse struct {
	CustomerID   string                  `json:"customer_id"`
	CustomerName string                  `json:"customer_name"`
	Rows         []*StatementRowResponse `json:"rows"`
}

// StatementFromUseCase converts a usecase statement to a response.
func StatementFromUseCase(s *usecase.Statement) *StatementResponse {
	rows := make([]*StatementRowResponse, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = &StatementRowResponse{
			DebtID:        row.DebtID,
			Label:         row.Label,
			Unit:          string(row.Unit),
			PrincipalCash: row.PrincipalCash,
			GoldGrams:     row.GoldGrams,
			Paid:          row.Paid,
			Remaining:     row.Remaining,
			PercentPaid:   row.PercentPaid,
			OverdueCount:  row.OverdueCount,
		}
	}

	return &StatementResponse{
		CustomerID:   s.Customer.ID,
		CustomerName: s.Customer.Name,
		Rows:         rows,
	}
}

// ListCustomersResponse wraps a customer page.
type ListCustomersResponse struct {
	Customers []*CustomerResponse `json:"customers"`
	Total     int64               `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
