package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/engine"
)

// ReportUseCase computes derived figures for the reporting collaborator.
// Read-only; nothing here touches ledger state.
type ReportUseCase struct {
	customerRepo CustomerRepository
	prices       GoldPriceSource
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(customerRepo CustomerRepository, prices GoldPriceSource) *ReportUseCase {
	return &ReportUseCase{
		customerRepo: customerRepo,
		prices:       prices,
	}
}

// ShopSummary is the dashboard-level view of the whole book.
type ShopSummary struct {
	Totals         engine.ShopTotals
	GoldPrice      domain.GoldPrice
	OverdueCount   int
	CustomerCount  int
	ActiveDebts    int
	FullyPaidDebts int
}

// Summary values the entire book: outstanding cash plus outstanding gold
// grams at the current daily rate.
func (uc *ReportUseCase) Summary(ctx context.Context) (*ShopSummary, error) {
	customers, err := uc.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := uc.prices.Current(ctx, false)
	if err != nil {
		return nil, err
	}

	summary := &ShopSummary{
		Totals:       engine.Valuation(customers, quote.Price),
		GoldPrice:    quote,
		OverdueCount: len(engine.Overdue(customers, time.Now().UTC())),
	}

	for _, c := range customers {
		if c.Archived {
			continue
		}
		summary.CustomerCount++
		for i := range c.Debts {
			if engine.Remaining(&c.Debts[i]).LessThanOrEqual(domain.PaidEpsilon) {
				summary.FullyPaidDebts++
			} else {
				summary.ActiveDebts++
			}
		}
	}

	return summary, nil
}

// OverdueItems lists every overdue installment across the book.
func (uc *ReportUseCase) OverdueItems(ctx context.Context) ([]engine.OverdueItem, error) {
	customers, err := uc.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return engine.Overdue(customers, time.Now().UTC()), nil
}

// StatementRow is one debt's derived figures on a customer statement.
type StatementRow struct {
	DebtID        string
	Label         string
	Unit          domain.Unit
	PrincipalCash decimal.Decimal
	GoldGrams     decimal.Decimal
	Paid          decimal.Decimal
	Remaining     decimal.Decimal
	PercentPaid   int
	OverdueCount  int
}

// Statement is a customer's full position.
type Statement struct {
	Customer *domain.Customer
	Rows     []StatementRow
}

// CustomerStatement derives per-debt figures for one customer.
func (uc *ReportUseCase) CustomerStatement(ctx context.Context, customerID string) (*Statement, error) {
	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	statement := &Statement{Customer: customer}

	for i := range customer.Debts {
		debt := &customer.Debts[i]

		overdue := 0
		for j := range debt.Installments {
			if debt.Installments[j].OverdueAt(now) {
				overdue++
			}
		}

		statement.Rows = append(statement.Rows, StatementRow{
			DebtID:        debt.ID,
			Label:         debt.Label,
			Unit:          debt.Unit,
			PrincipalCash: debt.PrincipalCash,
			GoldGrams:     debt.GoldGrams,
			Paid:          engine.PaidTotal(debt),
			Remaining:     engine.Remaining(debt),
			PercentPaid:   engine.PercentPaid(debt),
			OverdueCount:  overdue,
		})
	}

	return statement, nil
}

// WriteStatementCSV renders a customer statement as CSV for the external
// report renderer. Amounts are in each debt's native unit.
func (uc *ReportUseCase) WriteStatementCSV(ctx context.Context, customerID string, w io.Writer) error {
	statement, err := uc.CustomerStatement(ctx, customerID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"debt_id", "label", "unit", "principal_egp", "gold_grams", "paid", "remaining", "percent_paid", "overdue"}); err != nil {
		return err
	}

	for _, row := range statement.Rows {
		record := []string{
			row.DebtID,
			row.Label,
			string(row.Unit),
			row.PrincipalCash.StringFixed(2),
			row.GoldGrams.StringFixed(4),
			row.Paid.StringFixed(4),
			row.Remaining.StringFixed(4),
			strconv.Itoa(row.PercentPaid),
			strconv.Itoa(row.OverdueCount),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
