package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
)

// Remaining returns the debt's outstanding total, in its native unit.
func Remaining(debt *domain.Debt) decimal.Decimal {
	sum := decimal.Zero
	for i := range debt.Installments {
		inst := &debt.Installments[i]
		sum = sum.Add(inst.Amount.Sub(inst.PaidAmount))
	}
	return sum
}

// PaidTotal returns the cumulative value applied to the debt, in its native
// unit.
func PaidTotal(debt *domain.Debt) decimal.Decimal {
	sum := decimal.Zero
	for i := range debt.Installments {
		sum = sum.Add(debt.Installments[i].PaidAmount)
	}
	return sum
}

// PercentPaid returns the payoff percentage, rounded to the nearest integer.
// A debt whose installments are all zero reports 0%.
func PercentPaid(debt *domain.Debt) int {
	paid := PaidTotal(debt)
	total := paid.Add(Remaining(debt))

	if total.IsZero() {
		total = decimal.NewFromInt(1)
	}

	return int(paid.Div(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// OverdueItem is one unpaid installment past its due date, with enough
// context to alert on.
type OverdueItem struct {
	CustomerID   string
	CustomerName string
	DebtID       string
	DebtLabel    string
	Installment  domain.Installment
}

// Overdue lists every overdue installment across the given customers,
// skipping archived ones. Purely derived; nothing is stored.
func Overdue(customers []*domain.Customer, now time.Time) []OverdueItem {
	var items []OverdueItem
	for _, c := range customers {
		if c.Archived {
			continue
		}
		for di := range c.Debts {
			debt := &c.Debts[di]
			for ii := range debt.Installments {
				if debt.Installments[ii].OverdueAt(now) {
					items = append(items, OverdueItem{
						CustomerID:   c.ID,
						CustomerName: c.Name,
						DebtID:       debt.ID,
						DebtLabel:    debt.Label,
						Installment:  debt.Installments[ii],
					})
				}
			}
		}
	}
	return items
}

// ShopTotals is the shop-wide book valuation.
type ShopTotals struct {
	// CashRemaining is the outstanding total across cash debts, in pounds.
	CashRemaining decimal.Decimal
	// GoldGramsRemaining is the outstanding total across gold debts, in grams.
	GoldGramsRemaining decimal.Decimal
	// GoldValue is GoldGramsRemaining priced at the current daily rate.
	GoldValue decimal.Decimal
	// TotalValue is CashRemaining + GoldValue, in pounds.
	TotalValue decimal.Decimal
}

// Valuation computes shop-wide totals across non-archived customers. The
// daily gold price is the caller's current rate, a different rate source
// from any debt's registration rate, and is used only here for display-level
// valuation.
func Valuation(customers []*domain.Customer, dailyGoldPrice decimal.Decimal) ShopTotals {
	totals := ShopTotals{
		CashRemaining:      decimal.Zero,
		GoldGramsRemaining: decimal.Zero,
	}

	for _, c := range customers {
		if c.Archived {
			continue
		}
		for di := range c.Debts {
			debt := &c.Debts[di]
			switch debt.Unit {
			case domain.UnitGold:
				totals.GoldGramsRemaining = totals.GoldGramsRemaining.Add(Remaining(debt))
			default:
				totals.CashRemaining = totals.CashRemaining.Add(Remaining(debt))
			}
		}
	}

	totals.GoldValue = totals.GoldGramsRemaining.Mul(dailyGoldPrice)
	totals.TotalValue = totals.CashRemaining.Add(totals.GoldValue)

	return totals
}
