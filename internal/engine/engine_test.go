package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
)

// seqIDGen hands out deterministic ids for tests.
type seqIDGen struct {
	n int
}

func (g *seqIDGen) Generate() string {
	g.n++
	return fmt.Sprintf("id-%03d", g.n)
}

func newTestEngine() *Engine {
	return New(&seqIDGen{})
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

var testStart = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

// cashDebt builds a CASH debt with one installment per given amount.
func cashDebt(amounts ...string) *domain.Debt {
	debt := &domain.Debt{
		ID:            "debt-1",
		Label:         "test debt",
		Unit:          domain.UnitCash,
		PrincipalCash: decimal.Zero,
		TermMonths:    len(amounts),
		StartDate:     testStart,
	}

	for i, a := range amounts {
		amount := d(a)
		debt.PrincipalCash = debt.PrincipalCash.Add(amount)
		debt.Installments = append(debt.Installments, domain.Installment{
			ID:         fmt.Sprintf("inst-%d", i+1),
			DueDate:    testStart.AddDate(0, i+1, 0),
			Amount:     amount,
			PaidAmount: decimal.Zero,
		})
	}

	return debt
}

// goldDebt builds a GOLD debt at the given registration rate with one
// installment per given gram amount.
func goldDebt(rate string, gramAmounts ...string) *domain.Debt {
	debt := &domain.Debt{
		ID:                      "debt-g1",
		Label:                   "gold debt",
		Unit:                    domain.UnitGold,
		GoldPriceAtRegistration: d(rate),
		GoldGrams:               decimal.Zero,
		TermMonths:              len(gramAmounts),
		StartDate:               testStart,
	}

	for i, a := range gramAmounts {
		amount := d(a)
		debt.GoldGrams = debt.GoldGrams.Add(amount)
		debt.Installments = append(debt.Installments, domain.Installment{
			ID:         fmt.Sprintf("inst-g%d", i+1),
			DueDate:    testStart.AddDate(0, i+1, 0),
			Amount:     amount,
			PaidAmount: decimal.Zero,
		})
	}

	debt.PrincipalCash = debt.GoldGrams.Mul(debt.GoldPriceAtRegistration)
	return debt
}

// installmentSum is paid + remaining: the conserved quantity.
func installmentSum(debt *domain.Debt) decimal.Decimal {
	return PaidTotal(debt).Add(Remaining(debt))
}
