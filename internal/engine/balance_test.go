package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moharam/debtbook/internal/domain"
)

func TestConservation_AcrossOperationSequence(t *testing.T) {
	// paid + remaining equals the installment sum before and after any mix of
	// payments, increases and toggles (increases raise the sum by exactly the
	// converted amount).
	e := newTestEngine()
	debt := cashDebt("100", "100", "100")

	sum := installmentSum(debt)
	require.True(t, sum.Equal(d("300")))

	debt, err := e.ApplyPayment(debt, d("150"), testStart)
	require.NoError(t, err)
	assert.True(t, installmentSum(debt).Equal(d("300")))

	debt, err = e.ApplyIncrease(debt, d("60"), "more goods", testStart)
	require.NoError(t, err)
	assert.True(t, installmentSum(debt).Equal(d("360")))

	debt, err = e.ToggleInstallment(debt, "inst-3", testStart)
	require.NoError(t, err)
	assert.True(t, installmentSum(debt).Equal(d("360")))

	debt, err = e.ToggleInstallment(debt, "inst-3", testStart)
	require.NoError(t, err)
	assert.True(t, installmentSum(debt).Equal(d("360")))
}

func TestMonotonicPayoff(t *testing.T) {
	e := newTestEngine()
	debt := cashDebt("100", "100", "100")

	prevPaid := PaidTotal(debt)
	prevRemaining := Remaining(debt)

	for _, amount := range []string{"30", "70", "45", "200"} {
		next, err := e.ApplyPayment(debt, d(amount), testStart)
		require.NoError(t, err)

		assert.True(t, PaidTotal(next).GreaterThanOrEqual(prevPaid), "paid never decreases")
		assert.True(t, Remaining(next).LessThanOrEqual(prevRemaining), "remaining never increases")

		prevPaid = PaidTotal(next)
		prevRemaining = Remaining(next)
		debt = next
	}
}

func TestPercentPaid(t *testing.T) {
	tests := []struct {
		name   string
		debt   func() *domain.Debt
		expect int
	}{
		{
			name:   "untouched debt",
			debt:   func() *domain.Debt { return cashDebt("100", "100") },
			expect: 0,
		},
		{
			name: "half paid",
			debt: func() *domain.Debt {
				debt := cashDebt("100", "100")
				debt.Installments[0].Paid = true
				debt.Installments[0].PaidAmount = d("100")
				return debt
			},
			expect: 50,
		},
		{
			name: "fully paid",
			debt: func() *domain.Debt {
				debt := cashDebt("100")
				debt.Installments[0].Paid = true
				debt.Installments[0].PaidAmount = d("100")
				return debt
			},
			expect: 100,
		},
		{
			name: "rounds to nearest",
			debt: func() *domain.Debt {
				debt := cashDebt("100", "100", "100")
				debt.Installments[0].PaidAmount = d("100")
				debt.Installments[0].Paid = true
				return debt
			},
			expect: 33,
		},
		{
			// The denominator guard only matters when paid and remaining are
			// both exactly zero; the fallback of 1 yields 0%, not 100%.
			name:   "all-zero debt",
			debt:   func() *domain.Debt { return cashDebt("0") },
			expect: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, PercentPaid(tt.debt()))
		})
	}
}

func TestAggregation_Idempotent(t *testing.T) {
	e := newTestEngine()
	debt := cashDebt("100", "100", "100")
	debt, err := e.ApplyPayment(debt, d("130"), testStart)
	require.NoError(t, err)

	r1, r2 := Remaining(debt), Remaining(debt)
	p1, p2 := PaidTotal(debt), PaidTotal(debt)

	assert.True(t, r1.Equal(r2))
	assert.True(t, p1.Equal(p2))
	assert.Equal(t, PercentPaid(debt), PercentPaid(debt))
}

func TestOverdue(t *testing.T) {
	now := testStart.AddDate(0, 2, 10) // past the first two due dates

	debt := cashDebt("100", "100", "100")
	debt.Installments[0].Paid = true
	debt.Installments[0].PaidAmount = d("100")

	archived := &domain.Customer{
		ID:       "c-2",
		Name:     "archived",
		Archived: true,
		Debts:    []domain.Debt{*cashDebt("100")},
	}

	customers := []*domain.Customer{
		{ID: "c-1", Name: "Ahmed", Debts: []domain.Debt{*debt}},
		archived,
	}

	items := Overdue(customers, now)

	// Only the unpaid second installment qualifies: the first is paid, the
	// third is not yet due, the archived customer is skipped.
	require.Len(t, items, 1)
	assert.Equal(t, "c-1", items[0].CustomerID)
	assert.Equal(t, "inst-2", items[0].Installment.ID)
}

func TestOverdue_DueDateNotPassed(t *testing.T) {
	debt := cashDebt("100")
	customers := []*domain.Customer{{ID: "c", Debts: []domain.Debt{*debt}}}

	items := Overdue(customers, testStart) // before any due date
	assert.Empty(t, items)
}

func TestValuation_CrossUnit(t *testing.T) {
	cash := cashDebt("100", "100") // 200 EGP remaining
	gold := goldDebt("4000", "1", "1")
	gold.Installments[0].Paid = true
	gold.Installments[0].PaidAmount = d("1") // 1 g remaining

	customers := []*domain.Customer{
		{ID: "c-1", Debts: []domain.Debt{*cash, *gold}},
		{ID: "c-2", Archived: true, Debts: []domain.Debt{*cashDebt("999")}},
	}

	// Valuation uses the current daily rate, not the 4000 registration rate.
	totals := Valuation(customers, d("5000"))

	assert.True(t, totals.CashRemaining.Equal(d("200")))
	assert.True(t, totals.GoldGramsRemaining.Equal(d("1")))
	assert.True(t, totals.GoldValue.Equal(d("5000")))
	assert.True(t, totals.TotalValue.Equal(d("5200")))
}

func TestValuation_EmptyBook(t *testing.T) {
	totals := Valuation(nil, d("5000"))
	assert.True(t, totals.TotalValue.IsZero())
}

func TestGoldRoundTrip(t *testing.T) {
	// Register 12000 EGP at 4000 EGP/g: 3 grams. Pay 4000: exactly 1 gram
	// applies and the remaining grams times the rate recovers the remaining
	// cash value.
	e := newTestEngine()

	debt, err := e.NewDebt(NewDebtInput{
		Label:         "necklace",
		Unit:          domain.UnitGold,
		PrincipalCash: d("12000"),
		GoldRate:      d("4000"),
		TermMonths:    3,
		StartDate:     testStart,
	})
	require.NoError(t, err)
	require.True(t, debt.GoldGrams.Equal(d("3")))

	debt, err = e.ApplyPayment(debt, d("4000"), testStart.Add(time.Hour))
	require.NoError(t, err)

	assert.True(t, PaidTotal(debt).Equal(d("1")))
	assert.True(t, Remaining(debt).Equal(d("2")))
	assert.True(t, Remaining(debt).Mul(debt.GoldPriceAtRegistration).Equal(d("8000")))

	var zero decimal.Decimal
	assert.False(t, debt.GoldPriceAtRegistration.Equal(zero))
}
