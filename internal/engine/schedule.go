package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
)

// NewDebtInput carries everything needed to register a debt.
type NewDebtInput struct {
	Label         string
	Unit          domain.Unit
	PrincipalCash decimal.Decimal

	// GoldRate is the pounds-per-gram rate fixed at registration. Required
	// for gold debts, ignored for cash ones.
	GoldRate decimal.Decimal

	TermMonths int
	StartDate  time.Time
}

// NewDebt registers a debt: derives the gram principal for gold debts and
// generates the amortization schedule.
func (e *Engine) NewDebt(input NewDebtInput) (*domain.Debt, error) {
	if err := domain.ValidateAmount(input.PrincipalCash); err != nil {
		return nil, err
	}
	if err := domain.ValidateTermMonths(input.TermMonths); err != nil {
		return nil, err
	}

	debt := &domain.Debt{
		ID:            e.idGen.Generate(),
		Label:         input.Label,
		Unit:          input.Unit,
		PrincipalCash: input.PrincipalCash,
		TermMonths:    input.TermMonths,
		StartDate:     input.StartDate,
	}

	switch input.Unit {
	case domain.UnitCash:
	case domain.UnitGold:
		if input.GoldRate.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrMissingGoldRate
		}
		debt.GoldPriceAtRegistration = input.GoldRate
		debt.GoldGrams = input.PrincipalCash.Div(input.GoldRate)
	default:
		return nil, domain.ErrInvalidUnit
	}

	installments, err := e.GenerateSchedule(input.PrincipalCash, input.TermMonths, input.Unit, debt.GoldGrams, input.StartDate)
	if err != nil {
		return nil, err
	}
	debt.Installments = installments

	return debt, nil
}

// GenerateSchedule builds the ordered installment plan for a new debt. The
// native-unit principal (grams for gold, pounds for cash) divides equally
// over the term; the division remainder is not folded into the last
// installment, so settling relies on the payoff epsilon.
func (e *Engine) GenerateSchedule(principalCash decimal.Decimal, termMonths int, unit domain.Unit, goldGrams decimal.Decimal, start time.Time) ([]domain.Installment, error) {
	if termMonths < 1 {
		return nil, domain.ErrInvalidTerm
	}
	if principalCash.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	native := principalCash
	if unit == domain.UnitGold {
		if goldGrams.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrMissingGoldGrams
		}
		native = goldGrams
	}

	monthly := native.Div(decimal.NewFromInt(int64(termMonths)))

	installments := make([]domain.Installment, 0, termMonths)
	for i := 1; i <= termMonths; i++ {
		installments = append(installments, domain.Installment{
			ID:         e.idGen.Generate(),
			DueDate:    monthsAfter(start, i),
			Amount:     monthly,
			PaidAmount: decimal.Zero,
			Paid:       false,
		})
	}

	return installments, nil
}
