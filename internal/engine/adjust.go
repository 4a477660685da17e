package engine

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
)

// ApplyIncrease raises the debt's total obligation by a cash amount. The
// converted value splits evenly across all unpaid installments; if the debt
// is fully paid, one new installment for the whole increase is appended, due
// one month after the current final installment. Debt-level totals move
// accordingly: PrincipalCash by the cash amount, GoldGrams by the converted
// amount for gold debts.
//
// One INCREASE record is appended with the converted amount and the given
// reason.
func (e *Engine) ApplyIncrease(debt *domain.Debt, cashAmount decimal.Decimal, reason string, now time.Time) (*domain.Debt, error) {
	if err := domain.ValidateAmount(cashAmount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrEmptyReason
	}
	if len(debt.Installments) == 0 {
		return nil, domain.ErrNoInstallments
	}

	out := debt.Clone()

	value, err := out.ToNative(cashAmount)
	if err != nil {
		return nil, err
	}

	var unpaid []int
	for i := range out.Installments {
		if !out.Installments[i].Paid {
			unpaid = append(unpaid, i)
		}
	}

	if len(unpaid) > 0 {
		perInstallment := value.Div(decimal.NewFromInt(int64(len(unpaid))))
		for _, i := range unpaid {
			out.Installments[i].Amount = out.Installments[i].Amount.Add(perInstallment)
		}
	} else {
		last := out.Installments[len(out.Installments)-1]
		out.Installments = append(out.Installments, domain.Installment{
			ID:         e.idGen.Generate(),
			DueDate:    monthsAfter(last.DueDate, 1),
			Amount:     value,
			PaidAmount: decimal.Zero,
			Paid:       false,
		})
	}

	out.PrincipalCash = out.PrincipalCash.Add(cashAmount)
	if out.Unit == domain.UnitGold {
		out.GoldGrams = out.GoldGrams.Add(value)
	}

	out.History = append(out.History, domain.LedgerRecord{
		ID:     e.idGen.Generate(),
		At:     now,
		Amount: value,
		Kind:   domain.RecordIncrease,
		Note:   reason,
	})

	return out, nil
}
