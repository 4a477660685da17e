package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
)

// ApplyPayment allocates an incoming cash payment across the debt's
// installments, oldest first. For gold debts the cash converts to grams at
// the registration rate before allocation. Partially covered installments
// stay unpaid with their cumulative PaidAmount raised; an installment settles
// once PaidAmount reaches its Amount within the payoff epsilon.
//
// Any value left over after every installment is settled is dropped, not
// carried forward or refunded. That matches the shop's long-standing book
// behavior; callers who care can compare Remaining before and after.
//
// Exactly one PAYMENT record is appended, carrying the converted value and a
// note with the original cash figure.
func (e *Engine) ApplyPayment(debt *domain.Debt, cashAmount decimal.Decimal, now time.Time) (*domain.Debt, error) {
	if err := domain.ValidateAmount(cashAmount); err != nil {
		return nil, err
	}
	if len(debt.Installments) == 0 {
		return nil, domain.ErrNoInstallments
	}

	out := debt.Clone()

	value, err := out.ToNative(cashAmount)
	if err != nil {
		return nil, err
	}

	remaining := value
	for i := range out.Installments {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		inst := &out.Installments[i]
		if inst.Paid {
			continue
		}

		portion := decimal.Min(remaining, inst.Outstanding())
		inst.PaidAmount = inst.PaidAmount.Add(portion)
		remaining = remaining.Sub(portion)

		inst.Paid = inst.SettledBy(inst.PaidAmount)
		at := now
		inst.PaymentDate = &at
	}

	note := fmt.Sprintf("cash payment of %s EGP", cashAmount.String())
	if out.Unit == domain.UnitGold {
		note += fmt.Sprintf(" (%s g at registration rate %s)", value.StringFixed(2), out.GoldPriceAtRegistration.String())
	}

	out.History = append(out.History, domain.LedgerRecord{
		ID:     e.idGen.Generate(),
		At:     now,
		Amount: value,
		Kind:   domain.RecordPayment,
		Note:   note,
	})

	return out, nil
}
