package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
)

// ToggleInstallment flips an installment's paid state as a manual correction.
//
// Marking paid sets PaidAmount to the full Amount, stamps the payment date
// and appends one PAYMENT record linked to the installment via RelatedID.
// Marking unpaid resets PaidAmount to zero, clears the payment date and
// removes the linked record(s). This is the single bounded exception to the
// ledger's append-only rule, kept so the history never shows a payment for an
// installment that reads unpaid.
func (e *Engine) ToggleInstallment(debt *domain.Debt, installmentID string, now time.Time) (*domain.Debt, error) {
	idx := debt.FindInstallment(installmentID)
	if idx < 0 {
		return nil, domain.ErrInstallmentNotFound
	}

	out := debt.Clone()
	inst := &out.Installments[idx]

	if !inst.Paid {
		inst.Paid = true
		inst.PaidAmount = inst.Amount
		at := now
		inst.PaymentDate = &at

		out.History = append(out.History, domain.LedgerRecord{
			ID:        e.idGen.Generate(),
			At:        now,
			Amount:    inst.Amount,
			Kind:      domain.RecordPayment,
			Note:      fmt.Sprintf("installment %d marked paid", idx+1),
			RelatedID: installmentID,
		})

		return out, nil
	}

	inst.Paid = false
	inst.PaidAmount = decimal.Zero
	inst.PaymentDate = nil

	kept := out.History[:0]
	for _, rec := range out.History {
		if rec.RelatedID != installmentID {
			kept = append(kept, rec)
		}
	}
	out.History = kept

	return out, nil
}
