package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind classifies a ledger record.
type RecordKind string

const (
	// RecordPayment marks value applied to the debt's installments.
	RecordPayment RecordKind = "PAYMENT"
	// RecordIncrease marks an increase of the debt's total obligation.
	RecordIncrease RecordKind = "INCREASE"
)

// LedgerRecord is an audit entry for a payment or increase. The history is
// append-only with a single bounded exception: un-toggling an installment
// removes the payment records linked to it via RelatedID, so the ledger stays
// consistent with installment state.
type LedgerRecord struct {
	ID string
	At time.Time

	// Amount is in the debt's native unit: grams for gold debts, pounds for
	// cash debts. For gold payments this is the converted value, not the cash
	// handed over.
	Amount decimal.Decimal

	Kind RecordKind
	Note string

	// RelatedID links the record to the installment it resulted from. Set for
	// manual toggles, empty for allocated payments and increases.
	RelatedID string
}
