package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit is the value domain a debt is denominated in.
type Unit string

const (
	// UnitCash denominates a debt in Egyptian pounds.
	UnitCash Unit = "CASH"
	// UnitGold denominates a debt in grams of 24k gold.
	UnitGold Unit = "GOLD"
)

// PaidEpsilon is the tolerance used when deciding whether an installment is
// fully paid. Equal division of a principal leaves a remainder at decimal
// precision, so exact comparison would never settle.
var PaidEpsilon = decimal.New(1, -4) // 0.0001

// Debt is a single invoice owed by a customer, amortized into monthly
// installments. Amounts on installments and ledger records are always in the
// debt's own unit: pounds for CASH, grams for GOLD.
type Debt struct {
	ID    string
	Label string
	Unit  Unit

	// PrincipalCash is the amount originally registered, always in pounds,
	// even for gold debts.
	PrincipalCash decimal.Decimal

	// GoldPriceAtRegistration is the pounds-per-gram rate fixed at creation.
	// Immutable once set. Zero for cash debts.
	GoldPriceAtRegistration decimal.Decimal

	// GoldGrams is the principal expressed in grams, derived at creation as
	// PrincipalCash / GoldPriceAtRegistration. Zero for cash debts.
	GoldGrams decimal.Decimal

	TermMonths int
	StartDate  time.Time

	Installments []Installment
	History      []LedgerRecord
	Images       []DebtImage
}

// Validate checks the debt's structural invariants.
func (d *Debt) Validate() error {
	if d.Unit != UnitCash && d.Unit != UnitGold {
		return ErrInvalidUnit
	}

	if d.PrincipalCash.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if d.TermMonths < 1 {
		return ErrInvalidTerm
	}

	if d.Unit == UnitGold {
		if d.GoldPriceAtRegistration.LessThanOrEqual(decimal.Zero) {
			return ErrMissingGoldRate
		}
		if d.GoldGrams.LessThanOrEqual(decimal.Zero) {
			return ErrMissingGoldGrams
		}

		derived := d.PrincipalCash.Div(d.GoldPriceAtRegistration)
		if derived.Sub(d.GoldGrams).Abs().GreaterThan(PaidEpsilon) {
			return ErrGoldGramsMismatch
		}
	}

	return nil
}

// ToNative converts an incoming cash amount to the debt's own unit. For gold
// debts the conversion always uses the registration rate, never a current one.
func (d *Debt) ToNative(cashAmount decimal.Decimal) (decimal.Decimal, error) {
	if d.Unit != UnitGold {
		return cashAmount, nil
	}

	if d.GoldPriceAtRegistration.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrMissingGoldRate
	}

	return cashAmount.Div(d.GoldPriceAtRegistration), nil
}

// FindInstallment returns the index of the installment with the given id, or
// -1 if it is not part of this debt.
func (d *Debt) FindInstallment(id string) int {
	for i := range d.Installments {
		if d.Installments[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy. Engine operations work on clones so callers keep
// an unmodified value on error.
func (d *Debt) Clone() *Debt {
	out := *d

	out.Installments = make([]Installment, len(d.Installments))
	copy(out.Installments, d.Installments)
	for i := range out.Installments {
		if p := d.Installments[i].PaymentDate; p != nil {
			t := *p
			out.Installments[i].PaymentDate = &t
		}
	}

	out.History = make([]LedgerRecord, len(d.History))
	copy(out.History, d.History)

	out.Images = make([]DebtImage, len(d.Images))
	copy(out.Images, d.Images)

	return &out
}

// Installment is one scheduled partial obligation of a debt.
type Installment struct {
	ID      string
	DueDate time.Time

	// Amount is what this installment owes, in the debt's unit.
	Amount decimal.Decimal

	// PaidAmount is the cumulative value applied so far, in the debt's unit.
	PaidAmount decimal.Decimal

	Paid        bool
	PaymentDate *time.Time
}

// Outstanding returns how much is still owed on this installment.
func (i *Installment) Outstanding() decimal.Decimal {
	out := i.Amount.Sub(i.PaidAmount)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// SettledBy reports whether paying the given cumulative amount settles this
// installment, within the payoff tolerance.
func (i *Installment) SettledBy(paidAmount decimal.Decimal) bool {
	return paidAmount.GreaterThanOrEqual(i.Amount.Sub(PaidEpsilon))
}

// OverdueAt reports whether the installment is unpaid past its due date.
func (i *Installment) OverdueAt(now time.Time) bool {
	return !i.Paid && i.DueDate.Before(now)
}

// DebtImage is a reference to an attached document image. Payloads are stored
// by an external collaborator; only the reference round-trips here.
type DebtImage struct {
	ID      string
	Ref     string
	AddedAt time.Time
}
