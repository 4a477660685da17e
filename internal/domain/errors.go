package domain

import "errors"

var (
	// Input errors
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidTerm      = errors.New("term must be at least one month")
	ErrInvalidUnit      = errors.New("unit must be CASH or GOLD")
	ErrMissingGoldRate  = errors.New("gold debt requires a registration rate")
	ErrMissingGoldGrams = errors.New("gold debt requires a gram amount")
	ErrEmptyReason      = errors.New("increase requires a reason")

	// State errors
	ErrGoldGramsMismatch   = errors.New("gold grams do not match principal at the registration rate")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrDebtNotFound        = errors.New("debt not found")
	ErrInstallmentNotFound = errors.New("installment not found")
	ErrNoInstallments      = errors.New("debt has no installments")
)
