package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrInvalidLabel        = errors.New("invalid debt label")
	ErrAmountTooLarge      = errors.New("amount exceeds maximum allowed")
	ErrTermTooLong         = errors.New("term exceeds maximum allowed")
)

// Validation constants
const (
	MaxNameLength  = 255
	MaxLabelLength = 255
	MaxPhoneLength = 20
	MaxAmount      = "1000000000" // 1 billion EGP
	MaxTermMonths  = 360
)

// Phone numbers as the shop records them: optional leading +, then digits,
// spaces or dashes.
var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-]{4,}$`)

// ValidateCustomerName validates a customer display name.
func ValidateCustomerName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidCustomerName)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidCustomerName, MaxNameLength)
	}

	return nil
}

// ValidatePhone validates a contact number.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return fmt.Errorf("%w: phone cannot be empty", ErrInvalidPhone)
	}

	if len(phone) > MaxPhoneLength {
		return fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidPhone, MaxPhoneLength)
	}

	if !phoneRegex.MatchString(phone) {
		return ErrInvalidPhone
	}

	return nil
}

// ValidateLabel validates a debt's human label.
func ValidateLabel(label string) error {
	if len(strings.TrimSpace(label)) == 0 {
		return fmt.Errorf("%w: label cannot be empty", ErrInvalidLabel)
	}

	if len(label) > MaxLabelLength {
		return fmt.Errorf("%w: label exceeds %d characters", ErrInvalidLabel, MaxLabelLength)
	}

	return nil
}

// ValidateAmount validates a cash amount arriving at the engine boundary.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxAmount)
	}

	return nil
}

// ValidateTermMonths validates an amortization term.
func ValidateTermMonths(months int) error {
	if months < 1 {
		return ErrInvalidTerm
	}

	if months > MaxTermMonths {
		return fmt.Errorf("%w: maximum term is %d months", ErrTermTooLong, MaxTermMonths)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
