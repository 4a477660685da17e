package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateCustomerName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{"valid name", "Ahmed Hassan", false},
		{"arabic name", "أحمد حسن", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 256), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCustomerName(tt.input)
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{"local number", "01012345678", false},
		{"international", "+20 101 234 5678", false},
		{"with dashes", "010-1234-5678", false},
		{"empty", "", true},
		{"letters", "not a phone", true},
		{"too short", "0101", true},
		{"too long", "+201234567890123456789", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.input)
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		expectError bool
	}{
		{"positive", "100.50", false},
		{"small", "0.01", false},
		{"zero", "0", true},
		{"negative", "-10", true},
		{"above cap", "1000000001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := decimal.NewFromString(tt.amount)
			if err != nil {
				t.Fatalf("bad decimal: %v", err)
			}

			err = ValidateAmount(v)
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateTermMonths(t *testing.T) {
	tests := []struct {
		name        string
		months      int
		expectError bool
	}{
		{"one month", 1, false},
		{"typical", 12, false},
		{"max", 360, false},
		{"zero", 0, true},
		{"negative", -3, true},
		{"above max", 361, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTermMonths(tt.months)
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name                    string
		limit, offset           int
		wantLimit, wantOffset   int
	}{
		{"defaults applied", 0, 0, 50, 0},
		{"negative offset clamped", 10, -5, 10, 0},
		{"limit capped", 5000, 20, 1000, 20},
		{"passthrough", 25, 100, 25, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := ValidatePagination(tt.limit, tt.offset)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("got (%d, %d), want (%d, %d)", limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}
