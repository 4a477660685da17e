package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
)

func TestCreateCustomerRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateCustomerRequest{
		Name:  "Ahmed Hassan",
		Phone: "01012345678",
	}

	got := req.ToUseCaseInput()
	if got.Name != "Ahmed Hassan" || got.Phone != "01012345678" {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
}

func TestCreateDebtRequest_ToUseCaseInput(t *testing.T) {
	start := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	req := &CreateDebtRequest{
		Label:         "gold loan",
		Unit:          "GOLD",
		PrincipalCash: decimal.RequireFromString("12000"),
		GoldRate:      decimal.RequireFromString("4000"),
		TermMonths:    3,
		StartDate:     &start,
	}

	got := req.ToUseCaseInput()

	if got.Unit != domain.UnitGold {
		t.Fatalf("expected GOLD unit, got %s", got.Unit)
	}
	if !got.PrincipalCash.Equal(decimal.NewFromInt(12000)) {
		t.Fatalf("expected principal 12000, got %s", got.PrincipalCash)
	}
	if !got.GoldRate.Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("expected rate 4000, got %s", got.GoldRate)
	}
	if got.StartDate == nil || !got.StartDate.Equal(start) {
		t.Fatalf("expected start date to propagate, got %v", got.StartDate)
	}
}

func TestCreateDebtRequest_UnknownUnitPassesThrough(t *testing.T) {
	// Unit validation belongs to the engine; the DTO converts verbatim.
	req := &CreateDebtRequest{Unit: "SILVER"}
	if got := req.ToUseCaseInput(); got.Unit != domain.Unit("SILVER") {
		t.Fatalf("expected verbatim unit, got %s", got.Unit)
	}
}
