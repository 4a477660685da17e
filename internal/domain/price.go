package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoldPrice is a daily pounds-per-gram quote from the price collaborator.
// This is the display-level rate: it values the shop's outstanding gold book
// and seeds new gold registrations, but it never converts payments on an
// existing debt. Those always use the debt's own registration rate.
type GoldPrice struct {
	Price     decimal.Decimal
	SourceURL string
	FetchedAt time.Time
	FromCache bool
}
