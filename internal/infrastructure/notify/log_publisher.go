package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/moharam/debtbook/internal/domain"
)

// LogPublisher writes change events to the log. It wraps an inner publisher
// so events are both logged and fanned out.
type LogPublisher struct {
	logger zerolog.Logger
	next   *Broker
}

// NewLogPublisher creates a new LogPublisher. next may be nil.
func NewLogPublisher(logger zerolog.Logger, next *Broker) *LogPublisher {
	return &LogPublisher{logger: logger, next: next}
}

// Publish logs the event and forwards it to the wrapped broker.
func (p *LogPublisher) Publish(ctx context.Context, event domain.ChangeEvent) error {
	p.logger.Info().
		Str("event_id", event.ID).
		Str("event_type", event.Type).
		Str("customer_id", event.CustomerID).
		Str("debt_id", event.DebtID).
		Time("occurred_at", event.OccurredAt).
		Msg("change event")

	if p.next == nil {
		return nil
	}
	return p.next.Publish(ctx, event)
}
