package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/engine"
	"github.com/moharam/debtbook/internal/infrastructure/metrics"
)

// DebtUseCase orchestrates engine operations against the store: it locks the
// owning customer, runs the pure engine computation, persists the resulting
// value copy-on-write and publishes a change event after commit.
type DebtUseCase struct {
	txManager    TransactionManager
	customerRepo CustomerRepository
	debtRepo     DebtRepository
	engine       *engine.Engine
	prices       GoldPriceSource
	publisher    ChangePublisher
	idGen        IDGenerator
	metrics      *metrics.Metrics
	retryer      TxRetryer
}

// WithRetryer makes transactional mutations retry when the database aborts
// them, for example on deadlock between two clerks editing the same customer.
func (uc *DebtUseCase) WithRetryer(r TxRetryer) *DebtUseCase {
	uc.retryer = r
	return uc
}

// NewDebtUseCase creates a new DebtUseCase. metrics may be nil.
func NewDebtUseCase(
	txManager TransactionManager,
	customerRepo CustomerRepository,
	debtRepo DebtRepository,
	eng *engine.Engine,
	prices GoldPriceSource,
	publisher ChangePublisher,
	idGen IDGenerator,
	m *metrics.Metrics,
) *DebtUseCase {
	return &DebtUseCase{
		txManager:    txManager,
		customerRepo: customerRepo,
		debtRepo:     debtRepo,
		engine:       eng,
		prices:       prices,
		publisher:    publisher,
		idGen:        idGen,
		metrics:      m,
	}
}

// CreateDebtInput represents input for registering a debt.
type CreateDebtInput struct {
	Label         string
	Unit          domain.Unit
	PrincipalCash decimal.Decimal

	// GoldRate fixes the registration rate for gold debts. When zero, the
	// current daily rate is captured from the price source instead.
	GoldRate decimal.Decimal

	TermMonths int
	StartDate  *time.Time
}

// CreateDebt registers a debt under a customer and generates its schedule.
// For gold debts without an explicit rate the daily price is consulted once,
// here; the captured rate is immutable afterwards.
func (uc *DebtUseCase) CreateDebt(ctx context.Context, customerID string, input CreateDebtInput) (*domain.Debt, error) {
	if err := domain.ValidateLabel(input.Label); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	start := now
	if input.StartDate != nil {
		start = input.StartDate.UTC()
	}

	rate := input.GoldRate
	if input.Unit == domain.UnitGold && rate.LessThanOrEqual(decimal.Zero) {
		quote, err := uc.prices.Current(ctx, false)
		if err != nil {
			return nil, err
		}
		rate = quote.Price
	}

	debt, err := uc.engine.NewDebt(engine.NewDebtInput{
		Label:         input.Label,
		Unit:          input.Unit,
		PrincipalCash: input.PrincipalCash,
		GoldRate:      rate,
		TermMonths:    input.TermMonths,
		StartDate:     start,
	})
	if err != nil {
		return nil, err
	}

	err = uc.inTx(ctx, func(tx Transaction) error {
		if _, err := uc.customerRepo.GetByIDForUpdate(ctx, tx, customerID); err != nil {
			return err
		}
		return uc.debtRepo.Create(ctx, tx, customerID, debt)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DebtsCreated.WithLabelValues(string(debt.Unit)).Inc()
	}
	uc.publish(ctx, domain.EventTypeDebtCreated, customerID, debt.ID, nil)

	return debt, nil
}

// GetDebt retrieves one debt from a customer's book.
func (uc *DebtUseCase) GetDebt(ctx context.Context, customerID, debtID string) (*domain.Debt, error) {
	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	idx := customer.FindDebt(debtID)
	if idx < 0 {
		return nil, domain.ErrDebtNotFound
	}

	return &customer.Debts[idx], nil
}

// RecordPayment applies an incoming cash payment to a debt. The engine drops
// any value beyond the outstanding total; that excess is logged here so the
// loss is at least visible in operations.
func (uc *DebtUseCase) RecordPayment(ctx context.Context, customerID, debtID string, cashAmount decimal.Decimal) (*domain.Debt, error) {
	now := time.Now().UTC()

	updated, err := uc.mutateDebt(ctx, customerID, debtID, func(debt *domain.Debt) (*domain.Debt, error) {
		next, err := uc.engine.ApplyPayment(debt, cashAmount, now)
		if err != nil {
			return nil, err
		}

		applied := engine.Remaining(debt).Sub(engine.Remaining(next))
		value, _ := debt.ToNative(cashAmount)
		if excess := value.Sub(applied); excess.GreaterThan(domain.PaidEpsilon) {
			log.Warn().
				Str("debt_id", debtID).
				Str("excess", excess.String()).
				Msg("payment exceeds outstanding total; excess dropped")
		}

		return next, nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsRecorded.WithLabelValues(string(updated.Unit)).Inc()
	}
	uc.publish(ctx, domain.EventTypePaymentRecorded, customerID, debtID, map[string]any{
		"cash_amount": cashAmount.String(),
	})

	return updated, nil
}

// IncreaseDebt raises a debt's obligation, distributing the increase across
// unpaid installments or appending a new one.
func (uc *DebtUseCase) IncreaseDebt(ctx context.Context, customerID, debtID string, cashAmount decimal.Decimal, reason string) (*domain.Debt, error) {
	now := time.Now().UTC()

	updated, err := uc.mutateDebt(ctx, customerID, debtID, func(debt *domain.Debt) (*domain.Debt, error) {
		return uc.engine.ApplyIncrease(debt, cashAmount, reason, now)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncreasesRecorded.WithLabelValues(string(updated.Unit)).Inc()
	}
	uc.publish(ctx, domain.EventTypeDebtIncreased, customerID, debtID, map[string]any{
		"cash_amount": cashAmount.String(),
		"reason":      reason,
	})

	return updated, nil
}

// ToggleInstallment flips an installment's paid state as a manual correction.
func (uc *DebtUseCase) ToggleInstallment(ctx context.Context, customerID, debtID, installmentID string) (*domain.Debt, error) {
	now := time.Now().UTC()

	updated, err := uc.mutateDebt(ctx, customerID, debtID, func(debt *domain.Debt) (*domain.Debt, error) {
		return uc.engine.ToggleInstallment(debt, installmentID, now)
	})
	if err != nil {
		return nil, err
	}

	idx := updated.FindInstallment(installmentID)
	if uc.metrics != nil {
		uc.metrics.InstallmentToggles.Inc()
	}
	uc.publish(ctx, domain.EventTypeInstallmentToggled, customerID, debtID, map[string]any{
		"installment_id": installmentID,
		"paid":           idx >= 0 && updated.Installments[idx].Paid,
	})

	return updated, nil
}

// AttachImage records a reference to an attached document image. Payload
// storage belongs to the external collaborator.
func (uc *DebtUseCase) AttachImage(ctx context.Context, customerID, debtID, ref string) (*domain.DebtImage, error) {
	image := domain.DebtImage{
		ID:      uc.idGen.Generate(),
		Ref:     ref,
		AddedAt: time.Now().UTC(),
	}

	err := uc.inTx(ctx, func(tx Transaction) error {
		customer, err := uc.customerRepo.GetByIDForUpdate(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if customer.FindDebt(debtID) < 0 {
			return domain.ErrDebtNotFound
		}
		return uc.debtRepo.AddImage(ctx, tx, debtID, image)
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, domain.EventTypeImageAttached, customerID, debtID, nil)

	return &image, nil
}

// DeleteDebt removes a debt and everything it owns. This is the only way
// installments and ledger records are ever deleted wholesale.
func (uc *DebtUseCase) DeleteDebt(ctx context.Context, customerID, debtID string) error {
	err := uc.inTx(ctx, func(tx Transaction) error {
		customer, err := uc.customerRepo.GetByIDForUpdate(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if customer.FindDebt(debtID) < 0 {
			return domain.ErrDebtNotFound
		}
		return uc.debtRepo.Delete(ctx, tx, debtID)
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, domain.EventTypeDebtDeleted, customerID, debtID, nil)

	return nil
}

// mutateDebt runs one engine operation under the customer's row lock and
// persists the result copy-on-write.
func (uc *DebtUseCase) mutateDebt(ctx context.Context, customerID, debtID string, op func(*domain.Debt) (*domain.Debt, error)) (*domain.Debt, error) {
	var updated *domain.Debt

	err := uc.inTx(ctx, func(tx Transaction) error {
		customer, err := uc.customerRepo.GetByIDForUpdate(ctx, tx, customerID)
		if err != nil {
			return err
		}

		idx := customer.FindDebt(debtID)
		if idx < 0 {
			return domain.ErrDebtNotFound
		}

		updated, err = op(&customer.Debts[idx])
		if err != nil {
			return err
		}

		return uc.debtRepo.Replace(ctx, tx, customerID, updated)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// inTx runs fn inside a transaction, retrying the whole unit when a retryer
// is configured. Retries re-read customer state, so fn must be restartable.
func (uc *DebtUseCase) inTx(ctx context.Context, fn func(tx Transaction) error) error {
	run := func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := fn(tx); err != nil {
			return err
		}

		return tx.Commit(ctx)
	}

	if uc.retryer != nil {
		return uc.retryer.Retry(ctx, run)
	}
	return run()
}

func (uc *DebtUseCase) publish(ctx context.Context, eventType, customerID, debtID string, payload map[string]any) {
	if uc.publisher == nil {
		return
	}

	// Best effort; change notification must never fail the operation.
	_ = uc.publisher.Publish(ctx, domain.ChangeEvent{
		ID:         uc.idGen.Generate(),
		Type:       eventType,
		CustomerID: customerID,
		DebtID:     debtID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	})
}
