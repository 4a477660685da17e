package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/infrastructure/metrics"
	"github.com/moharam/debtbook/internal/usecase"
)

// DebtRepository implements usecase.DebtRepository. Writes happen whole-debt:
// engine operations produce a new debt value and Replace swaps the stored
// children for the new ones inside the caller's transaction.
type DebtRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewDebtRepository creates a new DebtRepository.
func NewDebtRepository(pool *pgxpool.Pool) *DebtRepository {
	return &DebtRepository{pool: pool}
}

// WithMetrics enables query counters and timings.
func (r *DebtRepository) WithMetrics(m *metrics.Metrics) *DebtRepository {
	r.metrics = m
	return r
}

// Create inserts a debt and its generated schedule.
func (r *DebtRepository) Create(ctx context.Context, tx usecase.Transaction, customerID string, debt *domain.Debt) (err error) {
	defer func(start time.Time) { observe(r.metrics, "insert", "debts", start, err) }(time.Now())

	q := tx.(*Tx).PgxTx()

	_, err = q.Exec(ctx, `
		INSERT INTO debts (id, customer_id, label, unit, principal_cash,
		                   gold_price_at_registration, gold_grams, term_months, start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		debt.ID, customerID, debt.Label, string(debt.Unit), debt.PrincipalCash.String(),
		nullableDecimal(debt.GoldPriceAtRegistration), debt.GoldGrams.String(),
		debt.TermMonths, debt.StartDate,
	)
	if err != nil {
		return fmt.Errorf("insert debt: %w", err)
	}

	return insertChildren(ctx, q, debt)
}

// Replace persists a mutated debt value: the debt row is updated and all
// children are deleted and reinserted in order.
func (r *DebtRepository) Replace(ctx context.Context, tx usecase.Transaction, customerID string, debt *domain.Debt) (err error) {
	defer func(start time.Time) { observe(r.metrics, "replace", "debts", start, err) }(time.Now())

	q := tx.(*Tx).PgxTx()

	tag, err := q.Exec(ctx, `
		UPDATE debts
		SET label = $3, principal_cash = $4, gold_grams = $5
		WHERE id = $1 AND customer_id = $2`,
		debt.ID, customerID, debt.Label, debt.PrincipalCash.String(), debt.GoldGrams.String(),
	)
	if err != nil {
		return fmt.Errorf("update debt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotFound
	}

	if _, err := q.Exec(ctx, `DELETE FROM installments WHERE debt_id = $1`, debt.ID); err != nil {
		return fmt.Errorf("clear installments: %w", err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM ledger_records WHERE debt_id = $1`, debt.ID); err != nil {
		return fmt.Errorf("clear ledger records: %w", err)
	}

	return insertChildren(ctx, q, debt)
}

// Delete removes a debt and, through cascades, its children.
func (r *DebtRepository) Delete(ctx context.Context, tx usecase.Transaction, debtID string) (err error) {
	defer func(start time.Time) { observe(r.metrics, "delete", "debts", start, err) }(time.Now())

	q := tx.(*Tx).PgxTx()

	tag, err := q.Exec(ctx, `DELETE FROM debts WHERE id = $1`, debtID)
	if err != nil {
		return fmt.Errorf("delete debt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotFound
	}
	return nil
}

// AddImage attaches an image reference to a debt.
func (r *DebtRepository) AddImage(ctx context.Context, tx usecase.Transaction, debtID string, image domain.DebtImage) (err error) {
	defer func(start time.Time) { observe(r.metrics, "insert", "debt_images", start, err) }(time.Now())

	q := tx.(*Tx).PgxTx()

	_, err = q.Exec(ctx, `
		INSERT INTO debt_images (id, debt_id, ref, added_at)
		VALUES ($1, $2, $3, $4)`,
		image.ID, debtID, image.Ref, image.AddedAt,
	)
	if err != nil {
		return fmt.Errorf("insert debt image: %w", err)
	}
	return nil
}

func insertChildren(ctx context.Context, q querier, debt *domain.Debt) error {
	for i, inst := range debt.Installments {
		_, err := q.Exec(ctx, `
			INSERT INTO installments (id, debt_id, position, due_date, amount, paid_amount, paid, payment_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			inst.ID, debt.ID, i, inst.DueDate, inst.Amount.String(),
			inst.PaidAmount.String(), inst.Paid, inst.PaymentDate,
		)
		if err != nil {
			return fmt.Errorf("insert installment: %w", err)
		}
	}

	for i, record := range debt.History {
		_, err := q.Exec(ctx, `
			INSERT INTO ledger_records (id, debt_id, position, at, amount, kind, note, related_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			record.ID, debt.ID, i, record.At, record.Amount.String(),
			string(record.Kind), record.Note, nullableString(record.RelatedID),
		)
		if err != nil {
			return fmt.Errorf("insert ledger record: %w", err)
		}
	}

	return nil
}

func nullableDecimal(d decimal.Decimal) *string {
	if d.IsZero() {
		return nil
	}
	s := d.String()
	return &s
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
