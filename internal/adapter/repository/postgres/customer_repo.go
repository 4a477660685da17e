package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/infrastructure/metrics"
	"github.com/moharam/debtbook/internal/usecase"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so aggregate loading
// works inside and outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// CustomerRepository implements usecase.CustomerRepository. A customer is
// loaded as a whole aggregate: the row plus every debt with its installments,
// ledger records and images.
type CustomerRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// WithMetrics enables query counters and timings.
func (r *CustomerRepository) WithMetrics(m *metrics.Metrics) *CustomerRepository {
	r.metrics = m
	return r
}

// observe records one logical repository operation. Not-found outcomes are a
// normal part of the API and do not count as database errors.
func observe(m *metrics.Metrics, operation, table string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.DBQueries.WithLabelValues(operation, table).Inc()
	m.DBDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	if err != nil && !errors.Is(err, domain.ErrCustomerNotFound) && !errors.Is(err, domain.ErrDebtNotFound) {
		m.DBErrors.WithLabelValues(operation).Inc()
	}
}

// Create inserts a new customer with an empty book.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (err error) {
	defer func(start time.Time) { observe(r.metrics, "insert", "customers", start, err) }(time.Now())

	_, err = r.pool.Exec(ctx, `
		INSERT INTO customers (id, name, phone, created_at, archived)
		VALUES ($1, $2, $3, $4, $5)`,
		customer.ID, customer.Name, customer.Phone, customer.CreatedAt, customer.Archived,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID retrieves a customer aggregate by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (customer *domain.Customer, err error) {
	defer func(start time.Time) { observe(r.metrics, "select", "customers", start, err) }(time.Now())

	return loadCustomer(ctx, r.pool, id, false)
}

// GetByIDForUpdate retrieves a customer aggregate inside tx, locking the
// customer row. The row lock serializes all ledger mutations per customer.
func (r *CustomerRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (customer *domain.Customer, err error) {
	defer func(start time.Time) { observe(r.metrics, "select_for_update", "customers", start, err) }(time.Now())

	return loadCustomer(ctx, tx.(*Tx).PgxTx(), id, true)
}

// List retrieves a page of customer aggregates ordered by creation.
func (r *CustomerRepository) List(ctx context.Context, limit, offset int, includeArchived bool) ([]*domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id FROM customers
		WHERE archived = false OR $3
		ORDER BY id
		LIMIT $1 OFFSET $2`,
		limit, offset, includeArchived,
	)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	return r.loadMany(ctx, ids)
}

// ListAll retrieves every customer aggregate, archived included. Reporting
// walks the whole book.
func (r *CustomerRepository) ListAll(ctx context.Context) ([]*domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	return r.loadMany(ctx, ids)
}

// Update rewrites a customer's contact details.
func (r *CustomerRepository) Update(ctx context.Context, id, name, phone string) (err error) {
	defer func(start time.Time) { observe(r.metrics, "update", "customers", start, err) }(time.Now())

	tag, err := r.pool.Exec(ctx, `UPDATE customers SET name = $2, phone = $3 WHERE id = $1`, id, name, phone)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// SetArchived flips the archived flag.
func (r *CustomerRepository) SetArchived(ctx context.Context, id string, archived bool) (err error) {
	defer func(start time.Time) { observe(r.metrics, "update", "customers", start, err) }(time.Now())

	tag, err := r.pool.Exec(ctx, `UPDATE customers SET archived = $2 WHERE id = $1`, id, archived)
	if err != nil {
		return fmt.Errorf("archive customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// Delete removes a customer and, through cascades, the entire book.
func (r *CustomerRepository) Delete(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { observe(r.metrics, "delete", "customers", start, err) }(time.Now())

	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) loadMany(ctx context.Context, ids []string) ([]*domain.Customer, error) {
	customers := make([]*domain.Customer, 0, len(ids))
	for _, id := range ids {
		customer, err := loadCustomer(ctx, r.pool, id, false)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

func loadCustomer(ctx context.Context, q querier, id string, forUpdate bool) (*domain.Customer, error) {
	query := `SELECT id, name, phone, created_at, archived FROM customers WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	customer := &domain.Customer{}
	err := q.QueryRow(ctx, query, id).Scan(
		&customer.ID, &customer.Name, &customer.Phone, &customer.CreatedAt, &customer.Archived,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}

	debts, err := loadDebts(ctx, q, id)
	if err != nil {
		return nil, err
	}
	customer.Debts = debts

	return customer, nil
}

func loadDebts(ctx context.Context, q querier, customerID string) ([]domain.Debt, error) {
	rows, err := q.Query(ctx, `
		SELECT id, label, unit, principal_cash::text, gold_price_at_registration::text,
		       gold_grams::text, term_months, start_date
		FROM debts
		WHERE customer_id = $1
		ORDER BY id`,
		customerID,
	)
	if err != nil {
		return nil, fmt.Errorf("load debts: %w", err)
	}
	defer rows.Close()

	var debts []domain.Debt
	var debtIDs []string
	index := make(map[string]int)

	for rows.Next() {
		var (
			debt      domain.Debt
			principal string
			goldRate  *string
			goldGrams string
		)
		if err := rows.Scan(
			&debt.ID, &debt.Label, &debt.Unit, &principal, &goldRate,
			&goldGrams, &debt.TermMonths, &debt.StartDate,
		); err != nil {
			return nil, fmt.Errorf("scan debt: %w", err)
		}

		if debt.PrincipalCash, err = decimal.NewFromString(principal); err != nil {
			return nil, fmt.Errorf("decode principal: %w", err)
		}
		if goldRate != nil {
			if debt.GoldPriceAtRegistration, err = decimal.NewFromString(*goldRate); err != nil {
				return nil, fmt.Errorf("decode gold rate: %w", err)
			}
		}
		if debt.GoldGrams, err = decimal.NewFromString(goldGrams); err != nil {
			return nil, fmt.Errorf("decode gold grams: %w", err)
		}

		index[debt.ID] = len(debts)
		debtIDs = append(debtIDs, debt.ID)
		debts = append(debts, debt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load debts: %w", err)
	}

	if len(debts) == 0 {
		return nil, nil
	}

	if err := loadInstallments(ctx, q, debtIDs, index, debts); err != nil {
		return nil, err
	}
	if err := loadLedgerRecords(ctx, q, debtIDs, index, debts); err != nil {
		return nil, err
	}
	if err := loadImages(ctx, q, debtIDs, index, debts); err != nil {
		return nil, err
	}

	return debts, nil
}

func loadInstallments(ctx context.Context, q querier, debtIDs []string, index map[string]int, debts []domain.Debt) error {
	rows, err := q.Query(ctx, `
		SELECT debt_id, id, due_date, amount::text, paid_amount::text, paid, payment_date
		FROM installments
		WHERE debt_id = ANY($1)
		ORDER BY debt_id, position`,
		debtIDs,
	)
	if err != nil {
		return fmt.Errorf("load installments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			debtID      string
			inst        domain.Installment
			amount      string
			paidAmount  string
			paymentDate *time.Time
		)
		if err := rows.Scan(&debtID, &inst.ID, &inst.DueDate, &amount, &paidAmount, &inst.Paid, &paymentDate); err != nil {
			return fmt.Errorf("scan installment: %w", err)
		}

		if inst.Amount, err = decimal.NewFromString(amount); err != nil {
			return fmt.Errorf("decode installment amount: %w", err)
		}
		if inst.PaidAmount, err = decimal.NewFromString(paidAmount); err != nil {
			return fmt.Errorf("decode installment paid amount: %w", err)
		}
		inst.PaymentDate = paymentDate

		i := index[debtID]
		debts[i].Installments = append(debts[i].Installments, inst)
	}
	return rows.Err()
}

func loadLedgerRecords(ctx context.Context, q querier, debtIDs []string, index map[string]int, debts []domain.Debt) error {
	rows, err := q.Query(ctx, `
		SELECT debt_id, id, at, amount::text, kind, note, related_id
		FROM ledger_records
		WHERE debt_id = ANY($1)
		ORDER BY debt_id, position`,
		debtIDs,
	)
	if err != nil {
		return fmt.Errorf("load ledger records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			debtID    string
			record    domain.LedgerRecord
			amount    string
			relatedID *string
		)
		if err := rows.Scan(&debtID, &record.ID, &record.At, &amount, &record.Kind, &record.Note, &relatedID); err != nil {
			return fmt.Errorf("scan ledger record: %w", err)
		}

		if record.Amount, err = decimal.NewFromString(amount); err != nil {
			return fmt.Errorf("decode ledger amount: %w", err)
		}
		if relatedID != nil {
			record.RelatedID = *relatedID
		}

		i := index[debtID]
		debts[i].History = append(debts[i].History, record)
	}
	return rows.Err()
}

func loadImages(ctx context.Context, q querier, debtIDs []string, index map[string]int, debts []domain.Debt) error {
	rows, err := q.Query(ctx, `
		SELECT debt_id, id, ref, added_at
		FROM debt_images
		WHERE debt_id = ANY($1)
		ORDER BY debt_id, added_at, id`,
		debtIDs,
	)
	if err != nil {
		return fmt.Errorf("load debt images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			debtID string
			image  domain.DebtImage
		)
		if err := rows.Scan(&debtID, &image.ID, &image.Ref, &image.AddedAt); err != nil {
			return fmt.Errorf("scan debt image: %w", err)
		}

		i := index[debtID]
		debts[i].Images = append(debts[i].Images, image)
	}
	return rows.Err()
}
