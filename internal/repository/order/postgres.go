package order

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fsj-lavagens/internal/domain"
)

const orderColumns = `
id::text, order_number, plate_expression, COALESCE(driver, ''), operation_label,
wash_date::text, COALESCE(start_time, ''), COALESCE(end_time, ''), status,
COALESCE(notes, ''), created_by, COALESCE(photo_reference, ''),
COALESCE(supplier_id::text, ''), amount_cents, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Insert(ctx context.Context, o domain.WashOrder) (*domain.WashOrder, error) {
	const q = `
INSERT INTO wash_orders (
    order_number, plate_expression, driver, operation_label, wash_date,
    start_time, end_time, status, notes, created_by, photo_reference,
    supplier_id, amount_cents
) VALUES ($1, $2, $3, $4, $5::date, NULLIF($6, ''), NULLIF($7, ''), $8, NULLIF($9, ''), $10, NULLIF($11, ''), NULLIF($12, '')::uuid, $13)
RETURNING ` + orderColumns
	res, err := r.scan(r.pool.QueryRow(ctx, q,
		o.OrderNumber,
		o.PlateExpression,
		o.Driver,
		o.OperationLabel,
		o.Date,
		o.StartTime,
		o.EndTime,
		o.Status,
		o.Notes,
		o.CreatedBy,
		o.PhotoReference,
		o.SupplierID,
		o.AmountCents,
	))
	if err != nil {
		r.logger.Printf("order repo: insert number=%s error=%v", o.OrderNumber, err)
		return nil, err
	}
	r.logger.Printf("order repo: inserted number=%s id=%s", res.OrderNumber, res.ID)
	return res, nil
}

func (r *postgresRepo) CountByDate(ctx context.Context, date string) (int, error) {
	const q = `SELECT COUNT(*) FROM wash_orders WHERE wash_date = $1::date`
	var count int
	if err := r.pool.QueryRow(ctx, q, date).Scan(&count); err != nil {
		r.logger.Printf("order repo: count date=%s error=%v", date, err)
		return 0, err
	}
	return count, nil
}

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.WashOrder, error) {
	q := `SELECT ` + orderColumns + `
FROM wash_orders
WHERE ($1 = '' OR wash_date = $1::date)
  AND ($2 = '' OR status = $2)
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, f.Date, f.Status)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.WashOrder
	for rows.Next() {
		o, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByNumber(ctx context.Context, number string) (*domain.WashOrder, error) {
	q := `SELECT ` + orderColumns + `
FROM wash_orders
WHERE order_number = $1
`
	return r.scan(r.pool.QueryRow(ctx, q, number))
}

func (r *postgresRepo) SetStatus(ctx context.Context, id, status string) error {
	const q = `UPDATE wash_orders SET status = $2 WHERE id = $1`
	return r.exec(ctx, q, id, status)
}

func (r *postgresRepo) SetPhoto(ctx context.Context, id, photoReference string) error {
	const q = `UPDATE wash_orders SET photo_reference = NULLIF($2, '') WHERE id = $1`
	return r.exec(ctx, q, id, photoReference)
}

func (r *postgresRepo) SetNotes(ctx context.Context, id, notes string) error {
	const q = `UPDATE wash_orders SET notes = NULLIF($2, '') WHERE id = $1`
	return r.exec(ctx, q, id, notes)
}

func (r *postgresRepo) SetTimes(ctx context.Context, id, startTime, endTime string) error {
	const q = `UPDATE wash_orders SET start_time = NULLIF($2, ''), end_time = NULLIF($3, '') WHERE id = $1`
	return r.exec(ctx, q, id, startTime, endTime)
}

func (r *postgresRepo) SummaryByDate(ctx context.Context) ([]domain.OrderSummary, error) {
	const q = `
SELECT wash_date::text, COUNT(*), COALESCE(SUM(amount_cents), 0)
FROM wash_orders
GROUP BY wash_date
ORDER BY wash_date DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: summary error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.OrderSummary
	for rows.Next() {
		var s domain.OrderSummary
		if err := rows.Scan(&s.Date, &s.Count, &s.AmountCents); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) exec(ctx context.Context, q string, args ...any) error {
	tag, err := r.pool.Exec(ctx, q, args...)
	if err != nil {
		r.logger.Printf("order repo: exec error=%v", err)
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scan(row pgx.Row) (*domain.WashOrder, error) {
	var o domain.WashOrder
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.PlateExpression,
		&o.Driver,
		&o.OperationLabel,
		&o.Date,
		&o.StartTime,
		&o.EndTime,
		&o.Status,
		&o.Notes,
		&o.CreatedBy,
		&o.PhotoReference,
		&o.SupplierID,
		&o.AmountCents,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &o, nil
}

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrAlreadyExists
	}
	return err
}
