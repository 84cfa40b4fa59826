package price

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

func (r *postgresRepo) Create(ctx context.Context, p domain.PriceEntry) (*domain.PriceEntry, error) {
	const q = `
INSERT INTO price_entries (supplier_id, vehicle_class, service, amount_cents)
VALUES ($1, $2, $3, $4)
RETURNING id::text, supplier_id::text, vehicle_class, service, amount_cents
`
	var res domain.PriceEntry
	err := r.pool.QueryRow(ctx, q, p.SupplierID, p.Class, p.Service, p.AmountCents).
		Scan(&res.ID, &res.SupplierID, &res.Class, &res.Service, &res.AmountCents)
	if err != nil {
		r.logger.Printf("price repo: create supplier_id=%s error=%v", p.SupplierID, err)
		return nil, mapError(err)
	}
	return &res, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.PriceEntry) error {
	const q = `
UPDATE price_entries
SET vehicle_class = $2, service = $3, amount_cents = $4, updated_at = now()
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, q, p.ID, p.Class, p.Service, p.AmountCents)
	if err != nil {
		r.logger.Printf("price repo: update id=%s error=%v", p.ID, err)
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM price_entries WHERE id = $1`
	if _, err := r.pool.Exec(ctx, q, id); err != nil {
		r.logger.Printf("price repo: delete id=%s error=%v", id, err)
		return err
	}
	return nil
}

func (r *postgresRepo) ListBySupplier(ctx context.Context, supplierID string) ([]domain.PriceEntry, error) {
	const q = `
SELECT id::text, supplier_id::text, vehicle_class, service, amount_cents
FROM price_entries
WHERE supplier_id = $1
ORDER BY vehicle_class, service
`
	return r.list(ctx, q, supplierID)
}

func (r *postgresRepo) ListBySupplierClass(ctx context.Context, supplierID, class string) ([]domain.PriceEntry, error) {
	const q = `
SELECT id::text, supplier_id::text, vehicle_class, service, amount_cents
FROM price_entries
WHERE supplier_id = $1 AND vehicle_class = $2
ORDER BY updated_at DESC, service
`
	return r.list(ctx, q, supplierID, class)
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...any) ([]domain.PriceEntry, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("price repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.PriceEntry
	for rows.Next() {
		var p domain.PriceEntry
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.Class, &p.Service, &p.AmountCents); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("price repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return domain.ErrAlreadyExists
		case "23503":
			return domain.ErrNotFound
		}
	}
	return err
}
