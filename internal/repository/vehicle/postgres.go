package vehicle

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

func (r *postgresRepo) Create(ctx context.Context, v domain.Vehicle) (*domain.Vehicle, error) {
	const q = `
INSERT INTO vehicles (plate, vehicle_class, make_model)
VALUES ($1, $2, NULLIF($3, ''))
RETURNING id::text, plate, vehicle_class, COALESCE(make_model, ''), created_at
`
	res, err := r.scan(r.pool.QueryRow(ctx, q, v.Plate, v.Class, v.MakeModel))
	if err != nil {
		r.logger.Printf("vehicle repo: create plate=%s error=%v", v.Plate, err)
		return nil, err
	}
	r.logger.Printf("vehicle repo: created plate=%s id=%s", res.Plate, res.ID)
	return res, nil
}

func (r *postgresRepo) Update(ctx context.Context, v domain.Vehicle) error {
	const q = `
UPDATE vehicles
SET plate = $2, vehicle_class = $3, make_model = NULLIF($4, '')
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, q, v.ID, v.Plate, v.Class, v.MakeModel)
	if err != nil {
		r.logger.Printf("vehicle repo: update id=%s error=%v", v.ID, err)
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	// Idempotent: deleting an absent vehicle is not an error.
	const q = `DELETE FROM vehicles WHERE id = $1`
	if _, err := r.pool.Exec(ctx, q, id); err != nil {
		r.logger.Printf("vehicle repo: delete id=%s error=%v", id, err)
		return err
	}
	return nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	const q = `
SELECT id::text, plate, vehicle_class, COALESCE(make_model, ''), created_at
FROM vehicles
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("vehicle repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Plate, &v.Class, &v.MakeModel, &v.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("vehicle repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	const q = `
SELECT id::text, plate, vehicle_class, COALESCE(make_model, ''), created_at
FROM vehicles
WHERE id = $1
`
	return r.scan(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	const q = `
SELECT id::text, plate, vehicle_class, COALESCE(make_model, ''), created_at
FROM vehicles
WHERE plate = $1
`
	return r.scan(r.pool.QueryRow(ctx, q, plate))
}

func (r *postgresRepo) scan(row pgx.Row) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := row.Scan(&v.ID, &v.Plate, &v.Class, &v.MakeModel, &v.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &v, nil
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
