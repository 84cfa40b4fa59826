package supplier

import (
	"context"

	"fsj-lavagens/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, s domain.Supplier) (*domain.Supplier, error)
	Update(ctx context.Context, s domain.Supplier) error
	// Delete removes the supplier; its price entries go with it (FK cascade).
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Supplier, error)
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
}
