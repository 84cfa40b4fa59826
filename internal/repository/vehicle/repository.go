package vehicle

import (
	"context"

	"fsj-lavagens/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, v domain.Vehicle) (*domain.Vehicle, error)
	Update(ctx context.Context, v domain.Vehicle) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
}
