package price

import (
	"context"

	"fsj-lavagens/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, p domain.PriceEntry) (*domain.PriceEntry, error)
	Update(ctx context.Context, p domain.PriceEntry) error
	Delete(ctx context.Context, id string) error
	ListBySupplier(ctx context.Context, supplierID string) ([]domain.PriceEntry, error)
	// ListBySupplierClass returns the supplier's entries for one vehicle
	// class, most recently changed first so duplicate pairs resolve to the
	// latest amount.
	ListBySupplierClass(ctx context.Context, supplierID, class string) ([]domain.PriceEntry, error)
}
