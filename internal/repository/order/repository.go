package order

import (
	"context"

	"fsj-lavagens/internal/domain"
)

// Filter narrows order listings; zero values mean no constraint.
type Filter struct {
	Date   string
	Status string
}

type Repository interface {
	// Insert persists a composed order. A duplicate order number surfaces
	// as domain.ErrAlreadyExists so the caller can re-allocate.
	Insert(ctx context.Context, o domain.WashOrder) (*domain.WashOrder, error)
	// CountByDate returns how many orders exist for a YYYY-MM-DD date.
	CountByDate(ctx context.Context, date string) (int, error)
	List(ctx context.Context, f Filter) ([]domain.WashOrder, error)
	GetByNumber(ctx context.Context, number string) (*domain.WashOrder, error)
	SetStatus(ctx context.Context, id, status string) error
	SetPhoto(ctx context.Context, id, photoReference string) error
	SetNotes(ctx context.Context, id, notes string) error
	SetTimes(ctx context.Context, id, startTime, endTime string) error
	SummaryByDate(ctx context.Context) ([]domain.OrderSummary, error)
}
