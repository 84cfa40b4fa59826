package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fsj-lavagens/internal/domain"
	orderrepo "fsj-lavagens/internal/repository/order"
	pricerepo "fsj-lavagens/internal/repository/price"
	vehiclerepo "fsj-lavagens/internal/repository/vehicle"
	vehiclesvc "fsj-lavagens/internal/service/vehicle"
)

const (
	maxTrailers        = 2
	numberAllocRetries = 3
	dateLayout         = "2006-01-02"
)

// Service composes wash orders from the catalog and owns the order ledger.
type Service struct {
	orders   orderrepo.Repository
	vehicles vehiclerepo.Repository
	prices   pricerepo.Repository
	enums    domain.Enumerations
	now      func() time.Time
}

// New creates a Service resolving against the given catalog repositories.
func New(orders orderrepo.Repository, vehicles vehiclerepo.Repository, prices pricerepo.Repository, enums domain.Enumerations) *Service {
	return &Service{
		orders:   orders,
		vehicles: vehicles,
		prices:   prices,
		enums:    enums,
		now:      time.Now,
	}
}

// ComposeInput is the raw selection collected by the caller.
type ComposeInput struct {
	TractorPlate   string
	TrailerPlates  []string
	SupplierID     string
	Service        string
	Driver         string
	Date           string
	StartTime      string
	EndTime        string
	Notes          string
	PhotoReference string
	CreatedBy      string
}

// Compose derives the vehicle class from the selected plates, resolves the
// price for (supplier, class, service) and persists the assembled order.
// Nothing is written when any step fails.
func (s *Service) Compose(ctx context.Context, in ComposeInput) (*domain.WashOrder, error) {
	tractor := vehiclesvc.NormalizePlate(in.TractorPlate)
	if tractor == "" {
		return nil, fmt.Errorf("tractor plate: %w", domain.ErrMissingField)
	}
	if !vehiclesvc.ValidPlate(tractor) {
		return nil, fmt.Errorf("tractor plate %q: %w", in.TractorPlate, domain.ErrInvalidFormat)
	}
	if in.SupplierID == "" {
		return nil, fmt.Errorf("supplier: %w", domain.ErrMissingField)
	}

	trailers, err := normalizeTrailers(in.TrailerPlates)
	if err != nil {
		return nil, err
	}

	class, err := s.resolveClass(ctx, tractor, len(trailers))
	if err != nil {
		return nil, err
	}

	service := strings.ToUpper(strings.TrimSpace(in.Service))
	if service == "" {
		return nil, fmt.Errorf("service: %w", domain.ErrMissingField)
	}
	if !s.enums.HasService(service) {
		return nil, fmt.Errorf("service %q: %w", service, domain.ErrInvalidService)
	}

	amount, err := s.resolvePrice(ctx, in.SupplierID, class, service)
	if err != nil {
		return nil, err
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("date %q: %w", in.Date, domain.ErrInvalidFormat)
	}

	driver := strings.TrimSpace(in.Driver)
	if driver == "" {
		driver = domain.DriverPlaceholder
	}

	draft := domain.WashOrder{
		PlateExpression: plateExpression(tractor, trailers),
		Driver:          driver,
		OperationLabel:  class + " - " + service,
		Date:            date,
		StartTime:       strings.TrimSpace(in.StartTime),
		EndTime:         strings.TrimSpace(in.EndTime),
		Status:          domain.StatusPending,
		Notes:           strings.TrimSpace(in.Notes),
		CreatedBy:       in.CreatedBy,
		PhotoReference:  in.PhotoReference,
		SupplierID:      in.SupplierID,
		AmountCents:     amount,
	}

	return s.insertNumbered(ctx, draft)
}

// ServicesFor lists the supplier's price entries for the class that the
// given plate selection composes to. The caller picks one of these.
func (s *Service) ServicesFor(ctx context.Context, supplierID, tractorPlate string, trailerCount int) ([]domain.PriceEntry, error) {
	tractor := vehiclesvc.NormalizePlate(tractorPlate)
	if tractor == "" {
		return nil, fmt.Errorf("tractor plate: %w", domain.ErrMissingField)
	}
	class, err := s.resolveClass(ctx, tractor, trailerCount)
	if err != nil {
		return nil, err
	}
	return s.prices.ListBySupplierClass(ctx, supplierID, class)
}

// List returns orders, newest first, optionally filtered by date and status.
func (s *Service) List(ctx context.Context, f orderrepo.Filter) ([]domain.WashOrder, error) {
	if f.Status != "" && !domain.ValidStatus(f.Status) {
		return nil, fmt.Errorf("status %q: %w", f.Status, domain.ErrInvalidStatus)
	}
	return s.orders.List(ctx, f)
}

// Get returns one order by its order number.
func (s *Service) Get(ctx context.Context, number string) (*domain.WashOrder, error) {
	return s.orders.GetByNumber(ctx, number)
}

// SetStatus moves an order to any of the allowed status values. The three
// values are an unordered set; no forward-only ordering is enforced.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	if !domain.ValidStatus(status) {
		return fmt.Errorf("status %q: %w", status, domain.ErrInvalidStatus)
	}
	return s.orders.SetStatus(ctx, id, status)
}

// SetPhoto attaches or replaces the order's photo reference.
func (s *Service) SetPhoto(ctx context.Context, id, photoReference string) error {
	return s.orders.SetPhoto(ctx, id, photoReference)
}

// SetNotes replaces the order's free-text notes.
func (s *Service) SetNotes(ctx context.Context, id, notes string) error {
	return s.orders.SetNotes(ctx, id, notes)
}

// SetTimes records the start and end times of the wash.
func (s *Service) SetTimes(ctx context.Context, id, startTime, endTime string) error {
	return s.orders.SetTimes(ctx, id, startTime, endTime)
}

// Summary aggregates order count and total amount per date.
func (s *Service) Summary(ctx context.Context) ([]domain.OrderSummary, error) {
	return s.orders.SummaryByDate(ctx)
}

// resolveClass implements the combination rule: a single unit reports its
// registered class, one trailer collapses to TRACTOR-TRAILER SET, two to
// DOUBLE-TRAILER SET, whatever the trailers are registered as.
func (s *Service) resolveClass(ctx context.Context, tractor string, trailerCount int) (string, error) {
	switch trailerCount {
	case 0:
		v, err := s.vehicles.GetByPlate(ctx, tractor)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return "", fmt.Errorf("vehicle class for plate %s: %w", tractor, domain.ErrMissingField)
			}
			return "", err
		}
		return v.Class, nil
	case 1:
		return domain.ClassTractorTrailerSet, nil
	case 2:
		return domain.ClassDoubleTrailerSet, nil
	}
	return "", fmt.Errorf("at most %d trailer plates: %w", maxTrailers, domain.ErrInvalidFormat)
}

func (s *Service) resolvePrice(ctx context.Context, supplierID, class, service string) (int64, error) {
	entries, err := s.prices.ListBySupplierClass(ctx, supplierID, class)
	if err != nil {
		return 0, err
	}
	// Entries come most recently changed first, so the first match wins
	// when duplicates exist.
	for _, e := range entries {
		if e.Service == service {
			return e.AmountCents, nil
		}
	}
	return 0, fmt.Errorf("supplier %s class %s service %s: %w", supplierID, class, service, domain.ErrNoPriceAvailable)
}

// insertNumbered allocates the next sequential number for the order's date
// and inserts. Count-then-insert can collide when two writers race the same
// date; the unique constraint catches that and the allocation is retried.
func (s *Service) insertNumbered(ctx context.Context, draft domain.WashOrder) (*domain.WashOrder, error) {
	compact := strings.ReplaceAll(draft.Date, "-", "")
	var lastErr error
	for i := 0; i < numberAllocRetries; i++ {
		count, err := s.orders.CountByDate(ctx, draft.Date)
		if err != nil {
			return nil, err
		}
		draft.OrderNumber = fmt.Sprintf("ORD-%s-%03d", compact, count+1)
		res, err := s.orders.Insert(ctx, draft)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("allocate order number for %s: %w", draft.Date, lastErr)
}

func normalizeTrailers(plates []string) ([]string, error) {
	var trailers []string
	for _, p := range plates {
		normalized := vehiclesvc.NormalizePlate(p)
		if normalized == "" {
			continue
		}
		if !vehiclesvc.ValidPlate(normalized) {
			return nil, fmt.Errorf("trailer plate %q: %w", p, domain.ErrInvalidFormat)
		}
		trailers = append(trailers, normalized)
	}
	if len(trailers) > maxTrailers {
		return nil, fmt.Errorf("at most %d trailer plates: %w", maxTrailers, domain.ErrInvalidFormat)
	}
	return trailers, nil
}

func plateExpression(tractor string, trailers []string) string {
	return strings.Join(append([]string{tractor}, trailers...), " + ")
}
