package supplier

import (
	"context"
	"fmt"
	"strings"

	"fsj-lavagens/internal/domain"
	pricerepo "fsj-lavagens/internal/repository/price"
	supplierrepo "fsj-lavagens/internal/repository/supplier"
)

const taxIDLength = 14

// Service enforces supplier and price-list rules over the repositories.
type Service struct {
	suppliers supplierrepo.Repository
	prices    pricerepo.Repository
	enums     domain.Enumerations
}

// New creates a Service validating against the configured enumerations.
func New(suppliers supplierrepo.Repository, prices pricerepo.Repository, enums domain.Enumerations) *Service {
	return &Service{suppliers: suppliers, prices: prices, enums: enums}
}

// NormalizeTaxID keeps only the digits of a CNPJ-style tax id.
func NormalizeTaxID(taxID string) string {
	var b strings.Builder
	for _, r := range taxID {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Register validates and inserts a new supplier.
func (s *Service) Register(ctx context.Context, name, taxID, address string) (*domain.Supplier, error) {
	sup, err := validate(name, taxID, address)
	if err != nil {
		return nil, err
	}
	return s.suppliers.Create(ctx, *sup)
}

// Update applies the same validation as Register against an existing record.
func (s *Service) Update(ctx context.Context, id, name, taxID, address string) error {
	sup, err := validate(name, taxID, address)
	if err != nil {
		return err
	}
	sup.ID = id
	return s.suppliers.Update(ctx, *sup)
}

// Delete removes a supplier and, by cascade, its price entries. Absent ids
// are a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.suppliers.Delete(ctx, id)
}

// List returns all suppliers, newest registration first.
func (s *Service) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.suppliers.List(ctx)
}

// Get returns one supplier by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Supplier, error) {
	return s.suppliers.GetByID(ctx, id)
}

// AddPrice validates and inserts a price entry for the supplier. Duplicate
// (class, service) pairs are allowed.
func (s *Service) AddPrice(ctx context.Context, supplierID, class, service string, amountCents int64) (*domain.PriceEntry, error) {
	entry, err := s.validatePrice(supplierID, class, service, amountCents)
	if err != nil {
		return nil, err
	}
	return s.prices.Create(ctx, *entry)
}

// UpdatePrice applies the same validation as AddPrice to an existing entry.
func (s *Service) UpdatePrice(ctx context.Context, id, supplierID, class, service string, amountCents int64) error {
	entry, err := s.validatePrice(supplierID, class, service, amountCents)
	if err != nil {
		return err
	}
	entry.ID = id
	return s.prices.Update(ctx, *entry)
}

// DeletePrice removes a price entry; absent ids are a no-op.
func (s *Service) DeletePrice(ctx context.Context, id string) error {
	return s.prices.Delete(ctx, id)
}

// ListPrices returns a supplier's price list ordered by (class, service).
func (s *Service) ListPrices(ctx context.Context, supplierID string) ([]domain.PriceEntry, error) {
	return s.prices.ListBySupplier(ctx, supplierID)
}

func validate(name, taxID, address string) (*domain.Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("supplier name: %w", domain.ErrMissingField)
	}
	digits := NormalizeTaxID(taxID)
	if len(digits) != taxIDLength {
		return nil, fmt.Errorf("tax id %q: %w", taxID, domain.ErrInvalidFormat)
	}
	return &domain.Supplier{
		Name:    name,
		TaxID:   digits,
		Address: strings.TrimSpace(address),
	}, nil
}

func (s *Service) validatePrice(supplierID, class, service string, amountCents int64) (*domain.PriceEntry, error) {
	class = strings.ToUpper(strings.TrimSpace(class))
	if !s.enums.HasClass(class) {
		return nil, fmt.Errorf("class %q: %w", class, domain.ErrInvalidClass)
	}
	service = strings.ToUpper(strings.TrimSpace(service))
	if !s.enums.HasService(service) {
		return nil, fmt.Errorf("service %q: %w", service, domain.ErrInvalidService)
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("amount %d: %w", amountCents, domain.ErrInvalidAmount)
	}
	return &domain.PriceEntry{
		SupplierID:  supplierID,
		Class:       class,
		Service:     service,
		AmountCents: amountCents,
	}, nil
}
