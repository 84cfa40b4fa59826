package domain

import "time"

// Supplier is a washer (lavador) who publishes a price list.
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"taxId"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// PriceEntry is one (vehicle class, service, amount) row of a supplier's
// price list. Amounts are stored in centavos. Duplicate (class, service)
// pairs for the same supplier are allowed.
type PriceEntry struct {
	ID          string `json:"id"`
	SupplierID  string `json:"supplierId"`
	Class       string `json:"vehicleClass"`
	Service     string `json:"service"`
	AmountCents int64  `json:"amountCents"`
}
