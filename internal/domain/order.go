package domain

import "time"

// Wash order lifecycle values. Any of the three may be set at any time;
// there is no enforced forward-only ordering.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// DriverPlaceholder fills the driver column when none is informed.
const DriverPlaceholder = "NOT INFORMED"

// WashOrder is one wash service request. Orders are never deleted.
type WashOrder struct {
	ID              string    `json:"id"`
	OrderNumber     string    `json:"orderNumber"`
	PlateExpression string    `json:"plateExpression"`
	Driver          string    `json:"driver"`
	OperationLabel  string    `json:"operationLabel"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime,omitempty"`
	EndTime         string    `json:"endTime,omitempty"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       string    `json:"createdBy"`
	PhotoReference  string    `json:"photoReference,omitempty"`
	SupplierID      string    `json:"supplierId"`
	AmountCents     int64     `json:"amountCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ValidStatus reports whether status is one of the allowed values.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// OrderSummary aggregates one day of orders.
type OrderSummary struct {
	Date        string `json:"date"`
	Count       int    `json:"count"`
	AmountCents int64  `json:"amountCents"`
}
