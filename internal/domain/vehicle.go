package domain

import "time"

// Composite classes assigned when an order combines a tractor with trailers.
// They must be members of every configured class enumeration.
const (
	ClassTractorTrailerSet = "TRACTOR-TRAILER SET"
	ClassDoubleTrailerSet  = "DOUBLE-TRAILER SET"
)

// Vehicle is a registered unit identified by its normalized plate.
type Vehicle struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Class     string    `json:"vehicleClass"`
	MakeModel string    `json:"makeModel,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
