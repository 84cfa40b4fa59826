package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique key collision (plate, email, tax id, order number).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidFormat indicates a plate or tax id that does not match the required pattern.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidClass indicates a vehicle class outside the configured enumeration.
	ErrInvalidClass = errors.New("invalid vehicle class")
	// ErrInvalidService indicates a service outside the configured enumeration.
	ErrInvalidService = errors.New("invalid service")
	// ErrInvalidAmount indicates a non-positive price amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMissingField indicates order composition is missing a mandatory input.
	ErrMissingField = errors.New("missing required field")
	// ErrNoPriceAvailable indicates no price entry matches the composed class for the supplier.
	ErrNoPriceAvailable = errors.New("no price available")
	// ErrMissingColumns indicates a bulk import file without the required headers.
	ErrMissingColumns = errors.New("missing required columns")
	// ErrInvalidStatus indicates a wash order status outside the allowed set.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidRole indicates a user role outside the allowed set.
	ErrInvalidRole = errors.New("invalid role")
)
