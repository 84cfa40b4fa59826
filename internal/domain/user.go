package domain

import "time"

// User roles as stored in the users table.
const (
	RoleOperator = "operator"
	RoleAdmin    = "admin"
)

// User is an account that can sign in and issue wash orders.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidRole reports whether role is one of the allowed values.
func ValidRole(role string) bool {
	return role == RoleOperator || role == RoleAdmin
}
