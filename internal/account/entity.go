package account

import "time"

// Account is a stored login identity. Email is unique and written lowercase;
// PasswordHash is opaque bcrypt output and must never be logged or
// serialized into a response.
type Account struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	Role           string
	OrganisationID *string
	IsActive       bool
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
