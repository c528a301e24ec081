package domain

import "time"

// Role is the coarse access level of an identity. Tokens carry it as an
// advisory claim only; nothing grants authority from the claim itself.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

type Identity struct {
	ID           string
	Name         string
	Email        string // normalized lower-case, globally unique
	PasswordHash string // argon2 encoded, never the plaintext
	Phone        string // optional, E.164; globally unique when set
	Role         Role
	Active       bool // soft-disable flag, identities are never hard-deleted
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
