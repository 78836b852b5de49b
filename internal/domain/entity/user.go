// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. One account per unique username.
// PasswordHash is an opaque credential digest; it never leaves the service
// boundary and must not appear in any serialized response.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Login identifier, unique across all accounts.
	PasswordHash string    // Salted one-way digest of the password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
