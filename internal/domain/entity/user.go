// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a stored shopper identity. Sellers are not stored; see Audience.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email        string     // Login identifier, unique across users.
	Name         string     // Display name.
	PasswordHash string     // bcrypt hash, never serialized to clients.
	Addresses    []*Address // Append-only, in insertion order.
	CartItems    Cart       // Server-side mirror of the client cart.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
