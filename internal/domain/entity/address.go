package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address appended to a user's address book.
type Address struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Street    string
	City      string
	State     string
	Zipcode   string
	Country   string
	Phone     string
	CreatedAt time.Time
}
