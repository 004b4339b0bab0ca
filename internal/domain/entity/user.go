package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in to the contacts manager.
type User struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email       string    // Login identifier and contact address.
	PersonName  string    // The name shown for the account holder.
	PhoneNumber string    // Optional contact phone number.
	Roles       Roles     // Roles granted to the account.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
