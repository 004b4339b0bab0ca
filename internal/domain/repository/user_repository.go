package repository

import (
	"context"

	"contacts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserEmailTaken is returned when the unique email index rejects an insert.
	ErrUserEmailTaken = errors.New("user email already registered")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including roles.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, including roles.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity together with its role assignments.
	Create(ctx context.Context, user *entity.User) error
}
