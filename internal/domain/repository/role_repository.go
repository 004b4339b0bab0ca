package repository

import (
	"context"

	"contacts/internal/domain/entity"
)

// RoleRepository manages the role catalogue.
type RoleRepository interface {
	// EnsureRoles inserts the roles that do not exist yet and leaves the rest untouched.
	EnsureRoles(ctx context.Context, roles entity.Roles) error

	// FindAll lists the stored roles.
	FindAll(ctx context.Context) (entity.Roles, error)
}
