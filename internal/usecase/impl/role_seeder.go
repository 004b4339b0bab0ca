package impl

import (
	"context"
	"log/slog"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/usecase"

	"github.com/pkg/errors"
)

type roleSeeder struct {
	roleRepo repository.RoleRepository
	logger   *slog.Logger
}

// NewRoleSeeder is the constructor for the RoleSeeder.
func NewRoleSeeder(roleRepo repository.RoleRepository, logger *slog.Logger) usecase.RoleSeeder {
	return &roleSeeder{roleRepo: roleRepo, logger: logger}
}

// Seed inserts the Admin and User roles when missing.
func (s *roleSeeder) Seed(ctx context.Context) error {
	if err := s.roleRepo.EnsureRoles(ctx, entity.AllRoles); err != nil {
		return errors.Wrap(err, "failed to seed roles")
	}
	s.logger.Debug("Roles seeded", slog.Any("roles", entity.AllRoles.ToStrings()))

	return nil
}
