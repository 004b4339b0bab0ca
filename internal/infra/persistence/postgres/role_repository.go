package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"
	"contacts/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roleRepository struct {
	q *query.Query
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		q: query.Use(db),
	}
}

// EnsureRoles inserts missing roles; existing names are left alone.
func (repo *roleRepository) EnsureRoles(ctx context.Context, roles entity.Roles) error {
	if len(roles) == 0 {
		return nil
	}

	roleMs := make([]*model.RoleModel, 0, len(roles))
	for _, r := range roles {
		roleMs = append(roleMs, &model.RoleModel{Name: r.String()})
	}

	err := repo.q.RoleModel.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(roleMs...)
	if err != nil {
		return errors.Wrap(err, "failed to ensure roles")
	}

	return nil
}

// FindAll lists the stored roles by name.
func (repo *roleRepository) FindAll(ctx context.Context) (entity.Roles, error) {
	roleMs, err := repo.q.RoleModel.WithContext(ctx).
		Order(repo.q.RoleModel.Name).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make(entity.Roles, 0, len(roleMs))
	for _, r := range roleMs {
		roles = append(roles, entity.Role(r.Name))
	}

	return roles, nil
}
