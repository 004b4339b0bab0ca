package impl

import (
	"context"
	"testing"

	"contacts/internal/domain/entity"
	mockRepo "contacts/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleSeeder_Seed(t *testing.T) {
	ctx := context.Background()

	roleRepo := mockRepo.NewMockRoleRepository(t)
	roleRepo.EXPECT().EnsureRoles(ctx, entity.Roles{entity.RoleAdmin, entity.RoleUser}).Return(nil).Once()
	require.NoError(t, NewRoleSeeder(roleRepo, testLogger()).Seed(ctx))

	failing := mockRepo.NewMockRoleRepository(t)
	failing.EXPECT().EnsureRoles(ctx, entity.AllRoles).Return(errors.New("relation \"roles\" does not exist"))
	assert.ErrorContains(t, NewRoleSeeder(failing, testLogger()).Seed(ctx), "failed to seed roles")
}
