package impl

import (
	"context"
	"testing"

	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPersonsDeleterService_DeletePerson(t *testing.T) {
	ctx := context.Background()

	t.Run("nil id", func(t *testing.T) {
		fx := createPersonsServiceFixtures(t)

		ok, err := NewPersonsDeleterService(fx.params).DeletePerson(ctx, nil)

		assert.False(t, ok)
		assert.True(t, errors.Is(err, domainerrors.ErrNilRequest))
	})

	t.Run("unknown id", func(t *testing.T) {
		fx := createPersonsServiceFixtures(t)
		id := uuid.New()
		fx.personRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPersonNotFound)

		ok, err := NewPersonsDeleterService(fx.params).DeletePerson(ctx, &id)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("deleted", func(t *testing.T) {
		fx := createPersonsServiceFixtures(t)
		person := samplePerson("ada")
		fx.personRepo.EXPECT().FindByID(ctx, person.ID).Return(person, nil)
		fx.personRepo.EXPECT().Delete(ctx, person.ID).Return(nil)
		fx.metrics.EXPECT().PersonDeleted().Return()
		fx.publisher.EXPECT().
			PublishContactEvent(ctx, mock.MatchedBy(func(e *service.ContactEvent) bool {
				return e.Type == service.EventPersonDeleted && *e.PersonID == person.ID
			})).
			Return(nil)

		ok, err := NewPersonsDeleterService(fx.params).DeletePerson(ctx, &person.ID)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("delete fails", func(t *testing.T) {
		fx := createPersonsServiceFixtures(t)
		person := samplePerson("ada")
		fx.personRepo.EXPECT().FindByID(ctx, person.ID).Return(person, nil)
		fx.personRepo.EXPECT().Delete(ctx, person.ID).Return(errors.New("locked"))

		ok, err := NewPersonsDeleterService(fx.params).DeletePerson(ctx, &person.ID)

		assert.False(t, ok)
		assert.EqualError(t, err, "failed to delete person: locked")
	})
}
