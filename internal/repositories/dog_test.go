package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/psiarze/internal/models"
)

func TestDogRepositories(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	owner := repos.createUser(t, "owner")
	stranger := repos.createUser(t, "stranger")

	age := 3
	weight := 12.5
	rex, err := repos.dogsW.Create(ctx, owner.ID, models.DogInput{Name: "Rex", Breed: "Beagle", Age: &age, Weight: &weight})
	require.NoError(t, err)
	luna, err := repos.dogsW.Create(ctx, owner.ID, models.DogInput{Name: "Luna"})
	require.NoError(t, err)

	t.Run("Create stores optional fields", func(t *testing.T) {
		require.NotNil(t, rex.Age)
		assert.Equal(t, 3, *rex.Age)
		require.NotNil(t, rex.Weight)
		assert.Equal(t, 12.5, *rex.Weight)
		assert.Nil(t, luna.Age)
		assert.Nil(t, luna.Weight)
		assert.Equal(t, "", luna.Breed)
	})

	t.Run("ListByOwner newest first", func(t *testing.T) {
		dogs, err := repos.dogsR.ListByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, dogs, 2)
		assert.Equal(t, luna.ID, dogs[0].ID)
		assert.Equal(t, rex.ID, dogs[1].ID)

		dogs, err = repos.dogsR.ListByOwner(ctx, stranger.ID)
		require.NoError(t, err)
		assert.Empty(t, dogs)
	})

	t.Run("GetOwned hides other owners", func(t *testing.T) {
		_, err := repos.dogsR.GetOwned(ctx, stranger.ID, rex.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		got, err := repos.dogsR.GetOwned(ctx, owner.ID, rex.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rex", got.Name)
	})

	t.Run("Update", func(t *testing.T) {
		dog := *rex
		dog.Name = "Rexy"
		updated, err := repos.dogsW.Update(ctx, &dog)
		require.NoError(t, err)
		assert.Equal(t, "Rexy", updated.Name)
		assert.Equal(t, "Beagle", updated.Breed)

		foreign := *luna
		foreign.OwnerID = stranger.ID
		_, err = repos.dogsW.Update(ctx, &foreign)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete of another owner's dog leaves it intact", func(t *testing.T) {
		err := repos.dogsW.Delete(ctx, stranger.ID, luna.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repos.dogsR.GetOwned(ctx, owner.ID, luna.ID)
		assert.NoError(t, err)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repos.dogsW.Delete(ctx, owner.ID, luna.ID))
		_, err := repos.dogsR.GetOwned(ctx, owner.ID, luna.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, repos.dogsW.Delete(ctx, owner.ID, uuid.New()), ErrNotFound)
	})
}
