package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/psiarze/internal/models"
)

func TestChatRepositories(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	alice := repos.createUser(t, "alice")
	bob := repos.createUser(t, "bob")
	carol := repos.createUser(t, "carol")

	var room *models.ChatRoomDB
	err := repos.uow.Do(ctx, func(ctx context.Context) error {
		require.NoError(t, repos.chatsW.LockPair(ctx, alice.ID, bob.ID))
		var err error
		room, err = repos.chatsW.CreateRoom(ctx)
		require.NoError(t, err)
		require.NoError(t, repos.chatsW.AddMember(ctx, room.ID, alice.ID))
		return repos.chatsW.AddMember(ctx, room.ID, bob.ID)
	})
	require.NoError(t, err)

	t.Run("FindRoomBetween either order", func(t *testing.T) {
		got, err := repos.chatsR.FindRoomBetween(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, room.ID, got.ID)

		_, err = repos.chatsR.FindRoomBetween(ctx, alice.ID, carol.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Duplicate member", func(t *testing.T) {
		err := repos.chatsW.AddMember(ctx, room.ID, alice.ID)
		assert.True(t, IsUniqueViolation(err, ConstraintRoomMember))
	})

	t.Run("Membership", func(t *testing.T) {
		ok, err := repos.chatsR.IsMember(ctx, room.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repos.chatsR.IsMember(ctx, room.ID, carol.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repos.chatsR.IsMember(ctx, uuid.New(), bob.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Rooms are named after the other member", func(t *testing.T) {
		rooms, err := repos.chatsR.ListRoomsForUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, "bob", rooms[0].Name)

		rooms, err = repos.chatsR.ListRoomsForUser(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, "alice", rooms[0].Name)

		rooms, err = repos.chatsR.ListRoomsForUser(ctx, carol.ID)
		require.NoError(t, err)
		assert.Empty(t, rooms)
	})

	t.Run("Messages keep send order", func(t *testing.T) {
		texts := []string{"hi", "hello", "walk at 5?"}
		err := repos.uow.Do(ctx, func(ctx context.Context) error {
			// NOW() is the same for every insert in one transaction
			for i, text := range texts {
				sender := alice.ID
				if i%2 == 1 {
					sender = bob.ID
				}
				if _, err := repos.chatsW.CreateMessage(ctx, room.ID, sender, models.MessageKindText, text); err != nil {
					return err
				}
			}
			return nil
		})
		require.NoError(t, err)

		msgs, err := repos.chatsR.ListMessages(ctx, room.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		for i, text := range texts {
			assert.Equal(t, text, msgs[i].Text)
		}
		assert.Equal(t, bob.ID, msgs[1].SenderID)
	})

	t.Run("Invalid kind rejected by schema", func(t *testing.T) {
		_, err := repos.chatsW.CreateMessage(ctx, room.ID, alice.ID, "shout", "HI")
		assert.Error(t, err)
	})

	t.Run("Pair key is order independent", func(t *testing.T) {
		assert.Equal(t, pairKey(alice.ID, bob.ID), pairKey(bob.ID, alice.ID))
		assert.NotEqual(t, pairKey(alice.ID, bob.ID), pairKey(alice.ID, carol.ID))
	})
}
