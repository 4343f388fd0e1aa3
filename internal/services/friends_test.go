package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/repositories"
	"github.com/sbilibin2017/psiarze/internal/services"
)

type friendMocks struct {
	users  *services.MockUserReader
	reader *services.MockFriendRequestReader
	writer *services.MockFriendRequestWriter
	graph  *services.MockFriendGraph
	kafka  *services.MockKafkaWriter
	svc    *services.FriendService
}

func newFriendMocks(t *testing.T) *friendMocks {
	ctrl := gomock.NewController(t)
	m := &friendMocks{
		users:  services.NewMockUserReader(ctrl),
		reader: services.NewMockFriendRequestReader(ctrl),
		writer: services.NewMockFriendRequestWriter(ctrl),
		graph:  services.NewMockFriendGraph(ctrl),
		kafka:  services.NewMockKafkaWriter(ctrl),
	}
	m.svc = services.NewFriendService(&passTx{}, m.users, m.reader, m.writer, m.graph, services.NewActivityPublisher(m.kafka))
	return m
}

func TestFriendService_SendRequest(t *testing.T) {
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		m := newFriendMocks(t)
		req := &models.FriendRequestDB{ID: uuid.New(), FromUserID: alice, ToUserID: bob, Status: models.FriendRequestPending}

		m.users.EXPECT().GetByID(gomock.Any(), bob).Return(&models.UserDB{ID: bob}, nil)
		m.reader.EXPECT().FindBetween(gomock.Any(), alice, bob).Return(nil, repositories.ErrNotFound)
		m.writer.EXPECT().Create(gomock.Any(), alice, bob).Return(req, nil)
		m.users.EXPECT().GetUsernames(gomock.Any(), []uuid.UUID{alice, bob}).
			Return(map[uuid.UUID]string{alice: "alice", bob: "bob"}, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		view, err := m.svc.SendRequest(ctx, alice, bob)
		require.NoError(t, err)
		assert.Equal(t, req.ID, view.ID)
		assert.Equal(t, "alice", view.FromUsername)
		assert.Equal(t, "bob", view.ToUsername)
	})

	t.Run("self request fails before any read", func(t *testing.T) {
		m := newFriendMocks(t)
		_, err := m.svc.SendRequest(ctx, alice, alice)
		assert.ErrorIs(t, err, services.ErrSelfRequest)
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("unknown target", func(t *testing.T) {
		m := newFriendMocks(t)
		m.users.EXPECT().GetByID(gomock.Any(), bob).Return(nil, repositories.ErrNotFound)

		_, err := m.svc.SendRequest(ctx, alice, bob)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("existing request in any direction or status", func(t *testing.T) {
		m := newFriendMocks(t)
		m.users.EXPECT().GetByID(gomock.Any(), bob).Return(&models.UserDB{ID: bob}, nil)
		m.reader.EXPECT().FindBetween(gomock.Any(), alice, bob).
			Return(&models.FriendRequestDB{FromUserID: bob, ToUserID: alice, Status: models.FriendRequestRejected}, nil)

		_, err := m.svc.SendRequest(ctx, alice, bob)
		assert.ErrorIs(t, err, services.ErrDuplicateRequest)
	})

	t.Run("concurrent duplicate hits pair index", func(t *testing.T) {
		m := newFriendMocks(t)
		m.users.EXPECT().GetByID(gomock.Any(), bob).Return(&models.UserDB{ID: bob}, nil)
		m.reader.EXPECT().FindBetween(gomock.Any(), alice, bob).Return(nil, repositories.ErrNotFound)
		m.writer.EXPECT().Create(gomock.Any(), alice, bob).
			Return(nil, &repositories.UniqueViolationError{Constraint: repositories.ConstraintFriendRequestPair})

		_, err := m.svc.SendRequest(ctx, alice, bob)
		assert.ErrorIs(t, err, services.ErrDuplicateRequest)
	})
}

func TestFriendService_Respond(t *testing.T) {
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()
	reqID := uuid.New()
	pending := func() *models.FriendRequestDB {
		return &models.FriendRequestDB{ID: reqID, FromUserID: alice, ToUserID: bob, Status: models.FriendRequestPending}
	}

	t.Run("accept", func(t *testing.T) {
		m := newFriendMocks(t)
		accepted := pending()
		accepted.Status = models.FriendRequestAccepted

		m.reader.EXPECT().GetByIDForUpdate(gomock.Any(), reqID).Return(pending(), nil)
		m.writer.EXPECT().UpdateStatus(gomock.Any(), reqID, models.FriendRequestAccepted).Return(accepted, nil)
		m.users.EXPECT().GetUsernames(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]string{alice: "alice", bob: "bob"}, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		view, err := m.svc.Accept(ctx, bob, reqID)
		require.NoError(t, err)
		assert.Equal(t, models.FriendRequestAccepted, view.Status)
	})

	t.Run("reject", func(t *testing.T) {
		m := newFriendMocks(t)
		rejected := pending()
		rejected.Status = models.FriendRequestRejected

		m.reader.EXPECT().GetByIDForUpdate(gomock.Any(), reqID).Return(pending(), nil)
		m.writer.EXPECT().UpdateStatus(gomock.Any(), reqID, models.FriendRequestRejected).Return(rejected, nil)
		m.users.EXPECT().GetUsernames(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]string{}, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		view, err := m.svc.Reject(ctx, bob, reqID)
		require.NoError(t, err)
		assert.Equal(t, models.FriendRequestRejected, view.Status)
	})

	t.Run("sender cannot accept own request", func(t *testing.T) {
		m := newFriendMocks(t)
		m.reader.EXPECT().GetByIDForUpdate(gomock.Any(), reqID).Return(pending(), nil)

		_, err := m.svc.Accept(ctx, alice, reqID)
		assert.ErrorIs(t, err, services.ErrRequestNotFound)
	})

	t.Run("missing request", func(t *testing.T) {
		m := newFriendMocks(t)
		m.reader.EXPECT().GetByIDForUpdate(gomock.Any(), reqID).Return(nil, repositories.ErrNotFound)

		_, err := m.svc.Reject(ctx, bob, reqID)
		assert.ErrorIs(t, err, services.ErrRequestNotFound)
	})

	t.Run("not pending", func(t *testing.T) {
		m := newFriendMocks(t)
		done := pending()
		done.Status = models.FriendRequestAccepted
		m.reader.EXPECT().GetByIDForUpdate(gomock.Any(), reqID).Return(done, nil)

		_, err := m.svc.Accept(ctx, bob, reqID)
		assert.ErrorIs(t, err, services.ErrRequestNotPending)
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("kafka failure does not fail the call", func(t *testing.T) {
		m := newFriendMocks(t)
		accepted := pending()
		accepted.Status = models.FriendRequestAccepted

		m.reader.EXPECT().GetByIDForUpdate(gomock.Any(), reqID).Return(pending(), nil)
		m.writer.EXPECT().UpdateStatus(gomock.Any(), reqID, models.FriendRequestAccepted).Return(accepted, nil)
		m.users.EXPECT().GetUsernames(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]string{}, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errDB)

		_, err := m.svc.Accept(ctx, bob, reqID)
		assert.NoError(t, err)
	})
}

func TestFriendService_Lists(t *testing.T) {
	ctx := context.Background()
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()

	t.Run("ListRequests resolves usernames once", func(t *testing.T) {
		m := newFriendMocks(t)
		reqs := []models.FriendRequestDB{
			{ID: uuid.New(), FromUserID: carol, ToUserID: alice},
			{ID: uuid.New(), FromUserID: alice, ToUserID: bob},
		}
		m.reader.EXPECT().ListForUser(gomock.Any(), alice).Return(reqs, nil)
		m.users.EXPECT().GetUsernames(gomock.Any(), []uuid.UUID{carol, alice, bob}).
			Return(map[uuid.UUID]string{alice: "alice", bob: "bob", carol: "carol"}, nil).Times(1)

		views, err := m.svc.ListRequests(ctx, alice)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "carol", views[0].FromUsername)
		assert.Equal(t, "bob", views[1].ToUsername)
	})

	t.Run("ListRequests empty", func(t *testing.T) {
		m := newFriendMocks(t)
		m.reader.EXPECT().ListForUser(gomock.Any(), alice).Return([]models.FriendRequestDB{}, nil)

		views, err := m.svc.ListRequests(ctx, alice)
		require.NoError(t, err)
		assert.Empty(t, views)
		assert.NotNil(t, views)
	})

	t.Run("ListFriends", func(t *testing.T) {
		m := newFriendMocks(t)
		profiles := []models.UserProfile{{ID: bob, Username: "bob"}}
		m.graph.EXPECT().ListFriendIDs(gomock.Any(), alice).Return([]uuid.UUID{bob}, nil)
		m.users.EXPECT().ListProfiles(gomock.Any(), []uuid.UUID{bob}).Return(profiles, nil)

		got, err := m.svc.ListFriends(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, profiles, got)
	})

	t.Run("ListFriends store error", func(t *testing.T) {
		m := newFriendMocks(t)
		m.graph.EXPECT().ListFriendIDs(gomock.Any(), alice).Return(nil, errDB)

		_, err := m.svc.ListFriends(ctx, alice)
		assert.ErrorIs(t, err, errDB)
	})
}
