package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/services"
)

func TestListFriendsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFriendLister(ctrl)
	mockSvc.EXPECT().ListFriends(gomock.Any(), testUser.ID).
		Return([]models.UserProfile{{ID: uuid.New(), Username: "bob"}}, nil)

	rr := httptest.NewRecorder()
	NewListFriendsHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/friends", "", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListFriendRequestsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bob := uuid.New()
	mockSvc := NewMockFriendRequestLister(ctrl)
	mockSvc.EXPECT().ListRequests(gomock.Any(), testUser.ID).Return([]models.FriendRequestView{{
		FriendRequestDB: models.FriendRequestDB{ID: uuid.New(), FromUserID: bob, ToUserID: testUser.ID, Status: models.FriendRequestPending},
		FromUsername:    "bob",
		ToUsername:      "alice",
	}}, nil)

	rr := httptest.NewRecorder()
	NewListFriendRequestsHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/friends/requests", "", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "bob", body[0]["from_username"])
	assert.Equal(t, "alice", body[0]["to_username"])
	assert.Equal(t, bob.String(), body[0]["from_user_id"])
	assert.Equal(t, "pending", body[0]["status"])
}

func TestSendFriendRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bob := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockFriendRequestSender)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"to_user_id":"` + bob.String() + `"}`,
			mockSetup: func(m *MockFriendRequestSender) {
				m.EXPECT().SendRequest(gomock.Any(), testUser.ID, bob).
					Return(&models.FriendRequestView{FriendRequestDB: models.FriendRequestDB{ID: uuid.New()}}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "self",
			body: `{"to_user_id":"` + testUser.ID.String() + `"}`,
			mockSetup: func(m *MockFriendRequestSender) {
				m.EXPECT().SendRequest(gomock.Any(), testUser.ID, testUser.ID).Return(nil, services.ErrSelfRequest)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "duplicate",
			body: `{"to_user_id":"` + bob.String() + `"}`,
			mockSetup: func(m *MockFriendRequestSender) {
				m.EXPECT().SendRequest(gomock.Any(), testUser.ID, bob).Return(nil, services.ErrDuplicateRequest)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "unknown user",
			body: `{"to_user_id":"` + bob.String() + `"}`,
			mockSetup: func(m *MockFriendRequestSender) {
				m.EXPECT().SendRequest(gomock.Any(), testUser.ID, bob).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed user id",
			body:         `{"to_user_id":"nope"}`,
			mockSetup:    func(m *MockFriendRequestSender) {},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "missing user id",
			body:         `{}`,
			mockSetup:    func(m *MockFriendRequestSender) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFriendRequestSender(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			NewSendFriendRequestHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/friends/requests", tt.body, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAnswerFriendRequestHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reqID := uuid.New()
	params := map[string]string{"id": reqID.String()}

	t.Run("accept", func(t *testing.T) {
		mockSvc := NewMockFriendRequestAccepter(ctrl)
		mockSvc.EXPECT().Accept(gomock.Any(), testUser.ID, reqID).Return(&models.FriendRequestView{
			FriendRequestDB: models.FriendRequestDB{ID: reqID, Status: models.FriendRequestAccepted},
		}, nil)

		rr := httptest.NewRecorder()
		NewAcceptFriendRequestHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/", "", params))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("accept not pending", func(t *testing.T) {
		mockSvc := NewMockFriendRequestAccepter(ctrl)
		mockSvc.EXPECT().Accept(gomock.Any(), testUser.ID, reqID).Return(nil, services.ErrRequestNotPending)

		rr := httptest.NewRecorder()
		NewAcceptFriendRequestHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/", "", params))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"request not pending"}`, rr.Body.String())
	})

	t.Run("reject not found", func(t *testing.T) {
		mockSvc := NewMockFriendRequestRejecter(ctrl)
		mockSvc.EXPECT().Reject(gomock.Any(), testUser.ID, reqID).Return(nil, services.ErrRequestNotFound)

		rr := httptest.NewRecorder()
		NewRejectFriendRequestHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/", "", params))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("reject malformed id", func(t *testing.T) {
		mockSvc := NewMockFriendRequestRejecter(ctrl)

		rr := httptest.NewRecorder()
		NewRejectFriendRequestHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/", "", map[string]string{"id": "x"}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"request not found"}`, rr.Body.String())
	})
}
