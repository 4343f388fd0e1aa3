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
)

func TestMeHandler(t *testing.T) {
	t.Run("returns profile without password hash", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewMeHandler().ServeHTTP(rr, newRequest(http.MethodGet, "/users/me", "", nil))

		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, testUser.ID.String(), body["id"])
		assert.Equal(t, "alice@example.com", body["email"])
		assert.Equal(t, "alice", body["username"])
		assert.NotContains(t, body, "password_hash")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewMeHandler().ServeHTTP(rr, newAnonRequest(http.MethodGet, "/users/me", ""))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
	})
}

func TestDiscoverHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("passes search", func(t *testing.T) {
		mockSvc := NewMockUserDiscoverer(ctrl)
		profiles := []models.UserProfile{{ID: uuid.New(), Username: "bob"}}
		mockSvc.EXPECT().Discover(gomock.Any(), testUser.ID, "bo").Return(profiles, nil)

		rr := httptest.NewRecorder()
		NewDiscoverHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/users/discover?search=bo", "", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []models.UserProfile
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 1)
		assert.Equal(t, "bob", got[0].Username)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockUserDiscoverer(ctrl)
		mockSvc.EXPECT().Discover(gomock.Any(), testUser.ID, "").Return(nil, errInternal)

		rr := httptest.NewRecorder()
		NewDiscoverHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/users/discover", "", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
