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

func TestUpsertLocationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLocationUpserter)
		expectedCode int
	}{
		{
			name: "sharing defaults to true",
			body: `{"lat":52.23,"lng":21.01}`,
			mockSetup: func(m *MockLocationUpserter) {
				m.EXPECT().UpsertMine(gomock.Any(), testUser, 52.23, 21.01, true).
					Return(&models.LocationView{UserID: testUser.ID, Username: "alice", Lat: 52.23, Lng: 21.01, IsSharing: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "stop sharing",
			body: `{"lat":0,"lng":0,"is_sharing":false}`,
			mockSetup: func(m *MockLocationUpserter) {
				m.EXPECT().UpsertMine(gomock.Any(), testUser, 0.0, 0.0, false).
					Return(&models.LocationView{UserID: testUser.ID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "out of range",
			body: `{"lat":100,"lng":0}`,
			mockSetup: func(m *MockLocationUpserter) {
				m.EXPECT().UpsertMine(gomock.Any(), testUser, 100.0, 0.0, true).
					Return(nil, &services.ValidationError{Msg: "lat must be between -90 and 90"})
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing coordinates",
			body:         `{"lat":1}`,
			mockSetup:    func(m *MockLocationUpserter) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLocationUpserter(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			NewUpsertLocationHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPut, "/locations/me", tt.body, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListFriendLocationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bob := uuid.New()
	mockSvc := NewMockFriendLocationLister(ctrl)
	mockSvc.EXPECT().ListFriendLocations(gomock.Any(), testUser.ID).
		Return([]models.LocationView{{UserID: bob, Username: "bob", Lat: 1.5, Lng: 2.5, IsSharing: true}}, nil)

	rr := httptest.NewRecorder()
	NewListFriendLocationsHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/locations/friends", "", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var locs []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &locs))
	assert.Equal(t, "bob", locs[0]["username"])
	assert.Equal(t, 1.5, locs[0]["lat"])
	assert.Equal(t, true, locs[0]["is_sharing"])
}

func TestGetFriendLocationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bob := uuid.New()
	params := map[string]string{"id": bob.String()}

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{"not friends", services.ErrNotFriends, http.StatusNotFound, `{"error":"you are not friends"}`},
		{"not sharing", services.ErrNoLocation, http.StatusNotFound, `{"error":"friend is not sharing location"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFriendLocationGetter(ctrl)
			mockSvc.EXPECT().GetFriendLocation(gomock.Any(), testUser.ID, bob).Return(nil, tt.err)

			rr := httptest.NewRecorder()
			NewGetFriendLocationHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/", "", params))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockFriendLocationGetter(ctrl)
		mockSvc.EXPECT().GetFriendLocation(gomock.Any(), testUser.ID, bob).
			Return(&models.LocationView{UserID: bob, Username: "bob", IsSharing: true}, nil)

		rr := httptest.NewRecorder()
		NewGetFriendLocationHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/", "", params))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
