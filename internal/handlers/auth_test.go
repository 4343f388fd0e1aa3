package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/psiarze/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"email":"john@example.com","username":"john","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "john", "secret1").
					Return("token123", nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"access_token":"token123","token_type":"bearer"}`,
		},
		{
			name: "email taken",
			body: `{"email":"alice@example.com","username":"alice2","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"email already registered"}`,
		},
		{
			name: "username taken",
			body: `{"email":"new@example.com","username":"alice","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", services.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"username already taken"}`,
		},
		{
			name: "validation",
			body: `{"email":"bad","username":"bob","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", &services.ValidationError{Msg: "invalid email address"})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid email address"}`,
		},
		{
			name: "internal server error",
			body: `{"email":"bob@example.com","username":"bob","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errInternal)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			NewRegisterHandler(mockSvc).ServeHTTP(rr, newAnonRequest(http.MethodPost, "/auth/register", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"email":"alice@example.com","password":"secret1"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice@example.com", "secret1").Return("token123", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"access_token":"token123","token_type":"bearer"}`,
		},
		{
			name: "invalid credentials",
			body: `{"email":"alice@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"invalid email or password"}`,
		},
		{
			name:         "invalid json",
			body:         `[`,
			mockSetup:    func(m *MockLoginer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			NewLoginHandler(mockSvc).ServeHTTP(rr, newAnonRequest(http.MethodPost, "/auth/login", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("revokes current token", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)
		mockSvc.EXPECT().Logout(gomock.Any(), "jti-1", testClaims.ExpiresAt).Return(nil)

		rr := httptest.NewRecorder()
		NewLogoutHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/logout", "", nil))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)
		mockSvc.EXPECT().Logout(gomock.Any(), gomock.Any(), gomock.Any()).Return(errInternal)

		rr := httptest.NewRecorder()
		NewLogoutHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/logout", "", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("no claims", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)

		rr := httptest.NewRecorder()
		NewLogoutHandler(mockSvc).ServeHTTP(rr, newAnonRequest(http.MethodPost, "/auth/logout", ""))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
