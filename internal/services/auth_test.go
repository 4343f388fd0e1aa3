package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/passwords"
	"github.com/sbilibin2017/psiarze/internal/repositories"
	"github.com/sbilibin2017/psiarze/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(&passTx{}, mockReader, mockWriter, mockJWT, nil)

	tests := []struct {
		name     string
		email    string
		username string
		password string
		setup    func()
		wantErr  error
		wantTok  string
	}{
		{
			name:     "successful registration",
			email:    "alice@example.com",
			username: "alice",
			password: "pass123",
			setup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, repositories.ErrNotFound)
				mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, repositories.ErrNotFound)
				mockWriter.EXPECT().
					Create(gomock.Any(), "alice@example.com", "alice", gomock.Any()).
					DoAndReturn(func(_ context.Context, email, username, hash string) (*models.UserDB, error) {
						assert.True(t, passwords.Verify("pass123", hash))
						return &models.UserDB{ID: uuid.New(), Email: email, Username: username}, nil
					})
				mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any(), "alice").Return("token123", nil)
			},
			wantTok: "token123",
		},
		{
			name:     "email taken",
			email:    "bob@example.com",
			username: "bob",
			password: "pass123",
			setup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(&models.UserDB{}, nil)
			},
			wantErr: services.ErrEmailTaken,
		},
		{
			name:     "username taken",
			email:    "bob2@example.com",
			username: "bob",
			password: "pass123",
			setup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "bob2@example.com").Return(nil, repositories.ErrNotFound)
				mockReader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(&models.UserDB{}, nil)
			},
			wantErr: services.ErrUsernameTaken,
		},
		{
			name:     "concurrent duplicate email caught by constraint",
			email:    "carol@example.com",
			username: "carol",
			password: "pass123",
			setup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
				mockReader.EXPECT().GetByUsername(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
				mockWriter.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &repositories.UniqueViolationError{Constraint: repositories.ConstraintUsersEmail})
			},
			wantErr: services.ErrEmailTaken,
		},
		{
			name:     "concurrent duplicate username caught by constraint",
			email:    "dan@example.com",
			username: "dan",
			password: "pass123",
			setup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
				mockReader.EXPECT().GetByUsername(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
				mockWriter.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &repositories.UniqueViolationError{Constraint: repositories.ConstraintUsersUsername})
			},
			wantErr: services.ErrUsernameTaken,
		},
		{
			name:     "reader error",
			email:    "eve@example.com",
			username: "eve",
			password: "pass123",
			setup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errDB)
			},
			wantErr: errDB,
		},
		{
			name:     "invalid email",
			email:    "not-an-email",
			username: "frank",
			password: "pass123",
			setup:    func() {},
			wantErr:  services.ErrValidation,
		},
		{
			name:     "short username",
			email:    "gw@example.com",
			username: "gw",
			password: "pass123",
			setup:    func() {},
			wantErr:  services.ErrValidation,
		},
		{
			name:     "short password",
			email:    "henry@example.com",
			username: "henry",
			password: "12345",
			setup:    func() {},
			wantErr:  services.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			token, err := svc.Register(context.Background(), tt.email, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTok, token)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(&passTx{}, mockReader, mockWriter, mockJWT, nil)

	hashed, err := passwords.Hash("secret1")
	require.NoError(t, err)
	user := &models.UserDB{ID: uuid.New(), Email: "alice@example.com", Username: "alice", PasswordHash: hashed}

	t.Run("successful login", func(t *testing.T) {
		mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), user.ID, "alice").Return("token123", nil)

		token, err := svc.Login(context.Background(), "alice@example.com", "secret1")
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
	})

	t.Run("unknown email and bad password look the same", func(t *testing.T) {
		mockReader.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, repositories.ErrNotFound)
		_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "secret1")

		mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		_, errBadPass := svc.Login(context.Background(), "alice@example.com", "wrong")

		assert.ErrorIs(t, errUnknown, services.ErrInvalidCredentials)
		assert.ErrorIs(t, errBadPass, services.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errBadPass.Error())
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errDB)
		_, err := svc.Login(context.Background(), "alice@example.com", "secret1")
		assert.ErrorIs(t, err, errDB)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(context.Background(), " ", "")
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exp := time.Now().Add(time.Hour)

	t.Run("revokes token id", func(t *testing.T) {
		revoker := services.NewMockTokenRevoker(ctrl)
		svc := services.NewAuthService(&passTx{}, nil, nil, nil, revoker)

		revoker.EXPECT().Revoke(gomock.Any(), "jti-1", exp).Return(nil)
		assert.NoError(t, svc.Logout(context.Background(), "jti-1", exp))
	})

	t.Run("revoker error", func(t *testing.T) {
		revoker := services.NewMockTokenRevoker(ctrl)
		svc := services.NewAuthService(&passTx{}, nil, nil, nil, revoker)

		revoker.EXPECT().Revoke(gomock.Any(), "jti-2", exp).Return(errDB)
		assert.ErrorIs(t, svc.Logout(context.Background(), "jti-2", exp), errDB)
	})

	t.Run("no revoker", func(t *testing.T) {
		svc := services.NewAuthService(&passTx{}, nil, nil, nil, nil)
		assert.NoError(t, svc.Logout(context.Background(), "jti-3", exp))
	})
}
