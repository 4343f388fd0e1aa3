package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/logger"
	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/passwords"
	"github.com/sbilibin2017/psiarze/internal/repositories"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	Search(ctx context.Context, excludeID uuid.UUID, search string, limit int) ([]models.UserProfile, error)
	ListProfiles(ctx context.Context, ids []uuid.UUID) ([]models.UserProfile, error)
	GetUsernames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, email, username, passwordHash string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// TokenRevoker blacklists a token id until the token expires.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	tx      Transactor
	reader  UserReader
	writer  UserWriter
	jwt     JWTGenerator
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance. revoker may be nil, which
// turns Logout into a no-op.
func NewAuthService(tx Transactor, reader UserReader, writer UserWriter, jwt JWTGenerator, revoker TokenRevoker) *AuthService {
	return &AuthService{
		tx:      tx,
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		revoker: revoker,
	}
}

// Register creates a user and returns a token for it.
func (svc *AuthService) Register(ctx context.Context, email, username, password string) (string, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if err := validateRegistration(email, username, password); err != nil {
		return "", err
	}

	hash, err := passwords.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	var user *models.UserDB
	err = svc.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := svc.reader.GetByEmail(ctx, email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		if _, err := svc.reader.GetByUsername(ctx, username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		created, err := svc.writer.Create(ctx, email, username, hash)
		switch {
		case repositories.IsUniqueViolation(err, repositories.ConstraintUsersEmail):
			return ErrEmailTaken
		case repositories.IsUniqueViolation(err, repositories.ConstraintUsersUsername):
			return ErrUsernameTaken
		case err != nil:
			return err
		}
		user = created
		return nil
	})
	if err != nil {
		logFailure("failed to register user", err, "username", username, "email", email)
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}

// Login authenticates a user by email and returns a token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", invalid("email and password are required")
	}

	var user *models.UserDB
	err := svc.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		user, err = svc.reader.GetByEmail(ctx, email)
		return err
	})
	if errors.Is(err, repositories.ErrNotFound) {
		logger.Log.Debugw("login for unknown email", "email", email)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if !passwords.Verify(password, user.PasswordHash) {
		logger.Log.Debugw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}

// Logout revokes the token identified by tokenID until expiresAt.
func (svc *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if svc.revoker == nil || tokenID == "" {
		return nil
	}
	if err := svc.revoker.Revoke(ctx, tokenID, expiresAt); err != nil {
		logFailure("failed to revoke token", err, "jti", tokenID)
		return err
	}
	return nil
}

func validateRegistration(email, username, password string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid("invalid email address")
	}
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return invalid("username must be 3-50 characters")
	}
	if n := utf8.RuneCountInString(password); n < 6 || n > 128 {
		return invalid("password must be 6-128 characters")
	}
	return nil
}
