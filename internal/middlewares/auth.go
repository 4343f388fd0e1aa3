package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/jwt"
	"github.com/sbilibin2017/psiarze/internal/logger"
	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/repositories"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter loads the user a token was issued to.
type UserGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

type authKey int

const (
	userKey authKey = iota
	claimsKey
)

// AuthMiddleware returns a middleware that resolves the bearer token to a live user.
// Requests without a valid token, or whose user no longer exists, get 401.
// A failed user lookup gets 500.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Debugw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Debugw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			user, err := users.GetByID(ctx, claims.UserID)
			if errors.Is(err, repositories.ErrNotFound) {
				logger.Log.Debugw("token user no longer exists", "userID", claims.UserID)
				unauthorized(w)
				return
			}
			if err != nil {
				logger.Log.Errorw("token user lookup failed", "request_id", RequestIDFromContext(ctx), "userID", claims.UserID, "err", err)
				internalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user, claims)))
		})
	}
}

// UserFromContext returns the user stored by AuthMiddleware.
func UserFromContext(ctx context.Context) (*models.UserDB, bool) {
	user, ok := ctx.Value(userKey).(*models.UserDB)
	return user, ok && user != nil
}

// ClaimsFromContext returns the token claims stored by AuthMiddleware.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.Claims)
	return claims, ok && claims != nil
}

// WithUser stores user and claims the way AuthMiddleware does.
func WithUser(ctx context.Context, user *models.UserDB, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return context.WithValue(ctx, claimsKey, claims)
}

func internalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
