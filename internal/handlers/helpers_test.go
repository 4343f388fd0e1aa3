package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/jwt"
	"github.com/sbilibin2017/psiarze/internal/middlewares"
	"github.com/sbilibin2017/psiarze/internal/models"
)

var (
	testUser = &models.UserDB{
		ID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Email:     "alice@example.com",
		Username:  "alice",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	testClaims = &jwt.Claims{
		UserID:    testUser.ID,
		Username:  testUser.Username,
		TokenID:   "jti-1",
		ExpiresAt: time.Date(2025, 1, 9, 3, 4, 5, 0, time.UTC),
	}
	errInternal = errors.New("database failure")
)

// newRequest builds a request as the auth middleware would hand it over.
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}

	ctx := middlewares.WithUser(req.Context(), testUser, testClaims)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

// newAnonRequest builds a request without an authenticated user.
func newAnonRequest(method, target, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, target, nil)
	}
	return httptest.NewRequest(method, target, bytes.NewBufferString(body))
}
