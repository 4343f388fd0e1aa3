package handlers

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/models"
)

// UserDiscoverer searches other users by username.
type UserDiscoverer interface {
	Discover(ctx context.Context, userID uuid.UUID, search string) ([]models.UserProfile, error)
}

// NewMeHandler returns the caller's profile.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} models.UserProfile
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, user.Profile())
	}
}

// NewDiscoverHandler returns an HTTP handler for finding other users.
// @Summary Discover users
// @Description Case-insensitive username search, at most 50 results, the caller excluded.
// @Tags users
// @Produce json
// @Param search query string false "Username fragment"
// @Success 200 {array} models.UserProfile
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/discover [get]
// @Security BearerAuth
func NewDiscoverHandler(svc UserDiscoverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		profiles, err := svc.Discover(r.Context(), user.ID, r.URL.Query().Get("search"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, profiles)
	}
}
