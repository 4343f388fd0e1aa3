package handlers

//go:generate mockgen -source=locations.go -destination=locations_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/services"
)

// LocationUpserter records the caller's location.
type LocationUpserter interface {
	UpsertMine(ctx context.Context, user *models.UserDB, lat, lng float64, isSharing bool) (*models.LocationView, error)
}

// FriendLocationLister lists friends' shared locations.
type FriendLocationLister interface {
	ListFriendLocations(ctx context.Context, userID uuid.UUID) ([]models.LocationView, error)
}

// FriendLocationGetter returns one friend's shared location.
type FriendLocationGetter interface {
	GetFriendLocation(ctx context.Context, userID, friendID uuid.UUID) (*models.LocationView, error)
}

// LocationUpsert represents the JSON body for a location update
// swagger:model LocationUpsert
type LocationUpsert struct {
	// required: true
	Lat *float64 `json:"lat"`
	// required: true
	Lng *float64 `json:"lng"`
	// default: true
	IsSharing *bool `json:"is_sharing"`
}

// NewUpsertLocationHandler records the caller's current location.
// @Summary Update my location
// @Tags locations
// @Accept json
// @Produce json
// @Param location body handlers.LocationUpsert true "Location"
// @Success 200 {object} models.LocationView
// @Failure 400 {object} handlers.ErrorResponse "Invalid coordinates"
// @Router /locations/me [put]
// @Security BearerAuth
func NewUpsertLocationHandler(svc LocationUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req LocationUpsert
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Lat == nil || req.Lng == nil {
			writeErrorMessage(w, http.StatusBadRequest, "lat and lng are required")
			return
		}
		sharing := true
		if req.IsSharing != nil {
			sharing = *req.IsSharing
		}

		loc, err := svc.UpsertMine(r.Context(), user, *req.Lat, *req.Lng, sharing)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, loc)
	}
}

// NewListFriendLocationsHandler returns the current location of every sharing friend.
// @Summary Friends' locations
// @Tags locations
// @Produce json
// @Success 200 {array} models.LocationView
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /locations/friends [get]
// @Security BearerAuth
func NewListFriendLocationsHandler(svc FriendLocationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		locs, err := svc.ListFriendLocations(r.Context(), user.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, locs)
	}
}

// NewGetFriendLocationHandler returns one friend's current location.
// @Summary Friend's location
// @Tags locations
// @Produce json
// @Param id path string true "Friend user ID"
// @Success 200 {object} models.LocationView
// @Failure 404 {object} handlers.ErrorResponse "Not friends, or friend is not sharing"
// @Router /locations/friends/{id} [get]
// @Security BearerAuth
func NewGetFriendLocationHandler(svc FriendLocationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		friendID, ok := pathID(w, r, "id", services.ErrNotFriends)
		if !ok {
			return
		}

		loc, err := svc.GetFriendLocation(r.Context(), user.ID, friendID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, loc)
	}
}
