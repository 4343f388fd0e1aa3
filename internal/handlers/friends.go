package handlers

//go:generate mockgen -source=friends.go -destination=friends_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/services"
)

// FriendLister lists accepted friends.
type FriendLister interface {
	ListFriends(ctx context.Context, userID uuid.UUID) ([]models.UserProfile, error)
}

// FriendRequestLister lists requests sent or received by a user.
type FriendRequestLister interface {
	ListRequests(ctx context.Context, userID uuid.UUID) ([]models.FriendRequestView, error)
}

// FriendRequestSender creates friend requests.
type FriendRequestSender interface {
	SendRequest(ctx context.Context, fromID, toID uuid.UUID) (*models.FriendRequestView, error)
}

// FriendRequestAccepter accepts friend requests.
type FriendRequestAccepter interface {
	Accept(ctx context.Context, callerID, requestID uuid.UUID) (*models.FriendRequestView, error)
}

// FriendRequestRejecter rejects friend requests.
type FriendRequestRejecter interface {
	Reject(ctx context.Context, callerID, requestID uuid.UUID) (*models.FriendRequestView, error)
}

// FriendRequestCreate represents the JSON body for a new friend request
// swagger:model FriendRequestCreate
type FriendRequestCreate struct {
	// required: true
	ToUserID string `json:"to_user_id"`
}

// NewListFriendsHandler returns the caller's friends sorted by username.
// @Summary Friends
// @Tags friends
// @Produce json
// @Success 200 {array} models.UserProfile
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /friends [get]
// @Security BearerAuth
func NewListFriendsHandler(svc FriendLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		friends, err := svc.ListFriends(r.Context(), user.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, friends)
	}
}

// NewListFriendRequestsHandler returns requests the caller sent or received, newest first.
// @Summary Friend requests
// @Tags friends
// @Produce json
// @Success 200 {array} models.FriendRequestView
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /friends/requests [get]
// @Security BearerAuth
func NewListFriendRequestsHandler(svc FriendRequestLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		reqs, err := svc.ListRequests(r.Context(), user.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reqs)
	}
}

// NewSendFriendRequestHandler sends a friend request.
// @Summary Send friend request
// @Tags friends
// @Accept json
// @Produce json
// @Param request body handlers.FriendRequestCreate true "Target user"
// @Success 201 {object} models.FriendRequestView
// @Failure 400 {object} handlers.ErrorResponse "Cannot friend yourself"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Request already exists"
// @Router /friends/requests [post]
// @Security BearerAuth
func NewSendFriendRequestHandler(svc FriendRequestSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req FriendRequestCreate
		if !decodeJSON(w, r, &req) {
			return
		}
		toID, ok := bodyID(w, r, req.ToUserID)
		if !ok {
			return
		}

		view, err := svc.SendRequest(r.Context(), user.ID, toID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, view)
	}
}

// NewAcceptFriendRequestHandler accepts a pending request addressed to the caller.
// @Summary Accept friend request
// @Tags friends
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} models.FriendRequestView
// @Failure 400 {object} handlers.ErrorResponse "Request not pending"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Router /friends/requests/{id}/accept [post]
// @Security BearerAuth
func NewAcceptFriendRequestHandler(svc FriendRequestAccepter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		reqID, ok := pathID(w, r, "id", services.ErrRequestNotFound)
		if !ok {
			return
		}

		view, err := svc.Accept(r.Context(), user.ID, reqID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// NewRejectFriendRequestHandler rejects a pending request addressed to the caller.
// @Summary Reject friend request
// @Tags friends
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} models.FriendRequestView
// @Failure 400 {object} handlers.ErrorResponse "Request not pending"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Router /friends/requests/{id}/reject [post]
// @Security BearerAuth
func NewRejectFriendRequestHandler(svc FriendRequestRejecter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		reqID, ok := pathID(w, r, "id", services.ErrRequestNotFound)
		if !ok {
			return
		}

		view, err := svc.Reject(r.Context(), user.ID, reqID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}
