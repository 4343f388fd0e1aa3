package handlers

//go:generate mockgen -source=chats.go -destination=chats_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/services"
)

// RoomOpener returns the room shared with another user, creating it on first use.
type RoomOpener interface {
	CreateOrGetRoom(ctx context.Context, userID, otherID uuid.UUID) (*models.ChatRoomView, error)
}

// RoomLister lists the caller's rooms.
type RoomLister interface {
	ListRooms(ctx context.Context, userID uuid.UUID) ([]models.ChatRoomView, error)
}

// MessageLister lists a room's messages.
type MessageLister interface {
	ListMessages(ctx context.Context, userID, roomID uuid.UUID) ([]models.ChatMessageDB, error)
}

// MessageSender posts a message to a room.
type MessageSender interface {
	SendMessage(ctx context.Context, userID, roomID uuid.UUID, kind, text string) (*models.ChatMessageDB, error)
}

// RoomCreate represents the JSON body for opening a room
// swagger:model RoomCreate
type RoomCreate struct {
	// required: true
	OtherUserID string `json:"other_user_id"`
}

// MessageCreate represents the JSON body for a new message
// swagger:model MessageCreate
type MessageCreate struct {
	// required: true
	Text string `json:"text"`
	// text or announce
	// default: text
	Kind string `json:"kind"`
}

// NewCreateRoomHandler opens a direct room with another user.
// @Summary Open room
// @Description Returns the existing room shared with the other user or creates one.
// @Tags chats
// @Accept json
// @Produce json
// @Param room body handlers.RoomCreate true "Other user"
// @Success 200 {object} models.ChatRoomView
// @Failure 400 {object} handlers.ErrorResponse "Cannot create room with yourself"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /chats/rooms [post]
// @Security BearerAuth
func NewCreateRoomHandler(svc RoomOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req RoomCreate
		if !decodeJSON(w, r, &req) {
			return
		}
		otherID, ok := bodyID(w, r, req.OtherUserID)
		if !ok {
			return
		}

		room, err := svc.CreateOrGetRoom(r.Context(), user.ID, otherID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, room)
	}
}

// NewListRoomsHandler returns the caller's rooms, newest first.
// @Summary Rooms
// @Tags chats
// @Produce json
// @Success 200 {array} models.ChatRoomView
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /chats/rooms [get]
// @Security BearerAuth
func NewListRoomsHandler(svc RoomLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		rooms, err := svc.ListRooms(r.Context(), user.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rooms)
	}
}

// NewListMessagesHandler returns a room's messages, oldest first.
// @Summary Messages
// @Tags chats
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {array} models.ChatMessageDB
// @Failure 404 {object} handlers.ErrorResponse "Room not found"
// @Router /chats/rooms/{id}/messages [get]
// @Security BearerAuth
func NewListMessagesHandler(svc MessageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		roomID, ok := pathID(w, r, "id", services.ErrRoomNotFound)
		if !ok {
			return
		}

		msgs, err := svc.ListMessages(r.Context(), user.ID, roomID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, msgs)
	}
}

// NewSendMessageHandler posts a message to a room the caller belongs to.
// @Summary Send message
// @Tags chats
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param message body handlers.MessageCreate true "Message"
// @Success 201 {object} models.ChatMessageDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid kind or text"
// @Failure 404 {object} handlers.ErrorResponse "Room not found"
// @Router /chats/rooms/{id}/messages [post]
// @Security BearerAuth
func NewSendMessageHandler(svc MessageSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		roomID, ok := pathID(w, r, "id", services.ErrRoomNotFound)
		if !ok {
			return
		}

		var req MessageCreate
		if !decodeJSON(w, r, &req) {
			return
		}

		msg, err := svc.SendMessage(r.Context(), user.ID, roomID, req.Kind, req.Text)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, msg)
	}
}
