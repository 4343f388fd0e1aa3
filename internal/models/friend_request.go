package models

import (
	"time"

	"github.com/google/uuid"
)

// Friend request statuses
const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestRejected = "rejected"
)

// FriendRequestDB represents a friend_requests row. An accepted request is a friendship.
type FriendRequestDB struct {
	ID         uuid.UUID `json:"id" db:"id"`
	FromUserID uuid.UUID `json:"from_user_id" db:"from_user_id"`
	ToUserID   uuid.UUID `json:"to_user_id" db:"to_user_id"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Involves reports whether userID is the sender or the recipient.
func (r *FriendRequestDB) Involves(userID uuid.UUID) bool {
	return r.FromUserID == userID || r.ToUserID == userID
}

// FriendRequestView is a request annotated with both participants' usernames.
type FriendRequestView struct {
	FriendRequestDB
	FromUsername string `json:"from_username"`
	ToUsername   string `json:"to_username"`
}
