package models

import (
	"time"

	"github.com/google/uuid"
)

// Chat message kinds
const (
	MessageKindText     = "text"
	MessageKindAnnounce = "announce"
)

// ChatRoomDB represents a chat_rooms row.
type ChatRoomDB struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ChatRoomView is a room as seen by one member: Name is the other member's username.
type ChatRoomView struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Name      string    `json:"name" db:"name"`
}

// ChatMessageDB represents a chat_messages row. Seq orders messages that share a timestamp.
type ChatMessageDB struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Seq       int64     `json:"-" db:"seq"`
	RoomID    uuid.UUID `json:"room_id" db:"room_id"`
	SenderID  uuid.UUID `json:"sender_id" db:"sender_id"`
	Kind      string    `json:"kind" db:"kind"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
