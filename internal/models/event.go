package models

import "time"

// Activity event types
const (
	EventFriendRequestSent     = "friend_request.sent"
	EventFriendRequestAccepted = "friend_request.accepted"
	EventFriendRequestRejected = "friend_request.rejected"
	EventChatRoomCreated       = "chat.room_created"
	EventChatMessageSent       = "chat.message_sent"
)

// ActivityEvent is published to Kafka after a unit of work commits.
type ActivityEvent struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	ActorID   string    `json:"actor_id"`
	SubjectID string    `json:"subject_id"`
	Timestamp time.Time `json:"timestamp"`
}
