package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationDB represents one user_locations snapshot. The row with the highest Seq
// for a user is that user's current location.
type LocationDB struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Seq       int64     `json:"-" db:"seq"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Lat       float64   `json:"lat" db:"lat"`
	Lng       float64   `json:"lng" db:"lng"`
	IsSharing bool      `json:"is_sharing" db:"is_sharing"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LocationView is a snapshot annotated with its owner's username.
type LocationView struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Lat       float64   `json:"lat" db:"lat"`
	Lng       float64   `json:"lng" db:"lng"`
	IsSharing bool      `json:"is_sharing" db:"is_sharing"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
