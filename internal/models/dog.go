package models

import (
	"time"

	"github.com/google/uuid"
)

// DogDB represents a dog row in the database
type DogDB struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OwnerID   uuid.UUID `json:"owner_id" db:"owner_id"`
	Name      string    `json:"name" db:"name"`
	Breed     string    `json:"breed" db:"breed"`
	Age       *int      `json:"age" db:"age"`       // Optional, years
	Weight    *float64  `json:"weight" db:"weight"` // Optional, kilograms
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DogInput carries the fields for a new dog.
type DogInput struct {
	Name   string
	Breed  string
	Age    *int
	Weight *float64
}

// DogPatch carries a partial update. Nil fields are left unchanged.
type DogPatch struct {
	Name   *string
	Breed  *string
	Age    *int
	Weight *float64
}

// Apply overwrites the fields of d that are set in p.
func (p DogPatch) Apply(d *DogDB) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Breed != nil {
		d.Breed = *p.Breed
	}
	if p.Age != nil {
		d.Age = p.Age
	}
	if p.Weight != nil {
		d.Weight = p.Weight
	}
}
