package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryDB is a named bucket of content, unique per owner.
// swagger:model Category
type CategoryDB struct {
	CategoryID uuid.UUID `json:"id" db:"category_id"`
	Name       string    `json:"name" db:"name"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// CategoryRef is the category as embedded into content listings.
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
