package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported content types
const (
	ContentTypeTweet   = "tweet"
	ContentTypeYoutube = "youtube"
	ContentTypeLink    = "link"
	ContentTypeImage   = "image"
	ContentTypeNote    = "note"
)

// ContentDB represents a saved item row.
type ContentDB struct {
	ContentID  uuid.UUID  `db:"content_id"`
	Title      string     `db:"title"`
	Link       *string    `db:"link"` // External URL, absent for plain notes
	Type       string     `db:"type"`
	UserID     uuid.UUID  `db:"user_id"`
	CategoryID *uuid.UUID `db:"category_id"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// ContentFilter narrows a content listing. Nil fields are ignored.
type ContentFilter struct {
	CategoryID *uuid.UUID
	TagID      *uuid.UUID
	Type       *string
}

// ContentUpdate carries the optional fields of a partial update.
// A nil TagIDs leaves tags untouched, an empty slice clears them.
type ContentUpdate struct {
	Title      *string
	Link       *string
	Type       *string
	TagIDs     []uuid.UUID
	CategoryID *uuid.UUID
}

// Content is the API view of a saved item with its category and tags.
// swagger:model Content
type Content struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Link      *string      `json:"link,omitempty"`
	Type      string       `json:"type"`
	UserID    uuid.UUID    `json:"user_id"`
	Category  *CategoryRef `json:"category,omitempty"`
	Tags      []TagDB      `json:"tags"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ContentListItemDB is a content row joined with its category name.
type ContentListItemDB struct {
	ContentDB
	CategoryName *string `db:"category_name"`
}
