package models

import (
	"time"

	"github.com/google/uuid"
)

// LinkDB is a durable short alias of a content item.
type LinkDB struct {
	LinkID    uuid.UUID `json:"id" db:"link_id"`
	Hash      string    `json:"hash" db:"hash"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ContentID uuid.UUID `json:"content_id" db:"content_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LinkTarget is a link joined with whatever is left of its content.
// ContentFound is false when the content was deleted after the link was made.
type LinkTarget struct {
	LinkDB
	ContentFound bool    `db:"content_found"`
	TargetURL    *string `db:"target_url"`
}

// Link is the API view of a short link.
// swagger:model Link
type Link struct {
	Hash      string    `json:"hash"`
	ContentID uuid.UUID `json:"contentId"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// LinkStats is a link with its redirect counter.
// swagger:model LinkStats
type LinkStats struct {
	Link
	Visits int64 `json:"visits"`
}
