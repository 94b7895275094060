package models

import (
	"strings"

	"github.com/google/uuid"
)

// TagDB is a label scoped to its owner. Title is always normalized.
// swagger:model Tag
type TagDB struct {
	TagID  uuid.UUID `json:"id" db:"tag_id"`
	Title  string    `json:"title" db:"title"`
	UserID uuid.UUID `json:"-" db:"user_id"`
}

// NormalizeTagTitle trims and lowercases a raw tag.
func NormalizeTagTitle(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
