package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema holds the DDL applied on startup, in order.
// links.content_id has no foreign key: deleting content leaves its links
// dangling and the redirect answers 400 for them.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS categories (
		category_id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, name)
	);`,
	`CREATE TABLE IF NOT EXISTS tags (
		tag_id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		UNIQUE (user_id, title)
	);`,
	`CREATE TABLE IF NOT EXISTS contents (
		content_id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		link TEXT,
		type VARCHAR(16) NOT NULL CHECK (type IN ('tweet', 'youtube', 'link', 'image', 'note')),
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		category_id UUID REFERENCES categories(category_id) ON DELETE SET NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS contents_user_created_idx ON contents (user_id, created_at DESC);`,
	`CREATE TABLE IF NOT EXISTS content_tags (
		content_id UUID NOT NULL REFERENCES contents(content_id) ON DELETE CASCADE,
		tag_id UUID NOT NULL REFERENCES tags(tag_id) ON DELETE CASCADE,
		PRIMARY KEY (content_id, tag_id)
	);`,
	`CREATE TABLE IF NOT EXISTS links (
		link_id UUID PRIMARY KEY,
		hash CHAR(8) NOT NULL UNIQUE,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		content_id UUID NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS links_user_created_idx ON links (user_id, created_at DESC);`,
}

// Migrate applies Schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range Schema {
		_, err := db.ExecContext(ctx, stmt)
		logQuery(stmt, nil, i, err)
		if err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
