package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/second-brain/internal/models"
)

// ErrLinkHashConflict means the hash is already taken. Callers retry with a
// new hash; the unique constraint on links.hash is what raises it.
var ErrLinkHashConflict = errors.New("link hash already exists")

// LinkRepository persists short links. Links are never updated or deleted.
type LinkRepository struct {
	db *sqlx.DB
}

func NewLinkRepository(db *sqlx.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

const linkColumns = `link_id, hash, user_id, content_id, created_at`

// Exists reports whether a link with hash is stored. It is only a fast path:
// Create still fails with ErrLinkHashConflict if another request wins the race.
func (r *LinkRepository) Exists(ctx context.Context, hash string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM links WHERE hash = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, hash)
	logQuery(query, []any{hash}, exists, err)

	return exists, err
}

// Create inserts a link and fills its timestamp.
func (r *LinkRepository) Create(ctx context.Context, link *models.LinkDB) error {
	query := `
		INSERT INTO links (link_id, hash, user_id, content_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + linkColumns

	args := []any{link.LinkID, link.Hash, link.UserID, link.ContentID}
	err := r.db.GetContext(ctx, link, query, args...)
	logQuery(query, args, link.CreatedAt, err)

	if isUniqueViolation(err) {
		return ErrLinkHashConflict
	}
	return err
}

// FindByHash returns the link with what is left of its content, or nil.
func (r *LinkRepository) FindByHash(ctx context.Context, hash string) (*models.LinkTarget, error) {
	const query = `
		SELECT l.link_id, l.hash, l.user_id, l.content_id, l.created_at,
		       c.content_id IS NOT NULL AS content_found,
		       c.link AS target_url
		FROM links l
		LEFT JOIN contents c ON c.content_id = l.content_id
		WHERE l.hash = $1
	`

	var target models.LinkTarget
	err := r.db.GetContext(ctx, &target, query, hash)
	logQuery(query, []any{hash}, target.ContentFound, err)

	if absent, err := noRows(err); absent || err != nil {
		return nil, err
	}
	return &target, nil
}

// FindOwnedByHash returns the owner's link with that hash, or nil.
func (r *LinkRepository) FindOwnedByHash(ctx context.Context, userID uuid.UUID, hash string) (*models.LinkDB, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE user_id = $1 AND hash = $2`

	args := []any{userID, hash}
	var link models.LinkDB
	err := r.db.GetContext(ctx, &link, query, args...)
	logQuery(query, args, link.LinkID, err)

	if absent, err := noRows(err); absent || err != nil {
		return nil, err
	}
	return &link, nil
}

// ListByUser returns the owner's links, newest first.
func (r *LinkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LinkDB, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE user_id = $1 ORDER BY created_at DESC, hash`

	links := []models.LinkDB{}
	err := r.db.SelectContext(ctx, &links, query, userID)
	logQuery(query, []any{userID}, len(links), err)

	if err != nil {
		return nil, err
	}
	return links, nil
}
