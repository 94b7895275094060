package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/second-brain/internal/models"
)

// TagRepository stores owner-scoped tags and the content to tag relation.
type TagRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTagRepository(db *sqlx.DB, txGetter TxGetter) *TagRepository {
	return &TagRepository{db: db, txGetter: txGetter}
}

// GetByID returns an owned tag or nil.
func (r *TagRepository) GetByID(ctx context.Context, userID, tagID uuid.UUID) (*models.TagDB, error) {
	const query = `SELECT tag_id, title, user_id FROM tags WHERE user_id = $1 AND tag_id = $2`

	args := []any{userID, tagID}
	var tag models.TagDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tag, query, args...)
	logQuery(query, args, tag.TagID, err)

	if absent, err := noRows(err); absent || err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindOrCreate returns the owner's tag with that title, creating it if needed.
// The upsert keeps concurrent creators from failing on the unique constraint.
func (r *TagRepository) FindOrCreate(ctx context.Context, userID uuid.UUID, title string) (*models.TagDB, error) {
	const query = `
		INSERT INTO tags (tag_id, title, user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, title) DO UPDATE SET title = EXCLUDED.title
		RETURNING tag_id, title, user_id
	`

	args := []any{uuid.New(), title, userID}
	var tag models.TagDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tag, query, args...)
	logQuery(query, args, tag.TagID, err)

	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FilterOwned keeps the ids that name tags of the owner, in input order.
func (r *TagRepository) FilterOwned(ctx context.Context, userID uuid.UUID, tagIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(tagIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	query, args, err := sqlx.In(`SELECT tag_id FROM tags WHERE user_id = ? AND tag_id IN (?)`, userID, tagIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var owned []uuid.UUID
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &owned, query, args...)
	logQuery(query, args, len(owned), err)
	if err != nil {
		return nil, err
	}

	set := make(map[uuid.UUID]struct{}, len(owned))
	for _, id := range owned {
		set[id] = struct{}{}
	}
	result := make([]uuid.UUID, 0, len(owned))
	for _, id := range tagIDs {
		if _, ok := set[id]; ok {
			result = append(result, id)
			delete(set, id)
		}
	}
	return result, nil
}

// SetContentTags replaces the tags of a content item.
func (r *TagRepository) SetContentTags(ctx context.Context, contentID uuid.UUID, tagIDs []uuid.UUID) error {
	exec := executor(ctx, r.db, r.txGetter)

	const deleteQuery = `DELETE FROM content_tags WHERE content_id = $1`
	_, err := exec.ExecContext(ctx, deleteQuery, contentID)
	logQuery(deleteQuery, []any{contentID}, nil, err)
	if err != nil {
		return err
	}

	const insertQuery = `
		INSERT INTO content_tags (content_id, tag_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	for _, tagID := range tagIDs {
		_, err := exec.ExecContext(ctx, insertQuery, contentID, tagID)
		logQuery(insertQuery, []any{contentID, tagID}, nil, err)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListByContentIDs returns the tags of each content item, sorted by title.
func (r *TagRepository) ListByContentIDs(ctx context.Context, contentIDs []uuid.UUID) (map[uuid.UUID][]models.TagDB, error) {
	result := make(map[uuid.UUID][]models.TagDB, len(contentIDs))
	if len(contentIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT ct.content_id, t.tag_id, t.title, t.user_id
		FROM content_tags ct
		JOIN tags t ON t.tag_id = ct.tag_id
		WHERE ct.content_id IN (?)
		ORDER BY t.title
	`, contentIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var rows []struct {
		ContentID uuid.UUID `db:"content_id"`
		models.TagDB
	}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, args...)
	logQuery(query, args, len(rows), err)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ContentID] = append(result[row.ContentID], row.TagDB)
	}
	return result, nil
}
