package repositories

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/second-brain/internal/models"
)

// ContentRepository stores saved items. Every query is scoped by owner.
type ContentRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewContentRepository(db *sqlx.DB, txGetter TxGetter) *ContentRepository {
	return &ContentRepository{db: db, txGetter: txGetter}
}

const contentColumns = `content_id, title, link, type, user_id, category_id, created_at, updated_at`

// Save inserts content and fills its timestamps.
func (r *ContentRepository) Save(ctx context.Context, content *models.ContentDB) error {
	query := `
		INSERT INTO contents (content_id, title, link, type, user_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + contentColumns

	args := []any{content.ContentID, content.Title, content.Link, content.Type, content.UserID, content.CategoryID}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), content, query, args...)
	logQuery(query, args, content.ContentID, err)

	return err
}

// GetByID returns owned content or nil.
func (r *ContentRepository) GetByID(ctx context.Context, userID, contentID uuid.UUID) (*models.ContentDB, error) {
	query := `SELECT ` + contentColumns + ` FROM contents WHERE user_id = $1 AND content_id = $2`

	args := []any{userID, contentID}
	var content models.ContentDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &content, query, args...)
	logQuery(query, args, content.ContentID, err)

	if absent, err := noRows(err); absent || err != nil {
		return nil, err
	}
	return &content, nil
}

// List returns the owner's content, newest first, narrowed by filter.
func (r *ContentRepository) List(ctx context.Context, userID uuid.UUID, filter models.ContentFilter) ([]models.ContentListItemDB, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT c.content_id, c.title, c.link, c.type, c.user_id, c.category_id,
		       c.created_at, c.updated_at, cat.name AS category_name
		FROM contents c
		LEFT JOIN categories cat ON cat.category_id = c.category_id
		WHERE c.user_id = $1`)
	args := []any{userID}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		sb.WriteString(` AND c.category_id = $` + strconv.Itoa(len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		sb.WriteString(` AND c.type = $` + strconv.Itoa(len(args)))
	}
	if filter.TagID != nil {
		args = append(args, *filter.TagID)
		sb.WriteString(` AND EXISTS (SELECT 1 FROM content_tags ct WHERE ct.content_id = c.content_id AND ct.tag_id = $` +
			strconv.Itoa(len(args)) + `)`)
	}
	sb.WriteString(` ORDER BY c.created_at DESC, c.content_id`)
	query := sb.String()

	items := []models.ContentListItemDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &items, query, args...)
	logQuery(query, args, len(items), err)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies the non-nil fields of upd to owned content. It returns nil
// when the content does not exist or belongs to someone else.
func (r *ContentRepository) Update(ctx context.Context, userID, contentID uuid.UUID, upd models.ContentUpdate) (*models.ContentDB, error) {
	query := `
		UPDATE contents SET
			title = COALESCE($3::TEXT, title),
			link = COALESCE($4::TEXT, link),
			type = COALESCE($5::VARCHAR, type),
			category_id = COALESCE($6::UUID, category_id),
			updated_at = NOW()
		WHERE user_id = $1 AND content_id = $2
		RETURNING ` + contentColumns

	args := []any{userID, contentID, upd.Title, upd.Link, upd.Type, upd.CategoryID}
	var content models.ContentDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &content, query, args...)
	logQuery(query, args, content.ContentID, err)

	if absent, err := noRows(err); absent || err != nil {
		return nil, err
	}
	return &content, nil
}

// Delete removes owned content and reports whether a row was deleted.
// Links pointing at it are left in place.
func (r *ContentRepository) Delete(ctx context.Context, userID, contentID uuid.UUID) (bool, error) {
	const query = `DELETE FROM contents WHERE user_id = $1 AND content_id = $2`

	args := []any{userID, contentID}
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
