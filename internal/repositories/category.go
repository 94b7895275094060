package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/second-brain/internal/models"
)

// ErrCategoryConflict is returned when the owner already has a category with that name.
var ErrCategoryConflict = errors.New("category name already exists")

// CategoryRepository stores categories. Every query is scoped by owner.
type CategoryRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCategoryRepository(db *sqlx.DB, txGetter TxGetter) *CategoryRepository {
	return &CategoryRepository{db: db, txGetter: txGetter}
}

const categoryColumns = `category_id, name, user_id, created_at, updated_at`

func (r *CategoryRepository) GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*models.CategoryDB, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = $1 AND category_id = $2`
	return r.get(ctx, query, userID, categoryID)
}

func (r *CategoryRepository) GetByName(ctx context.Context, userID uuid.UUID, name string) (*models.CategoryDB, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = $1 AND name = $2`
	return r.get(ctx, query, userID, name)
}

func (r *CategoryRepository) get(ctx context.Context, query string, args ...any) (*models.CategoryDB, error) {
	var category models.CategoryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &category, query, args...)
	logQuery(query, args, category.CategoryID, err)

	if absent, err := noRows(err); absent || err != nil {
		return nil, err
	}
	return &category, nil
}

// ListByUser returns the owner's categories sorted by name.
func (r *CategoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = $1 ORDER BY name`

	categories := []models.CategoryDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &categories, query, userID)
	logQuery(query, []any{userID}, len(categories), err)

	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Save inserts a category for the owner. A name the owner already uses
// yields ErrCategoryConflict; the statement itself never fails on it, so an
// enclosing transaction stays usable for the follow-up lookup.
func (r *CategoryRepository) Save(ctx context.Context, userID uuid.UUID, name string) (*models.CategoryDB, error) {
	query := `
		INSERT INTO categories (category_id, name, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id, name) DO NOTHING
		RETURNING ` + categoryColumns

	args := []any{uuid.New(), name, userID}
	var category models.CategoryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &category, query, args...)
	logQuery(query, args, category.CategoryID, err)

	absent, err := noRows(err)
	if err != nil {
		return nil, err
	}
	if absent {
		return nil, ErrCategoryConflict
	}
	return &category, nil
}

// Rename changes the name of an owned category. It returns nil when the
// category does not exist or belongs to someone else.
func (r *CategoryRepository) Rename(ctx context.Context, userID, categoryID uuid.UUID, name string) (*models.CategoryDB, error) {
	query := `
		UPDATE categories SET name = $3, updated_at = NOW()
		WHERE user_id = $1 AND category_id = $2
		RETURNING ` + categoryColumns

	args := []any{userID, categoryID, name}
	var category models.CategoryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &category, query, args...)
	logQuery(query, args, category.CategoryID, err)

	if isUniqueViolation(err) {
		return nil, ErrCategoryConflict
	}
	if absent, err := noRows(err); absent || err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes an owned category and reports whether a row was deleted.
func (r *CategoryRepository) Delete(ctx context.Context, userID, categoryID uuid.UUID) (bool, error) {
	const query = `DELETE FROM categories WHERE user_id = $1 AND category_id = $2`

	args := []any{userID, categoryID}
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
