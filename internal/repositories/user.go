package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/second-brain/internal/models"
)

// ErrUsernameConflict is returned when an insert hits the username constraint.
var ErrUsernameConflict = errors.New("username already exists")

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user or nil when there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	return r.get(ctx, query, username)
}

// GetByID returns the user or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`
	return r.get(ctx, query, userID)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)
	logQuery(query, []any{arg}, user.UserID, err)

	if absent, err := noRows(err); absent || err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. The password must already be hashed.
func (r *UserWriteRepository) Save(ctx context.Context, userID uuid.UUID, username, passwordHash string) error {
	const query = `
		INSERT INTO users (user_id, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	res, err := r.db.ExecContext(ctx, query, userID, username, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	// the hash stays out of the log
	logQuery(query, []any{userID, username}, rowsAffected, err)

	if isUniqueViolation(err) {
		return ErrUsernameConflict
	}
	return err
}
