package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/second-brain/internal/logger"
	"github.com/sbilibin2017/second-brain/internal/models"
	"github.com/sbilibin2017/second-brain/internal/repositories"
)

//go:generate mockgen -source=category.go -destination=mock_category.go -package=services

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

// CategoryStore is the owner-scoped category storage.
type CategoryStore interface {
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*models.CategoryDB, error)
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*models.CategoryDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, error)
	Save(ctx context.Context, userID uuid.UUID, name string) (*models.CategoryDB, error)
	Rename(ctx context.Context, userID, categoryID uuid.UUID, name string) (*models.CategoryDB, error)
	Delete(ctx context.Context, userID, categoryID uuid.UUID) (bool, error)
}

type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

// Create returns the owner's category named name, creating it when missing.
// created tells whether a new row was inserted.
func (svc *CategoryService) Create(ctx context.Context, userID uuid.UUID, name string) (category *models.CategoryDB, created bool, err error) {
	return findOrCreateCategory(ctx, svc.store, userID, name)
}

func (svc *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, error) {
	categories, err := svc.store.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "userID", userID, "err", err)
		return nil, err
	}
	return categories, nil
}

func (svc *CategoryService) Rename(ctx context.Context, userID, categoryID uuid.UUID, name string) (*models.CategoryDB, error) {
	category, err := svc.store.Rename(ctx, userID, categoryID, name)
	switch {
	case errors.Is(err, repositories.ErrCategoryConflict):
		return nil, ErrCategoryAlreadyExists
	case err != nil:
		logger.Log.Errorw("failed to rename category", "userID", userID, "categoryID", categoryID, "err", err)
		return nil, err
	case category == nil:
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (svc *CategoryService) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	deleted, err := svc.store.Delete(ctx, userID, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to delete category", "userID", userID, "categoryID", categoryID, "err", err)
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}

// findOrCreateCategory looks the name up first and inserts only when absent.
// Losing an insert race to a concurrent request falls back to the winner's row.
func findOrCreateCategory(ctx context.Context, store CategoryStore, userID uuid.UUID, name string) (*models.CategoryDB, bool, error) {
	existing, err := store.GetByName(ctx, userID, name)
	if err != nil {
		logger.Log.Errorw("failed to get category by name", "userID", userID, "name", name, "err", err)
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	category, err := store.Save(ctx, userID, name)
	if errors.Is(err, repositories.ErrCategoryConflict) {
		existing, err = store.GetByName(ctx, userID, name)
		if err == nil && existing == nil {
			err = ErrCategoryNotFound
		}
		if err != nil {
			logger.Log.Errorw("failed to reload category after conflict", "userID", userID, "name", name, "err", err)
			return nil, false, err
		}
		return existing, false, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to save category", "userID", userID, "name", name, "err", err)
		return nil, false, err
	}
	return category, true, nil
}
