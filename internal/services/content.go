package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/second-brain/internal/logger"
	"github.com/sbilibin2017/second-brain/internal/models"
)

//go:generate mockgen -source=content.go -destination=mock_content.go -package=services

var (
	ErrContentNotFound  = errors.New("content not found")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrCategoryRequired = errors.New("category id or name is required")
)

// ContentStore is the owner-scoped content storage.
type ContentStore interface {
	Save(ctx context.Context, content *models.ContentDB) error
	GetByID(ctx context.Context, userID, contentID uuid.UUID) (*models.ContentDB, error)
	List(ctx context.Context, userID uuid.UUID, filter models.ContentFilter) ([]models.ContentListItemDB, error)
	Update(ctx context.Context, userID, contentID uuid.UUID, upd models.ContentUpdate) (*models.ContentDB, error)
	Delete(ctx context.Context, userID, contentID uuid.UUID) (bool, error)
}

// TagStore is the owner-scoped tag storage.
type TagStore interface {
	GetByID(ctx context.Context, userID, tagID uuid.UUID) (*models.TagDB, error)
	FindOrCreate(ctx context.Context, userID uuid.UUID, title string) (*models.TagDB, error)
	FilterOwned(ctx context.Context, userID uuid.UUID, tagIDs []uuid.UUID) ([]uuid.UUID, error)
	SetContentTags(ctx context.Context, contentID uuid.UUID, tagIDs []uuid.UUID) error
	ListByContentIDs(ctx context.Context, contentIDs []uuid.UUID) (map[uuid.UUID][]models.TagDB, error)
}

// CreateContentInput is a validated create request.
type CreateContentInput struct {
	Title        string
	Link         *string
	Type         string
	Tags         []string // tag ids or titles
	CategoryID   *uuid.UUID
	CategoryName *string
}

// UpdateContentInput is a validated partial update. Tags holds raw ids;
// only the ones naming tags of the owner are kept.
type UpdateContentInput struct {
	Title      *string
	Link       *string
	Type       *string
	Tags       []string
	CategoryID *uuid.UUID
}

type ContentService struct {
	contents   ContentStore
	categories CategoryStore
	tags       TagStore
}

func NewContentService(contents ContentStore, categories CategoryStore, tags TagStore) *ContentService {
	return &ContentService{
		contents:   contents,
		categories: categories,
		tags:       tags,
	}
}

// Create stores a content item, resolving its category and tags on the way.
// Callers run it inside a transaction so a failure leaves nothing behind.
func (svc *ContentService) Create(ctx context.Context, userID uuid.UUID, in CreateContentInput) (*models.Content, error) {
	category, err := svc.resolveCategory(ctx, userID, in.CategoryID, in.CategoryName)
	if err != nil {
		return nil, err
	}

	tags, err := svc.resolveTags(ctx, userID, in.Tags)
	if err != nil {
		return nil, err
	}

	row := &models.ContentDB{
		ContentID:  uuid.New(),
		Title:      in.Title,
		Link:       in.Link,
		Type:       in.Type,
		UserID:     userID,
		CategoryID: &category.CategoryID,
	}
	if err := svc.contents.Save(ctx, row); err != nil {
		logger.Log.Errorw("failed to save content", "userID", userID, "err", err)
		return nil, err
	}

	tagIDs := make([]uuid.UUID, len(tags))
	for i, t := range tags {
		tagIDs[i] = t.TagID
	}
	if err := svc.tags.SetContentTags(ctx, row.ContentID, tagIDs); err != nil {
		logger.Log.Errorw("failed to tag content", "contentID", row.ContentID, "err", err)
		return nil, err
	}

	return toContent(*row, &category.Name, tags), nil
}

// List returns the owner's content with categories and tags populated.
func (svc *ContentService) List(ctx context.Context, userID uuid.UUID, filter models.ContentFilter) ([]models.Content, error) {
	items, err := svc.contents.List(ctx, userID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list content", "userID", userID, "err", err)
		return nil, err
	}

	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ContentID
	}
	tagsByContent, err := svc.tags.ListByContentIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to list content tags", "userID", userID, "err", err)
		return nil, err
	}

	result := make([]models.Content, 0, len(items))
	for _, item := range items {
		result = append(result, *toContent(item.ContentDB, item.CategoryName, tagsByContent[item.ContentID]))
	}
	return result, nil
}

// Update applies a partial update to owned content.
func (svc *ContentService) Update(ctx context.Context, userID, contentID uuid.UUID, in UpdateContentInput) (*models.Content, error) {
	upd := models.ContentUpdate{
		Title: in.Title,
		Link:  in.Link,
		Type:  in.Type,
	}

	if in.CategoryID != nil {
		category, err := svc.categories.GetByID(ctx, userID, *in.CategoryID)
		if err != nil {
			logger.Log.Errorw("failed to get category", "userID", userID, "categoryID", *in.CategoryID, "err", err)
			return nil, err
		}
		if category == nil {
			return nil, ErrInvalidCategory
		}
		upd.CategoryID = &category.CategoryID
	}

	row, err := svc.contents.Update(ctx, userID, contentID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update content", "userID", userID, "contentID", contentID, "err", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrContentNotFound
	}

	if in.Tags != nil {
		candidates := make([]uuid.UUID, 0, len(in.Tags))
		for _, raw := range in.Tags {
			if id, err := uuid.Parse(raw); err == nil {
				candidates = append(candidates, id)
			}
		}
		owned, err := svc.tags.FilterOwned(ctx, userID, candidates)
		if err != nil {
			logger.Log.Errorw("failed to filter tags", "userID", userID, "err", err)
			return nil, err
		}
		if err := svc.tags.SetContentTags(ctx, contentID, owned); err != nil {
			logger.Log.Errorw("failed to tag content", "contentID", contentID, "err", err)
			return nil, err
		}
	}

	return svc.load(ctx, *row)
}

func (svc *ContentService) Delete(ctx context.Context, userID, contentID uuid.UUID) error {
	deleted, err := svc.contents.Delete(ctx, userID, contentID)
	if err != nil {
		logger.Log.Errorw("failed to delete content", "userID", userID, "contentID", contentID, "err", err)
		return err
	}
	if !deleted {
		return ErrContentNotFound
	}
	return nil
}

// load populates the category name and tags of a single row.
func (svc *ContentService) load(ctx context.Context, row models.ContentDB) (*models.Content, error) {
	var categoryName *string
	if row.CategoryID != nil {
		category, err := svc.categories.GetByID(ctx, row.UserID, *row.CategoryID)
		if err != nil {
			return nil, err
		}
		if category != nil {
			categoryName = &category.Name
		}
	}

	tagsByContent, err := svc.tags.ListByContentIDs(ctx, []uuid.UUID{row.ContentID})
	if err != nil {
		return nil, err
	}
	return toContent(row, categoryName, tagsByContent[row.ContentID]), nil
}

func (svc *ContentService) resolveCategory(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID, categoryName *string) (*models.CategoryDB, error) {
	switch {
	case categoryID != nil:
		category, err := svc.categories.GetByID(ctx, userID, *categoryID)
		if err != nil {
			logger.Log.Errorw("failed to get category", "userID", userID, "categoryID", *categoryID, "err", err)
			return nil, err
		}
		if category == nil {
			return nil, ErrInvalidCategory
		}
		return category, nil
	case categoryName != nil && *categoryName != "":
		category, _, err := findOrCreateCategory(ctx, svc.categories, userID, *categoryName)
		return category, err
	default:
		return nil, ErrCategoryRequired
	}
}

// resolveTags turns raw tags into owned tags. A raw value naming an owned tag
// id is reused; anything else is normalized and found or created by title.
func (svc *ContentService) resolveTags(ctx context.Context, userID uuid.UUID, raw []string) ([]models.TagDB, error) {
	tags := make([]models.TagDB, 0, len(raw))
	seen := make(map[uuid.UUID]struct{}, len(raw))

	for _, r := range raw {
		candidate := models.NormalizeTagTitle(r)
		if candidate == "" {
			continue
		}

		var tag *models.TagDB
		if id, err := uuid.Parse(candidate); err == nil {
			tag, err = svc.tags.GetByID(ctx, userID, id)
			if err != nil {
				logger.Log.Errorw("failed to get tag", "userID", userID, "tagID", id, "err", err)
				return nil, err
			}
		}
		if tag == nil {
			var err error
			tag, err = svc.tags.FindOrCreate(ctx, userID, candidate)
			if err != nil {
				logger.Log.Errorw("failed to find or create tag", "userID", userID, "title", candidate, "err", err)
				return nil, err
			}
		}

		if _, dup := seen[tag.TagID]; dup {
			continue
		}
		seen[tag.TagID] = struct{}{}
		tags = append(tags, *tag)
	}
	return tags, nil
}

func toContent(row models.ContentDB, categoryName *string, tags []models.TagDB) *models.Content {
	content := &models.Content{
		ID:        row.ContentID,
		Title:     row.Title,
		Link:      row.Link,
		Type:      row.Type,
		UserID:    row.UserID,
		Tags:      tags,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if content.Tags == nil {
		content.Tags = []models.TagDB{}
	}
	if row.CategoryID != nil {
		ref := &models.CategoryRef{ID: *row.CategoryID}
		if categoryName != nil {
			ref.Name = *categoryName
		}
		content.Category = ref
	}
	return content
}
