package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/second-brain/internal/models"
	"github.com/sbilibin2017/second-brain/internal/services"
)

type contentMocks struct {
	contents   *services.MockContentStore
	categories *services.MockCategoryStore
	tags       *services.MockTagStore
	svc        *services.ContentService
}

func newContentMocks(t *testing.T) *contentMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &contentMocks{
		contents:   services.NewMockContentStore(ctrl),
		categories: services.NewMockCategoryStore(ctrl),
		tags:       services.NewMockTagStore(ctrl),
	}
	m.svc = services.NewContentService(m.contents, m.categories, m.tags)
	return m
}

func strPtr(s string) *string { return &s }

func TestContentService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	category := &models.CategoryDB{CategoryID: uuid.New(), Name: "reading", UserID: userID}
	goTag := &models.TagDB{TagID: uuid.New(), Title: "go", UserID: userID}
	dbTag := &models.TagDB{TagID: uuid.New(), Title: "db", UserID: userID}

	t.Run("category by name with mixed tags", func(t *testing.T) {
		m := newContentMocks(t)

		m.categories.EXPECT().GetByName(gomock.Any(), userID, "reading").Return(nil, nil)
		m.categories.EXPECT().Save(gomock.Any(), userID, "reading").Return(category, nil)
		m.tags.EXPECT().GetByID(gomock.Any(), userID, dbTag.TagID).Return(dbTag, nil)
		m.tags.EXPECT().FindOrCreate(gomock.Any(), userID, "go").Return(goTag, nil).Times(2)
		m.contents.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, row *models.ContentDB) error {
				assert.Equal(t, userID, row.UserID)
				assert.Equal(t, category.CategoryID, *row.CategoryID)
				row.CreatedAt = time.Now()
				return nil
			})
		m.tags.EXPECT().SetContentTags(gomock.Any(), gomock.Any(), []uuid.UUID{goTag.TagID, dbTag.TagID}).Return(nil)

		got, err := m.svc.Create(ctx, userID, services.CreateContentInput{
			Title:        "Go proverbs",
			Link:         strPtr("https://go-proverbs.github.io"),
			Type:         models.ContentTypeLink,
			Tags:         []string{"  Go ", dbTag.TagID.String(), "GO", "   "},
			CategoryName: strPtr("reading"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Go proverbs", got.Title)
		assert.Equal(t, &models.CategoryRef{ID: category.CategoryID, Name: "reading"}, got.Category)
		assert.Equal(t, []models.TagDB{*goTag, *dbTag}, got.Tags)
	})

	t.Run("unowned tag id becomes a title", func(t *testing.T) {
		m := newContentMocks(t)
		foreign := uuid.New()
		created := &models.TagDB{TagID: uuid.New(), Title: foreign.String(), UserID: userID}

		m.categories.EXPECT().GetByID(gomock.Any(), userID, category.CategoryID).Return(category, nil)
		m.tags.EXPECT().GetByID(gomock.Any(), userID, foreign).Return(nil, nil)
		m.tags.EXPECT().FindOrCreate(gomock.Any(), userID, foreign.String()).Return(created, nil)
		m.contents.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.tags.EXPECT().SetContentTags(gomock.Any(), gomock.Any(), []uuid.UUID{created.TagID}).Return(nil)

		got, err := m.svc.Create(ctx, userID, services.CreateContentInput{
			Title:      "note",
			Type:       models.ContentTypeNote,
			Tags:       []string{foreign.String()},
			CategoryID: &category.CategoryID,
		})
		require.NoError(t, err)
		assert.Len(t, got.Tags, 1)
		assert.Nil(t, got.Link)
	})

	t.Run("category of someone else", func(t *testing.T) {
		m := newContentMocks(t)
		other := uuid.New()
		m.categories.EXPECT().GetByID(gomock.Any(), userID, other).Return(nil, nil)

		_, err := m.svc.Create(ctx, userID, services.CreateContentInput{Title: "x", Type: "note", CategoryID: &other})
		assert.ErrorIs(t, err, services.ErrInvalidCategory)
	})

	t.Run("no category at all", func(t *testing.T) {
		m := newContentMocks(t)

		_, err := m.svc.Create(ctx, userID, services.CreateContentInput{Title: "x", Type: "note", CategoryName: strPtr("")})
		assert.ErrorIs(t, err, services.ErrCategoryRequired)
	})

	t.Run("save error", func(t *testing.T) {
		m := newContentMocks(t)
		m.categories.EXPECT().GetByID(gomock.Any(), userID, category.CategoryID).Return(category, nil)
		m.contents.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		_, err := m.svc.Create(ctx, userID, services.CreateContentInput{Title: "x", Type: "note", CategoryID: &category.CategoryID})
		assert.EqualError(t, err, "db error")
	})
}

func TestContentService_List(t *testing.T) {
	m := newContentMocks(t)
	userID := uuid.New()
	categoryID := uuid.New()
	first := models.ContentListItemDB{
		ContentDB:    models.ContentDB{ContentID: uuid.New(), Title: "first", UserID: userID, CategoryID: &categoryID},
		CategoryName: strPtr("reading"),
	}
	second := models.ContentListItemDB{
		ContentDB: models.ContentDB{ContentID: uuid.New(), Title: "second", UserID: userID},
	}
	tag := models.TagDB{TagID: uuid.New(), Title: "go"}
	filter := models.ContentFilter{Type: strPtr("link")}

	m.contents.EXPECT().List(gomock.Any(), userID, filter).Return([]models.ContentListItemDB{first, second}, nil)
	m.tags.EXPECT().ListByContentIDs(gomock.Any(), []uuid.UUID{first.ContentID, second.ContentID}).
		Return(map[uuid.UUID][]models.TagDB{first.ContentID: {tag}}, nil)

	got, err := m.svc.List(context.Background(), userID, filter)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "reading", got[0].Category.Name)
	assert.Equal(t, []models.TagDB{tag}, got[0].Tags)
	assert.Nil(t, got[1].Category)
	assert.Equal(t, []models.TagDB{}, got[1].Tags)
}

func TestContentService_Update(t *testing.T) {
	ctx := context.Background()
	userID, contentID := uuid.New(), uuid.New()
	categoryID := uuid.New()
	row := &models.ContentDB{ContentID: contentID, Title: "renamed", UserID: userID, CategoryID: &categoryID}
	owned := uuid.New()

	t.Run("replaces tags with the owned subset", func(t *testing.T) {
		m := newContentMocks(t)
		foreign := uuid.New()

		m.contents.EXPECT().Update(gomock.Any(), userID, contentID, models.ContentUpdate{Title: strPtr("renamed")}).Return(row, nil)
		m.tags.EXPECT().FilterOwned(gomock.Any(), userID, []uuid.UUID{owned, foreign}).Return([]uuid.UUID{owned}, nil)
		m.tags.EXPECT().SetContentTags(gomock.Any(), contentID, []uuid.UUID{owned}).Return(nil)
		m.categories.EXPECT().GetByID(gomock.Any(), userID, categoryID).Return(&models.CategoryDB{CategoryID: categoryID, Name: "c"}, nil)
		m.tags.EXPECT().ListByContentIDs(gomock.Any(), []uuid.UUID{contentID}).
			Return(map[uuid.UUID][]models.TagDB{contentID: {{TagID: owned, Title: "go"}}}, nil)

		got, err := m.svc.Update(ctx, userID, contentID, services.UpdateContentInput{
			Title: strPtr("renamed"),
			Tags:  []string{owned.String(), "not-a-uuid", foreign.String()},
		})
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Title)
		assert.Equal(t, "c", got.Category.Name)
		assert.Len(t, got.Tags, 1)
	})

	t.Run("not owned", func(t *testing.T) {
		m := newContentMocks(t)
		m.contents.EXPECT().Update(gomock.Any(), userID, contentID, gomock.Any()).Return(nil, nil)

		_, err := m.svc.Update(ctx, userID, contentID, services.UpdateContentInput{Title: strPtr("x")})
		assert.ErrorIs(t, err, services.ErrContentNotFound)
	})

	t.Run("foreign category", func(t *testing.T) {
		m := newContentMocks(t)
		other := uuid.New()
		m.categories.EXPECT().GetByID(gomock.Any(), userID, other).Return(nil, nil)

		_, err := m.svc.Update(ctx, userID, contentID, services.UpdateContentInput{CategoryID: &other})
		assert.ErrorIs(t, err, services.ErrInvalidCategory)
	})
}

func TestContentService_Delete(t *testing.T) {
	userID, contentID := uuid.New(), uuid.New()

	t.Run("deleted", func(t *testing.T) {
		m := newContentMocks(t)
		m.contents.EXPECT().Delete(gomock.Any(), userID, contentID).Return(true, nil)
		assert.NoError(t, m.svc.Delete(context.Background(), userID, contentID))
	})

	t.Run("not owned", func(t *testing.T) {
		m := newContentMocks(t)
		m.contents.EXPECT().Delete(gomock.Any(), userID, contentID).Return(false, nil)
		assert.ErrorIs(t, m.svc.Delete(context.Background(), userID, contentID), services.ErrContentNotFound)
	})
}
