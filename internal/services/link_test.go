package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/second-brain/internal/models"
	"github.com/sbilibin2017/second-brain/internal/repositories"
	"github.com/sbilibin2017/second-brain/internal/services"
)

const testBaseURL = "http://localhost:3000"

type linkMocks struct {
	links     *services.MockLinkStore
	contents  *services.MockContentReader
	generator *services.MockHashGenerator
	visits    *services.MockVisitCounter
	publisher *services.MockEventPublisher
	svc       *services.LinkService
}

func newLinkMocks(t *testing.T) *linkMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &linkMocks{
		links:     services.NewMockLinkStore(ctrl),
		contents:  services.NewMockContentReader(ctrl),
		generator: services.NewMockHashGenerator(ctrl),
		visits:    services.NewMockVisitCounter(ctrl),
		publisher: services.NewMockEventPublisher(ctrl),
	}
	m.svc = services.NewLinkService(m.links, m.contents, m.generator, m.visits, m.publisher, testBaseURL)
	return m
}

func TestLinkService_CreateLink(t *testing.T) {
	ctx := context.Background()
	userID, contentID := uuid.New(), uuid.New()
	content := &models.ContentDB{ContentID: contentID, UserID: userID, Link: strPtr("https://example.com")}

	t.Run("first hash is free", func(t *testing.T) {
		m := newLinkMocks(t)

		m.contents.EXPECT().GetByID(gomock.Any(), userID, contentID).Return(content, nil)
		m.generator.EXPECT().Generate().Return("a1b2c3d4", nil)
		m.links.EXPECT().Exists(gomock.Any(), "a1b2c3d4").Return(false, nil)
		m.links.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *models.LinkDB) error {
				assert.Equal(t, "a1b2c3d4", l.Hash)
				assert.Equal(t, userID, l.UserID)
				assert.Equal(t, contentID, l.ContentID)
				return nil
			})
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, e models.LinkEvent) {
				assert.Equal(t, models.LinkEventCreated, e.Type)
				assert.Equal(t, "a1b2c3d4", e.Hash)
				assert.Equal(t, contentID.String(), e.ContentID)
			})

		link, err := m.svc.CreateLink(ctx, userID, contentID)
		require.NoError(t, err)
		assert.Equal(t, "a1b2c3d4", link.Hash)
		assert.Equal(t, contentID, link.ContentID)
		assert.Equal(t, "http://localhost:3000/link/a1b2c3d4", link.URL)
	})

	t.Run("forced collision retries until a free hash", func(t *testing.T) {
		m := newLinkMocks(t)

		m.contents.EXPECT().GetByID(gomock.Any(), userID, contentID).Return(content, nil)
		gomock.InOrder(
			// another request inserts the same hash between our check and our insert
			m.generator.EXPECT().Generate().Return("deadbeef", nil),
			m.links.EXPECT().Exists(gomock.Any(), "deadbeef").Return(false, nil),
			m.links.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repositories.ErrLinkHashConflict),
			// the generator keeps producing the taken hash
			m.generator.EXPECT().Generate().Return("deadbeef", nil),
			m.links.EXPECT().Exists(gomock.Any(), "deadbeef").Return(true, nil),
			m.generator.EXPECT().Generate().Return("0badf00d", nil),
			m.links.EXPECT().Exists(gomock.Any(), "0badf00d").Return(false, nil),
			m.links.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		link, err := m.svc.CreateLink(ctx, userID, contentID)
		require.NoError(t, err)
		assert.Equal(t, "0badf00d", link.Hash)
	})

	t.Run("same content twice gives distinct hashes", func(t *testing.T) {
		m := newLinkMocks(t)

		m.contents.EXPECT().GetByID(gomock.Any(), userID, contentID).Return(content, nil).Times(2)
		gomock.InOrder(
			m.generator.EXPECT().Generate().Return("11111111", nil),
			m.generator.EXPECT().Generate().Return("22222222", nil),
		)
		m.links.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		m.links.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(2)

		first, err := m.svc.CreateLink(ctx, userID, contentID)
		require.NoError(t, err)
		second, err := m.svc.CreateLink(ctx, userID, contentID)
		require.NoError(t, err)
		assert.NotEqual(t, first.Hash, second.Hash)
	})

	t.Run("content not owned", func(t *testing.T) {
		m := newLinkMocks(t)
		m.contents.EXPECT().GetByID(gomock.Any(), userID, contentID).Return(nil, nil)

		_, err := m.svc.CreateLink(ctx, userID, contentID)
		assert.ErrorIs(t, err, services.ErrContentNotFound)
	})

	t.Run("storage error is not retried", func(t *testing.T) {
		m := newLinkMocks(t)
		dbErr := errors.New("connection reset")

		m.contents.EXPECT().GetByID(gomock.Any(), userID, contentID).Return(content, nil)
		m.generator.EXPECT().Generate().Return("a1b2c3d4", nil)
		m.links.EXPECT().Exists(gomock.Any(), "a1b2c3d4").Return(false, nil)
		m.links.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dbErr)

		_, err := m.svc.CreateLink(ctx, userID, contentID)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("cancelled context stops the retry loop", func(t *testing.T) {
		m := newLinkMocks(t)
		cctx, cancel := context.WithCancel(ctx)

		m.contents.EXPECT().GetByID(gomock.Any(), userID, contentID).Return(content, nil)
		m.generator.EXPECT().Generate().Return("deadbeef", nil)
		m.links.EXPECT().Exists(gomock.Any(), "deadbeef").
			DoAndReturn(func(context.Context, string) (bool, error) {
				cancel()
				return true, nil
			})

		_, err := m.svc.CreateLink(cctx, userID, contentID)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("nil publisher", func(t *testing.T) {
		m := newLinkMocks(t)
		svc := services.NewLinkService(m.links, m.contents, m.generator, m.visits, nil, testBaseURL)

		m.contents.EXPECT().GetByID(gomock.Any(), userID, contentID).Return(content, nil)
		m.generator.EXPECT().Generate().Return("a1b2c3d4", nil)
		m.links.EXPECT().Exists(gomock.Any(), "a1b2c3d4").Return(false, nil)
		m.links.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.CreateLink(ctx, userID, contentID)
		assert.NoError(t, err)
	})
}

func TestLinkService_Resolve(t *testing.T) {
	ctx := context.Background()
	link := models.LinkDB{LinkID: uuid.New(), Hash: "a1b2c3d4", UserID: uuid.New(), ContentID: uuid.New()}

	tests := []struct {
		name      string
		target    *models.LinkTarget
		findErr   error
		visitErr  error
		wantURL   string
		wantErr   error
		wantVisit bool
	}{
		{
			name:      "resolved",
			target:    &models.LinkTarget{LinkDB: link, ContentFound: true, TargetURL: strPtr("https://example.com")},
			wantURL:   "https://example.com",
			wantVisit: true,
		},
		{
			name:      "visit counter failure does not block the redirect",
			target:    &models.LinkTarget{LinkDB: link, ContentFound: true, TargetURL: strPtr("https://example.com")},
			visitErr:  errors.New("redis down"),
			wantURL:   "https://example.com",
			wantVisit: true,
		},
		{
			name:    "unknown hash",
			wantErr: services.ErrLinkNotFound,
		},
		{
			name:    "content deleted",
			target:  &models.LinkTarget{LinkDB: link},
			wantErr: services.ErrLinkUnresolvable,
		},
		{
			name:    "content without url",
			target:  &models.LinkTarget{LinkDB: link, ContentFound: true},
			wantErr: services.ErrLinkUnresolvable,
		},
		{
			name:    "content with empty url",
			target:  &models.LinkTarget{LinkDB: link, ContentFound: true, TargetURL: strPtr("")},
			wantErr: services.ErrLinkUnresolvable,
		},
		{
			name:    "storage error",
			findErr: errors.New("db error"),
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newLinkMocks(t)

			m.links.EXPECT().FindByHash(gomock.Any(), "a1b2c3d4").Return(tt.target, tt.findErr)
			if tt.wantVisit {
				m.visits.EXPECT().Increment(gomock.Any(), "a1b2c3d4").Return(int64(1), tt.visitErr)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, e models.LinkEvent) {
						assert.Equal(t, models.LinkEventVisited, e.Type)
					})
			}

			url, err := m.svc.Resolve(ctx, "a1b2c3d4")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, url)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}

func TestLinkService_ListLinks(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	rows := []models.LinkDB{
		{Hash: "aaaaaaaa", UserID: userID, ContentID: uuid.New()},
		{Hash: "bbbbbbbb", UserID: userID, ContentID: uuid.New()},
	}

	t.Run("with counters", func(t *testing.T) {
		m := newLinkMocks(t)
		m.links.EXPECT().ListByUser(gomock.Any(), userID).Return(rows, nil)
		m.visits.EXPECT().GetMany(gomock.Any(), []string{"aaaaaaaa", "bbbbbbbb"}).
			Return(map[string]int64{"aaaaaaaa": 3}, nil)

		got, err := m.svc.ListLinks(ctx, userID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(3), got[0].Visits)
		assert.Equal(t, int64(0), got[1].Visits)
		assert.Equal(t, testBaseURL+"/link/bbbbbbbb", got[1].URL)
	})

	t.Run("counters unavailable", func(t *testing.T) {
		m := newLinkMocks(t)
		m.links.EXPECT().ListByUser(gomock.Any(), userID).Return(rows, nil)
		m.visits.EXPECT().GetMany(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

		got, err := m.svc.ListLinks(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestLinkService_Stats(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	row := &models.LinkDB{Hash: "aaaaaaaa", UserID: userID, ContentID: uuid.New()}

	t.Run("owned link", func(t *testing.T) {
		m := newLinkMocks(t)
		m.links.EXPECT().FindOwnedByHash(gomock.Any(), userID, "aaaaaaaa").Return(row, nil)
		m.visits.EXPECT().Get(gomock.Any(), "aaaaaaaa").Return(int64(7), nil)

		got, err := m.svc.Stats(ctx, userID, "aaaaaaaa")
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.Visits)
		assert.Equal(t, row.ContentID, got.ContentID)
	})

	t.Run("not owned", func(t *testing.T) {
		m := newLinkMocks(t)
		m.links.EXPECT().FindOwnedByHash(gomock.Any(), userID, "aaaaaaaa").Return(nil, nil)

		_, err := m.svc.Stats(ctx, userID, "aaaaaaaa")
		assert.ErrorIs(t, err, services.ErrLinkNotFound)
	})
}
