package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/second-brain/internal/logger"
	"github.com/sbilibin2017/second-brain/internal/models"
	"github.com/sbilibin2017/second-brain/internal/repositories"
)

//go:generate mockgen -source=link.go -destination=mock_link.go -package=services

var (
	ErrLinkNotFound = errors.New("link not found")
	// ErrLinkUnresolvable means the link exists but its content is gone or has no URL.
	ErrLinkUnresolvable = errors.New("no content for this link")
)

// HashGenerator produces candidate link hashes.
type HashGenerator interface {
	Generate() (string, error)
}

// LinkStore persists links. Create must fail with
// repositories.ErrLinkHashConflict when the hash is taken.
type LinkStore interface {
	Exists(ctx context.Context, hash string) (bool, error)
	Create(ctx context.Context, link *models.LinkDB) error
	FindByHash(ctx context.Context, hash string) (*models.LinkTarget, error)
	FindOwnedByHash(ctx context.Context, userID uuid.UUID, hash string) (*models.LinkDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LinkDB, error)
}

// ContentReader looks up owned content.
type ContentReader interface {
	GetByID(ctx context.Context, userID, contentID uuid.UUID) (*models.ContentDB, error)
}

// VisitCounter counts redirects per hash.
type VisitCounter interface {
	Increment(ctx context.Context, hash string) (int64, error)
	Get(ctx context.Context, hash string) (int64, error)
	GetMany(ctx context.Context, hashes []string) (map[string]int64, error)
}

// EventPublisher emits link lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event models.LinkEvent)
}

// LinkService creates short links and resolves them back to content URLs.
type LinkService struct {
	links     LinkStore
	contents  ContentReader
	generator HashGenerator
	visits    VisitCounter
	publisher EventPublisher
	baseURL   string
}

// NewLinkService creates a LinkService. publisher may be nil.
func NewLinkService(
	links LinkStore,
	contents ContentReader,
	generator HashGenerator,
	visits VisitCounter,
	publisher EventPublisher,
	baseURL string,
) *LinkService {
	return &LinkService{
		links:     links,
		contents:  contents,
		generator: generator,
		visits:    visits,
		publisher: publisher,
		baseURL:   baseURL,
	}
}

// URL is the public address of hash.
func (svc *LinkService) URL(hash string) string {
	return svc.baseURL + "/link/" + hash
}

// CreateLink makes a new short link for owned content. Every call yields a
// new hash, even for content that already has links.
func (svc *LinkService) CreateLink(ctx context.Context, userID, contentID uuid.UUID) (*models.Link, error) {
	content, err := svc.contents.GetByID(ctx, userID, contentID)
	if err != nil {
		logger.Log.Errorw("failed to get content", "userID", userID, "contentID", contentID, "err", err)
		return nil, err
	}
	if content == nil {
		return nil, ErrContentNotFound
	}

	link := &models.LinkDB{
		LinkID:    uuid.New(),
		UserID:    userID,
		ContentID: contentID,
	}
	if err := svc.reserve(ctx, link); err != nil {
		return nil, err
	}

	svc.publish(ctx, models.LinkEventCreated, link)

	return svc.toLink(*link), nil
}

// reserve draws hashes until one is stored. The existence check only saves a
// round trip on known collisions; the unique constraint behind Create is what
// keeps two concurrent requests from sharing a hash, and losing that race is
// just another collision. The loop has no attempt limit and ends with ctx.
func (svc *LinkService) reserve(ctx context.Context, link *models.LinkDB) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		hash, err := svc.generator.Generate()
		if err != nil {
			logger.Log.Errorw("failed to generate hash", "err", err)
			return err
		}

		exists, err := svc.links.Exists(ctx, hash)
		if err != nil {
			logger.Log.Errorw("failed to check hash", "hash", hash, "err", err)
			return err
		}
		if exists {
			logger.Log.Warnw("hash collision, retrying", "hash", hash, "attempt", attempt)
			continue
		}

		link.Hash = hash
		err = svc.links.Create(ctx, link)
		if errors.Is(err, repositories.ErrLinkHashConflict) {
			logger.Log.Warnw("hash taken on insert, retrying", "hash", hash, "attempt", attempt)
			continue
		}
		if err != nil {
			logger.Log.Errorw("failed to save link", "hash", hash, "err", err)
			return err
		}
		return nil
	}
}

// Resolve returns the URL a hash redirects to and counts the visit.
func (svc *LinkService) Resolve(ctx context.Context, hash string) (string, error) {
	target, err := svc.links.FindByHash(ctx, hash)
	if err != nil {
		logger.Log.Errorw("failed to find link", "hash", hash, "err", err)
		return "", err
	}
	if target == nil {
		return "", ErrLinkNotFound
	}
	if !target.ContentFound || target.TargetURL == nil || *target.TargetURL == "" {
		logger.Log.Infow("link has no target", "hash", hash, "contentFound", target.ContentFound)
		return "", ErrLinkUnresolvable
	}

	if _, err := svc.visits.Increment(ctx, hash); err != nil {
		logger.Log.Errorw("failed to count visit", "hash", hash, "err", err)
	}
	svc.publish(ctx, models.LinkEventVisited, &target.LinkDB)

	return *target.TargetURL, nil
}

// ListLinks returns the owner's links with their visit counters.
func (svc *LinkService) ListLinks(ctx context.Context, userID uuid.UUID) ([]models.LinkStats, error) {
	links, err := svc.links.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list links", "userID", userID, "err", err)
		return nil, err
	}

	hashes := make([]string, len(links))
	for i, l := range links {
		hashes[i] = l.Hash
	}
	visits, err := svc.visits.GetMany(ctx, hashes)
	if err != nil {
		logger.Log.Errorw("failed to read visit counters", "userID", userID, "err", err)
		visits = map[string]int64{}
	}

	result := make([]models.LinkStats, 0, len(links))
	for _, l := range links {
		result = append(result, models.LinkStats{Link: *svc.toLink(l), Visits: visits[l.Hash]})
	}
	return result, nil
}

// Stats returns one owned link with its visit counter.
func (svc *LinkService) Stats(ctx context.Context, userID uuid.UUID, hash string) (*models.LinkStats, error) {
	link, err := svc.links.FindOwnedByHash(ctx, userID, hash)
	if err != nil {
		logger.Log.Errorw("failed to find link", "userID", userID, "hash", hash, "err", err)
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}

	visits, err := svc.visits.Get(ctx, hash)
	if err != nil {
		logger.Log.Errorw("failed to read visit counter", "hash", hash, "err", err)
		return nil, err
	}

	return &models.LinkStats{Link: *svc.toLink(*link), Visits: visits}, nil
}

func (svc *LinkService) toLink(l models.LinkDB) *models.Link {
	return &models.Link{
		Hash:      l.Hash,
		ContentID: l.ContentID,
		URL:       svc.URL(l.Hash),
		CreatedAt: l.CreatedAt,
	}
}

func (svc *LinkService) publish(ctx context.Context, eventType string, link *models.LinkDB) {
	if svc.publisher == nil {
		return
	}
	svc.publisher.Publish(ctx, models.LinkEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Hash:      link.Hash,
		UserID:    link.UserID.String(),
		ContentID: link.ContentID.String(),
		Timestamp: time.Now().Unix(),
	})
}
