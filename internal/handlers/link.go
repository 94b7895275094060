package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/second-brain/internal/hashgen"
	"github.com/sbilibin2017/second-brain/internal/logger"
	"github.com/sbilibin2017/second-brain/internal/models"
	"github.com/sbilibin2017/second-brain/internal/services"
)

//go:generate mockgen -source=link.go -destination=mock_link.go -package=handlers

// LinkCreator makes short links for the caller's content.
type LinkCreator interface {
	CreateLink(ctx context.Context, userID, contentID uuid.UUID) (*models.Link, error)
}

// LinkResolver maps a hash to its redirect target.
type LinkResolver interface {
	Resolve(ctx context.Context, hash string) (string, error)
}

// LinkLister lists the caller's links.
type LinkLister interface {
	ListLinks(ctx context.Context, userID uuid.UUID) ([]models.LinkStats, error)
}

// LinkStatsGetter reads the counters of one link of the caller.
type LinkStatsGetter interface {
	Stats(ctx context.Context, userID uuid.UUID, hash string) (*models.LinkStats, error)
}

// CreateLinkRequest represents the JSON body for creating a short link
// swagger:model CreateLinkRequest
type CreateLinkRequest struct {
	// Content to link to
	// required: true
	// default: 2f1a6c1e-8d1b-4f0e-9d43-3c0a5f4f9b21
	ContentID string `json:"contentId" validate:"required,uuid"`
}

// CreatedLink is the link part of a create response
// swagger:model CreatedLink
type CreatedLink struct {
	Hash      string    `json:"hash"`
	ContentID uuid.UUID `json:"contentId"`
	URL       string    `json:"url"`
}

// CreateLinkResponse wraps a new short link
// swagger:model CreateLinkResponse
type CreateLinkResponse struct {
	Link CreatedLink `json:"link"`
}

// LinksResponse lists short links with their visits
// swagger:model LinksResponse
type LinksResponse struct {
	Links []models.LinkStats `json:"links"`
}

// NewCreateLinkHandler returns an HTTP handler creating a short link.
// Every call makes a new hash, also for content that already has links.
// @Summary Create a short link
// @Tags links
// @Accept json
// @Produce json
// @Param request body handlers.CreateLinkRequest true "Content to link"
// @Success 201 {object} handlers.CreateLinkResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed contentId"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Content not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/links [post]
// @Security BearerAuth
func NewCreateLinkHandler(svc LinkCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req CreateLinkRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		contentID, err := uuid.Parse(req.ContentID)
		if err != nil {
			writeFieldError(w, "contentId", "must be a valid UUID")
			return
		}

		link, err := svc.CreateLink(r.Context(), userID, contentID)
		if err != nil {
			if errors.Is(err, services.ErrContentNotFound) {
				writeError(w, http.StatusNotFound, "Content not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreateLinkResponse{Link: CreatedLink{
			Hash:      link.Hash,
			ContentID: link.ContentID,
			URL:       link.URL,
		}})
	}
}

// NewRedirectHandler returns an HTTP handler following a short link.
// It needs no authentication: knowing the hash is enough. Errors are plain text.
// @Summary Follow a short link
// @Tags links
// @Produce plain
// @Param hash path string true "Link hash"
// @Success 302 "Redirect to the content URL"
// @Failure 400 {string} string "No content for this link"
// @Failure 404 {string} string "Link not found"
// @Failure 500 {string} string "Internal server error"
// @Router /link/{hash} [get]
func NewRedirectHandler(svc LinkResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hash := chi.URLParam(r, "hash")
		if !hashgen.Valid(hash) {
			http.Error(w, "Link not found", http.StatusNotFound)
			return
		}

		target, err := svc.Resolve(r.Context(), hash)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrLinkNotFound):
				http.Error(w, "Link not found", http.StatusNotFound)
			case errors.Is(err, services.ErrLinkUnresolvable):
				http.Error(w, "No content for this link", http.StatusBadRequest)
			default:
				logger.Log.Errorw("failed to resolve link", "hash", hash, "error", err)
				http.Error(w, msgInternalError, http.StatusInternalServerError)
			}
			return
		}

		http.Redirect(w, r, target, http.StatusFound)
	}
}

// NewListLinksHandler returns an HTTP handler listing the caller's links, newest first.
// @Summary List short links
// @Tags links
// @Produce json
// @Success 200 {object} handlers.LinksResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/links [get]
// @Security BearerAuth
func NewListLinksHandler(svc LinkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		links, err := svc.ListLinks(r.Context(), userID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if links == nil {
			links = []models.LinkStats{}
		}

		writeJSON(w, http.StatusOK, LinksResponse{Links: links})
	}
}

// NewLinkStatsHandler returns an HTTP handler with the visit counter of a link.
// @Summary Short link statistics
// @Tags links
// @Produce json
// @Param hash path string true "Link hash"
// @Success 200 {object} models.LinkStats
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Link not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/links/{hash}/stats [get]
// @Security BearerAuth
func NewLinkStatsHandler(svc LinkStatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		hash := chi.URLParam(r, "hash")
		if !hashgen.Valid(hash) {
			writeError(w, http.StatusNotFound, "Link not found")
			return
		}

		stats, err := svc.Stats(r.Context(), userID, hash)
		if err != nil {
			if errors.Is(err, services.ErrLinkNotFound) {
				writeError(w, http.StatusNotFound, "Link not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// RegisterLinkHandlers registers the authenticated link routes
func RegisterLinkHandlers(r chi.Router, create, list, stats http.HandlerFunc) {
	r.Post("/", create)
	r.Get("/", list)
	r.Get("/{hash}/stats", stats)
}

// RegisterRedirectHandler registers the public redirect route
func RegisterRedirectHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/link/{hash}", h)
}
