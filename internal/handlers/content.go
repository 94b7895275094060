package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/second-brain/internal/models"
	"github.com/sbilibin2017/second-brain/internal/services"
)

//go:generate mockgen -source=content.go -destination=mock_content.go -package=handlers

// ContentCreator stores new content of the caller.
type ContentCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in services.CreateContentInput) (*models.Content, error)
}

// ContentLister lists the caller's content.
type ContentLister interface {
	List(ctx context.Context, userID uuid.UUID, filter models.ContentFilter) ([]models.Content, error)
}

// ContentUpdater applies partial updates to the caller's content.
type ContentUpdater interface {
	Update(ctx context.Context, userID, contentID uuid.UUID, in services.UpdateContentInput) (*models.Content, error)
}

// ContentDeleter deletes content of the caller.
type ContentDeleter interface {
	Delete(ctx context.Context, userID, contentID uuid.UUID) error
}

// CreateContentRequest represents the JSON body for saving content
// swagger:model CreateContentRequest
type CreateContentRequest struct {
	// Title
	// required: true
	// default: Go proverbs
	Title string `json:"title" validate:"required,max=500"`

	// External URL the short links redirect to
	// default: https://go-proverbs.github.io
	Link *string `json:"link" validate:"omitempty,http_url"`

	// Content type
	// required: true
	// default: link
	Type string `json:"type" validate:"required,oneof=tweet youtube link image note"`

	// Tag ids of the caller or new tag titles
	Tags []string `json:"tags" validate:"omitempty,dive,max=64"`

	// Existing category of the caller
	CategoryID *string `json:"categoryId" validate:"omitempty,uuid"`

	// Category name, found or created when categoryId is absent
	CategoryName *string `json:"categoryName" validate:"omitempty,max=100"`
}

// UpdateContentRequest represents the JSON body for a partial content update
// swagger:model UpdateContentRequest
type UpdateContentRequest struct {
	Title      *string  `json:"title" validate:"omitempty,min=1,max=500"`
	Link       *string  `json:"link" validate:"omitempty,http_url"`
	Type       *string  `json:"type" validate:"omitempty,oneof=tweet youtube link image note"`
	Tags       []string `json:"tags"`
	CategoryID *string  `json:"categoryId" validate:"omitempty,uuid"`
}

// ContentResponse wraps a single content item
// swagger:model ContentResponse
type ContentResponse struct {
	Content models.Content `json:"content"`
}

// ContentListResponse lists content
// swagger:model ContentListResponse
type ContentListResponse struct {
	Content []models.Content `json:"content"`
}

// NewCreateContentHandler returns an HTTP handler saving content.
// The category comes from categoryId or is found or created by categoryName.
// Tags are trimmed and lowercased; unknown ones are created for the caller.
// @Summary Save content
// @Tags content
// @Accept json
// @Produce json
// @Param request body handlers.CreateContentRequest true "Content"
// @Success 201 {object} handlers.ContentResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or category"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/content [post]
// @Security BearerAuth
func NewCreateContentHandler(svc ContentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req CreateContentRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		categoryID, _ := parseOptionalUUID(req.CategoryID)

		content, err := svc.Create(r.Context(), userID, services.CreateContentInput{
			Title:        req.Title,
			Link:         req.Link,
			Type:         req.Type,
			Tags:         req.Tags,
			CategoryID:   categoryID,
			CategoryName: req.CategoryName,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCategory):
				writeError(w, http.StatusBadRequest, "Invalid category")
			case errors.Is(err, services.ErrCategoryRequired):
				writeError(w, http.StatusBadRequest, "Category ID or name is required")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, ContentResponse{Content: *content})
	}
}

// NewListContentHandler returns an HTTP handler listing the caller's content, newest first.
// @Summary List content
// @Tags content
// @Produce json
// @Param categoryId query string false "Only content in this category"
// @Param tagId query string false "Only content with this tag"
// @Param type query string false "Only content of this type"
// @Success 200 {object} handlers.ContentListResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/content [get]
// @Security BearerAuth
func NewListContentHandler(svc ContentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var filter models.ContentFilter
		query := r.URL.Query()

		// malformed ids drop the filter instead of failing the request
		for _, p := range []struct {
			name string
			dst  **uuid.UUID
		}{
			{"categoryId", &filter.CategoryID},
			{"tagId", &filter.TagID},
		} {
			raw := query.Get(p.name)
			if id, ok := parseOptionalUUID(&raw); ok {
				*p.dst = id
			}
		}

		if t := query.Get("type"); t != "" {
			filter.Type = &t
		}

		content, err := svc.List(r.Context(), userID, filter)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if content == nil {
			content = []models.Content{}
		}

		writeJSON(w, http.StatusOK, ContentListResponse{Content: content})
	}
}

// NewUpdateContentHandler returns an HTTP handler updating content.
// @Summary Update content
// @Description Only the given fields change. Tags are replaced by the listed tag ids the caller owns.
// @Tags content
// @Accept json
// @Produce json
// @Param contentId path string true "Content ID"
// @Param request body handlers.UpdateContentRequest true "Changes"
// @Success 200 {object} handlers.ContentResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or category"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Content not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/content/{contentId} [patch]
// @Security BearerAuth
func NewUpdateContentHandler(svc ContentUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		contentID, ok := uuidParam(w, r, "contentId")
		if !ok {
			return
		}

		var req UpdateContentRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		categoryID, _ := parseOptionalUUID(req.CategoryID)

		content, err := svc.Update(r.Context(), userID, contentID, services.UpdateContentInput{
			Title:      req.Title,
			Link:       req.Link,
			Type:       req.Type,
			Tags:       req.Tags,
			CategoryID: categoryID,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrContentNotFound):
				writeError(w, http.StatusNotFound, "Content not found")
			case errors.Is(err, services.ErrInvalidCategory):
				writeError(w, http.StatusBadRequest, "Invalid category")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, ContentResponse{Content: *content})
	}
}

// NewDeleteContentHandler returns an HTTP handler deleting content.
// Short links to it stay and stop resolving.
// @Summary Delete content
// @Tags content
// @Produce json
// @Param contentId path string true "Content ID"
// @Success 200 {object} handlers.MessageResponse "Content deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Content not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/content/{contentId} [delete]
// @Security BearerAuth
func NewDeleteContentHandler(svc ContentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		contentID, ok := uuidParam(w, r, "contentId")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, contentID); err != nil {
			if errors.Is(err, services.ErrContentNotFound) {
				writeError(w, http.StatusNotFound, "Content not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Content deleted"})
	}
}

// RegisterContentHandlers registers the content routes. Writes spanning
// several statements run inside tx.
func RegisterContentHandlers(r chi.Router, tx func(http.Handler) http.Handler, create, list, update, del http.HandlerFunc) {
	r.With(tx).Post("/", create)
	r.Get("/", list)
	r.With(tx).Patch("/{contentId}", update)
	r.Delete("/{contentId}", del)
}
