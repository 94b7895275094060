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

//go:generate mockgen -source=category.go -destination=mock_category.go -package=handlers

// CategoryCreator finds or creates a category of the caller.
type CategoryCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (*models.CategoryDB, bool, error)
}

// CategoryLister lists the caller's categories.
type CategoryLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, error)
}

// CategoryRenamer renames a category of the caller.
type CategoryRenamer interface {
	Rename(ctx context.Context, userID, categoryID uuid.UUID, name string) (*models.CategoryDB, error)
}

// CategoryDeleter deletes a category of the caller.
type CategoryDeleter interface {
	Delete(ctx context.Context, userID, categoryID uuid.UUID) error
}

// CategoryRequest is the body of category create and rename
// swagger:model CategoryRequest
type CategoryRequest struct {
	// Category name, unique per user
	// required: true
	// default: reading
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryResponse wraps a single category
// swagger:model CategoryResponse
type CategoryResponse struct {
	Category models.CategoryDB `json:"category"`
	Message  string            `json:"message,omitempty"`
}

// CategoriesResponse lists categories
// swagger:model CategoriesResponse
type CategoriesResponse struct {
	Categories []models.CategoryDB `json:"categories"`
}

// NewCreateCategoryHandler returns an HTTP handler creating a category.
// @Summary Create a category
// @Description Returns the existing category with 200 when the name is already used by the caller.
// @Tags category
// @Accept json
// @Produce json
// @Param request body handlers.CategoryRequest true "Category"
// @Success 201 {object} handlers.CategoryResponse "Category created"
// @Success 200 {object} handlers.CategoryResponse "Already exists"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/category [post]
// @Security BearerAuth
func NewCreateCategoryHandler(svc CategoryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req CategoryRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		category, created, err := svc.Create(r.Context(), userID, req.Name)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		if !created {
			writeJSON(w, http.StatusOK, CategoryResponse{Category: *category, Message: "Already exists"})
			return
		}
		writeJSON(w, http.StatusCreated, CategoryResponse{Category: *category})
	}
}

// NewListCategoriesHandler returns an HTTP handler listing the caller's categories.
// @Summary List categories
// @Tags category
// @Produce json
// @Success 200 {object} handlers.CategoriesResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/category [get]
// @Security BearerAuth
func NewListCategoriesHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		categories, err := svc.List(r.Context(), userID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if categories == nil {
			categories = []models.CategoryDB{}
		}

		writeJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
	}
}

// NewUpdateCategoryHandler returns an HTTP handler renaming a category.
// @Summary Rename a category
// @Tags category
// @Accept json
// @Produce json
// @Param categoryId path string true "Category ID"
// @Param request body handlers.CategoryRequest true "New name"
// @Success 200 {object} handlers.CategoryResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Failure 409 {object} handlers.ErrorResponse "Category already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/category/{categoryId} [patch]
// @Security BearerAuth
func NewUpdateCategoryHandler(svc CategoryRenamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		categoryID, ok := uuidParam(w, r, "categoryId")
		if !ok {
			return
		}

		var req CategoryRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		category, err := svc.Rename(r.Context(), userID, categoryID, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryNotFound):
				writeError(w, http.StatusNotFound, "Category not found")
			case errors.Is(err, services.ErrCategoryAlreadyExists):
				writeError(w, http.StatusConflict, "Category already exists")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, CategoryResponse{Category: *category})
	}
}

// NewDeleteCategoryHandler returns an HTTP handler deleting a category.
// Content filed under it keeps existing without a category.
// @Summary Delete a category
// @Tags category
// @Produce json
// @Param categoryId path string true "Category ID"
// @Success 200 {object} handlers.MessageResponse "category deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/category/{categoryId} [delete]
// @Security BearerAuth
func NewDeleteCategoryHandler(svc CategoryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		categoryID, ok := uuidParam(w, r, "categoryId")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, categoryID); err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				writeError(w, http.StatusNotFound, "Category not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "category deleted"})
	}
}

// RegisterCategoryHandlers registers the category routes
func RegisterCategoryHandlers(r chi.Router, create, list, update, del http.HandlerFunc) {
	r.Post("/", create)
	r.Get("/", list)
	r.Patch("/{categoryId}", update)
	r.Delete("/{categoryId}", del)
}
