package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/second-brain/internal/models"
	"github.com/sbilibin2017/second-brain/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) (*models.UserDB, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required,min=3,max=64"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// AuthResponse is returned after a successful registration or login
// swagger:model AuthResponse
type AuthResponse struct {
	// Signed in user
	User models.User `json:"user"`

	// Bearer token for the Authorization header
	Token string `json:"token"`

	// Success message
	// default: signed in
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account and signs it in. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User registered and signed in"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Username already taken"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, token, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Username already taken")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			User:    models.User{ID: user.UserID, Username: user.Username},
			Token:   token,
			Message: "signed in",
		})
	}
}

// RegisterRegisterHandler registers the registration route
func RegisterRegisterHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/register", h)
}
