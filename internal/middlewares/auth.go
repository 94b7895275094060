package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/second-brain/internal/logger"
	"github.com/sbilibin2017/second-brain/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// TokenExtractor pulls the bearer token out of a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves a token to the id of an existing user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

type userIDKey struct{}

// WithUserID stores the authenticated owner id in ctx.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the owner id set by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

// AuthMiddleware rejects requests without a valid token of an existing user
// and passes the user id down in the request context.
func AuthMiddleware(tokens TokenExtractor, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokens.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userID, err := auth.Authenticate(ctx, tokenString)
			if err != nil {
				if errors.Is(err, services.ErrUnauthenticated) {
					writeMessage(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				logger.Log.Errorw("authorization failed", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
