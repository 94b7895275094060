package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/second-brain/internal/services"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name             string
		mockSetup        func(tokens *MockTokenExtractor, auth *MockAuthenticator)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tokens *MockTokenExtractor, auth *MockAuthenticator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tokens *MockTokenExtractor, auth *MockAuthenticator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return(uuid.Nil, services.ErrUnauthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "StorageFailure",
			mockSetup: func(tokens *MockTokenExtractor, auth *MockAuthenticator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return(uuid.Nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "ValidToken",
			mockSetup: func(tokens *MockTokenExtractor, auth *MockAuthenticator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "validtoken").
					Return(userID, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := NewMockTokenExtractor(ctrl)
			auth := NewMockAuthenticator(ctrl)
			tt.mockSetup(tokens, auth)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := UserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, userID, got)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			AuthMiddleware(tokens, auth)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if !tt.expectNextCalled {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}

func TestUserIDFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)

	_, ok = UserIDFromContext(WithUserID(req.Context(), uuid.Nil))
	assert.False(t, ok)

	id := uuid.New()
	got, ok := UserIDFromContext(WithUserID(req.Context(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
