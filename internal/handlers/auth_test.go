package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/second-brain/internal/models"
	"github.com/sbilibin2017/second-brain/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "john"}

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockRegisterer)
		expectedCode  int
		expectedMsg   string
		expectedField string
	}{
		{
			name: "success",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "john", "secret").Return(user, "token", nil)
			},
			expectedCode: http.StatusCreated,
			expectedMsg:  "signed in",
		},
		{
			name: "user already exists",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "john", "secret").Return(nil, "", services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedMsg:  "Username already taken",
		},
		{
			name: "internal server error",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "john", "secret").Return(nil, "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  msgInternalError,
		},
		{
			name:          "short username",
			body:          `{"username":"jo","password":"secret"}`,
			mockSetup:     func(m *MockRegisterer) {},
			expectedCode:  http.StatusBadRequest,
			expectedMsg:   msgValidation,
			expectedField: "username",
		},
		{
			name:          "short password",
			body:          `{"username":"john","password":"12345"}`,
			mockSetup:     func(m *MockRegisterer) {},
			expectedCode:  http.StatusBadRequest,
			expectedMsg:   msgValidation,
			expectedField: "password",
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  msgInvalidBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockRegisterer(ctrl)
			tt.mockSetup(m)

			rr := httptest.NewRecorder()
			NewRegisterHandler(m).ServeHTTP(rr, newRequest(http.MethodPost, "/api/auth/register", tt.body, uuid.Nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			body := decodeBody(t, rr)
			assert.Equal(t, tt.expectedMsg, body["message"])

			if tt.expectedField != "" {
				errs, _ := body["errors"].(map[string]any)
				assert.Contains(t, errs, tt.expectedField)
			}
			if tt.expectedCode == http.StatusCreated {
				assert.Equal(t, "token", body["token"])
				assert.Equal(t, map[string]any{"id": user.UserID.String(), "username": "john"}, body["user"])
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "john"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret").Return(user, "token", nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "logged in",
		},
		{
			name: "unknown user",
			body: `{"username":"ghost","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "ghost", "secret").Return(nil, "", services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Invalid username or password",
		},
		{
			name: "wrong password",
			body: `{"username":"john","password":"nope"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "nope").Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Invalid username or password",
		},
		{
			name: "internal server error",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret").Return(nil, "", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  msgInternalError,
		},
		{
			name:         "missing password",
			body:         `{"username":"john"}`,
			mockSetup:    func(m *MockLoginer) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  msgValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockLoginer(ctrl)
			tt.mockSetup(m)

			rr := httptest.NewRecorder()
			NewLoginHandler(m).ServeHTTP(rr, newRequest(http.MethodPost, "/api/auth/login", tt.body, uuid.Nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMsg, decodeBody(t, rr)["message"])
		})
	}
}
