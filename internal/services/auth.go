package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/second-brain/internal/jwt"
	"github.com/sbilibin2017/second-brain/internal/logger"
	"github.com/sbilibin2017/second-brain/internal/models"
	"github.com/sbilibin2017/second-brain/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already taken")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, userID uuid.UUID, username, passwordHash string) error
}

// JWTManager issues tokens and reads them back.
type JWTManager interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles registration, login and token authentication.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTManager
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTManager) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a user and signs them in right away.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "username", username)
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := svc.writer.Save(ctx, user.UserID, user.Username, user.PasswordHash); err != nil {
		if errors.Is(err, repositories.ErrUsernameConflict) {
			return nil, "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login checks the credentials and returns the user with a fresh token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "username", username)
		return nil, "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Authenticate resolves a bearer token to the id of an existing user.
// Any token or lookup problem other than a storage failure is ErrUnauthenticated.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	claims, err := svc.jwt.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Warnw("invalid token", "err", err)
		return uuid.Nil, ErrUnauthenticated
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get token owner", "userID", claims.UserID, "err", err)
		return uuid.Nil, err
	}
	if user == nil {
		logger.Log.Warnw("token owner not found", "userID", claims.UserID)
		return uuid.Nil, ErrUnauthenticated
	}

	return user.UserID, nil
}
