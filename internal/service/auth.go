package service

import (
	"context"
	"errors"
	"time"

	"github.com/savorly/savorly-go/internal/crypto"
	"github.com/savorly/savorly-go/internal/model"
	"github.com/savorly/savorly-go/internal/repository"
	"github.com/savorly/savorly-go/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already taken")
)

// UserStore is the persistence surface AuthService needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles registration, login and logout.
type AuthService struct {
	users     UserStore
	revoked   *session.RevocationStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, revoked *session.RevocationStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		revoked:   revoked,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account and returns an auth token.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (model.AuthResponse, error) {
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		AuthHash:    hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	return s.respondWithToken(user)
}

// Login authenticates a user and returns an auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.respondWithToken(user)
}

// Logout revokes the presented token. The revocation is visible to the
// very next request carrying that token.
func (s *AuthService) Logout(claims *crypto.Claims) {
	if claims == nil || s.revoked == nil {
		return
	}
	until := time.Now().Add(s.jwtExpiry)
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	s.revoked.Revoke(claims.ID, until)
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	return userToResponse(user), nil
}

func (s *AuthService) respondWithToken(user *model.User) (model.AuthResponse, error) {
	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User:  userToResponse(user),
	}, nil
}

func userToResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}
}
