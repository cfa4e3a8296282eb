package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecotrack/internal/config"
	"ecotrack/internal/model"
	"ecotrack/internal/repository"
	"ecotrack/pkg/generic"
	"ecotrack/pkg/token"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserService handles signup, login and profile management.
type UserService struct {
	users repository.IUserRepository
	cfg   *config.Config
}

func NewUserService(cfg *config.Config, users repository.IUserRepository) *UserService {
	return &UserService{users: users, cfg: cfg}
}

// Signup creates a user with a bcrypt-hashed password and issues a token.
func (s *UserService) Signup(ctx context.Context, req *model.SignupRequest) (*model.AuthResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, generic.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		Email:     req.Email,
		Password:  string(hash),
		FullName:  req.FullName,
		Role:      model.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.authResponse(user)
}

// Login verifies credentials and issues a token.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.authResponse(user)
}

func (s *UserService) authResponse(user *model.User) (*model.AuthResponse, error) {
	signed, err := token.Sign(s.cfg.Auth.JWTSecret, user.ID, s.cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &model.AuthResponse{User: user.ToProfile(), Token: signed}, nil
}

// GetByID resolves a user id, as the auth middleware does on every request.
func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateProfile replaces the mutable profile fields and bumps updatedAt.
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, req *model.UpdateProfileRequest) (*model.User, error) {
	update := bson.M{"$set": bson.M{
		"fullName":  req.FullName,
		"avatarUrl": req.AvatarURL,
		"bio":       req.Bio,
		"updatedAt": time.Now(),
	}}
	user, err := s.users.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}
