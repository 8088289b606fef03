package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/users/internal/models"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/users/internal/repository"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserService owns user CRUD and the login check behind token minting.
type UserService struct {
	store repository.UserStore
}

func NewUserService(store repository.UserStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	existing, err := s.store.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	role := req.Role
	if role == "" {
		role = models.DefaultRole
	}

	user := &models.User{
		ID:           "u_" + uuid.New().String(),
		Username:     req.Username,
		PasswordHash: req.Password,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.store.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id string, req models.UpdateUserRequest) error {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Role != "" {
		user.Role = req.Role
	}

	return s.store.Replace(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Authenticate resolves a username/password pair to the stored user.
// Passwords are compared as stored; there is no real hashing in this
// platform, mirroring the pseudo-credential scheme it feeds.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
