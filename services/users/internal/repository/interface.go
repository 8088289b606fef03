package repository

import (
	"context"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/users/internal/models"
)

// UserStore is the persistence boundary for user documents. GetByID and
// GetByUsername return (nil, nil) when no user matches.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Replace(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}
