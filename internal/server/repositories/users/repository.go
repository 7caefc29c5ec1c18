package users

import (
	"context"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Exists(ctx context.Context, username, email string) (bool, error)
	ExistsExcept(ctx context.Context, username, email string, excludeID int64) (bool, error)
	UpdateProfile(ctx context.Context, id int64, firstName, lastName, username, email string) error
}
