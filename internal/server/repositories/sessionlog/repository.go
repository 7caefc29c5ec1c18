package sessionlog

import (
	"context"
	"time"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID int64, loginTime time.Time) (*models.SessionRecord, error)
	CloseLatestOpen(ctx context.Context, userID int64, logoutTime time.Time) (*models.SessionRecord, error)
}
