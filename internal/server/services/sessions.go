package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/common"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/repomanager"
)

// SessionService keeps the login/logout log. Each login opens a session
// record; the matching logout closes the most recent open record and stores
// the session duration.
type SessionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

// NewSessionService constructs a SessionService bound to the given database
// handle and repository manager.
func NewSessionService(db *sql.DB, m repomanager.RepositoryManager) *SessionService {
	return &SessionService{db: db, repomanager: m, now: time.Now}
}

// RecordLogin opens a session record for userID stamped with the current time.
func (s *SessionService) RecordLogin(ctx context.Context, userID int64) (*models.SessionRecord, error) {
	repo := s.repomanager.SessionLog(s.db)

	record, err := repo.Create(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("error recording login: %v", err)
	}

	return record, nil
}

// RecordLogout closes the most recent open session record for userID and
// returns it with the logout time and duration filled in. If the user has no
// open session it fails with ErrorNoActiveSession.
func (s *SessionService) RecordLogout(ctx context.Context, userID int64) (*models.SessionRecord, error) {
	repo := s.repomanager.SessionLog(s.db)

	record, err := repo.CloseLatestOpen(ctx, userID, s.now())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNoActiveSession
		}
		return nil, fmt.Errorf("error recording logout: %v", err)
	}

	return record, nil
}
