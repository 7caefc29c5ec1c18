// Package sessionlog provides a PostgreSQL-backed repository for the
// login/logout session log.
package sessionlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/common"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/dbx"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
)

// PostgresRepository implements session log storage over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new open session record for userID at loginTime.
func (r *PostgresRepository) Create(ctx context.Context, userID int64, loginTime time.Time) (*models.SessionRecord, error) {
	query := `
		INSERT INTO user_log (user_id, login_time)
		VALUES ($1, $2)
		RETURNING id
	`
	rec := &models.SessionRecord{UserID: userID, LoginTime: loginTime}
	if err := r.db.QueryRowContext(ctx, query, userID, loginTime).Scan(&rec.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

// CloseLatestOpen closes the most recent open session record for userID in a
// single statement: the subselect picks the newest row with no logout stamp,
// and duration is computed in SQL as whole seconds between login and logout.
// Older open records are left untouched. Returns common.ErrorNotFound when
// the user has no open session.
func (r *PostgresRepository) CloseLatestOpen(ctx context.Context, userID int64, logoutTime time.Time) (*models.SessionRecord, error) {
	query := `
		UPDATE user_log
		SET logout_time = $2,
		    duration = floor(extract(epoch from ($2 - login_time)))::bigint
		WHERE id = (
			SELECT id FROM user_log
			WHERE user_id = $1 AND logout_time IS NULL
			ORDER BY login_time DESC
			LIMIT 1
		)
		RETURNING id, user_id, login_time, logout_time, duration
	`
	rec := &models.SessionRecord{}
	err := r.db.QueryRowContext(ctx, query, userID, logoutTime).Scan(
		&rec.ID, &rec.UserID, &rec.LoginTime, &rec.LogoutTime, &rec.Duration)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}
