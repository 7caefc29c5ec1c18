// Package users provides a PostgreSQL-backed repository for account records.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/common"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/dbx"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
)

// PostgresRepository implements user storage over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// uniqueViolation reports whether err is a Postgres unique constraint
// violation (code 23505). The schema enforces username/email uniqueness, so
// this backstops the application-level existence check under concurrency.
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create inserts a new user and returns it with the assigned ID.
// A duplicate username or email yields common.ErrorConflict.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, username, email, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, user.Username, user.Email, user.Password).Scan(&user.ID)

	if err != nil {
		if uniqueViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// GetByUsername returns the user holding the given username, or
// common.ErrorNotFound.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, first_name, last_name, username, email, password FROM users
		WHERE username = $1
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Email, &user.Password)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// GetByID returns the user with the given id, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, first_name, last_name, username, email, password FROM users
		WHERE id = $1
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Email, &user.Password)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// Exists reports whether any user already holds the given username or email.
// One query covers both fields.
func (r *PostgresRepository) Exists(ctx context.Context, username, email string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE username = $1 OR email = $2
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// ExistsExcept reports whether a user other than excludeID holds the given
// username or email.
func (r *PostgresRepository) ExistsExcept(ctx context.Context, username, email string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE (username = $1 OR email = $2) AND id <> $3
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// UpdateProfile rewrites the mutable profile fields of the user with the
// given id. Zero affected rows yield common.ErrorNotFound; a duplicate
// username or email yields common.ErrorConflict.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int64, firstName, lastName, username, email string) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, username = $3, email = $4
		WHERE id = $5
	`
	res, err := r.db.ExecContext(ctx, query, firstName, lastName, username, email, id)
	if err != nil {
		if uniqueViolation(err) {
			return common.ErrorConflict
		}
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
