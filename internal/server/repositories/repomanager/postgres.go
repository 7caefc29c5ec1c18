// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/dbx"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/migrations"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/reference"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/sessionlog"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// SessionLog returns a sessionlog.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) SessionLog(db dbx.DBTX) sessionlog.Repository {
	return sessionlog.NewPostgresRepository(db)
}

// Reference returns a reference.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Reference(db dbx.DBTX) reference.Repository {
	return reference.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB) (RepositoryManager, error) {
	return &PostgresRepositoryManager{}, nil
}
