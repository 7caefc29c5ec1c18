package repomanager

import (
	"context"
	"database/sql"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/dbx"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/reference"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/sessionlog"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	SessionLog(db dbx.DBTX) sessionlog.Repository
	Reference(db dbx.DBTX) reference.Repository
}
