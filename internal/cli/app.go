// Package cli implements the operator tool: it creates user accounts from a
// terminal session and loads the disease reference dataset into the
// database. It drives the same services the API server uses.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/config"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/repomanager"
)

// openSQL is a test seam for sql.Open.
var openSQL = sql.Open

type App struct {
	config *config.Config
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	return &App{config: cfg, out: os.Stdout}, nil
}

// Run dispatches to a subcommand. Database settings come from the same
// configuration sources as the server (environment / .env file). The schema
// is expected to exist already; the server migrates it at startup.
func (app *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: saferice-cli <adduser|seed> [flags]")
	}

	switch args[0] {
	case "adduser":
		return app.runAddUser(ctx, args[1:])
	case "seed":
		return app.runSeed(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q (want adduser or seed)", args[0])
	}
}

func (app *App) openDB() (*sql.DB, repomanager.RepositoryManager, error) {
	db, err := openSQL("pgx", app.config.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}

	m, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, m, nil
}
