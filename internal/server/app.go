// Package server wires the application together: configuration, logging,
// the database pool, migrations, services and the HTTP API server. It owns
// the process lifecycle and shuts down cleanly on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/logging"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/config"
	httpapi "github.com/tahamajeedkhan/SafeRice-Server/internal/server/http"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/repomanager"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/services"
)

type App struct {
	config           *config.Config
	logger           logging.Logger
	db               *sql.DB
	repomanager      repomanager.RepositoryManager
	userService      *services.UserService
	sessionService   *services.SessionService
	referenceService *services.ReferenceService
}

func NewApp(cfg *config.Config) (*App, error) {

	l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(l)

	// Tokens signed with a known default secret are worthless.
	if cfg.SecretKey == "" {
		return nil, errors.New("signing secret is not configured")
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	m, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		return nil, fmt.Errorf("repository manager init error: %w", err)
	}

	return &App{
		config:           cfg,
		logger:           logger,
		db:               db,
		repomanager:      m,
		userService:      services.NewUserService(db, m, cfg),
		sessionService:   services.NewSessionService(db, m),
		referenceService: services.NewReferenceService(db, m),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewHTTPServer(app.config, app.logger, app.userService, app.sessionService, app.referenceService, app.db)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run starts the server and blocks until shutdown. A database that cannot be
// reached or migrated at startup is fatal; the app never serves degraded
// traffic.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.db.PingContext(ctx); err != nil {
		app.logger.Error(ctx, "database unreachable", "error", err.Error())
		return
	}

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		app.logger.Error(ctx, "migrations failed", "error", err.Error())
		return
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
