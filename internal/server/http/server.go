// Package http implements the JSON API: routing, the bearer-token gate and
// request handlers on top of the service layer.
package http

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/logging"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/config"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
)

// userService is the slice of the user service the handlers call.
type userService interface {
	Register(ctx context.Context, req *models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error)
	Profile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *models.UpdateProfileRequest) error
}

// sessionService records the login/logout bookkeeping.
type sessionService interface {
	RecordLogin(ctx context.Context, userID int64) (*models.SessionRecord, error)
	RecordLogout(ctx context.Context, userID int64) (*models.SessionRecord, error)
}

// referenceService serves the read-only disease dataset.
type referenceService interface {
	DiseaseSolutions(ctx context.Context) ([]*models.DiseaseSolution, error)
	Diseases(ctx context.Context) ([]string, error)
	Products(ctx context.Context) ([]*models.DiseaseProduct, error)
}

// HTTPServer owns the listening socket and dispatches API requests to the
// service layer.
type HTTPServer struct {
	address     string
	corsOrigins []string
	users       userService
	sessions    sessionService
	reference   referenceService
	db          *sql.DB
	logger      logging.Logger
	jwtSecret   []byte
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us userService, ss sessionService, rs referenceService, db *sql.DB) (*HTTPServer, error) {
	return &HTTPServer{
		address:     cfg.EndpointAddrHTTP,
		corsOrigins: cfg.CORSAllowedOrigins,
		users:       us,
		sessions:    ss,
		reference:   rs,
		db:          db,
		logger:      l.With("module", "http_server"),
		jwtSecret:   []byte(cfg.SecretKey),
	}, nil
}

// Routes assembles the endpoint table and wraps it in CORS. Reference-data
// endpoints and /health are public; profile and logout require a bearer
// token.
func (s *HTTPServer) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.Health)

	mux.HandleFunc("POST /signup", s.Signup)
	mux.HandleFunc("POST /login", s.Login)
	mux.Handle("POST /logout", s.Require(http.HandlerFunc(s.Logout)))

	mux.Handle("GET /getUsername", s.Require(http.HandlerFunc(s.GetUsername)))
	mux.Handle("GET /getProfile", s.Require(http.HandlerFunc(s.GetProfile)))
	mux.Handle("PUT /updateProfile", s.Require(http.HandlerFunc(s.UpdateProfile)))

	mux.HandleFunc("GET /getDiseaseSolutions", s.GetDiseaseSolutions)
	mux.HandleFunc("GET /getDiseases", s.GetDiseases)
	mux.HandleFunc("GET /getMedicine", s.GetMedicine)

	c := cors.New(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	return c.Handler(mux)
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to five seconds.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "forced shutdown", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
