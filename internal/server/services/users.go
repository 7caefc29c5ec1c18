// Package services contains server-side business logic. This file implements
// UserService, which handles account registration, credential checks, token
// issuance and profile maintenance on top of the user repository.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/common"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/cryptox"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/auth"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/config"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/repositories/repomanager"
)

// UserService implements account management on top of the user repository.
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

// NewUserService constructs a UserService bound to the given database handle,
// repository manager and server configuration.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cfg.BCryptCost,
	}
}

// Register validates the signup request, rejects usernames and emails that are
// already taken, hashes the password and stores the new account. The stored
// account never contains the plaintext password.
func (s *UserService) Register(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	exists, err := repo.Exists(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking user existence: %v", err)
	}
	if exists {
		return nil, common.ErrorConflict
	}

	hash, err := cryptox.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  hash,
	}

	created, err := repo.Create(ctx, user)
	if err != nil {
		// The schema enforces uniqueness too, so a concurrent signup can
		// surface as a conflict here rather than in the Exists check.
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return created, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and wrong
// passwords both fail with ErrorInvalidCredentials so callers cannot tell
// registered accounts apart from unregistered ones.
func (s *UserService) Authenticate(ctx context.Context, username string, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.CheckPassword(user.Password, password) {
		return nil, common.ErrorInvalidCredentials
	}

	return user, nil
}

// Login authenticates the request and mints a signed token for the account.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	user, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, "", err
	}

	token, err := auth.Issue(user.ID, user.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Profile loads the account identified by userID.
func (s *UserService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading profile: %v", err)
	}

	return user, nil
}

// UpdateProfile validates the new profile fields and applies them to the
// account, refusing usernames and emails that belong to a different account.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *models.UpdateProfileRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	repo := s.repomanager.Users(s.db)

	exists, err := repo.ExistsExcept(ctx, req.Username, req.Email, userID)
	if err != nil {
		return fmt.Errorf("error checking profile uniqueness: %v", err)
	}
	if exists {
		return common.ErrorConflict
	}

	err = repo.UpdateProfile(ctx, userID, req.FirstName, req.LastName, req.Username, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorConflict) {
			return err
		}
		return fmt.Errorf("error updating profile: %v", err)
	}

	return nil
}
