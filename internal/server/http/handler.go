package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/common"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/models"
)

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	// Clients expect the numeric user id under the literal key "use_id".
	UserID int64 `json:"use_id"`
}

type usernameResponse struct {
	Username string `json:"username"`
}

type profileResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type updateProfileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type diseaseRow struct {
	Disease string `json:"disease"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *HTTPServer) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body", common.ErrorValidation)
	}
	return nil
}

// Signup registers a new account. No token is issued here; the user logs in
// separately.
func (s *HTTPServer) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SignupRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	user, err := s.users.Register(ctx, &req)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	s.writeJSON(ctx, w, http.StatusCreated, &statusResponse{Success: true})
}

// Login checks credentials, issues a bearer token and opens a session-log
// record.
func (s *HTTPServer) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	user, token, err := s.users.Login(ctx, &req)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	if _, err := s.sessions.RecordLogin(ctx, user.ID); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	s.writeJSON(ctx, w, http.StatusOK, &loginResponse{Success: true, Token: token, UserID: user.ID})
}

// Logout closes the caller's most recent open session record. The token
// itself stays valid until its expiry.
func (s *HTTPServer) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		s.writeError(ctx, w, common.ErrorUnauthenticated)
		return
	}

	record, err := s.sessions.RecordLogout(ctx, claims.UserID)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	// a closed record always carries a duration
	s.logger.Info(ctx, "user logged out", "user_id", claims.UserID, "duration", *record.Duration)
	s.writeJSON(ctx, w, http.StatusOK, &statusResponse{Success: true})
}

func (s *HTTPServer) GetUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		s.writeError(ctx, w, common.ErrorUnauthenticated)
		return
	}

	user, err := s.users.Profile(ctx, claims.UserID)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, &usernameResponse{Username: user.Username})
}

func (s *HTTPServer) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		s.writeError(ctx, w, common.ErrorUnauthenticated)
		return
	}

	user, err := s.users.Profile(ctx, claims.UserID)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, &profileResponse{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

func (s *HTTPServer) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		s.writeError(ctx, w, common.ErrorUnauthenticated)
		return
	}

	var req models.UpdateProfileRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	if err := s.users.UpdateProfile(ctx, claims.UserID, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.logger.Info(ctx, "profile updated", "user_id", claims.UserID)
	s.writeJSON(ctx, w, http.StatusOK, &updateProfileResponse{Success: true, Message: "Profile updated successfully"})
}

func (s *HTTPServer) GetDiseaseSolutions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	solutions, err := s.reference.DiseaseSolutions(ctx)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if solutions == nil {
		// an empty table encodes as [] rather than null
		solutions = []*models.DiseaseSolution{}
	}

	s.writeJSON(ctx, w, http.StatusOK, solutions)
}

func (s *HTTPServer) GetDiseases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	diseases, err := s.reference.Diseases(ctx)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	rows := make([]diseaseRow, 0, len(diseases))
	for _, d := range diseases {
		rows = append(rows, diseaseRow{Disease: d})
	}

	s.writeJSON(ctx, w, http.StatusOK, rows)
}

func (s *HTTPServer) GetMedicine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := s.reference.Products(ctx)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if products == nil {
		products = []*models.DiseaseProduct{}
	}

	s.writeJSON(ctx, w, http.StatusOK, products)
}

// Health reports whether the process and its database connection are usable.
func (s *HTTPServer) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.db.PingContext(ctx); err != nil {
		s.writeError(ctx, w, fmt.Errorf("database ping: %v", err))
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, &healthResponse{Status: "ok"})
}
