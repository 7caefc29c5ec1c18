package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/common"
)

type statusResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *HTTPServer) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(ctx, "error encoding response", "error", err.Error())
	}
}

// writeError converts a service error into the JSON error envelope. Expected
// failures keep their message; anything unexpected is logged here and
// reported as an opaque internal error so no details reach the client.
func (s *HTTPServer) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var status int

	switch {
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrorConflict),
		errors.Is(err, common.ErrorInvalidCredentials),
		errors.Is(err, common.ErrorNoActiveSession):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthenticated):
		status = http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound):
		status = http.StatusNotFound
	default:
		s.logger.Error(ctx, "internal error", "error", err.Error())
		s.writeJSON(ctx, w, http.StatusInternalServerError, &errorResponse{Error: common.ErrorInternal.Error()})
		return
	}

	s.writeJSON(ctx, w, status, &errorResponse{Error: err.Error()})
}
