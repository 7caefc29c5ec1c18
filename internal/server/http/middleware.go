package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/common"
	"github.com/tahamajeedkhan/SafeRice-Server/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// Require rejects requests without a valid bearer token and stores the
// verified claims in the request context for the wrapped handler. A missing
// header, a non-bearer scheme and a failed verification are all reported the
// same way.
func (s *HTTPServer) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			s.writeError(r.Context(), w, common.ErrorUnauthenticated)
			return
		}

		claims, err := auth.Verify(strings.TrimPrefix(header, common.BearerPrefix), s.jwtSecret)
		if err != nil {
			s.writeError(r.Context(), w, common.ErrorUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the claims stored by Require.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
