package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gamefolio/internal/server/auth"
)

// requireAdmin guards a mutation route: the request must carry
// "Authorization: Bearer <token>" with a token that verifies against the
// fingerprint-derived signing key. The secret itself never travels.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}

		if err := auth.VerifyAdminToken(token, s.signingKey); err != nil {
			s.logger.Warn(r.Context(), "rejected admin token", "err", err.Error())
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next(w, r)
	}
}
