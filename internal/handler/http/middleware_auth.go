// Package http implements the HTTP transport layer of the catalog.
// It provides middleware, route handlers, and the access-control policy
// that gates every request before it reaches the service layer.
package http

import (
	"net/http"

	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/utils"
	"github.com/pvaldera/go-game-catalog/models"
)

const (
	msgUnauthenticated = "authentication required"
	msgForbidden       = "access denied"
)

// authorize is the request authorization filter. It runs on every request.
//
// If the request carries a bearer token, the filter validates it via
// [service.AuthService.Authenticate] and binds the resolved user to the
// request's SecurityContext. A missing, malformed, expired, or otherwise
// invalid token does NOT terminate the request here: the request simply
// proceeds as anonymous and the access policy decides its fate. This keeps
// the 401 response uniform, so callers cannot distinguish a missing token
// from a rejected one.
//
// The filter then consults the policy:
//   - DecisionAllow: the SecurityContext is stored in the request context
//     and the next handler runs.
//   - DecisionUnauthenticated: 401 with a generic message.
//   - DecisionForbidden: 403.
func (h *Handler) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		sc := models.Anonymous()
		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			tokenString, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				log.Debug().Err(err).Msg("malformed `Authorization` header")
			} else {
				user, err := h.services.AuthService.Authenticate(ctx, tokenString)
				if err != nil {
					log.Debug().Err(err).Msg("bearer token rejected")
				} else {
					sc = models.Authenticated(&user)
				}
			}
		}

		switch h.policy.IsAllowed(r.Method, r.URL.Path, sc) {
		case DecisionUnauthenticated:
			log.Warn().Str("path", r.URL.Path).Msg("unauthenticated request rejected")
			utils.WriteJSONError(w, msgUnauthenticated, http.StatusUnauthorized)
			return
		case DecisionForbidden:
			log.Warn().Str("path", r.URL.Path).Str("user_id", sc.User.ID).Msg("insufficient role")
			utils.WriteJSONError(w, msgForbidden, http.StatusForbidden)
			return
		}

		ctx = utils.WithSecurityContext(ctx, sc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
