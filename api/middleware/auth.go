package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/influmatch/influmatch-backend/api/responses"
	internalauth "github.com/influmatch/influmatch-backend/internal/auth"
	pkgAuth "github.com/influmatch/influmatch-backend/pkg/auth"
	"github.com/influmatch/influmatch-backend/pkg/config"
	pkgerrors "github.com/influmatch/influmatch-backend/pkg/errors"
	"github.com/influmatch/influmatch-backend/pkg/logger"
)

// IdentityResolver loads the actor's current account state for a user id.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, userID uuid.UUID) (*internalauth.Identity, error)
}

// Auth validates a bearer token and seeds the request context with the actor.
// The token only names the account; role and email are resolved from the
// database on every request, so role changes and deletions apply immediately.
func Auth(cfg config.JWTConfig, resolver IdentityResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			if resolver == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "identity resolver unavailable"))
				return
			}

			identity, err := resolver.ResolveIdentity(r.Context(), claims.UserID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, identity.UserID.String())
			ctx = context.WithValue(ctx, ctxRole, string(identity.Role))
			ctx = context.WithValue(ctx, ctxEmail, identity.Email)

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id":    identity.UserID.String(),
					"actor_role": string(identity.Role),
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
