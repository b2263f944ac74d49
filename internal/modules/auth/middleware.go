package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/mdjukic/inventory-api/internal/modules/core"

	"github.com/google/uuid"
)

type authContextKey string

const identityContextKey authContextKey = "identity"

// Identity is the authenticated principal attached to the request context.
type Identity struct {
	SubjectID uuid.UUID
	Email     string
	Role      string
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(Identity)
	return identity, ok
}

// AuthenticationMiddleware rejects requests without a valid bearer token.
// Every failure mode answers 401 without further detail.
func AuthenticationMiddleware(issuer *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				core.WriteUnauthorized(w, r, nil)
				return
			}

			claims, err := issuer.Parse(token)
			if err != nil {
				core.WriteUnauthorized(w, r, nil)
				return
			}

			subjectID, err := uuid.Parse(claims.Subject)
			if err != nil {
				core.WriteUnauthorized(w, r, nil)
				return
			}

			identity := Identity{
				SubjectID: subjectID,
				Email:     claims.Name,
				Role:      claims.Role,
			}

			authCtx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(authCtx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return ""
}
