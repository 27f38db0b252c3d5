package chi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
)

// IdentityResolver maps a bearer token to a caller identity. Token issuance
// and verification belong to the surrounding platform.
type IdentityResolver interface {
	Resolve(token string) (domain.CallerIdentity, bool)
}

// Credential binds one bearer token to a caller identity.
type Credential struct {
	Token      string
	UUID       string
	SuperAdmin bool
}

// StaticResolver resolves identities from a fixed credential set.
type StaticResolver struct {
	identities map[string]domain.CallerIdentity
}

// NewStaticResolver builds a resolver from credentials, validating each UUID.
func NewStaticResolver(creds []Credential) (*StaticResolver, error) {
	identities := make(map[string]domain.CallerIdentity, len(creds))
	for _, c := range creds {
		if c.Token == "" {
			return nil, fmt.Errorf("credential for %q has an empty token", c.UUID)
		}
		if _, err := uuid.Parse(c.UUID); err != nil {
			return nil, fmt.Errorf("credential has invalid uuid %q: %w", c.UUID, err)
		}
		identities[c.Token] = domain.CallerIdentity{
			UUID:         c.UUID,
			IsSuperAdmin: c.SuperAdmin,
		}
	}
	return &StaticResolver{identities: identities}, nil
}

// Resolve implements IdentityResolver.
func (r *StaticResolver) Resolve(token string) (domain.CallerIdentity, bool) {
	id, ok := r.identities[token]
	return id, ok
}

type callerCtxKey struct{}

// IdentityMiddleware resolves an optional Bearer token into a caller
// identity. Requests without an Authorization header proceed as anonymous;
// requests with an unresolvable token are rejected.
func IdentityMiddleware(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				next.ServeHTTP(w, r)
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(auth, bearerPrefix) {
				writeErrMsg(w, http.StatusUnauthorized, "authorization header must use Bearer scheme")
				return
			}

			identity, ok := resolver.Resolve(auth[len(bearerPrefix):])
			if !ok {
				writeErrMsg(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), callerCtxKey{}, &identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFromContext returns the resolved caller identity, or nil for
// anonymous requests.
func CallerFromContext(ctx context.Context) *domain.CallerIdentity {
	if id, ok := ctx.Value(callerCtxKey{}).(*domain.CallerIdentity); ok {
		return id
	}
	return nil
}
