package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tiendahq/tienda/pkg/auth"
	"github.com/tiendahq/tienda/pkg/response"
)

type principalKey struct{}

// Auth verifies the bearer token and attaches the resolved principal to
// the request context. All verification failures collapse to a single 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			response.Unauthorized(w)
			return
		}

		principal, err := auth.VerifyToken(strings.TrimSpace(token))
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey{}, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PrincipalFromCtx returns the authenticated principal, if any.
func PrincipalFromCtx(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(auth.Principal)
	return p, ok
}
