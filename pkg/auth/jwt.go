package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tiendahq/tienda/config"
	"github.com/tiendahq/tienda/pkg/apperr"
)

// AdminSubject is the token subject used for every database-native
// administrator principal. Native principals have no row of their own, so
// they all share this sentinel subject.
const AdminSubject = "admin"

// Claims holds the typed JWT payload: {subject, username, role}.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the authenticated identity attached to a request.
// Constructed per request from a verified token; never persisted.
type Principal struct {
	Subject  string
	Username string
	Role     string
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateToken signs a compact credential for the given principal with
// the configured expiration window. The issuer is stateless: no session
// row is written anywhere.
func GenerateToken(p Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: p.Username,
		Role:     p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(config.TokenTTL())),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// VerifyToken parses and validates a token string and reconstructs the
// principal. Malformed structure, signature mismatch and expiry all
// collapse to a single Unauthorized so the caller cannot distinguish
// which check failed.
func VerifyToken(t string) (Principal, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return Principal{}, apperr.Unauthorized("invalid token", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Principal{}, apperr.Unauthorized("invalid token")
	}

	return Principal{
		Subject:  claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
