package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired reports whether raw is a JWT whose exp claim has passed. The client
// holds no signing secret, so this is an unverified best-effort check; tokens
// that are not JWTs, or carry no exp, are left for the server to judge.
func Expired(raw string) bool {
	var claims jwt.RegisteredClaims
	_, _, err := jwt.NewParser().ParseUnverified(raw, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
