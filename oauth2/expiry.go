package oauth2

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry reports the expiry time embedded in a JWT-shaped access token.
// ok is false when the token is opaque (not a JWT) or carries no exp claim.
// The claims are read without signature verification: this is a refresh
// scheduling hint for the token's owner, not validation.
func Expiry(tok *AccessToken) (expiry time.Time, ok bool) {
	if tok == nil || tok.Token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
