package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// CookieName is the session cookie the admin UI and middleware agree on.
const CookieName = "admin-auth"

// sessionTTL bounds how long a login stays valid. The previous incarnation
// of this panel set an unsigned boolean cookie with no expiry; the signed
// token keeps the same single-cookie contract while making it tamper-proof.
const sessionTTL = 12 * time.Hour

// issueToken signs a session token for the admin user.
func issueToken(secret []byte, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
