// Package auth provides functionality for generating and parsing JSON Web Tokens (JWT)
// for session authentication. It defines custom claims, token generation, and validation logic.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// secretKey is the key used to sign the JWT. It should be kept secure.
var secretKey = []byte("supersecretkey")

// TOKENEXP defines the token expiration duration.
const TOKENEXP = time.Hour * 3

// Claims represents the custom JWT claims that carry the session id along
// with the standard registered claims. The session id references an
// in-memory session record, so a restart invalidates every token even
// before it expires.
type Claims struct {
	SessionID string
	jwt.RegisteredClaims
}

// GenerateToken creates a new JWT token for a given session id.
// It sets the expiration time based on TOKENEXP and includes the session id in the claims.
func GenerateToken(sessionID string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TOKENEXP)),
		},
		SessionID: sessionID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ParseToken validates the provided JWT token string and parses its claims.
// It returns the Claims if the token is valid, or an error otherwise.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
