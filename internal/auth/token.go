package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every decode failure: bad signature, malformed token,
// wrong signing method, or expiry. Callers must not be able to tell which.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed token payload identifying a principal and its tenant.
type Claims struct {
	jwt.RegisteredClaims
	UserID         int64 `json:"user_id"`
	OrganizationID int64 `json:"organization_id"`
}

var validMethods = []string{"HS256", "HS384", "HS512"}

// GenerateToken issues a signed token for the user embedding the organization
// it belongs to, expiring after ttl.
func GenerateToken(userID, organizationID int64, secret []byte, algorithm string, ttl time.Duration) (string, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return "", errors.New("unknown signing method " + algorithm)
	}

	token := jwt.NewWithClaims(method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:         userID,
		OrganizationID: organizationID,
	})

	return token.SignedString(secret)
}

// ParseToken verifies the token signature and expiry and returns its claims.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods(validMethods))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
