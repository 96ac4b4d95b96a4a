package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const TokenExpirationDuration = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("scope: secret key cannot be empty")
)

// Payload is the claim set of an access token.
type Payload struct {
	jwt.StandardClaims
	UserID string `json:"sub"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type implManager struct {
	secretKey []byte
	ttl       time.Duration
}

type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)
