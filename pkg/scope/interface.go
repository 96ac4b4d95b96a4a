package scope

import "time"

// Manager verifies and issues the HS256 tokens that carry a caller's scope.
// Implementations are safe for concurrent use.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

// New returns a Manager signing with secretKey. Tokens it creates expire
// after ttl, or TokenExpirationDuration when ttl is zero.
func New(secretKey string, ttl time.Duration) (Manager, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = TokenExpirationDuration
	}
	return &implManager{secretKey: []byte(secretKey), ttl: ttl}, nil
}
