package scope

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"polaris-api/internal/model"
)

func (m *implManager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	parsed, err := jwt.ParseWithClaims(token, &Payload{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	payload, ok := parsed.Claims.(*Payload)
	if !ok || !parsed.Valid {
		return Payload{}, ErrInvalidToken
	}
	if payload.UserID == "" {
		payload.UserID = payload.Subject
	}
	return *payload, nil
}

func (m *implManager) CreateToken(payload Payload) (string, error) {
	now := time.Now()
	payload.StandardClaims = jwt.StandardClaims{
		Subject:   payload.UserID,
		ExpiresAt: now.Add(m.ttl).Unix(),
		Id:        fmt.Sprintf("%d", now.UnixNano()),
		NotBefore: now.Unix(),
		IssuedAt:  now.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(m.secretKey)
}

// NewScope reduces a verified payload to the caller scope handed to usecases.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID: payload.UserID,
		Email:  payload.Email,
		Role:   payload.Role,
		JTI:    payload.Id,
	}
}

func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, PayloadCtxKey{}, payload)
}

func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(PayloadCtxKey{}).(Payload)
	return payload, ok
}

func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ScopeCtxKey{}, sc)
}

// GetScopeFromContext returns the caller scope, or false for anonymous calls.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ScopeCtxKey{}).(model.Scope)
	return sc, ok
}
