package scope

import (
	"context"
	"errors"
	"fmt"
	"time"

	"personal-assistant/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("secret key is required")
)

// Manager issues and verifies bearer tokens.
type Manager interface {
	Issue(userID string, ttl time.Duration) (string, error)
	Verify(token string) (model.Scope, error)
}

type claims struct {
	jwt.RegisteredClaims
}

type implManager struct {
	secret []byte
	now    func() time.Time
}

// New creates an HS256 token manager.
func New(secretKey string) (Manager, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	return &implManager{secret: []byte(secretKey), now: time.Now}, nil
}

func (m *implManager) Issue(userID string, ttl time.Duration) (string, error) {
	now := m.now()
	c := claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("scope: sign token: %w", err)
	}
	return signed, nil
}

func (m *implManager) Verify(token string) (model.Scope, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid || c.Subject == "" {
		return model.Scope{}, ErrInvalidToken
	}
	return model.Scope{UserID: c.Subject, Source: model.SourceWeb}, nil
}

type ctxKey struct{}

// SetScopeToContext stores the caller scope.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, sc)
}

// GetScopeFromContext returns the caller scope, or an anonymous web scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	if sc, ok := ctx.Value(ctxKey{}).(model.Scope); ok {
		return sc
	}
	return model.Scope{Source: model.SourceWeb}
}
