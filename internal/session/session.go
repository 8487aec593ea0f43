// Package session issues and resolves bearer tokens for authenticated
// accounts. A token is an HS256 JWT whose subject is an opaque session id;
// the binding from session id to account lives only in redis, so revoking a
// session invalidates the token server-side regardless of its expiry.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"lugo/pkg/serrors"
)

// Options configure token signing and session lifetime.
type Options struct {
	// Secret is the HMAC key signing session tokens.
	Secret string
	// TTL bounds both the redis entry and the token expiry.
	TTL time.Duration
}

// Store binds session ids to account keys in redis.
type Store struct {
	client  *redis.Client
	options Options
}

// New creates a session store on top of the given redis client.
func New(client *redis.Client, options Options) *Store {
	return &Store{client: client, options: options}
}

func sessionKey(id string) string {
	return "session:" + id
}

// signToken wraps the session id in a signed JWT valid for ttl.
func signToken(secret, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("could not sign session token: %w", err)
	}

	return signed, nil
}

// parseToken verifies the signature and expiry and returns the session id.
func parseToken(secret, token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return []byte(secret), nil
	})
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnauthenticated, err, "invalid session token")
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", serrors.With(serrors.ErrUnauthenticated, "invalid session token")
	}

	return subject, nil
}

// Issue opens a session for the account and returns its bearer token.
func (s *Store) Issue(ctx context.Context, accountKey string) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, sessionKey(id), accountKey, s.options.TTL).Err(); err != nil {
		return "", fmt.Errorf("could not store session: %w", err)
	}

	return signToken(s.options.Secret, id, s.options.TTL)
}

// Resolve maps a bearer token back to the account key behind it. A bad
// signature, an expired token and a revoked session all fail the same way.
func (s *Store) Resolve(ctx context.Context, token string) (string, error) {
	id, err := parseToken(s.options.Secret, token)
	if err != nil {
		return "", err
	}

	accountKey, err := s.client.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", serrors.With(serrors.ErrUnauthenticated, "session expired or revoked")
	}
	if err != nil {
		return "", fmt.Errorf("could not load session: %w", err)
	}

	return accountKey, nil
}

// Revoke closes the session behind the token. Revoking an already-invalid
// token is not an error.
func (s *Store) Revoke(ctx context.Context, token string) error {
	id, err := parseToken(s.options.Secret, token)
	if err != nil {
		return nil
	}

	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}

	return nil
}
