// Package token issues and verifies stateless HS256 bearer tokens.
package token

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vkazmin/blogcore/internal/errs"
)

// DefaultTTL is the token lifetime when none is configured.
const DefaultTTL = 30 * 24 * time.Hour

// Service signs and checks compact tokens carrying {sub, iat, exp}.
// The signing key is set once at startup and never mutated.
type Service struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// New constructs a Service with the server-held symmetric key.
func New(key []byte, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{key: key, ttl: ttl, now: time.Now}
}

// NewWithClock constructs a Service with an injected clock.
func NewWithClock(key []byte, ttl time.Duration, now func() time.Time) *Service {
	s := New(key, ttl)
	s.now = now
	return s
}

// Issue signs a token for the given subject. Expiry is absolute: now + ttl.
func (s *Service) Issue(subject uuid.UUID) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	return signed, exp, err
}

// Verify checks the signature and expiry and returns the subject ID.
// Failure kinds: InvalidToken (unparseable or signature mismatch) and
// Expired. The wrapped cause keeps the precise reason for logs.
func (s *Service) Verify(raw string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return uuid.Nil, errs.Wrap(err, errs.Expired, "Token expired")
	case errors.Is(err, jwt.ErrTokenMalformed):
		return uuid.Nil, errs.Wrap(err, errs.InvalidToken, "Invalid token")
	default:
		// signature mismatch, wrong method, not-yet-valid
		return uuid.Nil, errs.Wrap(err, errs.InvalidToken, "Invalid token")
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, errs.InvalidToken, "Invalid token")
	}
	return id, nil
}
