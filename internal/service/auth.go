// Package service contains application services for authentication, blogs,
// comments and profiles.
package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/vkazmin/blogcore/internal/crypto"
	"github.com/vkazmin/blogcore/internal/errs"
	"github.com/vkazmin/blogcore/internal/limiter"
	"github.com/vkazmin/blogcore/internal/model"
	"github.com/vkazmin/blogcore/internal/repository"
	"github.com/vkazmin/blogcore/internal/token"
)

// incorrectCredentials is the single external message for every failed login.
// Unknown email and wrong password are indistinguishable on purpose.
const incorrectCredentials = "Incorrect email or password"

// Session is the result of a successful registration or login.
type Session struct {
	User      model.User
	Token     string
	ExpiresAt time.Time
}

// AuthService defines registration and credential verification.
type AuthService interface {
	// Register creates a new user and issues a token for it.
	Register(ctx context.Context, username, email, password string) (Session, error)
	// Login authenticates by email and password, rate limited per (email, ip).
	Login(ctx context.Context, email, password, ip string) (Session, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	tokens *token.Service
	lim    limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, tokens *token.Service, lim limiter.Limiter) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, tokens: tokens, lim: lim}
}

// Register hashes the secret with a fresh salt and inserts the user. The
// plaintext is not retained; duplicate username/email surfaces from the
// store's uniqueness constraint, never from a pre-check.
func (s *AuthServiceImpl) Register(ctx context.Context, username, email, password string) (Session, error) {
	if password == "" {
		return Session{}, errs.Invalid(errs.FieldError{Field: "password", Message: "Password is required"})
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return Session{}, err
	}
	salt, err := pkgcrypto.NewSalt()
	if err != nil {
		return Session{}, err
	}

	u := &model.User{
		ID:         uid,
		Username:   username,
		Email:      email,
		SecretHash: pkgcrypto.HashSecret(password, salt),
		SecretSalt: salt,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return Session{}, err
	}
	return s.startSession(*u)
}

// Login authenticates with rate limiting by (email, ip).
func (s *AuthServiceImpl) Login(ctx context.Context, email, password, ip string) (Session, error) {
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, email, ipHash)
	if err != nil {
		return Session{}, err
	}
	if !allowed {
		return Session{}, errs.New(errs.RateLimited, "Too many login attempts, try again later")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errs.IsKind(err, errs.NotFound) {
		// store fault, not a credential problem
		return Session{}, err
	}
	if err != nil || !pkgcrypto.VerifySecret(password, u.SecretSalt, u.SecretHash) {
		if blocked, _, ferr := s.lim.Failure(ctx, email, ipHash); ferr == nil && blocked {
			return Session{}, errs.New(errs.RateLimited, "Too many login attempts, try again later")
		}
		return Session{}, errs.New(errs.InvalidCredentials, incorrectCredentials)
	}

	// best-effort counter reset
	_ = s.lim.Success(ctx, email, ipHash)

	return s.startSession(*u)
}

func (s *AuthServiceImpl) startSession(u model.User) (Session, error) {
	tok, exp, err := s.tokens.Issue(u.ID)
	if err != nil {
		return Session{}, err
	}
	return Session{User: u, Token: tok, ExpiresAt: exp}, nil
}
