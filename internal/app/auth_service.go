// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"weblog/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// sessionTTL bounds how long a login stays valid without re-authenticating.
const sessionTTL = 24 * time.Hour

// AuthService handles registration, authentication and session identity.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Register creates a new account. It does not log the user in.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" {
		return &domain.ValidationError{Message: "Username is required."}
	}
	if password == "" {
		return &domain.ValidationError{Message: "Password is required."}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// Uniqueness is enforced by the store at write time; a duplicate
	// surfaces as domain.ErrDuplicateUsername from Create.
	_, err = s.users.Create(ctx, username, string(hash))
	return err
}

// Login authenticates a user and creates a fresh session. The token is
// always newly generated, so a pre-login session cannot be fixated onto the
// new identity.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrIncorrectUsername
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrIncorrectPassword
	}

	return s.establish(ctx, user.ID)
}

// Logout invalidates the session, reverting the client to anonymous.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// ResolveIdentity turns a session token into the logged-in user, or nil for
// anonymous. An unknown token, an expired session and a session whose user
// no longer exists all resolve to anonymous; only the expired case removes
// the session row.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	// Dangling user id: anonymous, session row left alone.
	return user, nil
}

// LoginWithUser creates a session for an externally authenticated username
// (SSO). Missing users are auto-provisioned with an empty password hash;
// they can only ever log in through SSO.
func (s *AuthService) LoginWithUser(ctx context.Context, username string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		user, err = s.users.Create(ctx, username, "")
		if errors.Is(err, domain.ErrDuplicateUsername) {
			// Lost a provisioning race; the row exists now.
			user, err = s.users.GetByUsername(ctx, username)
		}
		if err != nil {
			return "", err
		}
	}

	return s.establish(ctx, user.ID)
}

func (s *AuthService) establish(ctx context.Context, userID int64) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	expiresAt := time.Now().Add(sessionTTL)
	if err := s.sessions.Create(ctx, userID, token, expiresAt); err != nil {
		return "", err
	}

	return token, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
