package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LaunchPad-AI/launchpad-backend/internal/auth/domain"
	"github.com/LaunchPad-AI/launchpad-backend/internal/auth/repository"
	"github.com/LaunchPad-AI/launchpad-backend/internal/logging"
)

// IdentityProvider creates accounts in the external identity system.
type IdentityProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
}

type AuthService struct {
	idp   IdentityProvider
	users repository.UserStore
	now   func() time.Time
}

func NewAuthService(idp IdentityProvider, users repository.UserStore) *AuthService {
	return &AuthService{
		idp:   idp,
		users: users,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Signup registers the account with the identity provider, then stores the
// user document keyed by the new UID.
func (s *AuthService) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrSignupRejected)
	}

	uid, err := s.idp.CreateUser(ctx, email, req.Password, req.Name)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		UserID:    uid,
		Name:      req.Name,
		Email:     email,
		Projects:  []string{},
		CreatedAt: s.now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		logging.FromContext(ctx).LogErrorf("signup", "account %s created but user document failed: %v", uid, err)
		return nil, err
	}

	logging.FromContext(ctx).LogInfof("signup", "registered user %s", uid)
	return user, nil
}

// GetUser returns the user document for userID.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.Get(ctx, userID)
}
