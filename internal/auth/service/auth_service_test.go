package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LaunchPad-AI/launchpad-backend/internal/auth/domain"
	"github.com/LaunchPad-AI/launchpad-backend/internal/auth/repository"
	"github.com/LaunchPad-AI/launchpad-backend/internal/testutil"
)

type fakeIdentity struct {
	byEmail map[string]string
	next    int
}

func (f *fakeIdentity) CreateUser(_ context.Context, email, _ string, _ string) (string, error) {
	if _, ok := f.byEmail[email]; ok {
		return "", domain.ErrEmailExists
	}
	f.next++
	uid := "uid-" + strconv.Itoa(f.next)
	f.byEmail[email] = uid
	return uid, nil
}

func setupAuthService(t *testing.T) (*AuthService, *fakeIdentity) {
	client, _ := testutil.SetupTestRedis(t)
	idp := &fakeIdentity{byEmail: map[string]string{}}
	return NewAuthService(idp, repository.NewRedisUserStore(client)), idp
}

func TestAuthService_Signup(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, domain.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.UserID)

	stored, err := svc.GetUser(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.Name)
	assert.Equal(t, "ada@example.com", stored.Email)
	assert.Empty(t, stored.Projects)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.SignupRequest{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, domain.SignupRequest{Email: "ada@example.com", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestAuthService_SignupRequiresCredentials(t *testing.T) {
	svc, idp := setupAuthService(t)

	_, err := svc.Signup(context.Background(), domain.SignupRequest{Email: " ", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrSignupRejected)
	assert.Equal(t, 0, idp.next)
}

func TestAuthService_GetUserMissing(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.GetUser(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
