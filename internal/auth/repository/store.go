package repository

import (
	"context"

	"github.com/LaunchPad-AI/launchpad-backend/internal/auth/domain"
)

const usersCollection = "users"

// UserStore persists user documents. The projects list only changes through
// AddProject and RemoveProject, which have set semantics.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	// AddProject creates the user document when it does not exist yet.
	AddProject(ctx context.Context, userID, projectID string) error
	// RemoveProject is a no-op when the user or the ID is absent.
	RemoveProject(ctx context.Context, userID, projectID string) error
	ProjectIDs(ctx context.Context, userID string) ([]string, error)
}
