package repository

import (
	"context"

	"github.com/LaunchPad-AI/launchpad-backend/internal/projects/domain"
)

const projectsCollection = "projects"

// SavedOutputsMutator receives the current savedOutputs of a project and
// returns the replacement. Returning changed=false skips the write.
type SavedOutputsMutator func(current domain.SavedOutputs) (next domain.SavedOutputs, changed bool, err error)

// ProjectStore persists project documents. Every mutating method fails with
// domain.ErrProjectNotFound, without writing, when the project does not exist.
type ProjectStore interface {
	// Create stores p under a newly assigned ID and returns that ID.
	Create(ctx context.Context, p *domain.Project) (string, error)
	Get(ctx context.Context, projectID string) (*domain.Project, error)
	Update(ctx context.Context, projectID string, u domain.ProjectUpdate) error
	Delete(ctx context.Context, projectID string) error

	// RecordOutput sets lastOutputs.<category> and, when saved is non-nil,
	// appends it to savedOutputs in the same write.
	RecordOutput(ctx context.Context, projectID, category string, content interface{}, saved domain.SavedOutput) error
	AppendSavedOutput(ctx context.Context, projectID string, o domain.SavedOutput) error
	AppendMilestone(ctx context.Context, projectID string, m domain.Milestone) error
	AppendAchievement(ctx context.Context, projectID string, a domain.Achievement) error
	AddAssistantUsed(ctx context.Context, projectID, area string) error

	// MutateSavedOutputs replaces savedOutputs with the result of fn under
	// optimistic concurrency. fn may run more than once.
	MutateSavedOutputs(ctx context.Context, projectID string, fn SavedOutputsMutator) error

	Ping(ctx context.Context) error
}
