package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LaunchPad-AI/launchpad-backend/internal/logging"
	"github.com/LaunchPad-AI/launchpad-backend/internal/projects/domain"
	"github.com/LaunchPad-AI/launchpad-backend/internal/projects/repository"
	"github.com/LaunchPad-AI/launchpad-backend/internal/projects/utils"
)

// UserProjects is the per-user index of project IDs.
type UserProjects interface {
	AddProject(ctx context.Context, userID, projectID string) error
	RemoveProject(ctx context.Context, userID, projectID string) error
	ProjectIDs(ctx context.Context, userID string) ([]string, error)
}

// ProjectService handles project-related business logic
type ProjectService struct {
	store repository.ProjectStore
	users UserProjects
	now   func() time.Time
	newID func() string
}

// NewProjectService creates a new project service
func NewProjectService(store repository.ProjectStore, users UserProjects) *ProjectService {
	return &ProjectService{
		store: store,
		users: users,
		now:   func() time.Time { return time.Now().UTC() },
		newID: utils.NewID,
	}
}

// Create stores a new project and adds it to the owner's project list.
func (s *ProjectService) Create(ctx context.Context, ownerID string, req domain.CreateProjectRequest) (*domain.Project, error) {
	p := domain.NewProject(req, ownerID, s.now())

	id, err := s.store.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.users.AddProject(ctx, ownerID, id); err != nil {
		return nil, fmt.Errorf("failed to link project %s to user: %w", id, err)
	}

	logging.FromContext(ctx).LogInfof("create_project", "created project %s for %s", id, ownerID)
	return p, nil
}

func (s *ProjectService) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.store.Get(ctx, projectID)
}

// Update changes the descriptive fields of a project.
func (s *ProjectService) Update(ctx context.Context, projectID string, u domain.ProjectUpdate) error {
	if u.IsEmpty() {
		return fmt.Errorf("%w: no updatable fields given", domain.ErrInvalidInput)
	}
	return s.store.Update(ctx, projectID, u)
}

// Delete removes the project and drops it from the requester's project list.
// Ownership is not checked.
func (s *ProjectService) Delete(ctx context.Context, requesterID, projectID string) error {
	if err := s.store.Delete(ctx, projectID); err != nil {
		return err
	}
	return s.users.RemoveProject(ctx, requesterID, projectID)
}

// ListForUser returns summaries of the user's projects in list order.
// IDs whose project no longer exists are skipped.
func (s *ProjectService) ListForUser(ctx context.Context, userID string) ([]domain.ProjectSummary, error) {
	ids, err := s.users.ProjectIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ProjectSummary, 0, len(ids))
	for _, id := range ids {
		p, err := s.store.Get(ctx, id)
		if errors.Is(err, domain.ErrProjectNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, p.Summary())
	}
	return out, nil
}

func (s *ProjectService) TrackProgress(ctx context.Context, projectID string) (*domain.Progress, error) {
	p, err := s.store.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	progress := p.Progress()
	return &progress, nil
}

// AddMilestone appends a milestone created by author.
func (s *ProjectService) AddMilestone(ctx context.Context, projectID, author string, in domain.MilestoneInput) (*domain.Milestone, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("%w: projectID missing", domain.ErrInvalidInput)
	}

	m := domain.Milestone{
		MilestoneID: s.newID(),
		Name:        in.Name,
		DueDate:     in.DueDate,
		Status:      in.Status,
		Notes:       in.Notes,
		CreatedBy:   author,
	}
	if m.Status == "" {
		m.Status = domain.DefaultMilestoneStatus
	}

	if err := s.store.AppendMilestone(ctx, projectID, m); err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordAchievement appends an achievement created by author.
func (s *ProjectService) RecordAchievement(ctx context.Context, projectID, author, text string) (*domain.Achievement, error) {
	if strings.TrimSpace(projectID) == "" || strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: projectID and achievementText required", domain.ErrInvalidInput)
	}

	a := domain.Achievement{AchievementID: s.newID(), Text: text, CreatedBy: author}
	if err := s.store.AppendAchievement(ctx, projectID, a); err != nil {
		return nil, err
	}
	return &a, nil
}

// MarkAssistantUsed adds area to the project's assistantsUsed set.
func (s *ProjectService) MarkAssistantUsed(ctx context.Context, projectID, area string) error {
	return s.store.AddAssistantUsed(ctx, projectID, area)
}

// Ping reports whether the project store is reachable.
func (s *ProjectService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
