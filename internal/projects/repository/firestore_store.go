package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LaunchPad-AI/launchpad-backend/internal/projects/domain"
)

// projectDoc is the Firestore shape of a project.
type projectDoc struct {
	ProjectID      string                   `firestore:"projectID"`
	ProjectName    string                   `firestore:"projectName"`
	Status         string                   `firestore:"status"`
	Timeline       string                   `firestore:"timeline"`
	Dashboard      map[string]interface{}   `firestore:"dashboard"`
	OwnerID        string                   `firestore:"ownerID,omitempty"`
	AssistantsUsed []string                 `firestore:"assistantsUsed"`
	LastOutputs    map[string]interface{}   `firestore:"lastOutputs"`
	SavedOutputs   []map[string]interface{} `firestore:"savedOutputs"`
	Milestones     []domain.Milestone       `firestore:"milestones"`
	Achievements   []domain.Achievement     `firestore:"achievements"`
	CreatedAt      time.Time                `firestore:"createdAt"`
	UpdatedAt      time.Time                `firestore:"updatedAt"`
}

func toProjectDoc(p *domain.Project) projectDoc {
	p.Normalize()
	return projectDoc{
		ProjectID:      p.ProjectID,
		ProjectName:    p.ProjectName,
		Status:         p.Status,
		Timeline:       p.Timeline,
		Dashboard:      p.Dashboard,
		OwnerID:        p.OwnerID,
		AssistantsUsed: p.AssistantsUsed,
		LastOutputs:    p.LastOutputs,
		SavedOutputs:   p.SavedOutputs.Records(),
		Milestones:     p.Milestones,
		Achievements:   p.Achievements,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func fromProjectDoc(id string, d projectDoc) *domain.Project {
	p := &domain.Project{
		ProjectID:      d.ProjectID,
		ProjectName:    d.ProjectName,
		Status:         d.Status,
		Timeline:       d.Timeline,
		Dashboard:      d.Dashboard,
		OwnerID:        d.OwnerID,
		AssistantsUsed: d.AssistantsUsed,
		LastOutputs:    d.LastOutputs,
		SavedOutputs:   domain.DecodeRecords(d.SavedOutputs),
		Milestones:     d.Milestones,
		Achievements:   d.Achievements,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	if p.ProjectID == "" {
		p.ProjectID = id
	}
	p.Normalize()
	return p
}

// FirestoreProjectStore keeps projects in the "projects" collection.
type FirestoreProjectStore struct {
	client *firestore.Client
}

func NewFirestoreProjectStore(client *firestore.Client) *FirestoreProjectStore {
	return &FirestoreProjectStore{client: client}
}

func (s *FirestoreProjectStore) doc(projectID string) *firestore.DocumentRef {
	return s.client.Collection(projectsCollection).Doc(projectID)
}

func (s *FirestoreProjectStore) Create(ctx context.Context, p *domain.Project) (string, error) {
	ref := s.client.Collection(projectsCollection).NewDoc()
	p.ProjectID = ref.ID
	if _, err := ref.Create(ctx, toProjectDoc(p)); err != nil {
		return "", fmt.Errorf("failed to create project: %w", err)
	}
	return ref.ID, nil
}

func (s *FirestoreProjectStore) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	snap, err := s.doc(projectID).Get(ctx)
	if err != nil {
		return nil, mapProjectErr(err)
	}
	var d projectDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("failed to decode project %s: %w", projectID, err)
	}
	return fromProjectDoc(snap.Ref.ID, d), nil
}

func (s *FirestoreProjectStore) Update(ctx context.Context, projectID string, u domain.ProjectUpdate) error {
	fields := u.Fields()
	updates := make([]firestore.Update, 0, len(fields)+1)
	for _, name := range u.FieldNames() {
		updates = append(updates, firestore.Update{Path: name, Value: fields[name]})
	}
	return s.update(ctx, projectID, updates...)
}

// Delete is a no-op for a missing project.
func (s *FirestoreProjectStore) Delete(ctx context.Context, projectID string) error {
	if _, err := s.doc(projectID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *FirestoreProjectStore) RecordOutput(ctx context.Context, projectID, category string, content interface{}, saved domain.SavedOutput) error {
	updates := []firestore.Update{
		{FieldPath: firestore.FieldPath{"lastOutputs", category}, Value: content},
	}
	if saved != nil {
		updates = append(updates, firestore.Update{
			Path:  "savedOutputs",
			Value: firestore.ArrayUnion(domain.Record(saved)),
		})
	}
	return s.update(ctx, projectID, updates...)
}

func (s *FirestoreProjectStore) AppendSavedOutput(ctx context.Context, projectID string, o domain.SavedOutput) error {
	return s.update(ctx, projectID, firestore.Update{
		Path:  "savedOutputs",
		Value: firestore.ArrayUnion(domain.Record(o)),
	})
}

func (s *FirestoreProjectStore) AppendMilestone(ctx context.Context, projectID string, m domain.Milestone) error {
	return s.update(ctx, projectID, firestore.Update{
		Path:  "milestones",
		Value: firestore.ArrayUnion(m),
	})
}

func (s *FirestoreProjectStore) AppendAchievement(ctx context.Context, projectID string, a domain.Achievement) error {
	return s.update(ctx, projectID, firestore.Update{
		Path:  "achievements",
		Value: firestore.ArrayUnion(a),
	})
}

func (s *FirestoreProjectStore) AddAssistantUsed(ctx context.Context, projectID, area string) error {
	return s.update(ctx, projectID, firestore.Update{
		Path:  "assistantsUsed",
		Value: firestore.ArrayUnion(area),
	})
}

func (s *FirestoreProjectStore) MutateSavedOutputs(ctx context.Context, projectID string, fn SavedOutputsMutator) error {
	ref := s.doc(projectID)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return mapProjectErr(err)
		}
		var d projectDoc
		if err := snap.DataTo(&d); err != nil {
			return fmt.Errorf("failed to decode project %s: %w", projectID, err)
		}

		next, changed, err := fn(domain.DecodeRecords(d.SavedOutputs))
		if err != nil || !changed {
			return err
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "savedOutputs", Value: next.Records()},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		})
	})
	return mapProjectErr(err)
}

// Ping reads at most one document to confirm the backend is reachable.
func (s *FirestoreProjectStore) Ping(ctx context.Context) error {
	it := s.client.Collection(projectsCollection).Limit(1).Documents(ctx)
	defer it.Stop()
	if _, err := it.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}

// update applies a partial update. Firestore rejects updates to a missing
// document, which gives the existence precondition for free.
func (s *FirestoreProjectStore) update(ctx context.Context, projectID string, updates ...firestore.Update) error {
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})
	if _, err := s.doc(projectID).Update(ctx, updates); err != nil {
		return mapProjectErr(err)
	}
	return nil
}

func mapProjectErr(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return domain.ErrProjectNotFound
	}
	return err
}
