package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LaunchPad-AI/launchpad-backend/internal/auth/domain"
)

type FirestoreUserStore struct {
	client *firestore.Client
}

func NewFirestoreUserStore(client *firestore.Client) *FirestoreUserStore {
	return &FirestoreUserStore{client: client}
}

func (s *FirestoreUserStore) doc(userID string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(userID)
}

func (s *FirestoreUserStore) Create(ctx context.Context, u *domain.User) error {
	if u.Projects == nil {
		u.Projects = []string{}
	}
	if _, err := s.doc(u.UserID).Set(ctx, u); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *FirestoreUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	snap, err := s.doc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var u domain.User
	if err := snap.DataTo(&u); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", userID, err)
	}
	if u.UserID == "" {
		u.UserID = userID
	}
	if u.Projects == nil {
		u.Projects = []string{}
	}
	return &u, nil
}

func (s *FirestoreUserStore) AddProject(ctx context.Context, userID, projectID string) error {
	_, err := s.doc(userID).Set(ctx, map[string]interface{}{
		"userID":   userID,
		"projects": firestore.ArrayUnion(projectID),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to add project to user: %w", err)
	}
	return nil
}

func (s *FirestoreUserStore) RemoveProject(ctx context.Context, userID, projectID string) error {
	_, err := s.doc(userID).Update(ctx, []firestore.Update{
		{Path: "projects", Value: firestore.ArrayRemove(projectID)},
	})
	if status.Code(err) == codes.NotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to remove project from user: %w", err)
	}
	return nil
}

func (s *FirestoreUserStore) ProjectIDs(ctx context.Context, userID string) ([]string, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.Projects, nil
}
