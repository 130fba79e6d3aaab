package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/LaunchPad-AI/launchpad-backend/config"
	"github.com/LaunchPad-AI/launchpad-backend/internal/auth/domain"
)

// InitializeFirebase initializes the Firebase Admin SDK from a service account file.
// The returned app hands out both the Auth and Firestore clients.
func InitializeFirebase(ctx context.Context, cfg *config.FirebaseConfig) (*firebase.App, error) {
	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, fbConfig, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	return app, nil
}

// FirebaseIdentity adapts the Firebase Auth client to the account operations
// the service needs, translating provider errors into domain errors.
type FirebaseIdentity struct {
	client *auth.Client
}

func NewFirebaseIdentity(client *auth.Client) *FirebaseIdentity {
	return &FirebaseIdentity{client: client}
}

// CreateUser registers an email/password account and returns its UID.
func (f *FirebaseIdentity) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).Email(email).Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	rec, err := f.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", domain.ErrEmailExists
		}
		return "", fmt.Errorf("%w: %v", domain.ErrSignupRejected, err)
	}
	return rec.UID, nil
}

func (f *FirebaseIdentity) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	return f.client.VerifyIDToken(ctx, idToken)
}
