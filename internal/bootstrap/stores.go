package bootstrap

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"

	"github.com/LaunchPad-AI/launchpad-backend/config"
	authrepo "github.com/LaunchPad-AI/launchpad-backend/internal/auth/repository"
	projectrepo "github.com/LaunchPad-AI/launchpad-backend/internal/projects/repository"
)

// Stores is the pair of document stores for the configured backend.
type Stores struct {
	Projects projectrepo.ProjectStore
	Users    authrepo.UserStore
	Close    func() error
}

// OpenStores connects the project and user stores. Firestore comes from the
// Firebase app; Redis is dialed from cfg.Redis.
func OpenStores(ctx context.Context, cfg *config.Config, app *firebase.App) (*Stores, error) {
	switch cfg.Store.Backend {
	case config.StoreRedis:
		client, err := OpenRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Projects: projectrepo.NewRedisProjectStore(client),
			Users:    authrepo.NewRedisUserStore(client),
			Close:    client.Close,
		}, nil

	case config.StoreFirestore:
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create Firestore client: %w", err)
		}
		return &Stores{
			Projects: projectrepo.NewFirestoreProjectStore(client),
			Users:    authrepo.NewFirestoreUserStore(client),
			Close:    client.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
