package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/LaunchPad-AI/launchpad-backend/internal/auth/domain"
)

const (
	userKeyPrefix = "launchpad:user:" // JSON user document: launchpad:user:{user_id}
	maxTxRetries  = 100
)

var errConflict = errors.New("too many concurrent modifications")

// RedisUserStore keeps each user as one JSON document.
type RedisUserStore struct {
	client *redis.Client
}

func NewRedisUserStore(client *redis.Client) *RedisUserStore {
	return &RedisUserStore{client: client}
}

func (r *RedisUserStore) userKey(userID string) string {
	return userKeyPrefix + userID
}

func (r *RedisUserStore) Create(ctx context.Context, u *domain.User) error {
	if u.Projects == nil {
		u.Projects = []string{}
	}
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := r.client.Set(ctx, r.userKey(u.UserID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *RedisUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	return r.load(ctx, r.client, userID)
}

func (r *RedisUserStore) AddProject(ctx context.Context, userID, projectID string) error {
	return r.mutate(ctx, userID, true, func(u *domain.User) bool {
		for _, id := range u.Projects {
			if id == projectID {
				return false
			}
		}
		u.Projects = append(u.Projects, projectID)
		return true
	})
}

func (r *RedisUserStore) RemoveProject(ctx context.Context, userID, projectID string) error {
	err := r.mutate(ctx, userID, false, func(u *domain.User) bool {
		kept := make([]string, 0, len(u.Projects))
		for _, id := range u.Projects {
			if id != projectID {
				kept = append(kept, id)
			}
		}
		changed := len(kept) != len(u.Projects)
		u.Projects = kept
		return changed
	})
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil
	}
	return err
}

func (r *RedisUserStore) ProjectIDs(ctx context.Context, userID string) ([]string, error) {
	u, err := r.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.Projects, nil
}

func (r *RedisUserStore) load(ctx context.Context, c redis.Cmdable, userID string) (*domain.User, error) {
	data, err := c.Get(ctx, r.userKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user data: %w", err)
	}
	if u.Projects == nil {
		u.Projects = []string{}
	}
	return &u, nil
}

// mutate applies fn to the user under WATCH. With upsert a missing user is
// started from an empty document.
func (r *RedisUserStore) mutate(ctx context.Context, userID string, upsert bool, fn func(u *domain.User) bool) error {
	key := r.userKey(userID)

	txf := func(tx *redis.Tx) error {
		u, err := r.load(ctx, tx, userID)
		if errors.Is(err, domain.ErrUserNotFound) && upsert {
			u, err = &domain.User{UserID: userID, Projects: []string{}}, nil
		}
		if err != nil {
			return err
		}
		if !fn(u) {
			return nil
		}

		data, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("failed to marshal user: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == redis.TxFailedErr {
			continue
		}
		return err
	}
	return errConflict
}
