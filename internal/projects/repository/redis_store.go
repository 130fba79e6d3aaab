package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LaunchPad-AI/launchpad-backend/internal/projects/domain"
	"github.com/LaunchPad-AI/launchpad-backend/internal/projects/utils"
)

const (
	projectKeyPrefix = "launchpad:project:" // JSON project document: launchpad:project:{project_id}
	maxTxRetries     = 100
)

// ErrTooManyConflicts is returned when an optimistic transaction keeps losing
// to concurrent writers.
var ErrTooManyConflicts = errors.New("too many concurrent modifications")

// RedisProjectStore keeps each project as one JSON document. Every mutation
// is a WATCH/MULTI transaction on the project key, retried on conflict, so
// concurrent writers never overwrite each other.
type RedisProjectStore struct {
	client *redis.Client
}

func NewRedisProjectStore(client *redis.Client) *RedisProjectStore {
	return &RedisProjectStore{client: client}
}

func (r *RedisProjectStore) projectKey(projectID string) string {
	return projectKeyPrefix + projectID
}

func (r *RedisProjectStore) Create(ctx context.Context, p *domain.Project) (string, error) {
	for i := 0; i < 5; i++ {
		p.ProjectID = utils.NewID()
		p.Normalize()

		data, err := json.Marshal(p)
		if err != nil {
			return "", fmt.Errorf("failed to marshal project: %w", err)
		}

		ok, err := r.client.SetNX(ctx, r.projectKey(p.ProjectID), data, 0).Result()
		if err != nil {
			return "", fmt.Errorf("failed to create project: %w", err)
		}
		if ok {
			return p.ProjectID, nil
		}
	}
	return "", fmt.Errorf("failed to allocate unique project id")
}

func (r *RedisProjectStore) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	return r.load(ctx, r.client, projectID)
}

func (r *RedisProjectStore) Update(ctx context.Context, projectID string, u domain.ProjectUpdate) error {
	return r.mutate(ctx, projectID, func(p *domain.Project) (bool, error) {
		u.ApplyTo(p)
		return true, nil
	})
}

func (r *RedisProjectStore) Delete(ctx context.Context, projectID string) error {
	if err := r.client.Del(ctx, r.projectKey(projectID)).Err(); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (r *RedisProjectStore) RecordOutput(ctx context.Context, projectID, category string, content interface{}, saved domain.SavedOutput) error {
	return r.mutate(ctx, projectID, func(p *domain.Project) (bool, error) {
		p.LastOutputs[category] = content
		if saved != nil {
			p.SavedOutputs = append(p.SavedOutputs, saved)
		}
		return true, nil
	})
}

func (r *RedisProjectStore) AppendSavedOutput(ctx context.Context, projectID string, o domain.SavedOutput) error {
	return r.mutate(ctx, projectID, func(p *domain.Project) (bool, error) {
		p.SavedOutputs = append(p.SavedOutputs, o)
		return true, nil
	})
}

func (r *RedisProjectStore) AppendMilestone(ctx context.Context, projectID string, m domain.Milestone) error {
	return r.mutate(ctx, projectID, func(p *domain.Project) (bool, error) {
		p.Milestones = append(p.Milestones, m)
		return true, nil
	})
}

func (r *RedisProjectStore) AppendAchievement(ctx context.Context, projectID string, a domain.Achievement) error {
	return r.mutate(ctx, projectID, func(p *domain.Project) (bool, error) {
		p.Achievements = append(p.Achievements, a)
		return true, nil
	})
}

// AddAssistantUsed has set semantics, like Firestore's array union.
func (r *RedisProjectStore) AddAssistantUsed(ctx context.Context, projectID, area string) error {
	return r.mutate(ctx, projectID, func(p *domain.Project) (bool, error) {
		for _, a := range p.AssistantsUsed {
			if a == area {
				return false, nil
			}
		}
		p.AssistantsUsed = append(p.AssistantsUsed, area)
		return true, nil
	})
}

func (r *RedisProjectStore) MutateSavedOutputs(ctx context.Context, projectID string, fn SavedOutputsMutator) error {
	return r.mutate(ctx, projectID, func(p *domain.Project) (bool, error) {
		next, changed, err := fn(p.SavedOutputs)
		if err != nil || !changed {
			return false, err
		}
		p.SavedOutputs = next
		return true, nil
	})
}

func (r *RedisProjectStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisProjectStore) load(ctx context.Context, c redis.Cmdable, projectID string) (*domain.Project, error) {
	data, err := c.Get(ctx, r.projectKey(projectID)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project data: %w", err)
	}
	if p.ProjectID == "" {
		p.ProjectID = projectID
	}
	p.Normalize()
	return &p, nil
}

// mutate loads the project under WATCH, applies fn and writes it back in a
// MULTI block. The write is skipped when fn reports no change.
func (r *RedisProjectStore) mutate(ctx context.Context, projectID string, fn func(p *domain.Project) (bool, error)) error {
	key := r.projectKey(projectID)

	txf := func(tx *redis.Tx) error {
		p, err := r.load(ctx, tx, projectID)
		if err != nil {
			return err
		}

		changed, err := fn(p)
		if err != nil || !changed {
			return err
		}
		p.UpdatedAt = time.Now().UTC()

		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal project: %w", err)
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
	return ErrTooManyConflicts
}
