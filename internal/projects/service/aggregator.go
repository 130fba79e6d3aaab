package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LaunchPad-AI/launchpad-backend/internal/logging"
	"github.com/LaunchPad-AI/launchpad-backend/internal/metrics"
	"github.com/LaunchPad-AI/launchpad-backend/internal/projects/domain"
	"github.com/LaunchPad-AI/launchpad-backend/internal/projects/repository"
	"github.com/LaunchPad-AI/launchpad-backend/internal/projects/utils"
)

// Aggregator is the single writer of generated and user-authored content into
// project documents. It keeps lastOutputs as a per-category last-value cache
// and savedOutputs as the append-only history.
type Aggregator struct {
	store   repository.ProjectStore
	metrics *metrics.Metrics
	now     func() time.Time
	newID   func() string
}

func NewAggregator(store repository.ProjectStore, m *metrics.Metrics) *Aggregator {
	return &Aggregator{
		store:   store,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   utils.NewID,
	}
}

// RecordOutput sets lastOutputs.<category> to content. With persist it also
// appends {type: category, content, savedAt} to savedOutputs.
func (a *Aggregator) RecordOutput(ctx context.Context, projectID, category string, content interface{}, persist bool) (err error) {
	const op = "record_output"
	defer func() { a.observe(ctx, op, err) }()

	if strings.TrimSpace(projectID) == "" || strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: projectID and category are required", domain.ErrInvalidInput)
	}

	var saved domain.SavedOutput
	if persist {
		saved = &domain.SavedArtifact{Type: category, Content: content, SavedAt: a.now()}
	}
	return a.store.RecordOutput(ctx, projectID, category, content, saved)
}

// AddNote appends a new note authored by author.
func (a *Aggregator) AddNote(ctx context.Context, projectID, text, author string) (note *domain.Note, err error) {
	const op = "add_note"
	defer func() { a.observe(ctx, op, err) }()

	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("%w: projectID required", domain.ErrInvalidInput)
	}

	note = &domain.Note{NoteID: a.newID(), Text: text, CreatedBy: author}
	if err := a.store.AppendSavedOutput(ctx, projectID, note); err != nil {
		return nil, err
	}
	return note, nil
}

// EditNote replaces the text of the note with noteID and stamps editedAt.
// Every other entry keeps its position and content.
func (a *Aggregator) EditNote(ctx context.Context, projectID, noteID, text string) (note *domain.Note, err error) {
	const op = "edit_note"
	defer func() { a.observe(ctx, op, err) }()

	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("%w: projectID required", domain.ErrInvalidInput)
	}

	err = a.store.MutateSavedOutputs(ctx, projectID, func(cur domain.SavedOutputs) (domain.SavedOutputs, bool, error) {
		next, edited, ok := cur.WithNoteEdited(noteID, text, a.now())
		if !ok {
			return nil, false, domain.ErrNoteNotFound
		}
		note = edited
		return next, true, nil
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// RemoveNote drops every note with noteID. Removing an unknown note succeeds
// without writing.
func (a *Aggregator) RemoveNote(ctx context.Context, projectID, noteID string) (err error) {
	const op = "remove_note"
	defer func() { a.observe(ctx, op, err) }()

	if strings.TrimSpace(projectID) == "" {
		return fmt.Errorf("%w: projectID required", domain.ErrInvalidInput)
	}

	return a.store.MutateSavedOutputs(ctx, projectID, func(cur domain.SavedOutputs) (domain.SavedOutputs, bool, error) {
		next, removed := cur.WithoutNote(noteID)
		return next, removed > 0, nil
	})
}

// SaveCelebration appends a celebration message for an achievement.
func (a *Aggregator) SaveCelebration(ctx context.Context, projectID, achievementID, content string) (err error) {
	const op = "save_celebration"
	defer func() { a.observe(ctx, op, err) }()

	return a.store.AppendSavedOutput(ctx, projectID, &domain.Celebration{
		AchievementID: achievementID,
		Content:       content,
		SavedAt:       a.now(),
	})
}

func (a *Aggregator) observe(ctx context.Context, op string, err error) {
	a.metrics.ObserveProjectWrite(op, err)
	if err == nil || errors.Is(err, domain.ErrProjectNotFound) || errors.Is(err, domain.ErrNoteNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		return
	}
	logging.FromContext(ctx).LogError(op, err)
}
