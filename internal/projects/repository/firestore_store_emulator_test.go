package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LaunchPad-AI/launchpad-backend/internal/projects/domain"
	"github.com/LaunchPad-AI/launchpad-backend/internal/projects/utils"
)

// newEmulatorStore connects to the Firestore emulator named by
// FIRESTORE_EMULATOR_HOST and skips the test when it is not set.
func newEmulatorStore(t *testing.T) (*FirestoreProjectStore, *firestore.Client) {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "launchpad-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewFirestoreProjectStore(client), client
}

func TestFirestoreProjectStore_CreateAndGet(t *testing.T) {
	s, _ := newEmulatorStore(t)
	ctx := context.Background()

	id := createTestProject(t, s)
	t.Cleanup(func() { _ = s.Delete(ctx, id) })

	p, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, p.ProjectID)
	assert.Equal(t, "Acme", p.ProjectName)
	assert.Equal(t, "user-1", p.OwnerID)
	assert.Empty(t, p.SavedOutputs)
	assert.NotNil(t, p.LastOutputs)
}

func TestFirestoreProjectStore_RecordOutputLastWriteWins(t *testing.T) {
	s, _ := newEmulatorStore(t)
	ctx := context.Background()
	id := createTestProject(t, s)
	t.Cleanup(func() { _ = s.Delete(ctx, id) })

	require.NoError(t, s.RecordOutput(ctx, id, "legal", "v1", nil))
	require.NoError(t, s.RecordOutput(ctx, id, "legal", "v2", nil))
	require.NoError(t, s.RecordOutput(ctx, id, "branding", "b1", nil))

	p, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "v2", p.LastOutputs["legal"])
	assert.Equal(t, "b1", p.LastOutputs["branding"])
	assert.Empty(t, p.SavedOutputs)
}

func TestFirestoreProjectStore_RecordOutputPersistAppendsOnce(t *testing.T) {
	s, _ := newEmulatorStore(t)
	ctx := context.Background()
	id := createTestProject(t, s)
	t.Cleanup(func() { _ = s.Delete(ctx, id) })

	saved := &domain.SavedArtifact{Type: "legal", Content: "L", SavedAt: time.Now().UTC()}
	require.NoError(t, s.RecordOutput(ctx, id, "legal", "L", saved))

	p, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "L", p.LastOutputs["legal"])
	require.Len(t, p.SavedOutputs, 1)
	a, ok := p.SavedOutputs[0].(*domain.SavedArtifact)
	require.True(t, ok)
	assert.Equal(t, "legal", a.Type)
	assert.Equal(t, "L", a.Content)
}

func TestFirestoreProjectStore_MissingProjectIsNotCreated(t *testing.T) {
	s, client := newEmulatorStore(t)
	ctx := context.Background()
	id := "missing-" + utils.NewID()

	name := "x"
	assert.ErrorIs(t, s.RecordOutput(ctx, id, "legal", "L", nil), domain.ErrProjectNotFound)
	assert.ErrorIs(t, s.AppendSavedOutput(ctx, id, &domain.Note{NoteID: "n"}), domain.ErrProjectNotFound)
	assert.ErrorIs(t, s.Update(ctx, id, domain.ProjectUpdate{ProjectName: &name}), domain.ErrProjectNotFound)
	assert.ErrorIs(t, s.AddAssistantUsed(ctx, id, "legal"), domain.ErrProjectNotFound)
	err := s.MutateSavedOutputs(ctx, id, func(cur domain.SavedOutputs) (domain.SavedOutputs, bool, error) {
		return cur, true, nil
	})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	_, err = client.Collection(projectsCollection).Doc(id).Get(ctx)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestFirestoreProjectStore_NoteEditAndRemove(t *testing.T) {
	s, _ := newEmulatorStore(t)
	ctx := context.Background()
	id := createTestProject(t, s)
	t.Cleanup(func() { _ = s.Delete(ctx, id) })

	saved := time.Now().UTC()
	require.NoError(t, s.AppendSavedOutput(ctx, id, &domain.SavedArtifact{Type: "legal", Content: "L", SavedAt: saved}))
	require.NoError(t, s.AppendSavedOutput(ctx, id, &domain.Note{NoteID: "n1", Text: "first", CreatedBy: "u1"}))
	require.NoError(t, s.AppendSavedOutput(ctx, id, &domain.Note{NoteID: "n2", Text: "second", CreatedBy: "u1"}))

	editAt := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	err := s.MutateSavedOutputs(ctx, id, func(cur domain.SavedOutputs) (domain.SavedOutputs, bool, error) {
		next, _, ok := cur.WithNoteEdited("n1", "edited", editAt)
		return next, ok, nil
	})
	require.NoError(t, err)

	p, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, p.SavedOutputs, 3)
	assert.Equal(t, domain.KindArtifact, p.SavedOutputs[0].Kind())
	n1 := p.SavedOutputs[1].(*domain.Note)
	assert.Equal(t, "edited", n1.Text)
	require.NotNil(t, n1.EditedAt)
	assert.True(t, n1.EditedAt.Equal(editAt))
	assert.Equal(t, "second", p.SavedOutputs[2].(*domain.Note).Text)

	t.Run("unknown note leaves the document unchanged", func(t *testing.T) {
		err := s.MutateSavedOutputs(ctx, id, func(cur domain.SavedOutputs) (domain.SavedOutputs, bool, error) {
			if _, _, ok := cur.WithNoteEdited("nope", "x", time.Now()); !ok {
				return nil, false, domain.ErrNoteNotFound
			}
			return cur, true, nil
		})
		assert.ErrorIs(t, err, domain.ErrNoteNotFound)

		after, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, p.SavedOutputs.Records(), after.SavedOutputs.Records())
		assert.True(t, p.UpdatedAt.Equal(after.UpdatedAt))
	})

	remove := func(cur domain.SavedOutputs) (domain.SavedOutputs, bool, error) {
		next, removed := cur.WithoutNote("n1")
		return next, removed > 0, nil
	}
	require.NoError(t, s.MutateSavedOutputs(ctx, id, remove))
	require.NoError(t, s.MutateSavedOutputs(ctx, id, remove))

	p, err = s.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, p.SavedOutputs, 2)
	assert.Equal(t, domain.KindArtifact, p.SavedOutputs[0].Kind())
	assert.Equal(t, "n2", p.SavedOutputs[1].(*domain.Note).NoteID)
}

func TestFirestoreProjectStore_NoteEditKeepsLegacyEntries(t *testing.T) {
	s, client := newEmulatorStore(t)
	ctx := context.Background()
	id := "legacy-" + utils.NewID()
	ref := client.Collection(projectsCollection).Doc(id)
	t.Cleanup(func() { _, _ = ref.Delete(ctx) })

	artifact := map[string]interface{}{
		"type":    "legal",
		"content": "terms",
		"model":   "gemini",
		"savedAt": "Feb 1 2024",
	}
	_, err := ref.Set(ctx, map[string]interface{}{
		"projectName": "Old",
		"savedOutputs": []interface{}{
			artifact,
			map[string]interface{}{"noteID": "n1", "text": "draft", "createdBy": "u1"},
		},
	})
	require.NoError(t, err)

	err = s.MutateSavedOutputs(ctx, id, func(cur domain.SavedOutputs) (domain.SavedOutputs, bool, error) {
		next, _, ok := cur.WithNoteEdited("n1", "final", time.Now().UTC())
		return next, ok, nil
	})
	require.NoError(t, err)

	snap, err := ref.Get(ctx)
	require.NoError(t, err)
	stored, ok := snap.Data()["savedOutputs"].([]interface{})
	require.True(t, ok)
	require.Len(t, stored, 2)
	assert.Equal(t, artifact, stored[0])
	note, ok := stored[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "final", note["text"])
	assert.Equal(t, "u1", note["createdBy"])
	assert.NotNil(t, note["editedAt"])
}

func TestFirestoreProjectStore_ConcurrentAppendsAllSurvive(t *testing.T) {
	s, _ := newEmulatorStore(t)
	ctx := context.Background()
	id := createTestProject(t, s)
	t.Cleanup(func() { _ = s.Delete(ctx, id) })

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- s.AppendSavedOutput(ctx, id, &domain.Note{NoteID: fmt.Sprintf("n%d", i), Text: "t"})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	p, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, p.SavedOutputs, n)
}
