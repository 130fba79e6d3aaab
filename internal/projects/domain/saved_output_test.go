package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOutputs() SavedOutputs {
	saved := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return SavedOutputs{
		&SavedArtifact{Type: CategoryBranding, Content: "Acme", SavedAt: saved},
		&Note{NoteID: "n1", Text: "first", CreatedBy: "u1"},
		&Celebration{AchievementID: "a1", Content: "Congrats!", SavedAt: saved},
		&Note{NoteID: "n2", Text: "second", CreatedBy: "u1"},
	}
}

func TestDecodeRecord_LegacyShapes(t *testing.T) {
	t.Run("note by noteID", func(t *testing.T) {
		out := DecodeRecord(map[string]interface{}{"noteID": "n1", "text": "hi", "createdBy": "u1"})
		n, ok := out.(*Note)
		require.True(t, ok)
		assert.Equal(t, "n1", n.NoteID)
		assert.Equal(t, "hi", n.Text)
		assert.Nil(t, n.EditedAt)
	})

	t.Run("celebration by type", func(t *testing.T) {
		out := DecodeRecord(map[string]interface{}{
			"type":    CelebrationType,
			"content": "well done",
			"savedAt": "2024-05-01T08:30:00.123456",
		})
		c, ok := out.(*Celebration)
		require.True(t, ok)
		assert.Equal(t, "well done", c.Content)
		assert.Equal(t, 2024, c.SavedAt.Year())
	})

	t.Run("anything else is an artifact", func(t *testing.T) {
		out := DecodeRecord(map[string]interface{}{"type": "legal", "content": map[string]interface{}{"k": "v"}})
		a, ok := out.(*SavedArtifact)
		require.True(t, ok)
		assert.Equal(t, "legal", a.Type)
		assert.Equal(t, map[string]interface{}{"k": "v"}, a.Content)
	})

	t.Run("explicit kind wins over shape", func(t *testing.T) {
		out := DecodeRecord(map[string]interface{}{"kind": "artifact", "type": "branding", "noteID": "n1"})
		assert.Equal(t, KindArtifact, out.Kind())
	})
}

func TestSavedOutputs_JSONRoundTripKeepsVariants(t *testing.T) {
	in := sampleOutputs()

	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out SavedOutputs
	require.NoError(t, json.Unmarshal(b, &out))
	require.Len(t, out, 4)

	assert.Equal(t, KindArtifact, out[0].Kind())
	assert.Equal(t, KindNote, out[1].Kind())
	assert.Equal(t, KindCelebration, out[2].Kind())
	assert.Equal(t, KindNote, out[3].Kind())
	assert.True(t, out[0].(*SavedArtifact).SavedAt.Equal(in[0].(*SavedArtifact).SavedAt))
}

func TestSavedOutputs_EmptyMarshalsAsArray(t *testing.T) {
	b, err := json.Marshal(SavedOutputs(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestWithNoteEdited(t *testing.T) {
	in := sampleOutputs()
	at := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	out, edited, ok := in.WithNoteEdited("n2", "updated", at)
	require.True(t, ok)
	require.NotNil(t, edited)
	assert.Equal(t, "n2", edited.NoteID)
	assert.Equal(t, "updated", edited.Text)
	assert.Equal(t, "u1", edited.CreatedBy)
	require.NotNil(t, edited.EditedAt)
	assert.True(t, edited.EditedAt.Equal(at))

	require.Len(t, out, len(in))
	assert.Same(t, in[0], out[0])
	assert.Same(t, in[1], out[1])
	assert.Same(t, in[2], out[2])
	assert.Equal(t, "updated", out[3].(*Note).Text)

	// the input is untouched
	assert.Equal(t, "second", in[3].(*Note).Text)
	assert.Nil(t, in[3].(*Note).EditedAt)
}

func TestWithNoteEdited_NoMatch(t *testing.T) {
	in := sampleOutputs()
	_, edited, ok := in.WithNoteEdited("missing", "x", time.Now())
	assert.False(t, ok)
	assert.Nil(t, edited)
}

func TestWithoutNote(t *testing.T) {
	in := sampleOutputs()

	out, removed := in.WithoutNote("n1")
	assert.Equal(t, 1, removed)
	require.Len(t, out, 3)
	assert.Same(t, in[0], out[0])
	assert.Same(t, in[2], out[1])
	assert.Same(t, in[3], out[2])

	again, removed := out.WithoutNote("n1")
	assert.Equal(t, 0, removed)
	assert.Len(t, again, 3)
}

func TestWithoutNote_KeepsNonNotesWithSameID(t *testing.T) {
	in := DecodeRecords([]map[string]interface{}{
		{"kind": "artifact", "type": "branding", "noteID": "n1", "content": "x"},
		{"kind": "note", "noteID": "n1", "text": "t"},
	})

	out, removed := in.WithoutNote("n1")
	assert.Equal(t, 1, removed)
	require.Len(t, out, 1)
	assert.Equal(t, KindArtifact, out[0].Kind())
}

func TestProjectNormalize(t *testing.T) {
	var p Project
	p.Normalize()

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, []interface{}{}, m["savedOutputs"])
	assert.Equal(t, []interface{}{}, m["milestones"])
	assert.Equal(t, map[string]interface{}{}, m["lastOutputs"])
}

func legacyRecords() []map[string]interface{} {
	return []map[string]interface{}{
		{"type": "legal", "content": "terms", "model": "gemini", "savedAt": "2024-02-01T10:00:00.000001"},
		{"noteID": "n1", "text": "old", "createdBy": "u1", "color": "yellow"},
		{"type": "branding", "content": "Acme", "savedAt": "Feb 1 2024"},
		{"type": CelebrationType, "content": "yay", "savedAt": "2024-02-02T10:00:00"},
	}
}

func TestWithNoteEdited_LeavesOtherRecordsUntouched(t *testing.T) {
	original := legacyRecords()
	at := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	next, _, ok := DecodeRecords(legacyRecords()).WithNoteEdited("n1", "new", at)
	require.True(t, ok)

	records := next.Records()
	require.Len(t, records, 4)
	assert.Equal(t, original[0], records[0])
	assert.Equal(t, original[2], records[2])
	assert.Equal(t, original[3], records[3])

	assert.Equal(t, map[string]interface{}{
		"noteID":    "n1",
		"text":      "new",
		"createdBy": "u1",
		"color":     "yellow",
		"editedAt":  at,
	}, records[1])
}

func TestWithoutNote_LeavesOtherRecordsUntouched(t *testing.T) {
	original := legacyRecords()

	next, removed := DecodeRecords(legacyRecords()).WithoutNote("n1")
	require.Equal(t, 1, removed)

	assert.Equal(t, []map[string]interface{}{original[0], original[2], original[3]}, next.Records())
}

func TestDecodeRecord_DoesNotAliasInput(t *testing.T) {
	in := map[string]interface{}{"noteID": "n1", "text": "old"}
	next, _, ok := SavedOutputs{DecodeRecord(in)}.WithNoteEdited("n1", "new", time.Now())
	require.True(t, ok)

	assert.Equal(t, "old", in["text"])
	assert.Equal(t, "new", next.Records()[0]["text"])
}
