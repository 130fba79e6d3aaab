package domain

import (
	"encoding/json"
	"time"
)

type SavedOutputKind string

const (
	KindArtifact    SavedOutputKind = "artifact"
	KindNote        SavedOutputKind = "note"
	KindCelebration SavedOutputKind = "celebration"
)

// CelebrationType is the "type" value carried by celebration records.
const CelebrationType = "achievement_celebration"

// SavedOutput is one entry of Project.SavedOutputs. The set of implementations
// is closed: *SavedArtifact, *Note and *Celebration.
type SavedOutput interface {
	Kind() SavedOutputKind
	record() map[string]interface{}
}

// SavedArtifact is a persisted generation result.
type SavedArtifact struct {
	Type    string      `json:"type"`
	Content interface{} `json:"content"`
	SavedAt time.Time   `json:"savedAt"`

	raw map[string]interface{}
}

func (a *SavedArtifact) Kind() SavedOutputKind { return KindArtifact }

func (a *SavedArtifact) record() map[string]interface{} {
	if a.raw != nil {
		return cloneRecord(a.raw)
	}
	return map[string]interface{}{
		"kind":    string(KindArtifact),
		"type":    a.Type,
		"content": a.Content,
		"savedAt": a.SavedAt,
	}
}

// Note is a user-authored whiteboard note.
type Note struct {
	NoteID    string     `json:"noteID"`
	Text      string     `json:"text"`
	CreatedBy string     `json:"createdBy"`
	EditedAt  *time.Time `json:"editedAt,omitempty"`

	raw map[string]interface{}
}

func (n *Note) Kind() SavedOutputKind { return KindNote }

func (n *Note) record() map[string]interface{} {
	if n.raw != nil {
		return cloneRecord(n.raw)
	}
	m := map[string]interface{}{
		"kind":      string(KindNote),
		"noteID":    n.NoteID,
		"text":      n.Text,
		"createdBy": n.CreatedBy,
	}
	if n.EditedAt != nil {
		m["editedAt"] = *n.EditedAt
	}
	return m
}

// Celebration is a generated message celebrating an achievement.
type Celebration struct {
	AchievementID string    `json:"achievementID,omitempty"`
	Content       string    `json:"content"`
	SavedAt       time.Time `json:"savedAt"`

	raw map[string]interface{}
}

func (c *Celebration) Kind() SavedOutputKind { return KindCelebration }

func (c *Celebration) record() map[string]interface{} {
	if c.raw != nil {
		return cloneRecord(c.raw)
	}
	m := map[string]interface{}{
		"kind":    string(KindCelebration),
		"type":    CelebrationType,
		"content": c.Content,
		"savedAt": c.SavedAt,
	}
	if c.AchievementID != "" {
		m["achievementID"] = c.AchievementID
	}
	return m
}

// Record encodes o as the flat map stored in the project document.
func Record(o SavedOutput) map[string]interface{} {
	return o.record()
}

// DecodeRecord turns a stored map back into its variant. Records written
// before the "kind" tag existed are classified by shape. The decoded value
// keeps m, and encodes back to the same map until it is edited.
func DecodeRecord(m map[string]interface{}) SavedOutput {
	raw := cloneRecord(m)
	switch classify(m) {
	case KindNote:
		return &Note{
			NoteID:    asString(m["noteID"]),
			Text:      asString(m["text"]),
			CreatedBy: asString(m["createdBy"]),
			EditedAt:  asTimePtr(m["editedAt"]),
			raw:       raw,
		}
	case KindCelebration:
		return &Celebration{
			AchievementID: asString(m["achievementID"]),
			Content:       asString(m["content"]),
			SavedAt:       asTime(m["savedAt"]),
			raw:           raw,
		}
	default:
		return &SavedArtifact{
			Type:    asString(m["type"]),
			Content: m["content"],
			SavedAt: asTime(m["savedAt"]),
			raw:     raw,
		}
	}
}

// cloneRecord is a shallow copy; nested values are shared.
func cloneRecord(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func classify(m map[string]interface{}) SavedOutputKind {
	if k, ok := m["kind"].(string); ok {
		switch kind := SavedOutputKind(k); kind {
		case KindArtifact, KindNote, KindCelebration:
			return kind
		}
	}
	if _, ok := m["noteID"]; ok {
		return KindNote
	}
	if t, _ := m["type"].(string); t == CelebrationType {
		return KindCelebration
	}
	return KindArtifact
}

// SavedOutputs is the ordered, append-only history of a project.
type SavedOutputs []SavedOutput

// Records encodes every entry, preserving order.
func (s SavedOutputs) Records() []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(s))
	for _, item := range s {
		out = append(out, item.record())
	}
	return out
}

// DecodeRecords is the inverse of Records.
func DecodeRecords(records []map[string]interface{}) SavedOutputs {
	out := make(SavedOutputs, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		out = append(out, DecodeRecord(r))
	}
	return out
}

func (s SavedOutputs) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Records())
}

func (s *SavedOutputs) UnmarshalJSON(b []byte) error {
	var records []map[string]interface{}
	if err := json.Unmarshal(b, &records); err != nil {
		return err
	}
	*s = DecodeRecords(records)
	return nil
}

// Note returns the first note with the given ID.
func (s SavedOutputs) Note(noteID string) (*Note, bool) {
	for _, item := range s {
		if n, ok := item.(*Note); ok && n.NoteID == noteID {
			return n, true
		}
	}
	return nil, false
}

// WithNoteEdited returns a copy of s in which every note with noteID carries
// the new text and an editedAt stamp. Positions and all other entries are
// unchanged, and an edited note keeps any stored fields it does not own.
// The boolean reports whether any note matched.
func (s SavedOutputs) WithNoteEdited(noteID, text string, at time.Time) (SavedOutputs, *Note, bool) {
	out := make(SavedOutputs, len(s))
	var edited *Note
	for i, item := range s {
		out[i] = item
		n, ok := item.(*Note)
		if !ok || n.NoteID != noteID {
			continue
		}
		updated := *n
		updated.Text = text
		stamp := at
		updated.EditedAt = &stamp
		if n.raw != nil {
			updated.raw = cloneRecord(n.raw)
			updated.raw["text"] = text
			updated.raw["editedAt"] = stamp
		}
		out[i] = &updated
		if edited == nil {
			edited = &updated
		}
	}
	return out, edited, edited != nil
}

// WithoutNote returns a copy of s without the notes carrying noteID, and the
// number of entries dropped. Artifacts and celebrations are always kept.
func (s SavedOutputs) WithoutNote(noteID string) (SavedOutputs, int) {
	out := make(SavedOutputs, 0, len(s))
	removed := 0
	for _, item := range s {
		if n, ok := item.(*Note); ok && n.NoteID == noteID {
			removed++
			continue
		}
		out = append(out, item)
	}
	return out, removed
}

// legacy records carry naive ISO timestamps without a zone
const legacyTimeLayout = "2006-01-02T15:04:05.999999"

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(legacyTimeLayout, t); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

func asTimePtr(v interface{}) *time.Time {
	if v == nil {
		return nil
	}
	t := asTime(v)
	if t.IsZero() {
		return nil
	}
	return &t
}
