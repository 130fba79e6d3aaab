package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	pdomain "github.com/LaunchPad-AI/launchpad-backend/internal/projects/domain"
)

// Result type tags stored with ideation outputs.
const (
	TypeGenerated  = "generated"
	TypeValidation = "validation"
	TypeRoadmap    = "roadmap"
)

type BrandingRequest struct {
	ProjectID string `json:"projectID" binding:"required"`
	Idea      string `json:"idea" binding:"required"`
	Style     string `json:"style"`
	Save      bool   `json:"save"`
}

// LegalRequest serves both legal actions: simplifyDocument reads Text,
// suggestStructure reads Idea.
type LegalRequest struct {
	ProjectID string `json:"projectID" binding:"required"`
	Text      string `json:"text"`
	Idea      string `json:"idea"`
	Save      bool   `json:"save"`
}

// GenerateIdeaRequest takes the idea parameters either from "topic" (an
// object, or a JSON string holding one) or from the top-level body.
type GenerateIdeaRequest struct {
	ProjectID string
	Save      bool
	Input     IdeaInput
}

func (r *GenerateIdeaRequest) UnmarshalJSON(b []byte) error {
	var head struct {
		ProjectID string          `json:"projectID"`
		Save      bool            `json:"save"`
		Topic     json.RawMessage `json:"topic"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	r.ProjectID, r.Save = head.ProjectID, head.Save

	if present(head.Topic) {
		return decodeObjectOrString(head.Topic, &r.Input, "topic")
	}
	return json.Unmarshal(b, &r.Input)
}

// ValidateIdeaRequest accepts "idea" as an object or a JSON string.
type ValidateIdeaRequest struct {
	ProjectID string
	Save      bool
	Idea      Idea
}

func (r *ValidateIdeaRequest) UnmarshalJSON(b []byte) error {
	var head struct {
		ProjectID string          `json:"projectID"`
		Save      bool            `json:"save"`
		Idea      json.RawMessage `json:"idea"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	r.ProjectID, r.Save = head.ProjectID, head.Save

	if present(head.Idea) {
		return decodeObjectOrString(head.Idea, &r.Idea, "idea")
	}
	return nil
}

type RoadmapRequest struct {
	ProjectID string        `json:"projectID"`
	Ideas     []Idea        `json:"ideas"`
	Params    RoadmapParams `json:"params"`
	Save      bool          `json:"save"`
}

type MilestoneRequest struct {
	ProjectID     string `json:"projectID" binding:"required"`
	MilestoneName string `json:"milestoneName"`
	DueDate       string `json:"dueDate"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}

type AchievementRequest struct {
	ProjectID       string `json:"projectID" binding:"required"`
	AchievementText string `json:"achievementText" binding:"required"`
	Celebrate       bool   `json:"celebrate"`
	Save            bool   `json:"save"`
}

// AchievementResult carries the stored achievement and, when requested, the
// generated celebration message.
type AchievementResult struct {
	Achievement pdomain.Achievement
	Celebration *string
}

type NoteRequest struct {
	ProjectID string `json:"projectID" binding:"required"`
	Text      string `json:"text"`
}

type RemoveNoteRequest struct {
	ProjectID string `json:"projectID" binding:"required"`
}

func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) && !bytes.Equal(trimmed, []byte(`""`))
}

func decodeObjectOrString(raw json.RawMessage, v interface{}, field string) error {
	trimmed := bytes.TrimSpace(raw)
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		trimmed = []byte(s)
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("%s must be an object or a JSON-encoded object: %w", field, err)
	}
	return nil
}
