package domain

import (
	"encoding/json"
	"fmt"
)

// StringList accepts either a single JSON value or an array of values.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var many []interface{}
	if err := json.Unmarshal(b, &many); err == nil {
		out := make(StringList, 0, len(many))
		for _, v := range many {
			if v == nil {
				continue
			}
			out = append(out, scalarString(v))
		}
		*l = out
		return nil
	}

	var one interface{}
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	if one == nil {
		*l = nil
		return nil
	}
	*l = StringList{scalarString(one)}
	return nil
}

// First returns the first element, or "" for an empty list.
func (l StringList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

func scalarString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// IdeaInput is the structured description of a startup concept, usually
// captured on the whiteboard.
type IdeaInput struct {
	Name           StringList `json:"Name"`
	Feature        StringList `json:"Feature"`
	Context        StringList `json:"Context"`
	TargetAudience StringList `json:"Target Audience"`
}

// Idea is a named concept with a free-text description.
type Idea struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type RoadmapParams struct {
	Timeline string `json:"timeline"`
	Goals    string `json:"goals"`
	Weakness string `json:"weakness"`
}

// ProjectSnapshot carries the project fields used to write a success story.
type ProjectSnapshot struct {
	ProjectName  string
	Achievements []string
	LastOutputs  map[string]interface{}
}

// GeneratedIdea is the ideation result returned to clients and, when saved,
// stored under lastOutputs.ideation.
type GeneratedIdea struct {
	Name        string           `json:"name" firestore:"name"`
	Description string           `json:"description" firestore:"description"`
	Analysis    IdeaAnalysisMeta `json:"analysis" firestore:"analysis"`
}

type IdeaAnalysisMeta struct {
	CreatedAt string `json:"createdAt" firestore:"createdAt"`
	Type      string `json:"type" firestore:"type"`
}

// IdeaValidation is the validation report for one idea.
type IdeaValidation struct {
	IdeaName         string `json:"ideaName" firestore:"ideaName"`
	ValidationReport string `json:"validationReport" firestore:"validationReport"`
	Timestamp        string `json:"timestamp" firestore:"timestamp"`
	Type             string `json:"type" firestore:"type"`
}

// Roadmap is a generated plan for one or more ideas.
type Roadmap struct {
	Ideas     []string `json:"ideas" firestore:"ideas"`
	Timeline  *string  `json:"timeline" firestore:"timeline"`
	Roadmap   string   `json:"roadmap" firestore:"roadmap"`
	CreatedAt string   `json:"createdAt" firestore:"createdAt"`
	Type      string   `json:"type" firestore:"type"`
}
