package domain

import "time"

// Categories used as keys into Project.LastOutputs.
const (
	CategoryBranding           = "branding"
	CategoryLegal              = "legal"
	CategoryIdeation           = "ideation"
	CategoryIdeationValidation = "ideation_validation"
	CategoryIdeationRoadmap    = "ideation_roadmap"
)

// Feature areas recorded in Project.AssistantsUsed.
const (
	AreaBranding   = "branding"
	AreaLegal      = "legal"
	AreaIdeation   = "ideation"
	AreaMotivation = "motivation"
	AreaWhiteboard = "whiteboard"
)

const (
	DefaultProjectName     = "Untitled Project"
	DefaultProjectStatus   = "new"
	DefaultMilestoneStatus = "pending"
)

// Project is the per-startup document that owns generated outputs, notes,
// milestones and achievements.
type Project struct {
	ProjectID      string                 `json:"projectID"`
	ProjectName    string                 `json:"projectName"`
	Status         string                 `json:"status"`
	Timeline       string                 `json:"timeline"`
	Dashboard      map[string]interface{} `json:"dashboard"`
	OwnerID        string                 `json:"ownerID,omitempty"`
	AssistantsUsed []string               `json:"assistantsUsed"`
	LastOutputs    map[string]interface{} `json:"lastOutputs"`
	SavedOutputs   SavedOutputs           `json:"savedOutputs"`
	Milestones     []Milestone            `json:"milestones"`
	Achievements   []Achievement          `json:"achievements"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// NewProject builds a project with defaults applied and empty collections.
func NewProject(req CreateProjectRequest, ownerID string, now time.Time) *Project {
	p := &Project{
		ProjectName: req.ProjectName,
		Status:      req.Status,
		Timeline:    req.Timeline,
		Dashboard:   req.Dashboard,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.ProjectName == "" {
		p.ProjectName = DefaultProjectName
	}
	if p.Status == "" {
		p.Status = DefaultProjectStatus
	}
	p.Normalize()
	return p
}

// Normalize replaces nil collections with empty ones so the document always
// serializes with arrays and objects rather than nulls.
func (p *Project) Normalize() {
	if p.Dashboard == nil {
		p.Dashboard = map[string]interface{}{}
	}
	if p.AssistantsUsed == nil {
		p.AssistantsUsed = []string{}
	}
	if p.LastOutputs == nil {
		p.LastOutputs = map[string]interface{}{}
	}
	if p.SavedOutputs == nil {
		p.SavedOutputs = SavedOutputs{}
	}
	if p.Milestones == nil {
		p.Milestones = []Milestone{}
	}
	if p.Achievements == nil {
		p.Achievements = []Achievement{}
	}
}

type Milestone struct {
	MilestoneID string `json:"milestoneID" firestore:"milestoneID"`
	Name        string `json:"name" firestore:"name"`
	DueDate     string `json:"dueDate" firestore:"dueDate"`
	Status      string `json:"status" firestore:"status"`
	Notes       string `json:"notes" firestore:"notes"`
	CreatedBy   string `json:"createdBy" firestore:"createdBy"`
}

type Achievement struct {
	AchievementID string `json:"achievementID" firestore:"achievementID"`
	Text          string `json:"text" firestore:"text"`
	CreatedBy     string `json:"createdBy" firestore:"createdBy"`
}

// ProjectSummary is the dashboard view of a project.
type ProjectSummary struct {
	ProjectID    string                 `json:"projectID"`
	ProjectName  string                 `json:"projectName"`
	Status       string                 `json:"status"`
	Timeline     string                 `json:"timeline"`
	LastOutputs  map[string]interface{} `json:"lastOutputs"`
	SavedOutputs SavedOutputs           `json:"savedOutputs"`
}

func (p *Project) Summary() ProjectSummary {
	return ProjectSummary{
		ProjectID:    p.ProjectID,
		ProjectName:  p.ProjectName,
		Status:       p.Status,
		Timeline:     p.Timeline,
		LastOutputs:  p.LastOutputs,
		SavedOutputs: p.SavedOutputs,
	}
}

// Progress is the progress-tracking view of a project.
type Progress struct {
	Timeline     string                 `json:"timeline"`
	Milestones   []Milestone            `json:"milestones"`
	Achievements []Achievement          `json:"achievements"`
	LastOutputs  map[string]interface{} `json:"lastOutputs"`
}

func (p *Project) Progress() Progress {
	return Progress{
		Timeline:     p.Timeline,
		Milestones:   p.Milestones,
		Achievements: p.Achievements,
		LastOutputs:  p.LastOutputs,
	}
}

// CreateProjectRequest represents data needed to create a new project
type CreateProjectRequest struct {
	ProjectName string                 `json:"projectName"`
	Status      string                 `json:"status"`
	Timeline    string                 `json:"timeline"`
	Dashboard   map[string]interface{} `json:"dashboard"`
}

// MilestoneInput represents data for tracking a new milestone
type MilestoneInput struct {
	Name    string
	DueDate string
	Status  string
	Notes   string
}
