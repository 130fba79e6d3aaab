package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LaunchPad-AI/launchpad-backend/internal/assistant/domain"
	"github.com/LaunchPad-AI/launchpad-backend/internal/assistant/prompts"
	"github.com/LaunchPad-AI/launchpad-backend/internal/llm"
	"github.com/LaunchPad-AI/launchpad-backend/internal/logging"
	pdomain "github.com/LaunchPad-AI/launchpad-backend/internal/projects/domain"
)

// OutputRecorder writes generated and user-authored content into projects.
type OutputRecorder interface {
	RecordOutput(ctx context.Context, projectID, category string, content interface{}, persist bool) error
	SaveCelebration(ctx context.Context, projectID, achievementID, content string) error
	AddNote(ctx context.Context, projectID, text, author string) (*pdomain.Note, error)
	EditNote(ctx context.Context, projectID, noteID, text string) (*pdomain.Note, error)
	RemoveNote(ctx context.Context, projectID, noteID string) error
}

// Projects is the part of the project service the assistants read and extend.
type Projects interface {
	Get(ctx context.Context, projectID string) (*pdomain.Project, error)
	AddMilestone(ctx context.Context, projectID, author string, in pdomain.MilestoneInput) (*pdomain.Milestone, error)
	RecordAchievement(ctx context.Context, projectID, author, text string) (*pdomain.Achievement, error)
	MarkAssistantUsed(ctx context.Context, projectID, area string) error
}

// AssistantService runs every assistant feature: build the prompt, call the
// generator, then hand the result to the aggregator.
type AssistantService struct {
	gen      llm.Generator
	outputs  OutputRecorder
	projects Projects
	now      func() time.Time
}

func NewAssistantService(gen llm.Generator, outputs OutputRecorder, projects Projects) *AssistantService {
	return &AssistantService{
		gen:      gen,
		outputs:  outputs,
		projects: projects,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Branding generates branding copy for one of the branding actions. The
// result always replaces lastOutputs.branding; save also appends it to
// savedOutputs.
func (s *AssistantService) Branding(ctx context.Context, action prompts.Action, req domain.BrandingRequest) (string, error) {
	if err := requireFields(req.ProjectID, req.Idea); err != nil {
		return "", err
	}
	return s.generateAndRecord(ctx, action, prompts.Input{Idea: req.Idea, Style: req.Style},
		req.ProjectID, pdomain.CategoryBranding, pdomain.AreaBranding, req.Save)
}

// Legal simplifies a document or suggests a legal structure. Recording
// follows the same rules as Branding under the legal category.
func (s *AssistantService) Legal(ctx context.Context, action prompts.Action, req domain.LegalRequest) (string, error) {
	var subject string
	switch action {
	case prompts.LegalSimplifyDocument:
		subject = req.Text
	default:
		subject = req.Idea
	}
	if err := requireFields(req.ProjectID, subject); err != nil {
		return "", err
	}
	return s.generateAndRecord(ctx, action, prompts.Input{Text: req.Text, Idea: req.Idea},
		req.ProjectID, pdomain.CategoryLegal, pdomain.AreaLegal, req.Save)
}

func (s *AssistantService) generateAndRecord(ctx context.Context, action prompts.Action, in prompts.Input, projectID, category, area string, save bool) (string, error) {
	out, err := s.generate(ctx, action, in)
	if err != nil {
		return "", err
	}
	if err := s.outputs.RecordOutput(ctx, projectID, category, out, save); err != nil {
		return "", err
	}
	s.markUsed(ctx, projectID, area)
	return out, nil
}

// GenerateIdea expands a structured idea into a full analysis. Nothing is
// written unless save is set.
func (s *AssistantService) GenerateIdea(ctx context.Context, req domain.GenerateIdeaRequest) (*domain.GeneratedIdea, error) {
	if req.Save {
		if err := requireFields(req.ProjectID); err != nil {
			return nil, err
		}
	}

	out, err := s.generate(ctx, prompts.IdeationGenerateIdea, prompts.Input{IdeaInput: req.Input})
	if err != nil {
		return nil, err
	}

	name := req.Input.Name.First()
	if name == "" {
		name = prompts.UnnamedIdea
	}
	generated := &domain.GeneratedIdea{
		Name:        name,
		Description: out,
		Analysis:    domain.IdeaAnalysisMeta{CreatedAt: s.timestamp(), Type: domain.TypeGenerated},
	}

	if err := s.saveIdeation(ctx, req.ProjectID, pdomain.CategoryIdeation, generated, req.Save); err != nil {
		return nil, err
	}
	return generated, nil
}

// ValidateIdea produces a validation report for a single idea.
func (s *AssistantService) ValidateIdea(ctx context.Context, req domain.ValidateIdeaRequest) (*domain.IdeaValidation, error) {
	if req.Save {
		if err := requireFields(req.ProjectID); err != nil {
			return nil, err
		}
	}

	out, err := s.generate(ctx, prompts.IdeationValidateIdea, prompts.Input{Candidate: req.Idea})
	if err != nil {
		return nil, err
	}

	name := req.Idea.Name
	if strings.TrimSpace(name) == "" {
		name = prompts.UnnamedIdea
	}
	validation := &domain.IdeaValidation{
		IdeaName:         name,
		ValidationReport: out,
		Timestamp:        s.timestamp(),
		Type:             domain.TypeValidation,
	}

	if err := s.saveIdeation(ctx, req.ProjectID, pdomain.CategoryIdeationValidation, validation, req.Save); err != nil {
		return nil, err
	}
	return validation, nil
}

// GenerateRoadmap plans the given ideas over the requested timeline.
func (s *AssistantService) GenerateRoadmap(ctx context.Context, req domain.RoadmapRequest) (*domain.Roadmap, error) {
	if req.Save {
		if err := requireFields(req.ProjectID); err != nil {
			return nil, err
		}
	}

	out, err := s.generate(ctx, prompts.IdeationGenerateRoadmap, prompts.Input{Ideas: req.Ideas, Params: req.Params})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(req.Ideas))
	for _, idea := range req.Ideas {
		if strings.TrimSpace(idea.Name) == "" {
			names = append(names, "Unnamed")
			continue
		}
		names = append(names, idea.Name)
	}

	var timeline *string
	if req.Params.Timeline != "" {
		t := req.Params.Timeline
		timeline = &t
	}

	roadmap := &domain.Roadmap{
		Ideas:     names,
		Timeline:  timeline,
		Roadmap:   out,
		CreatedAt: s.timestamp(),
		Type:      domain.TypeRoadmap,
	}

	if err := s.saveIdeation(ctx, req.ProjectID, pdomain.CategoryIdeationRoadmap, roadmap, req.Save); err != nil {
		return nil, err
	}
	return roadmap, nil
}

func (s *AssistantService) saveIdeation(ctx context.Context, projectID, category string, content interface{}, save bool) error {
	if !save {
		return nil
	}
	if err := s.outputs.RecordOutput(ctx, projectID, category, content, true); err != nil {
		return err
	}
	s.markUsed(ctx, projectID, pdomain.AreaIdeation)
	return nil
}

// Encouragement returns motivational advice. No project is touched.
func (s *AssistantService) Encouragement(ctx context.Context) (string, error) {
	return s.generate(ctx, prompts.MotivationEncouragement, prompts.Input{})
}

func (s *AssistantService) TrackMilestone(ctx context.Context, author string, req domain.MilestoneRequest) (*pdomain.Milestone, error) {
	m, err := s.projects.AddMilestone(ctx, req.ProjectID, author, pdomain.MilestoneInput{
		Name:    req.MilestoneName,
		DueDate: req.DueDate,
		Status:  req.Status,
		Notes:   req.Notes,
	})
	if err != nil {
		return nil, err
	}
	s.markUsed(ctx, req.ProjectID, pdomain.AreaMotivation)
	return m, nil
}

// RecordAchievement stores the achievement, then optionally generates a
// celebration message and saves it next to the project's outputs.
// The achievement stays recorded even if the celebration fails.
func (s *AssistantService) RecordAchievement(ctx context.Context, author string, req domain.AchievementRequest) (*domain.AchievementResult, error) {
	a, err := s.projects.RecordAchievement(ctx, req.ProjectID, author, req.AchievementText)
	if err != nil {
		return nil, err
	}
	s.markUsed(ctx, req.ProjectID, pdomain.AreaMotivation)

	result := &domain.AchievementResult{Achievement: *a}
	if !req.Celebrate {
		return result, nil
	}

	msg, err := s.generate(ctx, prompts.MotivationCelebrate, prompts.Input{Achievement: req.AchievementText})
	if err != nil {
		return nil, err
	}
	result.Celebration = &msg

	if req.Save {
		if err := s.outputs.SaveCelebration(ctx, req.ProjectID, a.AchievementID, msg); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// SuccessStories writes generic stories, or a story built from the
// project's achievements and latest outputs when projectID is set.
func (s *AssistantService) SuccessStories(ctx context.Context, projectID string) (string, error) {
	in := prompts.Input{}
	if projectID != "" {
		p, err := s.projects.Get(ctx, projectID)
		if err != nil {
			return "", err
		}
		snap := domain.ProjectSnapshot{ProjectName: p.ProjectName, LastOutputs: p.LastOutputs}
		for _, a := range p.Achievements {
			snap.Achievements = append(snap.Achievements, a.Text)
		}
		in.Project = &snap
	}
	return s.generate(ctx, prompts.MotivationSuccessStories, in)
}

func (s *AssistantService) AddNote(ctx context.Context, author string, req domain.NoteRequest) (*pdomain.Note, error) {
	note, err := s.outputs.AddNote(ctx, req.ProjectID, req.Text, author)
	if err != nil {
		return nil, err
	}
	s.markUsed(ctx, req.ProjectID, pdomain.AreaWhiteboard)
	return note, nil
}

func (s *AssistantService) EditNote(ctx context.Context, noteID string, req domain.NoteRequest) (*pdomain.Note, error) {
	return s.outputs.EditNote(ctx, req.ProjectID, noteID, req.Text)
}

func (s *AssistantService) RemoveNote(ctx context.Context, projectID, noteID string) error {
	return s.outputs.RemoveNote(ctx, projectID, noteID)
}

func (s *AssistantService) generate(ctx context.Context, action prompts.Action, in prompts.Input) (string, error) {
	prompt, err := prompts.Build(action, in)
	if err != nil {
		return "", fmt.Errorf("%w: %v", pdomain.ErrInvalidInput, err)
	}
	return s.gen.Generate(ctx, prompt)
}

// markUsed is best effort. The generated output is already stored, so a
// failure here is logged and the call still succeeds.
func (s *AssistantService) markUsed(ctx context.Context, projectID, area string) {
	if err := s.projects.MarkAssistantUsed(ctx, projectID, area); err != nil {
		logging.FromContext(ctx).LogWarnf("mark_assistant_used", "project %s area %s: %v", projectID, area, err)
	}
}

func (s *AssistantService) timestamp() string {
	return s.now().Format(time.RFC3339Nano)
}

func requireFields(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: missing required field", pdomain.ErrInvalidInput)
		}
	}
	return nil
}
