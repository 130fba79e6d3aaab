package prompts

import (
	"fmt"

	"github.com/LaunchPad-AI/launchpad-backend/internal/assistant/domain"
)

// Action names one assistant feature as "<area>/<action>".
type Action string

const (
	BrandingGenerateName    Action = "branding/generateName"
	BrandingCreateTagline   Action = "branding/createTagline"
	BrandingGenerateContent Action = "branding/generateContent"
	BrandingSuggestColors   Action = "branding/suggestColors"

	LegalSimplifyDocument Action = "legal/simplifyDocument"
	LegalSuggestStructure Action = "legal/suggestStructure"

	IdeationGenerateIdea    Action = "ideation/generateIdea"
	IdeationValidateIdea    Action = "ideation/validateIdea"
	IdeationGenerateRoadmap Action = "ideation/generateRoadmap"

	MotivationEncouragement  Action = "motivation/showEncouragement"
	MotivationCelebrate      Action = "motivation/celebrateAchievement"
	MotivationSuccessStories Action = "motivation/successStories"
)

// Input carries every field any builder reads. Each action uses a subset.
type Input struct {
	Idea        string
	Style       string
	Text        string
	IdeaInput   domain.IdeaInput
	Candidate   domain.Idea
	Ideas       []domain.Idea
	Params      domain.RoadmapParams
	Achievement string
	Project     *domain.ProjectSnapshot
}

// Build returns the prompt for action.
func Build(action Action, in Input) (string, error) {
	switch action {
	case BrandingGenerateName:
		return BrandingNames(in.Idea), nil
	case BrandingCreateTagline:
		return Taglines(in.Idea), nil
	case BrandingGenerateContent:
		return MarketingContent(in.Idea), nil
	case BrandingSuggestColors:
		return ColorPalette(in.Idea, in.Style), nil
	case LegalSimplifyDocument:
		return SimplifyLegal(in.Text), nil
	case LegalSuggestStructure:
		return LegalStructure(in.Idea), nil
	case IdeationGenerateIdea:
		return GenerateIdea(in.IdeaInput), nil
	case IdeationValidateIdea:
		return ValidateIdea(in.Candidate), nil
	case IdeationGenerateRoadmap:
		return Roadmap(in.Ideas, in.Params), nil
	case MotivationEncouragement:
		return Encouragement(), nil
	case MotivationCelebrate:
		return Celebration(in.Achievement), nil
	case MotivationSuccessStories:
		if in.Project != nil {
			return ProjectSuccessStory(*in.Project), nil
		}
		return SuccessStories(), nil
	default:
		return "", fmt.Errorf("unknown assistant action %q", action)
	}
}
