// Package prompts turns assistant requests into model prompts. Every builder
// is pure; missing fields fall back to placeholder text.
package prompts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LaunchPad-AI/launchpad-backend/internal/assistant/domain"
)

const (
	DefaultColorStyle = "modern and trustworthy"
	DefaultTimeline   = "6 months"
	UnnamedIdea       = "Unnamed Idea"
)

func BrandingNames(idea string) string {
	return fmt.Sprintf("Suggest 10 creative, unique, and brandable startup names for the idea:\n\n%s\n\n"+
		"Give short 1–2 word names, followed by a one-line reason for each.", idea)
}

func Taglines(idea string) string {
	return fmt.Sprintf("Generate 5 catchy, professional taglines for this startup idea:\n\n%s\n\n"+
		"Keep them short (6-10 words) and highlight the value proposition.", idea)
}

func MarketingContent(idea string) string {
	return fmt.Sprintf("Write a short marketing paragraph (approx 80-120 words) for the startup idea:\n\n%s\n\n"+
		"Tone: professional and friendly. Include target audience and one call-to-action.", idea)
}

func ColorPalette(idea, style string) string {
	if strings.TrimSpace(style) == "" {
		style = DefaultColorStyle
	}
	return fmt.Sprintf("Based on this startup idea:\n\n%s\n\n"+
		"Suggest a 4-color palette with HEX codes and brief usage notes (primary, secondary, accent, neutral). Style: %s.",
		idea, style)
}

func SimplifyLegal(text string) string {
	return "Simplify the following legal text into plain English while preserving legal meaning:\n\n" + text
}

func LegalStructure(idea string) string {
	return fmt.Sprintf("Suggest the most suitable business legal structures (e.g., LLC, Pvt Ltd, Partnership) for the startup idea:\n\n"+
		"%s\n\nList pros/cons and recommended next steps for each structure.", idea)
}

const ideaAnalysisInstructions = `
Please provide a detailed analysis with the following structure:
1. Business Summary: A clear, concise description of the business concept
2. Value Proposition: What unique value does this offer?
3. Market Opportunity: Why is this needed now?
4. Technical Feasibility: Initial assessment of development complexity
5. Target Demographics: Detailed breakdown of potential users/customers
6. Potential Challenges: Key obstacles to consider
7. Next Steps: Immediate actions to validate and develop this idea
Provide the response in well-organized sections with headings.
Keep the content clear and concise and avoid jargon.
Leave a line after each section.`

// GenerateIdea lists only the sections present in in.
func GenerateIdea(in domain.IdeaInput) string {
	var b strings.Builder
	b.WriteString("Generate a detailed startup idea based on the following parameters:\n\n")

	if len(in.Name) > 0 {
		fmt.Fprintf(&b, "Concept Name: %s\n", in.Name.First())
	}
	writeBullets(&b, "Key Features", in.Feature)
	writeBullets(&b, "Context/Background", in.Context)
	writeBullets(&b, "Target Audience", in.TargetAudience)

	b.WriteString(ideaAnalysisInstructions)
	return b.String()
}

func writeBullets(b *strings.Builder, title string, items domain.StringList) {
	if len(items) == 0 {
		return
	}
	b.WriteString(title + ":\n")
	for _, it := range items {
		b.WriteString("- " + it + "\n")
	}
	b.WriteString("\n")
}

const validationSections = `
Please provide a comprehensive validation analysis with the following sections:

1. Market Analysis
   - Market size and potential
   - Current market trends
   - Competition analysis
   - Market entry barriers

2. Business Model Validation
   - Revenue potential
   - Cost structure analysis
   - Scalability assessment
   - Business model viability score (1-10)

3. Technical Feasibility
   - Implementation complexity
   - Resource requirements
   - Technical risks
   - Technology readiness score (1-10)

4. Risk Assessment
   - Key business risks
   - Mitigation strategies
   - Critical success factors
   - Overall risk score (1-10)

5. Recommendations
   - Key strengths to leverage
   - Areas needing improvement
   - Immediate next steps
   - Long-term considerations

For each section, provide clear, actionable insights and specific recommendations.
`

func ValidateIdea(idea domain.Idea) string {
	return fmt.Sprintf("\nAnalyze the following startup idea in detail:\n\nName: %s\nDescription: %s\n%s",
		orDefault(idea.Name, UnnamedIdea),
		orDefault(idea.Description, "No description provided"),
		validationSections)
}

const roadmapFormat = `
### Your Output Objective:
Generate a structured roadmap in **valid JSON only** (no markdown, no commentary).
You must intelligently determine the **number of phases** based on:
- The overall timeline (3 / 6 / 12 months)
- The startup's complexity and goals
- Logical dependency of activities (foundation → development → launch → growth)
- Reasonable time allocation per phase

---

### **JSON Format (strictly follow this)**
Output must be strictly valid JSON in this structure:

{
  "steps": [
    {
      "name": "Research and Ideation",
      "description": "Conduct market research, define user personas, validate key assumptions, and refine the MVP concept.",
      "timeframe": "Weeks 1–2"
    }
  ]
}

---

### **Rules:**
1. Always output **only valid JSON**, starting with ` + "`{`" + ` and ending with ` + "`}`" + `.
2. Each phase should have a clear actionable **name**, a detailed **description** and a realistic **timeframe**.
3. Ensure the **total timeframe aligns with** the given overall timeline.
4. Avoid generic step names like "Phase 1"; make them **meaningful and unique**.
5. Keep all text concise and well-written for direct display in a roadmap UI.
`

func Roadmap(ideas []domain.Idea, params domain.RoadmapParams) string {
	var list strings.Builder
	for i, idea := range ideas {
		if i > 0 {
			list.WriteString("\n")
		}
		fmt.Fprintf(&list, "- %s: %s", orDefault(idea.Name, "Unnamed"), orDefault(idea.Description, "No description"))
	}

	return fmt.Sprintf(`
You are a startup strategy and product management expert.

Your task is to design a **complete, actionable roadmap** for the following startup idea(s):

Startup Idea(s):
%s

Project Timeline: %s
Key Goals: %s
Current Challenges: %s

---
%s`,
		list.String(),
		orDefault(params.Timeline, DefaultTimeline),
		orDefault(params.Goals, "No specific goals provided"),
		orDefault(params.Weakness, "No challenges specified"),
		roadmapFormat)
}

func Encouragement() string {
	return "Give motivational advice and a short daily routine for a solo founder struggling to stay consistent."
}

func Celebration(achievement string) string {
	return fmt.Sprintf("Write a short celebratory message for this achievement:\n\n%s\n\nKeep it upbeat and <50 words.", achievement)
}

func SuccessStories() string {
	return "Write three short startup success stories (150-250 words each) about small teams that made a product-market fit and grew sustainably."
}

// ProjectSuccessStory renders lastOutputs in key order so the prompt is
// stable for a given project.
func ProjectSuccessStory(p domain.ProjectSnapshot) string {
	var outputs strings.Builder
	keys := make([]string, 0, len(p.LastOutputs))
	for k := range p.LastOutputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&outputs, "\n- %s: %v", k, p.LastOutputs[k])
	}
	if outputs.Len() == 0 {
		outputs.WriteString(" none yet")
	}

	achievements := "none yet"
	if len(p.Achievements) > 0 {
		achievements = strings.Join(p.Achievements, "; ")
	}

	return fmt.Sprintf("Using the following project data, write a short success-story-style summary (200-300 words) "+
		"that a founder can read for motivation:\n\n"+
		"Project name: %s\n"+
		"Achievements: %s\n"+
		"Recent outputs:%s\n\n"+
		"Make it inspiring and realistic.",
		orDefault(p.ProjectName, "Untitled Project"), achievements, outputs.String())
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
