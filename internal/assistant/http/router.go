package http

import (
	"github.com/gin-gonic/gin"

	"github.com/LaunchPad-AI/launchpad-backend/internal/assistant/prompts"
)

// Register attaches every assistant route to rg, normally mounted at /assistant.
func (h *Handler) Register(rg *gin.RouterGroup) {
	branding := rg.Group("/branding")
	branding.POST("/generateName", h.branding(prompts.BrandingGenerateName, "brandingNames"))
	branding.POST("/createTagline", h.branding(prompts.BrandingCreateTagline, "taglines"))
	branding.POST("/generateContent", h.branding(prompts.BrandingGenerateContent, "content"))
	branding.POST("/suggestColors", h.branding(prompts.BrandingSuggestColors, "colors"))

	legal := rg.Group("/legal")
	legal.POST("/simplifyDocument", h.legal(prompts.LegalSimplifyDocument, "simplifiedDoc"))
	legal.POST("/suggestStructure", h.legal(prompts.LegalSuggestStructure, "legalStructure"))

	ideation := rg.Group("/ideation")
	ideation.POST("/generateIdea", h.generateIdea)
	ideation.POST("/validateIdea", h.validateIdea)
	ideation.POST("/generateRoadmap", h.generateRoadmap)

	motivation := rg.Group("/motivation")
	motivation.GET("/showEncouragement", h.showEncouragement)
	motivation.POST("/trackMilestone", h.trackMilestone)
	motivation.POST("/achievement", h.achievement)
	motivation.GET("/successStories", h.successStories)

	whiteboard := rg.Group("/whiteboard")
	whiteboard.POST("/addNote", h.addNote)
	whiteboard.PUT("/editNote/:noteID", h.editNote)
	whiteboard.DELETE("/removeNote/:noteID", h.removeNote)
}
