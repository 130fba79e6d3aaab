package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LaunchPad-AI/launchpad-backend/internal/api/http/httperr"
	"github.com/LaunchPad-AI/launchpad-backend/internal/assistant/domain"
	"github.com/LaunchPad-AI/launchpad-backend/internal/assistant/prompts"
)

// branding serves one branding action and returns the text under key.
func (h *Handler) branding(action prompts.Action, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.BrandingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, err)
			return
		}

		out, err := h.assistant.Branding(c.Request.Context(), action, req)
		if err != nil {
			httperr.Write(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{key: out})
	}
}

func (h *Handler) legal(action prompts.Action, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.LegalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, err)
			return
		}

		out, err := h.assistant.Legal(c.Request.Context(), action, req)
		if err != nil {
			httperr.Write(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{key: out})
	}
}

func (h *Handler) generateIdea(c *gin.Context) {
	var req domain.GenerateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	generated, err := h.assistant.GenerateIdea(c.Request.Context(), req)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"generated": generated})
}

func (h *Handler) validateIdea(c *gin.Context) {
	var req domain.ValidateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	validation, err := h.assistant.ValidateIdea(c.Request.Context(), req)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"validation": validation})
}

func (h *Handler) generateRoadmap(c *gin.Context) {
	var req domain.RoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	roadmap, err := h.assistant.GenerateRoadmap(c.Request.Context(), req)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roadmap": roadmap})
}
