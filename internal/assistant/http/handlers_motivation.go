package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LaunchPad-AI/launchpad-backend/internal/api/http/httperr"
	"github.com/LaunchPad-AI/launchpad-backend/internal/assistant/domain"
	"github.com/LaunchPad-AI/launchpad-backend/internal/auth"
)

func (h *Handler) showEncouragement(c *gin.Context) {
	out, err := h.assistant.Encouragement(c.Request.Context())
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"encouragement": out})
}

func (h *Handler) trackMilestone(c *gin.Context) {
	var req domain.MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	m, err := h.assistant.TrackMilestone(c.Request.Context(), auth.UserFirebaseUID(c), req)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Milestone tracked", "milestone": m})
}

func (h *Handler) achievement(c *gin.Context) {
	var req domain.AchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	res, err := h.assistant.RecordAchievement(c.Request.Context(), auth.UserFirebaseUID(c), req)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Achievement recorded",
		"achievement": res.Achievement,
		"celebration": res.Celebration,
	})
}

func (h *Handler) successStories(c *gin.Context) {
	out, err := h.assistant.SuccessStories(c.Request.Context(), c.Query("projectID"))
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"successStories": out})
}
