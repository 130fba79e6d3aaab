// Package httperr maps service errors onto HTTP responses. Every error body
// has the shape {"error": "...", "details": "..."}.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "github.com/LaunchPad-AI/launchpad-backend/internal/auth/domain"
	"github.com/LaunchPad-AI/launchpad-backend/internal/llm"
	"github.com/LaunchPad-AI/launchpad-backend/internal/logging"
	pdomain "github.com/LaunchPad-AI/launchpad-backend/internal/projects/domain"
)

type mapping struct {
	target  error
	status  int
	message string
	details bool
}

var mappings = []mapping{
	{pdomain.ErrProjectNotFound, http.StatusNotFound, "Project not found", false},
	{pdomain.ErrNoteNotFound, http.StatusNotFound, "Note not found", false},
	{authdomain.ErrUserNotFound, http.StatusNotFound, "User not found", false},
	{pdomain.ErrInvalidInput, http.StatusBadRequest, "Invalid request", true},
	{authdomain.ErrEmailExists, http.StatusConflict, "Email already exists", false},
	{authdomain.ErrSignupRejected, http.StatusBadRequest, "Signup failed", true},
}

// Write sends the response for err and aborts the handler chain.
func Write(c *gin.Context, err error) {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			body := gin.H{"error": m.message}
			if m.details {
				body["details"] = err.Error()
			}
			c.AbortWithStatusJSON(m.status, body)
			return
		}
	}

	if llm.IsServiceError(err) {
		logging.FromContext(c.Request.Context()).LogError(c.FullPath(), err)
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Generation service unavailable", "details": err.Error()})
		return
	}

	logging.FromContext(c.Request.Context()).LogError(c.FullPath(), err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// BadRequest reports a body that failed to bind or validate.
func BadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
}
