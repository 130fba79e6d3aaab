package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LaunchPad-AI/launchpad-backend/internal/api/http/httperr"
	"github.com/LaunchPad-AI/launchpad-backend/internal/auth/domain"
)

// Signup registers the account with the identity provider and creates the
// matching user document.
func (h *Handler) Signup(c *gin.Context) {
	var req domain.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created", "userID": user.UserID})
}

// GetUser returns the stored user document. Any authenticated caller may
// read any user.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.authService.GetUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
