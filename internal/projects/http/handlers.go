package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LaunchPad-AI/launchpad-backend/internal/api/http/httperr"
	"github.com/LaunchPad-AI/launchpad-backend/internal/auth"
	"github.com/LaunchPad-AI/launchpad-backend/internal/projects/domain"
)

func (h *Handler) create(c *gin.Context) {
	var req domain.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.BadRequest(c, err)
		return
	}

	p, err := h.projects.Create(c.Request.Context(), auth.UserFirebaseUID(c), req)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Project created", "projectID": p.ProjectID})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.projects.Get(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// update accepts only projectName, status, timeline and dashboard. Any other
// key rejects the whole request.
func (h *Handler) update(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	var u domain.ProjectUpdate
	if err := dec.Decode(&u); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	if err := h.projects.Update(c.Request.Context(), c.Param("projectID"), u); err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project updated"})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("projectID")); err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

func (h *Handler) viewProjects(c *gin.Context) {
	projects, err := h.projects.ListForUser(c.Request.Context(), auth.UserFirebaseUID(c))
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) trackProgress(c *gin.Context) {
	progress, err := h.projects.TrackProgress(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
