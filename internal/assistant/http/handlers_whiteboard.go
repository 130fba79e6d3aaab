package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LaunchPad-AI/launchpad-backend/internal/api/http/httperr"
	"github.com/LaunchPad-AI/launchpad-backend/internal/assistant/domain"
	"github.com/LaunchPad-AI/launchpad-backend/internal/auth"
)

func (h *Handler) addNote(c *gin.Context) {
	var req domain.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	note, err := h.assistant.AddNote(c.Request.Context(), auth.UserFirebaseUID(c), req)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Note added", "note": note})
}

func (h *Handler) editNote(c *gin.Context) {
	var req domain.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	noteID := c.Param("noteID")
	if _, err := h.assistant.EditNote(c.Request.Context(), noteID, req); err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note updated", "noteID": noteID})
}

// removeNote takes projectID from the JSON body, or from the query string
// for clients that cannot send a body with DELETE.
func (h *Handler) removeNote(c *gin.Context) {
	var req domain.RemoveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if !errors.Is(err, io.EOF) || c.Query("projectID") == "" {
			httperr.BadRequest(c, err)
			return
		}
		req.ProjectID = c.Query("projectID")
	}

	noteID := c.Param("noteID")
	if err := h.assistant.RemoveNote(c.Request.Context(), req.ProjectID, noteID); err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note " + noteID + " removed"})
}
