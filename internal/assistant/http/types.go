package http

import "github.com/LaunchPad-AI/launchpad-backend/internal/assistant/service"

// Handler bundles the dependencies for the assistant endpoints.
type Handler struct {
	assistant *service.AssistantService
}

func New(assistant *service.AssistantService) *Handler {
	return &Handler{assistant: assistant}
}
