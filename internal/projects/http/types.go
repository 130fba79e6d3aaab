package http

import "github.com/LaunchPad-AI/launchpad-backend/internal/projects/service"

// Handler bundles the dependencies for project and dashboard endpoints.
type Handler struct {
	projects *service.ProjectService
}

func New(projects *service.ProjectService) *Handler {
	return &Handler{projects: projects}
}
