package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/create", h.create)
	rg.GET("/:projectID", h.get)
	rg.PUT("/:projectID/update", h.update)
	rg.DELETE("/:projectID/delete", h.delete)
}

// RegisterDashboard attaches the dashboard routes.
func (h *Handler) RegisterDashboard(rg *gin.RouterGroup) {
	rg.GET("/viewProjects", h.viewProjects)
	rg.GET("/:projectID/trackProgress", h.trackProgress)
}
