package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the routes that need no identity token.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/:userID", h.GetUser)
}
