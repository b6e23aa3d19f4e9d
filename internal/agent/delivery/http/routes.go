package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/internal/middleware"
)

// RegisterRoutes registers /chat and /tools on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.GET("/tools", h.ListTools)
}
