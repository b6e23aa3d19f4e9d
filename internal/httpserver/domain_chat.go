package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	agentHTTP "todo-assistant/internal/agent/delivery/http"
	"todo-assistant/internal/middleware"
)

// setupChatDomain registers the chat API under api.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := agentHTTP.New(srv.l, srv.assistant, srv.registry)

	// Registers /api/v1/chat and /api/v1/tools
	agentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered with %d tools", len(srv.registry.List()))
	return nil
}
