package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-assistant/internal/middleware"
)

// processChatReq binds the body. The session id comes from the body, then the
// X-Session-ID header; a new one is generated when both are empty.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "agent.delivery.http.processChatReq: %v", err)
		return req, errMessageRequired
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return req, errMessageRequired
	}

	if req.SessionID == "" {
		req.SessionID = c.GetHeader(middleware.SessionHeader)
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	return req, nil
}
