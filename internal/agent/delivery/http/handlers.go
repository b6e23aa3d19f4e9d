package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"todo-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Classifies the message, executes the resulting todo operations and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string  false "Session id (alternative to session_id in the body)"
// @Param       body         body   chatReq true  "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, map[string]string{"message": "required"})
		return
	}

	reply, err := h.assistant.ProcessQuery(ctx, req.SessionID, req.Message)
	if err != nil {
		if mapped := mapError(err); mapped != nil {
			response.Error(c, mapped, nil)
			return
		}
		h.l.Errorf(ctx, "agent.delivery.http.Chat: ProcessQuery: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newChatResp(req.SessionID, reply, time.Now()))
}

// ListTools godoc
// @Summary     List tools
// @Description Returns every operation the assistant can call, with its parameter schema.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} toolsResp
// @Router      /api/v1/tools [GET]
func (h *handler) ListTools(c *gin.Context) {
	response.OK(c, newToolsResp(h.registry.List()))
}
