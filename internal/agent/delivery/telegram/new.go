package telegram

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"todo-assistant/internal/agent/orchestrator"
	pkgLog "todo-assistant/pkg/log"
	pkgTelegram "todo-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Wait blocks until every in-flight message has been answered.
	Wait()
}

// Assistant is the part of the orchestrator the bot talks to.
type Assistant interface {
	ProcessQuery(ctx context.Context, sessionID, text string) (orchestrator.Reply, error)
	Reset(sessionID string) bool
}

type handler struct {
	l         pkgLog.Logger
	assistant Assistant
	bot       *pkgTelegram.Bot
	secret    string
	wg        sync.WaitGroup
}

// New creates a new Telegram delivery handler. An empty secret disables the
// secret token check.
func New(l pkgLog.Logger, assistant Assistant, bot *pkgTelegram.Bot, secret string) Handler {
	return &handler{
		l:         l,
		assistant: assistant,
		bot:       bot,
		secret:    secret,
	}
}
