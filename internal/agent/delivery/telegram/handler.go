package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	pkgLog "todo-assistant/pkg/log"
	pkgResponse "todo-assistant/pkg/response"
	pkgTelegram "todo-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and answers the message in the background, since
// Telegram retries updates that are not acknowledged within a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.l.Warnf(ctx, "agent.delivery.telegram.HandleWebhook: invalid secret token")
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "agent.delivery.telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Edits, polls, channel posts and the like carry no message.
	if update.Message == nil || strings.TrimSpace(update.Message.Text) == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}
	if update.Message.Chat == nil {
		pkgResponse.Error(c, errNoChat, nil)
		return
	}

	msg := update.Message
	sessionID := fmt.Sprintf("%s%d", SessionPrefix, msg.Chat.ID)

	// The request context is canceled once the response is written.
	bgCtx := pkgLog.WithSessionID(context.WithoutCancel(ctx), sessionID)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()

		ctx, cancel := context.WithTimeout(bgCtx, processTimeout)
		defer cancel()

		if err := h.processMessage(ctx, sessionID, msg); err != nil {
			h.l.Errorf(ctx, "agent.delivery.telegram.HandleWebhook: processMessage: %v", err)
			if sendErr := h.bot.SendMessage(ctx, msg.Chat.ID, MsgFailed); sendErr != nil {
				h.l.Warnf(ctx, "agent.delivery.telegram.HandleWebhook: failed to send error notice: %v", sendErr)
			}
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// Wait blocks until background replies have been sent.
func (h *handler) Wait() {
	h.wg.Wait()
}

// processMessage answers a single Telegram message.
func (h *handler) processMessage(ctx context.Context, sessionID string, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)

	switch command(text) {
	case CmdStart:
		return h.bot.SendMessage(ctx, msg.Chat.ID, MsgWelcome)
	case CmdReset:
		h.assistant.Reset(sessionID)
		return h.bot.SendMessage(ctx, msg.Chat.ID, MsgReset)
	case CmdHelp:
		text = "help"
	}

	reply, err := h.assistant.ProcessQuery(ctx, sessionID, text)
	if err != nil {
		return err
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, reply.Text)
}

// command returns the bot command in text, without any @botname suffix, or ""
// when text is not a command.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd)
}
