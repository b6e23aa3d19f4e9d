package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

const (
	defaultTimeout = 10 * time.Second

	// MaxMessageLength is the Bot API limit for sendMessage text.
	MaxMessageLength = 4096
)

// Bot is the Telegram Bot API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secret is
// echoed by Telegram in the X-Telegram-Bot-Api-Secret-Token header.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	var apiResp APIResponse
	if err := b.call(ctx, "setWebhook", SetWebhookRequest{URL: webhookURL, SecretToken: secret}, &apiResp); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat. Text longer than
// MaxMessageLength is split into several messages.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	for _, chunk := range splitMessage(text, MaxMessageLength) {
		if err := b.call(ctx, "sendMessage", SendMessageRequest{ChatID: chatID, Text: chunk}, nil); err != nil {
			return fmt.Errorf("failed to send message: %w", err)
		}
	}
	return nil
}

func (b *Bot) call(ctx context.Context, method string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// splitMessage cuts text into chunks of at most limit bytes, preferring line breaks.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}
	var chunks []string
	for len(text) > limit {
		cut := bytes.LastIndexByte([]byte(text[:limit]), '\n')
		if cut <= 0 {
			cut = limit
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
		if len(text) > 0 && text[0] == '\n' {
			text = text[1:]
		}
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
