// Package telegram implements the admin command surface from spec.md §6:
// routing, the admin allowlist, per-admin/global job quota enforcement,
// and the two-step confirmation required before a pipeline run/day
// command takes effect.
package telegram

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client is a thin wrapper around the bot API SDK, mirroring
// slack.Client's "hold the SDK handle + channel, expose one send method"
// shape. The transport loop that receives updates is out of scope per
// spec.md §1; Client only sends.
type Client struct {
	api    *tgbotapi.BotAPI
	logger *slog.Logger
}

// NewClient creates a Client from a bot token.
func NewClient(token string) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot client: %w", err)
	}
	return &Client{api: api, logger: slog.Default().With("component", "telegram-client")}, nil
}

// NewClientWithAPI wraps an already-constructed *tgbotapi.BotAPI, for
// tests that substitute a mock HTTP endpoint.
func NewClientWithAPI(api *tgbotapi.BotAPI) *Client {
	return &Client{api: api, logger: slog.Default().With("component", "telegram-client")}
}

// Send delivers a plain-text reply to chatID, truncating per
// spec.md §5's "long outputs are truncated to ≤ 3,800 chars" rule.
// Fail-open: errors are logged, never returned, matching
// slack.Service's notification methods.
func (c *Client) Send(chatID int64, text string) {
	if c == nil {
		return
	}
	msg := tgbotapi.NewMessage(chatID, Truncate(text))
	if _, err := c.api.Send(msg); err != nil {
		c.logger.Error("failed to send telegram message", "chat_id", chatID, "error", err)
	}
}

// maxReplyChars is the spec's truncation limit for command responses.
const maxReplyChars = 3800

// Truncate caps text at maxReplyChars, appending a marker so truncation
// is visible to the admin rather than silently losing the tail.
func Truncate(text string) string {
	if len(text) <= maxReplyChars {
		return text
	}
	return text[:maxReplyChars-len(truncationSuffix)] + truncationSuffix
}

const truncationSuffix = "\n… (truncated)"
