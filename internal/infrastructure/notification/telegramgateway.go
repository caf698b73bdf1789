// Package notification delivers ticket events to staff and users after the
// owning transaction has committed. Gateways report failures but never
// influence stored state.
package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"helpdesk/internal/application/ticket/usecases"
	sharedConfig "helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

// messageSender is the slice of the Telegram bot service the gateway needs.
type messageSender interface {
	SendMessage(chatID int64, text string) error
}

// TelegramGateway renders payloads as Telegram HTML messages. Staff alerts
// go to the configured staff chat; user notices go to the user's own chat.
type TelegramGateway struct {
	sender      messageSender
	staffChatID int64
	policy      *bluemonday.Policy
	logger      logger.Interface
}

func NewTelegramGateway(sender messageSender, cfg sharedConfig.TelegramConfig, log logger.Interface) *TelegramGateway {
	return &TelegramGateway{
		sender:      sender,
		staffChatID: cfg.StaffChatID,
		policy:      bluemonday.StrictPolicy(),
		logger:      log,
	}
}

func (g *TelegramGateway) Notify(ctx context.Context, payload usecases.NotificationPayload) error {
	var chatID int64
	switch payload.Channel {
	case usecases.ChannelStaff:
		chatID = g.staffChatID
	case usecases.ChannelUser:
		chatID = payload.UserExternalID
	default:
		return fmt.Errorf("unknown notification channel: %s", payload.Channel)
	}

	if chatID == 0 {
		return fmt.Errorf("no chat configured for channel %s", payload.Channel)
	}

	text := g.render(payload)
	if err := g.sender.SendMessage(chatID, text); err != nil {
		g.logger.Warnw("telegram notification failed",
			"channel", payload.Channel,
			"ticket_id", payload.TicketID,
			"error", err)
		return fmt.Errorf("failed to send telegram notification: %w", err)
	}

	return nil
}

// render builds the HTML message body. The strict policy strips any markup
// from user-supplied strings and escapes the remainder, so raw input can
// never break out of the surrounding tags.
func (g *TelegramGateway) render(payload usecases.NotificationPayload) string {
	safeText := g.policy.Sanitize(payload.Text)
	safeName := g.policy.Sanitize(payload.UserDisplayName)

	var b strings.Builder
	switch payload.Channel {
	case usecases.ChannelStaff:
		fmt.Fprintf(&b, "🎫 <b>Ticket #%d</b>\n", payload.DailyID)
		fmt.Fprintf(&b, "From: %s (id %d)\n", safeName, payload.UserExternalID)
		if safeText != "" {
			b.WriteString("\n")
			b.WriteString(safeText)
		}
	case usecases.ChannelUser:
		if payload.Closing {
			fmt.Fprintf(&b, "✅ Your ticket <b>#%d</b> has been closed.\n", payload.DailyID)
		} else {
			fmt.Fprintf(&b, "💬 Support replied to your ticket <b>#%d</b>:\n", payload.DailyID)
		}
		if safeText != "" {
			b.WriteString("\n")
			b.WriteString(safeText)
		}
	}

	return b.String()
}
