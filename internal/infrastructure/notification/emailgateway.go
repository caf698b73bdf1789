package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/application/ticket/usecases"
	sharedConfig "helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

// mailDialer matches *gomail.Dialer.
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailGateway mirrors staff alerts to a shared mailbox. User-channel
// payloads are skipped since users are reached over chat, not email.
type EmailGateway struct {
	dialer    mailDialer
	from      string
	staffAddr string
	logger    logger.Interface
}

func NewEmailGateway(cfg sharedConfig.EmailConfig, log logger.Interface) *EmailGateway {
	return &EmailGateway{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:      cfg.From,
		staffAddr: cfg.StaffAddr,
		logger:    log,
	}
}

func (g *EmailGateway) Notify(ctx context.Context, payload usecases.NotificationPayload) error {
	if payload.Channel != usecases.ChannelStaff {
		return ErrChannelUnsupported
	}
	if g.staffAddr == "" {
		return fmt.Errorf("no staff email address configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", g.from)
	m.SetHeader("To", g.staffAddr)
	m.SetHeader("Subject", fmt.Sprintf("Ticket #%d from %s", payload.DailyID, payload.UserDisplayName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Ticket #%d\nFrom: %s (id %d)\nAt: %s\n\n%s\n",
		payload.DailyID,
		payload.UserDisplayName,
		payload.UserExternalID,
		payload.Timestamp.Format("2006-01-02 15:04:05 MST"),
		payload.Text,
	))

	if err := g.dialer.DialAndSend(m); err != nil {
		g.logger.Warnw("email notification failed",
			"ticket_id", payload.TicketID,
			"error", err)
		return fmt.Errorf("failed to send email notification: %w", err)
	}

	return nil
}
